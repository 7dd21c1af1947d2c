package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/middleware"
	"github.com/memitrading/memi/internal/pkg/filestorage"
)

// TestimonialController handles testimonials
type TestimonialController struct {
	testimonialService services.TestimonialService
	images             imageUploads
}

// NewTestimonialController creates a new TestimonialController
func NewTestimonialController(testimonialService services.TestimonialService, uploader *filestorage.Uploader) *TestimonialController {
	return &TestimonialController{
		testimonialService: testimonialService,
		images:             imageUploads{uploader: uploader},
	}
}

// ListActive returns the active testimonials shown on the public site
// @Summary List active testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {array} models.Testimonial
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /testimonials [get]
func (c *TestimonialController) ListActive(ctx *gin.Context) {
	items, err := c.testimonialService.ListActive(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// ListAll returns every testimonial, active or not
// @Summary List all testimonials
// @Tags admin-testimonials
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Testimonial
// @Router /admin/testimonials [get]
func (c *TestimonialController) ListAll(ctx *gin.Context) {
	items, err := c.testimonialService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// Get returns one testimonial
// @Summary Get testimonial
// @Tags admin-testimonials
// @Security BearerAuth
// @Produce json
// @Param id path int true "Testimonial ID"
// @Success 200 {object} models.Testimonial
// @Failure 404 {object} dto.ErrorResponse "Testimonial not found"
// @Router /admin/testimonials/{id} [get]
func (c *TestimonialController) Get(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	item, err := c.testimonialService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Create adds a testimonial
// @Summary Create testimonial
// @Description Accepts JSON or multipart/form-data with an optional "image" file
// @Tags admin-testimonials
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTestimonialRequest true "Testimonial"
// @Param image formData file false "Testimonial image (JPEG, PNG or GIF)"
// @Success 200 {object} models.Testimonial
// @Failure 400 {object} dto.ErrorResponse "Invalid testimonial data or upload"
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Router /admin/testimonials [post]
func (c *TestimonialController) Create(ctx *gin.Context) {
	var req dto.CreateTestimonialRequest
	if !middleware.Bind(ctx, &req) {
		return
	}
	imageURL, ok := c.images.store(ctx, imageField)
	if !ok {
		return
	}
	if imageURL != "" {
		req.ImageURL = &imageURL
	}

	item, err := c.testimonialService.Create(ctx.Request.Context(), &req)
	if err != nil {
		c.images.discard(ctx, imageURL)
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Update changes the fields present in the request
// @Summary Update testimonial
// @Tags admin-testimonials
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Param request body dto.UpdateTestimonialRequest true "Fields to change"
// @Param image formData file false "New testimonial image"
// @Success 200 {object} models.Testimonial
// @Failure 400 {object} dto.ErrorResponse "Invalid testimonial data or upload"
// @Failure 404 {object} dto.ErrorResponse "Testimonial not found"
// @Router /admin/testimonials/{id} [put]
func (c *TestimonialController) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var req dto.UpdateTestimonialRequest
	if !middleware.Bind(ctx, &req) {
		return
	}
	imageURL, ok := c.images.store(ctx, imageField)
	if !ok {
		return
	}
	if imageURL != "" {
		req.ImageURL = &imageURL
	}

	item, err := c.testimonialService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		c.images.discard(ctx, imageURL)
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Delete removes a testimonial
// @Summary Delete testimonial
// @Tags admin-testimonials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Testimonial not found"
// @Router /admin/testimonials/{id} [delete]
func (c *TestimonialController) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	if err := c.testimonialService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Testimonial deleted successfully")
}
