package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/middleware"
	"github.com/memitrading/memi/internal/pkg/filestorage"
)

// CourseController handles courses
type CourseController struct {
	courseService services.CourseService
	images        imageUploads
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, uploader *filestorage.Uploader) *CourseController {
	return &CourseController{
		courseService: courseService,
		images:        imageUploads{uploader: uploader},
	}
}

// List returns all courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	items, err := c.courseService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// Get returns one course
// @Summary Get course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	item, err := c.courseService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Create adds a course
// @Summary Create course
// @Description Accepts JSON or multipart/form-data with an optional "image" file
// @Tags admin-courses
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course"
// @Param image formData file false "Course image (JPEG, PNG or GIF)"
// @Success 200 {object} models.Course
// @Failure 400 {object} dto.ErrorResponse "Invalid course data or upload"
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Router /admin/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CreateCourseRequest
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

	item, err := c.courseService.Create(ctx.Request.Context(), &req)
	if err != nil {
		c.images.discard(ctx, imageURL)
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Update changes the fields present in the request
// @Summary Update course
// @Tags admin-courses
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to change"
// @Param image formData file false "New course image"
// @Success 200 {object} models.Course
// @Failure 400 {object} dto.ErrorResponse "Invalid course data or upload"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var req dto.UpdateCourseRequest
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

	item, err := c.courseService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		c.images.discard(ctx, imageURL)
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Delete removes a course
// @Summary Delete course
// @Tags admin-courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	if err := c.courseService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Course deleted successfully")
}
