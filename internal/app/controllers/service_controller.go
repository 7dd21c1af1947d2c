package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/middleware"
	"github.com/memitrading/memi/internal/pkg/filestorage"
)

// ServiceController handles the company services
type ServiceController struct {
	service services.ServiceService
	images  imageUploads
}

// NewServiceController creates a new ServiceController
func NewServiceController(service services.ServiceService, uploader *filestorage.Uploader) *ServiceController {
	return &ServiceController{
		service: service,
		images:  imageUploads{uploader: uploader},
	}
}

// List returns all services
// @Summary List services
// @Tags services
// @Produce json
// @Success 200 {array} models.Service
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /services [get]
func (c *ServiceController) List(ctx *gin.Context) {
	items, err := c.service.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// Get returns one service
// @Summary Get service
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} models.Service
// @Failure 404 {object} dto.ErrorResponse "Service not found"
// @Router /services/{id} [get]
func (c *ServiceController) Get(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	item, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Create adds a service
// @Summary Create service
// @Description Accepts JSON or multipart/form-data with an optional "image" file
// @Tags admin-services
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateServiceRequest true "Service"
// @Param image formData file false "Service image (JPEG, PNG or GIF)"
// @Success 200 {object} models.Service
// @Failure 400 {object} dto.ErrorResponse "Invalid service data or upload"
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Router /admin/services [post]
func (c *ServiceController) Create(ctx *gin.Context) {
	var req dto.CreateServiceRequest
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

	item, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		c.images.discard(ctx, imageURL)
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Update changes the fields present in the request
// @Summary Update service
// @Tags admin-services
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Fields to change"
// @Param image formData file false "New service image"
// @Success 200 {object} models.Service
// @Failure 400 {object} dto.ErrorResponse "Invalid service data or upload"
// @Failure 404 {object} dto.ErrorResponse "Service not found"
// @Router /admin/services/{id} [put]
func (c *ServiceController) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var req dto.UpdateServiceRequest
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

	item, err := c.service.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		c.images.discard(ctx, imageURL)
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Delete removes a service
// @Summary Delete service
// @Tags admin-services
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Service not found"
// @Router /admin/services/{id} [delete]
func (c *ServiceController) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Service deleted successfully")
}
