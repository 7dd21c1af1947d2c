package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/middleware"
	"github.com/memitrading/memi/internal/pkg/filestorage"
)

// EventController handles events
type EventController struct {
	eventService services.EventService
	images       imageUploads
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, uploader *filestorage.Uploader) *EventController {
	return &EventController{
		eventService: eventService,
		images:       imageUploads{uploader: uploader},
	}
}

// List returns all events, latest first
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [get]
func (c *EventController) List(ctx *gin.Context) {
	items, err := c.eventService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// Get returns one event
// @Summary Get event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) Get(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	item, err := c.eventService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Create adds a event
// @Summary Create event
// @Description Accepts JSON or multipart/form-data with an optional "image" file
// @Tags admin-events
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event"
// @Param image formData file false "Event image (JPEG, PNG or GIF)"
// @Success 200 {object} models.Event
// @Failure 400 {object} dto.ErrorResponse "Invalid event data or upload"
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Router /admin/events [post]
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
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

	item, err := c.eventService.Create(ctx.Request.Context(), &req)
	if err != nil {
		c.images.discard(ctx, imageURL)
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Update changes the fields present in the request
// @Summary Update event
// @Tags admin-events
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to change"
// @Param image formData file false "New event image"
// @Success 200 {object} models.Event
// @Failure 400 {object} dto.ErrorResponse "Invalid event data or upload"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /admin/events/{id} [put]
func (c *EventController) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var req dto.UpdateEventRequest
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

	item, err := c.eventService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		c.images.discard(ctx, imageURL)
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Delete removes a event
// @Summary Delete event
// @Tags admin-events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /admin/events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	if err := c.eventService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Event deleted successfully")
}
