package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/middleware"
	"github.com/memitrading/memi/internal/pkg/filestorage"
)

// NewsController handles news articles
type NewsController struct {
	newsService services.NewsService
	images      imageUploads
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService, uploader *filestorage.Uploader) *NewsController {
	return &NewsController{
		newsService: newsService,
		images:      imageUploads{uploader: uploader},
	}
}

// List returns all news articles, newest first
// @Summary List news
// @Tags news
// @Produce json
// @Success 200 {array} models.News
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news [get]
func (c *NewsController) List(ctx *gin.Context) {
	items, err := c.newsService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// Get returns one news article
// @Summary Get news article
// @Tags news
// @Produce json
// @Param id path int true "News article ID"
// @Success 200 {object} models.News
// @Failure 404 {object} dto.ErrorResponse "News article not found"
// @Router /news/{id} [get]
func (c *NewsController) Get(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	item, err := c.newsService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Create adds a news article
// @Summary Create news article
// @Description Accepts JSON or multipart/form-data with an optional "image" file
// @Tags admin-news
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNewsRequest true "News article"
// @Param image formData file false "News article image (JPEG, PNG or GIF)"
// @Success 200 {object} models.News
// @Failure 400 {object} dto.ErrorResponse "Invalid news article data or upload"
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Router /admin/news [post]
func (c *NewsController) Create(ctx *gin.Context) {
	var req dto.CreateNewsRequest
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

	item, err := c.newsService.Create(ctx.Request.Context(), &req)
	if err != nil {
		c.images.discard(ctx, imageURL)
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Update changes the fields present in the request
// @Summary Update news article
// @Tags admin-news
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "News article ID"
// @Param request body dto.UpdateNewsRequest true "Fields to change"
// @Param image formData file false "New news article image"
// @Success 200 {object} models.News
// @Failure 400 {object} dto.ErrorResponse "Invalid news article data or upload"
// @Failure 404 {object} dto.ErrorResponse "News article not found"
// @Router /admin/news/{id} [put]
func (c *NewsController) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var req dto.UpdateNewsRequest
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

	item, err := c.newsService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		c.images.discard(ctx, imageURL)
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Delete removes a news article
// @Summary Delete news article
// @Tags admin-news
// @Produce json
// @Security BearerAuth
// @Param id path int true "News article ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "News article not found"
// @Router /admin/news/{id} [delete]
func (c *NewsController) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	if err := c.newsService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "News article deleted successfully")
}
