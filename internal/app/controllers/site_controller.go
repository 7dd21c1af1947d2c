package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/middleware"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/filestorage"
	"github.com/memitrading/memi/internal/pkg/helpers"
	"github.com/memitrading/memi/internal/pkg/validation"
)

const sliderImagesField = "sliderImages"

// SiteController handles the single-page sections: about, stats, app
// features and the app showcase
type SiteController struct {
	aboutService       services.AboutService
	statService        services.StatService
	appFeatureService  services.AppFeatureService
	appShowcaseService services.AppShowcaseService
	images             imageUploads
}

// NewSiteController creates a new SiteController
func NewSiteController(
	aboutService services.AboutService,
	statService services.StatService,
	appFeatureService services.AppFeatureService,
	appShowcaseService services.AppShowcaseService,
	uploader *filestorage.Uploader,
) *SiteController {
	return &SiteController{
		aboutService:       aboutService,
		statService:        statService,
		appFeatureService:  appFeatureService,
		appShowcaseService: appShowcaseService,
		images:             imageUploads{uploader: uploader},
	}
}

// singleton writes v, or null when the section was never saved
func singleton[T any](ctx *gin.Context, v *T, err error) {
	if err != nil {
		if apperrors.IsNotFound(err) {
			ctx.JSON(http.StatusOK, nil)
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, v)
}

// GetAbout returns the about section
// @Summary Get about section
// @Tags site
// @Produce json
// @Success 200 {object} models.AboutContent "null when never saved"
// @Router /about [get]
func (c *SiteController) GetAbout(ctx *gin.Context) {
	about, err := c.aboutService.Get(ctx.Request.Context())
	singleton(ctx, about, err)
}

// UpdateAbout replaces the about section
// @Summary Update about section
// @Tags admin-site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AboutRequest true "About content"
// @Success 200 {object} models.AboutContent
// @Failure 400 {object} dto.ErrorResponse "Invalid about data"
// @Router /admin/about [put]
func (c *SiteController) UpdateAbout(ctx *gin.Context) {
	var req dto.AboutRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	about, err := c.aboutService.Update(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, about)
}

// ListStats returns the headline stats
// @Summary List stats
// @Tags site
// @Produce json
// @Success 200 {array} models.Stat
// @Router /stats [get]
func (c *SiteController) ListStats(ctx *gin.Context) {
	stats, err := c.statService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// ReplaceStats swaps the whole set of stats
// @Summary Replace stats
// @Description The body is the complete new list; existing stats are removed
// @Tags admin-site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []dto.StatRequest true "Stats in display order"
// @Success 200 {array} models.Stat
// @Failure 400 {object} dto.ErrorResponse "Invalid stats data"
// @Router /admin/stats [put]
func (c *SiteController) ReplaceStats(ctx *gin.Context) {
	var reqs []dto.StatRequest
	if !middleware.BindJSON(ctx, &reqs) {
		return
	}
	stats, err := c.statService.Replace(ctx.Request.Context(), reqs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// ListAppFeatures returns the app feature cards
// @Summary List app features
// @Tags site
// @Produce json
// @Success 200 {array} models.AppFeature
// @Router /app-features [get]
func (c *SiteController) ListAppFeatures(ctx *gin.Context) {
	features, err := c.appFeatureService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, features)
}

// GetAppFeature returns one app feature
// @Summary Get app feature
// @Tags admin-site
// @Produce json
// @Security BearerAuth
// @Param id path int true "App feature ID"
// @Success 200 {object} models.AppFeature
// @Failure 404 {object} dto.ErrorResponse "App feature not found"
// @Router /admin/app-features/{id} [get]
func (c *SiteController) GetAppFeature(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	feature, err := c.appFeatureService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, feature)
}

// CreateAppFeature adds an app feature
// @Summary Create app feature
// @Tags admin-site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAppFeatureRequest true "App feature"
// @Success 200 {object} models.AppFeature
// @Failure 400 {object} dto.ErrorResponse "Invalid app feature data"
// @Router /admin/app-features [post]
func (c *SiteController) CreateAppFeature(ctx *gin.Context) {
	var req dto.CreateAppFeatureRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	feature, err := c.appFeatureService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, feature)
}

// UpdateAppFeature changes the fields present in the request
// @Summary Update app feature
// @Tags admin-site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "App feature ID"
// @Param request body dto.UpdateAppFeatureRequest true "Fields to change"
// @Success 200 {object} models.AppFeature
// @Failure 404 {object} dto.ErrorResponse "App feature not found"
// @Router /admin/app-features/{id} [put]
func (c *SiteController) UpdateAppFeature(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var req dto.UpdateAppFeatureRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	feature, err := c.appFeatureService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, feature)
}

// DeleteAppFeature removes an app feature
// @Summary Delete app feature
// @Tags admin-site
// @Security BearerAuth
// @Param id path int true "App feature ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /admin/app-features/{id} [delete]
func (c *SiteController) DeleteAppFeature(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	if err := c.appFeatureService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "App feature deleted successfully")
}

// GetAppShowcase returns the app showcase section
// @Summary Get app showcase
// @Tags site
// @Produce json
// @Success 200 {object} models.AppShowcase "null when never saved"
// @Router /app-showcase [get]
func (c *SiteController) GetAppShowcase(ctx *gin.Context) {
	showcase, err := c.appShowcaseService.Get(ctx.Request.Context())
	singleton(ctx, showcase, err)
}

// UpdateAppShowcase changes the app showcase. Multipart requests may send the
// slider list as a JSON string and new slider files, which are appended.
// @Summary Update app showcase
// @Tags admin-site
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body dto.AppShowcaseRequest true "Fields to change"
// @Param sliderImages formData file false "Slider images to append"
// @Success 200 {object} models.AppShowcase
// @Failure 400 {object} dto.ErrorResponse "Invalid showcase data or upload"
// @Router /admin/app-showcase [put]
func (c *SiteController) UpdateAppShowcase(ctx *gin.Context) {
	var req dto.AppShowcaseRequest
	if !middleware.Bind(ctx, &req) {
		return
	}

	if helpers.IsMultipart(ctx) {
		if raw := strings.TrimSpace(ctx.PostForm(sliderImagesField)); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.SliderImages); err != nil {
				middleware.HandleAPIError(ctx, apperrors.NewValidationError(sliderImagesField, "must be a JSON array of {src, alt} objects"))
				return
			}
			if err := validation.Struct(&req); err != nil {
				middleware.HandleAPIError(ctx, err)
				return
			}
		}
	}

	urls, ok := c.images.storeAll(ctx, sliderImagesField)
	if !ok {
		return
	}
	uploaded := make([]models.SliderImage, 0, len(urls))
	for _, u := range urls {
		uploaded = append(uploaded, models.SliderImage{Src: u})
	}

	showcase, err := c.appShowcaseService.Update(ctx.Request.Context(), &req, uploaded)
	if err != nil {
		c.images.discard(ctx, urls...)
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, showcase)
}
