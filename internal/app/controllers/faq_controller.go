package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/middleware"
)

// FaqController handles frequently asked questions
type FaqController struct {
	faqService services.FaqService
}

// NewFaqController creates a new FaqController
func NewFaqController(faqService services.FaqService) *FaqController {
	return &FaqController{faqService: faqService}
}

// ListActive returns the active FAQs in display order
// @Summary List active FAQs
// @Tags faqs
// @Produce json
// @Success 200 {array} models.Faq
// @Router /faqs [get]
func (c *FaqController) ListActive(ctx *gin.Context) {
	items, err := c.faqService.ListActive(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// ListAll returns every FAQ
// @Summary List all FAQs
// @Tags admin-faqs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Faq
// @Router /admin/faqs [get]
func (c *FaqController) ListAll(ctx *gin.Context) {
	items, err := c.faqService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// Get returns one FAQ
// @Summary Get FAQ
// @Tags admin-faqs
// @Produce json
// @Security BearerAuth
// @Param id path int true "FAQ ID"
// @Success 200 {object} models.Faq
// @Failure 404 {object} dto.ErrorResponse "FAQ not found"
// @Router /admin/faqs/{id} [get]
func (c *FaqController) Get(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	item, err := c.faqService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Create adds a FAQ
// @Summary Create FAQ
// @Tags admin-faqs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFaqRequest true "FAQ"
// @Success 200 {object} models.Faq
// @Failure 400 {object} dto.ErrorResponse "Invalid FAQ data"
// @Router /admin/faqs [post]
func (c *FaqController) Create(ctx *gin.Context) {
	var req dto.CreateFaqRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	item, err := c.faqService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Update changes the fields present in the request
// @Summary Update FAQ
// @Tags admin-faqs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "FAQ ID"
// @Param request body dto.UpdateFaqRequest true "Fields to change"
// @Success 200 {object} models.Faq
// @Failure 404 {object} dto.ErrorResponse "FAQ not found"
// @Router /admin/faqs/{id} [put]
func (c *FaqController) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var req dto.UpdateFaqRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	item, err := c.faqService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Delete removes a FAQ
// @Summary Delete FAQ
// @Tags admin-faqs
// @Security BearerAuth
// @Param id path int true "FAQ ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /admin/faqs/{id} [delete]
func (c *FaqController) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	if err := c.faqService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "FAQ deleted successfully")
}
