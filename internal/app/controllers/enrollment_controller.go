package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/middleware"
)

// EnrollmentController handles course applications
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// Submit records a public course application
// @Summary Apply for a course
// @Description Creates a pending enrollment for an existing course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.EnrollmentRequest true "Application"
// @Success 200 {object} models.Enrollment
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment data or unknown course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [post]
func (c *EnrollmentController) Submit(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	enrollment, err := c.enrollmentService.Submit(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, enrollment)
}

// List returns every enrollment, newest first
// @Summary List enrollments
// @Tags admin-enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Enrollment
// @Router /admin/enrollments [get]
func (c *EnrollmentController) List(ctx *gin.Context) {
	items, err := c.enrollmentService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// UpdateStatus approves or rejects an enrollment
// @Summary Change enrollment status
// @Tags admin-enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param request body dto.EnrollmentStatusRequest true "New status"
// @Success 200 {object} models.Enrollment
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /admin/enrollments/{id}/status [put]
func (c *EnrollmentController) UpdateStatus(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var req dto.EnrollmentStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	enrollment, err := c.enrollmentService.UpdateStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, enrollment)
}

// Delete removes an enrollment
// @Summary Delete enrollment
// @Tags admin-enrollments
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /admin/enrollments/{id} [delete]
func (c *EnrollmentController) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	if err := c.enrollmentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Enrollment deleted successfully")
}
