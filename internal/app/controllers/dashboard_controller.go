package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/middleware"
)

// DashboardController serves the admin dashboard counters
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Metrics returns row counts for the dashboard cards
// @Summary Dashboard metrics
// @Tags admin-dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardMetrics
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/metrics [get]
func (c *DashboardController) Metrics(ctx *gin.Context) {
	metrics, err := c.dashboardService.Metrics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, metrics)
}
