package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models/dto"
)

// HealthController answers liveness probes
type HealthController struct {
	environment string
}

// NewHealthController creates a new HealthController
func NewHealthController(environment string) *HealthController {
	return &HealthController{environment: environment}
}

// Health reports that the process is up
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC(),
		Environment: c.environment,
	})
}
