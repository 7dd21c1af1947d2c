package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/middleware"
	"github.com/memitrading/memi/internal/pkg/apperrors"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles admin login
// @Summary Admin login
// @Description Authenticates an admin and returns a bearer token valid for 24 hours
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Email and password are required"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}
