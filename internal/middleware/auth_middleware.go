package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/auth"
	"github.com/memitrading/memi/internal/pkg/logger"
)

// Context keys set by JWTAuth
const (
	ContextKeyUser   = "user"
	ContextKeyUserID = "userID"
)

// UserLoader loads the user a token was issued for
type UserLoader interface {
	GetCurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

// AuthMiddleware for authentication
type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      UserLoader
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, users UserLoader) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

func abortAuth(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// JWTAuth requires a bearer token. A missing token or a token for a user that
// no longer exists answers 401; a bad signature or an expired token answers 403.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			abortAuth(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Access token required")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				abortAuth(c, http.StatusForbidden, dto.ErrorCodeExpiredToken, "Token expired")
				return
			}
			logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Rejected invalid token")
			abortAuth(c, http.StatusForbidden, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		user, err := m.users.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) || errors.Is(err, apperrors.ErrResourceNotFound) {
				abortAuth(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "User not found")
				return
			}
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser returns the user attached by JWTAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextKeyUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
