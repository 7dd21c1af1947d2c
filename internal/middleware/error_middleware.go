package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/logger"
)

// HandleAPIError maps err to a status code and writes the error envelope
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var uploadErr *apperrors.UploadError

	switch {
	case errors.As(err, &validationErr):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithSeverity(dto.ErrorSeverityWarning).
			WithDetails(validationErr.Fields)
		if len(validationErr.Fields) == 1 {
			detail = detail.WithField(validationErr.Fields[0].Field)
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))

	case errors.As(err, &uploadErr):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUploadFailed, uploadErr.Message).
				WithSeverity(dto.ErrorSeverityWarning).
				WithField(uploadErr.Field),
		))

	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found"),
		))

	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Enrollment not found"),
		))

	case errors.Is(err, apperrors.ErrResourceNotFound), errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, customMessage(err, "Resource not found")),
		))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		))

	case errors.Is(err, apperrors.ErrTokenMissing):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Access token required"),
		))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		))

	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists").WithField("email"),
		))

	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Username already exists").WithField("username"),
		))

	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeConflict, customMessage(err, "Conflict")),
		))

	case errors.Is(err, apperrors.ErrSingletonIncomplete):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, err.Error()),
		))

	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, customMessage(err, "Bad request")),
		))

	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}

// customMessage prefers the message of a CustomError in err's chain
func customMessage(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
