package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/pkg/apperrors"
)

// ParseIDParam reads a positive integer path parameter
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// IsMultipart reports whether the request body is multipart/form-data
func IsMultipart(c *gin.Context) bool {
	return c.ContentType() == "multipart/form-data"
}
