package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/memitrading/memi/internal/pkg/validation"
)

// BindJSON binds and validates a JSON body. On failure it writes the 400
// response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	return bindWith(c, obj, binding.JSON)
}

// Bind binds a JSON or multipart/form body depending on Content-Type
func Bind(c *gin.Context, obj interface{}) bool {
	return bindWith(c, obj, binding.Default(c.Request.Method, c.ContentType()))
}

func bindWith(c *gin.Context, obj interface{}, b binding.Binding) bool {
	validation.Register()
	if err := c.ShouldBindWith(obj, b); err != nil {
		HandleAPIError(c, validation.FromBindingError(err))
		return false
	}
	return true
}
