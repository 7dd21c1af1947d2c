// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/middleware"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/filestorage"
	"github.com/memitrading/memi/internal/pkg/helpers"
)

// imageField is the multipart field carrying an entity image
const imageField = "image"

// imageUploads stores the optional image of a multipart request
type imageUploads struct {
	uploader *filestorage.Uploader
}

// store validates and stores the file sent in field. It returns "" when the
// request carries no file. On failure the error response is already written.
func (u imageUploads) store(ctx *gin.Context, field string) (string, bool) {
	if !helpers.IsMultipart(ctx) {
		return "", true
	}

	fh, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", true
		}
		middleware.HandleAPIError(ctx, apperrors.NewUploadError(field, "failed to read upload: %v", err))
		return "", false
	}

	fileURL, err := u.uploader.Store(ctx.Request.Context(), field, fh)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return "", false
	}
	return fileURL, true
}

// storeAll stores every file sent under field, all or nothing
func (u imageUploads) storeAll(ctx *gin.Context, field string) ([]string, bool) {
	if !helpers.IsMultipart(ctx) {
		return nil, true
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewUploadError(field, "failed to read upload: %v", err))
		return nil, false
	}

	urls, err := u.uploader.StoreAll(ctx.Request.Context(), field, form.File[field])
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	return urls, true
}

// discard removes a stored file whose database write failed
func (u imageUploads) discard(ctx *gin.Context, fileURLs ...string) {
	u.uploader.Discard(ctx.Request.Context(), fileURLs...)
}

// idParam reads the :id path parameter, writing a 400 when it is invalid
func idParam(ctx *gin.Context) (int64, bool) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return 0, false
	}
	return id, true
}

func deleted(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: message})
}
