package filestorage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/logger"
)

// AllowedImageTypes maps accepted MIME types to the extension used when the
// client filename has none.
var AllowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

var imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true}

var unsafeFieldChars = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// Uploader validates uploaded images and hands them to a Storage backend
type Uploader struct {
	storage Storage
	maxSize int64
	now     func() time.Time
}

// NewUploader creates an Uploader with a per-file size limit in bytes
func NewUploader(storage Storage, maxSize int64) *Uploader {
	return &Uploader{
		storage: storage,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// MaxSize returns the per-file size limit in bytes
func (u *Uploader) MaxSize() int64 {
	return u.maxSize
}

// Validate checks size, declared Content-Type and sniffed content of fh.
// It never writes anything.
func (u *Uploader) Validate(field string, fh *multipart.FileHeader) error {
	_, err := u.inspect(field, fh)
	return err
}

// ValidateAll validates every file before any of them is stored
func (u *Uploader) ValidateAll(field string, files []*multipart.FileHeader) error {
	for _, fh := range files {
		if err := u.Validate(field, fh); err != nil {
			return err
		}
	}
	return nil
}

func (u *Uploader) inspect(field string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", apperrors.NewUploadError(field, "no file provided")
	}
	if fh.Size > u.maxSize {
		return "", apperrors.NewUploadError(field, "file too large: %d bytes exceeds the %d byte limit", fh.Size, u.maxSize)
	}

	declared, _, err := mime.ParseMediaType(fh.Header.Get("Content-Type"))
	if err != nil || !isAllowed(declared) {
		return "", apperrors.NewUploadError(field, "invalid file type: only JPEG, PNG and GIF images are allowed")
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	detected, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if !isAllowed(detected.String()) {
		return "", apperrors.NewUploadError(field, "invalid file content: %s is not an allowed image type", detected.String())
	}

	return detected.String(), nil
}

func isAllowed(contentType string) bool {
	_, ok := AllowedImageTypes[strings.ToLower(contentType)]
	return ok
}

// Store validates fh, writes it under a generated name and returns the public URL
func (u *Uploader) Store(ctx context.Context, field string, fh *multipart.FileHeader) (string, error) {
	contentType, err := u.inspect(field, fh)
	if err != nil {
		return "", err
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	name := u.FileName(field, fh.Filename, contentType)
	fileURL, err := u.storage.Save(ctx, Object{
		Name:        name,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        io.LimitReader(f, u.maxSize),
	})
	if err != nil {
		logger.Error().Err(err).Str("field", field).Str("filename", fh.Filename).Msg("Failed to store upload")
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	logger.Info().Str("field", field).Str("original", fh.Filename).Str("url", fileURL).Msg("Upload stored")
	return fileURL, nil
}

// StoreAll stores files in order after validating all of them. On a storage
// failure the files already written are removed.
func (u *Uploader) StoreAll(ctx context.Context, field string, files []*multipart.FileHeader) ([]string, error) {
	if err := u.ValidateAll(field, files); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		fileURL, err := u.Store(ctx, field, fh)
		if err != nil {
			u.Discard(ctx, urls...)
			return nil, err
		}
		urls = append(urls, fileURL)
	}
	return urls, nil
}

// Discard removes stored files whose database write did not happen
func (u *Uploader) Discard(ctx context.Context, fileURLs ...string) {
	for _, fileURL := range fileURLs {
		if fileURL == "" {
			continue
		}
		if err := u.storage.Delete(ctx, fileURL); err != nil {
			logger.Warn().Err(err).Str("url", fileURL).Msg("Failed to discard upload")
		}
	}
}

// FileName builds <field>-<unix millis>-<8 hex><ext>
func (u *Uploader) FileName(field, original, contentType string) string {
	field = unsafeFieldChars.ReplaceAllString(field, "")
	if field == "" {
		field = "file"
	}

	ext := strings.ToLower(filepath.Ext(original))
	if !imageExtensions[ext] {
		ext = AllowedImageTypes[contentType]
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s%s", field, u.now().UnixMilli(), suffix, ext)
}
