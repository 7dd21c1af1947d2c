package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/memitrading/memi/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath  string // directory files are written to
	urlPrefix string // public path the directory is served under, e.g. /uploads
}

// NewLocalStorage creates a new LocalStorage instance and ensures basePath exists.
func NewLocalStorage(basePath, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath:  basePath,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
	}, nil
}

// BasePath returns the directory served as static files
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// Save writes the object under basePath and returns <urlPrefix>/<name>
func (ls *LocalStorage) Save(_ context.Context, obj Object) (string, error) {
	name := filepath.Base(obj.Name)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid file name %q", obj.Name)
	}
	dstPath := filepath.Join(ls.basePath, name)

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, obj.Body); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	fileURL := path.Join(ls.urlPrefix, name)
	logger.Debug().Str("saved_as", name).Str("url", fileURL).Msg("File saved")
	return fileURL, nil
}

// Delete removes a file by the URL returned from Save
func (ls *LocalStorage) Delete(_ context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}

	filename := path.Base(fileURL)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file path: %s", fileURL)
	}

	physicalPath := filepath.Join(ls.basePath, filename)
	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
