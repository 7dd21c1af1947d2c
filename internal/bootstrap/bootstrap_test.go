package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/memitrading/memi/internal/config"
	"github.com/memitrading/memi/internal/pkg/filestorage"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Environment = config.EnvTest
	cfg.Server.CORSOrigin = "http://localhost:5173"
	cfg.Server.RateLimit = 100
	cfg.Server.RateLimitWindow = "1m"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = "24h"
	cfg.Upload.Driver = config.UploadDriverLocal
	cfg.Upload.Dir = t.TempDir()
	cfg.Upload.MaxFileSize = 5 << 20
	return cfg
}

func TestNewFileStorageLocal(t *testing.T) {
	cfg := testConfig(t)

	storage, err := NewFileStorage(context.Background(), cfg)

	require.NoError(t, err)
	assert.IsType(t, &filestorage.LocalStorage{}, storage)
}

func TestNewJWTServiceUsesConfiguredExpiry(t *testing.T) {
	cfg := testConfig(t)
	cfg.JWT.ExpiresIn = "2h"

	_, expiresAt, err := NewJWTService(cfg).GenerateToken(1)

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiresAt, time.Minute)
}

func TestShutdownTimeout(t *testing.T) {
	cfg := testConfig(t)
	assert.Equal(t, 10*time.Second, ShutdownTimeout(cfg))

	cfg.Server.ShutdownTimeout = " 30s "
	assert.Equal(t, 30*time.Second, ShutdownTimeout(cfg))
}

func TestSetupRouter(t *testing.T) {
	cfg := testConfig(t)
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	deps, err := BuildDependencies(context.Background(), cfg, mock, zerolog.Nop())
	require.NoError(t, err)
	router := SetupRouter(cfg, deps)

	require.NoError(t, os.WriteFile(filepath.Join(cfg.Upload.Dir, "image-1.png"), []byte("png"), 0o644))

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	t.Run("health", func(t *testing.T) {
		w := get("/health")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"environment":"test"`)
	})

	t.Run("uploads are served", func(t *testing.T) {
		w := get(config.UploadURLPrefix + "/image-1.png")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "png", w.Body.String())
	})

	t.Run("admin requires token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get("/api/admin/metrics").Code)
	})

	t.Run("metrics", func(t *testing.T) {
		w := get("/metrics")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `memi_http_requests_total{method="GET",route="/health",status="200"} 1`)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetupRouterRateLimitsByConnection(t *testing.T) {
	tests := []struct {
		name    string
		proxies string
		want    []int
	}{
		{"forwarded header ignored by default", "", []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}},
		{"forwarded header honoured from trusted proxy", "192.0.2.0/24", []int{http.StatusOK, http.StatusOK, http.StatusOK}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Server.RateLimit = 2
			cfg.Server.TrustedProxies = tt.proxies
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			deps, err := BuildDependencies(context.Background(), cfg, mock, zerolog.Nop())
			require.NoError(t, err)
			router := SetupRouter(cfg, deps)

			for i, want := range tt.want {
				req := httptest.NewRequest(http.MethodGet, "/health", nil)
				req.RemoteAddr = "192.0.2.1:1234"
				req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				assert.Equal(t, want, w.Code, "request %d", i+1)
			}
		})
	}
}
