package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/pkg/logger"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// CORS allows the configured origins. "*" (or an empty value) allows any
// origin without credentials; cookies and auth headers need an explicit list.
func CORS(origins string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}

	var allowed []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed = append(allowed, o)
		}
	}

	if len(allowed) == 0 || (len(allowed) == 1 && allowed[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowed
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}

// SecureHeaders sets the usual hardening headers. TLS is terminated in front
// of the service, so no redirect happens here.
func SecureHeaders(production bool) gin.HandlerFunc {
	cfg := secure.Config{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; img-src 'self' data: https:; style-src 'self' 'unsafe-inline'; script-src 'self' 'unsafe-inline'",
		IsDevelopment:         !production,
	}
	if production {
		cfg.STSSeconds = 15552000
		cfg.STSIncludeSubdomains = true
	}
	return secure.New(cfg)
}

// Compression gzips responses, except the metrics endpoint
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"}))
}

// RateLimit limits each client IP to limit requests per window
func RateLimit(limit int64, window time.Duration) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: window,
		Limit:  limit,
	}
	instance := limiter.New(memory.NewStore(), rate)

	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.Warn().Str("clientIP", c.ClientIP()).Str("path", c.Request.URL.Path).Msg("Rate limit reached")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeRateLimited, "Too many requests, please try again later"),
			))
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			HandleAPIError(c, err)
			c.Abort()
		}),
	)
}
