package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/memitrading/memi/internal/app/controllers"
	appMigrations "github.com/memitrading/memi/internal/app/migrations"
	appRepos "github.com/memitrading/memi/internal/app/repositories"
	appRoutes "github.com/memitrading/memi/internal/app/routes"
	appServices "github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/config"
	"github.com/memitrading/memi/internal/db"
	appMiddleware "github.com/memitrading/memi/internal/middleware"
	pkgAuth "github.com/memitrading/memi/internal/pkg/auth"
	"github.com/memitrading/memi/internal/pkg/filestorage"
	"github.com/memitrading/memi/internal/pkg/helpers"
	"github.com/memitrading/memi/internal/pkg/logger"
	"github.com/memitrading/memi/internal/pkg/validation"
	"github.com/memitrading/memi/internal/seed"
	sqlMigrations "github.com/memitrading/memi/migrations"
)

// DefaultConfigPath is read when no path is given
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	Uploader       *filestorage.Uploader
	Metrics        *appMiddleware.Metrics
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.LogPretty(),
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Str("environment", cfg.Server.Environment).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens the shared connection pool
func ConnectDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Int32("maxConns", database.Pool.Config().MaxConns).Msg("Database connection successfully established.")
	return database.Pool, nil
}

// SetupDatabase connects and applies the embedded migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	dbPool, err := ConnectDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(dbPool, sqlMigrations.FS).Up(ctx)
	if err != nil {
		lgr.Error().Err(err).Int("applied", applied).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// NewFileStorage selects the upload driver configured in upload.driver
func NewFileStorage(ctx context.Context, cfg *config.Config) (filestorage.Storage, error) {
	switch cfg.Upload.Driver {
	case config.UploadDriverS3:
		return filestorage.NewS3Storage(ctx, filestorage.S3Config{
			Bucket:    cfg.Upload.S3.Bucket,
			Region:    cfg.Upload.S3.Region,
			AccessKey: cfg.Upload.S3.AccessKey,
			SecretKey: cfg.Upload.S3.SecretKey,
			BaseURL:   cfg.Upload.S3.BaseURL,
			KeyPrefix: "uploads",
		})
	default:
		return filestorage.NewLocalStorage(cfg.Upload.Dir, config.UploadURLPrefix)
	}
}

// NewJWTService builds the token service from configuration
func NewJWTService(cfg *config.Config) *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.ExpiresIn, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, dbPool db.TxBeginner, lgr zerolog.Logger) (*Dependencies, error) {
	storage, err := NewFileStorage(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Str("driver", cfg.Upload.Driver).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps := &Dependencies{
		Logger:     lgr,
		Repos:      appRepos.NewRepositories(dbPool),
		JWTService: NewJWTService(cfg),
		Uploader:   filestorage.NewUploader(storage, cfg.Upload.MaxFileSize),
		Metrics:    appMiddleware.NewMetrics(),
	}

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Services.Auth)
	deps.Controllers = BuildControllers(cfg, deps.Services, deps.Uploader)

	return deps, nil
}

// BuildControllers creates one controller per route group
func BuildControllers(cfg *config.Config, svc *appServices.Services, uploader *filestorage.Uploader) *appRoutes.Controllers {
	return &appRoutes.Controllers{
		Auth:        appControllers.NewAuthController(svc.Auth),
		Health:      appControllers.NewHealthController(cfg.Server.Environment),
		Service:     appControllers.NewServiceController(svc.Service, uploader),
		Site:        appControllers.NewSiteController(svc.About, svc.Stat, svc.AppFeature, svc.AppShowcase, uploader),
		Course:      appControllers.NewCourseController(svc.Course, uploader),
		News:        appControllers.NewNewsController(svc.News, uploader),
		Event:       appControllers.NewEventController(svc.Event, uploader),
		Team:        appControllers.NewTeamController(svc.Team, uploader),
		Faq:         appControllers.NewFaqController(svc.Faq),
		Testimonial: appControllers.NewTestimonialController(svc.Testimonial, uploader),
		Enrollment:  appControllers.NewEnrollmentController(svc.Enrollment),
		Dashboard:   appControllers.NewDashboardController(svc.Dashboard),
	}
}

// SeedDefaults ensures the admin account and the default site content exist.
// Failures are logged and do not stop the startup.
func SeedDefaults(ctx context.Context, cfg *config.Config, deps *Dependencies) {
	err := seed.CreateDefaultData(ctx, seed.Sources{
		Auth:  deps.Services.Auth,
		About: deps.Repos.AboutRepository,
		Stats: deps.Repos.StatRepository,
	}, seed.AdminAccount{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, deps.Logger)
	if err != nil {
		deps.Logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.Server.Environment == config.EnvTest {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	validation.Register()

	router := gin.New()
	router.MaxMultipartMemory = deps.Uploader.MaxSize()
	// Rate limiting keys on ClientIP, so forwarded headers count only from known proxies
	if err := router.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		deps.Logger.Error().Err(err).Msg("Invalid trusted proxies, ignoring forwarded headers")
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(),
		deps.Metrics.Middleware(),
		appMiddleware.SecureHeaders(cfg.IsProduction()),
		appMiddleware.CORS(cfg.Server.CORSOrigin),
		appMiddleware.RateLimit(cfg.Server.RateLimit, helpers.ParseDuration(cfg.Server.RateLimitWindow, 5*time.Minute)),
		appMiddleware.Compression(),
	)

	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	if cfg.Upload.Driver != config.UploadDriverS3 {
		setupStaticFileServing(router, cfg.Upload.Dir, deps.Logger)
	}

	return router
}

// setupStaticFileServing serves the local upload directory at /uploads
func setupStaticFileServing(router *gin.Engine, uploadPath string, lgr zerolog.Logger) {
	if err := os.MkdirAll(uploadPath, 0o755); err != nil {
		lgr.Error().Err(err).Str("path", uploadPath).Msg("Failed to create uploads directory")
		return
	}
	router.Static(config.UploadURLPrefix, uploadPath)
	lgr.Info().Str("path", uploadPath).Str("prefix", config.UploadURLPrefix).Msg("Static file serving configured for uploads directory")
}

// ShutdownTimeout returns the configured grace period for in-flight requests
func ShutdownTimeout(cfg *config.Config) time.Duration {
	return helpers.ParseDuration(strings.TrimSpace(cfg.Server.ShutdownTimeout), 10*time.Second)
}
