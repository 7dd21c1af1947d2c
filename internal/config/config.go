package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment names accepted for server.environment
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Upload drivers
const (
	UploadDriverLocal = "local"
	UploadDriverS3    = "s3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"PORT"`
		Environment     string `yaml:"environment" env:"NODE_ENV"`
		CORSOrigin      string `yaml:"cors_origin" env:"CORS_ORIGIN"`
		RateLimit       int64  `yaml:"rate_limit" env:"RATE_LIMIT"`
		RateLimitWindow string `yaml:"rate_limit_window" env:"RATE_LIMIT_WINDOW"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
		// Comma separated IPs or CIDRs allowed to set X-Forwarded-For.
		// Empty means client IPs come from the connection only.
		TrustedProxies string `yaml:"trusted_proxies" env:"TRUSTED_PROXIES"`
	} `yaml:"server"`

	Database struct {
		URL             string `yaml:"url" env:"DATABASE_URL"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxConns        int    `yaml:"max_conns" env:"DB_MAX_CONNS"`
		MinConns        int    `yaml:"min_conns" env:"DB_MIN_CONNS"`
		MaxConnIdleTime string `yaml:"max_conn_idle_time" env:"DB_MAX_CONN_IDLE_TIME"`
		MaxConnLifetime string `yaml:"max_conn_lifetime" env:"DB_MAX_CONN_LIFETIME"`
		ConnectTimeout  string `yaml:"connect_timeout" env:"DB_CONNECT_TIMEOUT"`
	} `yaml:"database"`

	JWT struct {
		Secret    string `yaml:"secret" env:"JWT_SECRET"`
		ExpiresIn string `yaml:"expires_in" env:"JWT_EXPIRES_IN"`
		Issuer    string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Upload struct {
		Driver      string `yaml:"driver" env:"UPLOAD_DRIVER"`
		Dir         string `yaml:"dir" env:"UPLOAD_DIR"`
		MaxFileSize int64  `yaml:"max_file_size" env:"MAX_FILE_SIZE"`
		S3          struct {
			Bucket    string `yaml:"bucket" env:"S3_BUCKET"`
			Region    string `yaml:"region" env:"S3_REGION"`
			AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
			SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
			BaseURL   string `yaml:"base_url" env:"S3_BASE_URL"`
		} `yaml:"s3"`
	} `yaml:"upload"`

	Session struct {
		Secret string `yaml:"secret" env:"SESSION_SECRET"`
		MaxAge string `yaml:"max_age" env:"SESSION_MAX_AGE"`
	} `yaml:"session"`

	Admin struct {
		Username string `yaml:"username" env:"ADMIN_USERNAME"`
		Email    string `yaml:"email" env:"ADMIN_EMAIL"`
		Password string `yaml:"password" env:"ADMIN_PASSWORD"`
	} `yaml:"admin"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from an optional .env file, a YAML file and
// environment variables, in increasing order of precedence.
func LoadConfig(configPath string) (*Config, error) {
	// godotenv never overrides variables already present in the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "3000"
	config.Server.Environment = EnvDevelopment
	config.Server.CORSOrigin = "*"
	config.Server.RateLimit = 2000
	config.Server.RateLimitWindow = "5m"
	config.Server.ShutdownTimeout = "10s"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.DBName = "memi"
	config.Database.SSLMode = "disable"
	config.Database.MaxConns = 20
	config.Database.MinConns = 0
	config.Database.MaxConnIdleTime = "30s"
	config.Database.MaxConnLifetime = "1h"
	config.Database.ConnectTimeout = "2s"

	config.JWT.ExpiresIn = "24h"
	config.JWT.Issuer = "memi-trading"

	config.Upload.Driver = UploadDriverLocal
	config.Upload.Dir = "uploads"
	config.Upload.MaxFileSize = 5 * 1024 * 1024
	config.Upload.S3.Region = "ap-southeast-1"

	config.Session.MaxAge = "24h"

	config.Admin.Username = "admin"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

var configValidator = validator.New()

// Validate ensures that the configuration is complete and well formed
func (c *Config) Validate() error {
	var errs []error

	switch c.Server.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		errs = append(errs, fmt.Errorf("server environment must be one of development, production, test (got %q)", c.Server.Environment))
	}

	if c.Database.URL == "" && c.Database.Host == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.Database.URL != "" {
		if u, err := url.Parse(c.Database.URL); err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
			errs = append(errs, errors.New("DATABASE_URL must be a postgres:// URL"))
		}
	}
	if c.Database.MaxConns <= 0 {
		errs = append(errs, errors.New("database max_conns must be positive"))
	}

	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.Session.Secret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required"))
	}

	if err := configValidator.Var(c.Admin.Email, "required,email"); err != nil {
		errs = append(errs, errors.New("ADMIN_EMAIL must be a valid email address"))
	}
	if len(c.Admin.Password) < 8 {
		errs = append(errs, errors.New("ADMIN_PASSWORD must be at least 8 characters"))
	}

	if c.Upload.MaxFileSize <= 0 {
		errs = append(errs, errors.New("MAX_FILE_SIZE must be positive"))
	}
	switch c.Upload.Driver {
	case UploadDriverLocal:
		if c.Upload.Dir == "" {
			errs = append(errs, errors.New("UPLOAD_DIR is required for the local upload driver"))
		}
	case UploadDriverS3:
		if c.Upload.S3.Bucket == "" {
			errs = append(errs, errors.New("S3_BUCKET is required for the s3 upload driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown upload driver %q", c.Upload.Driver))
	}

	for _, p := range c.TrustedProxyList() {
		if net.ParseIP(p) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(p); err != nil {
			errs = append(errs, fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", p))
		}
	}

	durations := map[string]string{
		"JWT_EXPIRES_IN":        c.JWT.ExpiresIn,
		"SESSION_MAX_AGE":       c.Session.MaxAge,
		"RATE_LIMIT_WINDOW":     c.Server.RateLimitWindow,
		"SHUTDOWN_TIMEOUT":      c.Server.ShutdownTimeout,
		"DB_MAX_CONN_IDLE_TIME": c.Database.MaxConnIdleTime,
		"DB_MAX_CONN_LIFETIME":  c.Database.MaxConnLifetime,
		"DB_CONNECT_TIMEOUT":    c.Database.ConnectTimeout,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s duration %q", name, value))
		}
	}

	return errors.Join(errs...)
}

// TrustedProxyList splits server.trusted_proxies. It returns nil when no
// proxy is trusted.
func (c *Config) TrustedProxyList() []string {
	var proxies []string
	for _, p := range strings.Split(c.Server.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	return proxies
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// GetPostgresConnectionString returns the postgres connection string, preferring DATABASE_URL
func (c *Config) GetPostgresConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Host + ":" + c.Database.Port,
		Path:     "/" + c.Database.DBName,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

// UploadURLPrefix is the public path under which locally stored uploads are served
const UploadURLPrefix = "/uploads"

// LogPretty reports whether logs should use the console writer
func (c *Config) LogPretty() bool {
	return strings.ToLower(c.Logging.Format) == "text"
}
