package config

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server   ServerConfig
	App      AppConfig
	Auth     AuthConfig
	Sessions SessionsConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	AllowedOrigins  []string      `envconfig:"SERVER_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"inventory-api"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	Debug       bool   `envconfig:"APP_DEBUG" default:"false"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret      string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL       time.Duration `envconfig:"JWT_TTL" default:"1h"`
	Issuer         string        `envconfig:"JWT_ISSUER" default:"inventory-api"`
	CookieName     string        `envconfig:"AUTH_COOKIE_NAME" default:"token"`
	CookieSecure   bool          `envconfig:"AUTH_COOKIE_SECURE" default:"false"`
	CookieSameSite string        `envconfig:"AUTH_COOKIE_SAMESITE" default:"strict"`
	BcryptCost     int           `envconfig:"BCRYPT_COST" default:"10"`
}

// SameSite maps the configured mode onto http.SameSite. Unknown values mean strict.
func (a *AuthConfig) SameSite() http.SameSite {
	switch strings.ToLower(a.CookieSameSite) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}

// SessionsConfig holds settings for the token revocation store.
type SessionsConfig struct {
	Type      string `envconfig:"SESSION_STORE_TYPE" default:"memory"` // memory or redis
	KeyPrefix string `envconfig:"SESSION_KEY_PREFIX" default:"inventory:revoked"`

	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// DatabaseConfig holds relational store settings.
type DatabaseConfig struct {
	Type string `envconfig:"DB_TYPE" default:"sqlite"` // sqlite, postgres, or mysql
	Path string `envconfig:"DB_PATH" default:"./data/inventory.db"`
	// PostgreSQL / MySQL settings
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"0"`
	Name     string `envconfig:"DB_NAME" default:"inventory"`
	User     string `envconfig:"DB_USER" default:""`
	Password string `envconfig:"DB_PASS" default:""`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	MaxOpenConns int  `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	AutoMigrate  bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// DSN returns the data source name for the configured database type.
func (d *DatabaseConfig) DSN() string {
	switch strings.ToLower(d.Type) {
	case "postgres", "postgresql":
		port, user := d.Port, d.User
		if port == 0 {
			port = 5432
		}
		if user == "" {
			user = "postgres"
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(user, d.Password),
			Host:     fmt.Sprintf("%s:%d", d.Host, port),
			Path:     d.Name,
			RawQuery: "sslmode=" + d.SSLMode,
		}
		return u.String()
	case "mysql", "mariadb":
		port, user := d.Port, d.User
		if port == 0 {
			port = 3306
		}
		if user == "" {
			user = "root"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC",
			user, d.Password, d.Host, port, d.Name)
	default:
		return "file:" + d.Path +
			"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_time_format=sqlite"
	}
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RedisAddress returns the Redis address in host:port format.
func (c *SessionsConfig) RedisAddress() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// IsDevelopment returns true if running in development mode.
func (a *AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if len(cfg.Auth.JWTSecret) < 16 {
		return nil, fmt.Errorf("failed to load config: JWT_SECRET must be at least 16 characters")
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
