package config

import (
	"strings"
	"time"
)

// Config holds all application configuration in a structured way.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Media    MediaConfig
	Cache    CacheConfig
}

type AppConfig struct {
	Version            string
	Port               string
	Debug              bool
	BasePath           string
	BasicAuth          []string
	TrustedProxies     []string
	CorsAllowedOrigins []string
	// PerPage is the public catalog page size; AdminPerPage is the
	// default limit for dashboard listings.
	PerPage      int
	AdminPerPage int
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string // File path for SQLite, DB name for Postgres
}

type AdminConfig struct {
	// UserID is the single identity allowed to perform mutations.
	UserID string
}

type MediaConfig struct {
	APIURL   string
	APIToken string
}

type CacheConfig struct {
	Enabled         bool
	StaleWindow     time.Duration
	ValkeyEnabled   bool
	ValkeyAddress   string
	ValkeyPassword  string
	ValkeyDB        int
	ValkeyKeyPrefix string
}

// Global provides access to the loaded configuration globally.
var Global *Config

// LoadConfig builds the configuration from environment variables and defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Version:            getEnv("APP_VERSION", "dev"),
			Port:               getEnv("APP_PORT", "3000"),
			Debug:              getEnvBool("APP_DEBUG", false),
			BasePath:           getEnv("APP_BASE_PATH", ""),
			PerPage:            getEnvInt("PER_PAGE", 10),
			AdminPerPage:       getEnvInt("ADMIN_PER_PAGE", 100),
			TrustedProxies:     getEnvList("APP_TRUSTED_PROXIES"),
			CorsAllowedOrigins: getEnvList("APP_CORS_ALLOWED_ORIGINS"),
			BasicAuth:          getEnvList("APP_BASIC_AUTH"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "storages/bots.db"),
		},
		Admin: AdminConfig{
			UserID: getEnv("ADMIN_USER_ID", ""),
		},
		Media: MediaConfig{
			APIURL:   getEnv("MEDIA_API_URL", "https://api.uploadthing.com"),
			APIToken: getEnv("MEDIA_API_TOKEN", ""),
		},
		Cache: CacheConfig{
			Enabled:         getEnvBool("CACHE_ENABLED", true),
			StaleWindow:     time.Duration(getEnvInt("CACHE_STALE_SECONDS", 30)) * time.Second,
			ValkeyEnabled:   getEnvBool("VALKEY_ENABLED", false),
			ValkeyAddress:   getEnv("VALKEY_ADDRESS", "localhost:6379"),
			ValkeyPassword:  getEnv("VALKEY_PASSWORD", ""),
			ValkeyDB:        getEnvInt("VALKEY_DB", 0),
			ValkeyKeyPrefix: getEnv("VALKEY_KEY_PREFIX", "botarium"),
		},
	}

	if len(cfg.App.CorsAllowedOrigins) == 0 {
		cfg.App.CorsAllowedOrigins = []string{"*"}
	}

	cfg.App.BasePath = strings.TrimSuffix(cfg.App.BasePath, "/")

	Global = cfg
	return cfg, nil
}
