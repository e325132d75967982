package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Wizard   WizardConfig
	Translit TranslitConfig
	App      AppConfig
	Log      LogConfig
}

// ServerConfig holds the HTTP listener configuration.
type ServerConfig struct {
	Addr           string
	TimeoutRead    time.Duration
	TimeoutWrite   time.Duration
	TimeoutIdle    time.Duration
	StaticDir      string
	DevFrontendURL string
	KeepaliveToken string
}

// DatabaseConfig selects the submission store. A Postgres URL wins over a
// SQLite path; with neither set the server keeps submissions in memory.
type DatabaseConfig struct {
	URL             string
	SQLitePath      string
	MigrationsDir   string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// WizardConfig holds assessment session tuning.
type WizardConfig struct {
	SessionTTL    time.Duration
	SweepInterval time.Duration
	SinkTimeout   time.Duration
}

// TranslitConfig points at the name transliteration collaborator. An empty
// URL disables it.
type TranslitConfig struct {
	URL     string
	Timeout time.Duration
}

// AppConfig holds general application configuration.
type AppConfig struct {
	Env       string
	JWTSecret string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first; already-set variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Addr:           getEnv("PARAKH_ADDR", ":8080"),
			TimeoutRead:    getDurationEnv("PARAKH_TIMEOUT_READ", 15*time.Second),
			TimeoutWrite:   getDurationEnv("PARAKH_TIMEOUT_WRITE", 30*time.Second),
			TimeoutIdle:    getDurationEnv("PARAKH_TIMEOUT_IDLE", 60*time.Second),
			StaticDir:      getEnv("PARAKH_STATIC_DIR", ""),
			DevFrontendURL: getEnv("PARAKH_DEV_FRONTEND_URL", ""),
			KeepaliveToken: getEnv("PARAKH_KEEPALIVE_TOKEN", ""),
		},
		Database: DatabaseConfig{
			URL:             getEnv("PARAKH_DATABASE_URL", ""),
			SQLitePath:      getEnv("PARAKH_SQLITE_PATH", ""),
			MigrationsDir:   getEnv("PARAKH_MIGRATIONS_DIR", ""),
			MaxOpenConns:    getIntEnv("PARAKH_DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntEnv("PARAKH_DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("PARAKH_DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Wizard: WizardConfig{
			SessionTTL:    getDurationEnv("PARAKH_SESSION_TTL", 45*time.Minute),
			SweepInterval: getDurationEnv("PARAKH_SWEEP_INTERVAL", 5*time.Minute),
			SinkTimeout:   getDurationEnv("PARAKH_SINK_TIMEOUT", 5*time.Second),
		},
		Translit: TranslitConfig{
			URL:     getEnv("PARAKH_TRANSLIT_URL", ""),
			Timeout: getDurationEnv("PARAKH_TRANSLIT_TIMEOUT", 2*time.Second),
		},
		App: AppConfig{
			Env:       getEnv("PARAKH_ENV", "development"),
			JWTSecret: getEnv("PARAKH_JWT_SECRET", ""),
		},
		Log: LogConfig{
			Level: getEnv("PARAKH_LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.App.Env == "production" {
		if c.App.JWTSecret == "" {
			return fmt.Errorf("PARAKH_JWT_SECRET is required in production")
		}
		if c.Server.KeepaliveToken == "" {
			return fmt.Errorf("PARAKH_KEEPALIVE_TOKEN is required in production")
		}
		if c.Database.URL == "" {
			return fmt.Errorf("PARAKH_DATABASE_URL is required in production")
		}
	}
	if c.Wizard.SessionTTL <= 0 {
		return fmt.Errorf("PARAKH_SESSION_TTL must be positive")
	}
	if c.Wizard.SweepInterval <= 0 {
		return fmt.Errorf("PARAKH_SWEEP_INTERVAL must be positive")
	}
	if c.Wizard.SinkTimeout <= 0 {
		return fmt.Errorf("PARAKH_SINK_TIMEOUT must be positive")
	}
	if c.Translit.Timeout <= 0 {
		return fmt.Errorf("PARAKH_TRANSLIT_TIMEOUT must be positive")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
