package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
)

const (
	ENV_KEY_APP_ENV   = "APP_ENV"
	ENV_KEY_PORT      = "PORT"
	ENV_KEY_LOG_LEVEL = "LOG_LEVEL"

	ENV_KEY_DB_DRIVER               = "DB_DRIVER"
	ENV_KEY_DB_SQLITE_PATH          = "DB_SQLITE_PATH"
	ENV_KEY_DB_HOST                 = "DB_HOST"
	ENV_KEY_DB_PORT                 = "DB_PORT"
	ENV_KEY_DB_USER                 = "DB_USER"
	ENV_KEY_DB_PASSWORD             = "DB_PASSWORD"
	ENV_KEY_DB_DATABASE             = "DB_DATABASE"
	ENV_KEY_DB_SSLMODE              = "DB_SSLMODE"
	ENV_KEY_DB_MAX_OPEN_CONNECTIONS = "DB_MAX_OPEN_CONNECTIONS"

	ENV_KEY_STATIC_DIR = "STATIC_DIR"
	ENV_KEY_RATE_LIMIT = "RATE_LIMIT"

	ENV_KEY_OTEL_ENDPOINT     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	ENV_KEY_OTEL_SERVICE_NAME = "OTEL_SERVICE_NAME"
)

const (
	DB_DRIVER_SQLITE   = "sqlite"
	DB_DRIVER_POSTGRES = "postgres"
)

type Config struct {
	AppEnv   string `validate:"omitempty"`
	Port     int    `validate:"gte=1,lte=65535"`
	LogLevel string `validate:"oneof=DEBUG INFO WARN ERROR"`

	DB DBConfig

	// StaticDir is served at / when it exists on disk.
	StaticDir string
	// RateLimit is the per-IP request rate in requests/second. 0 disables limiting.
	RateLimit float64 `validate:"gte=0"`

	OtelEndpoint    string
	OtelServiceName string `validate:"required"`
}

type DBConfig struct {
	Driver             string `validate:"oneof=sqlite postgres"`
	SQLitePath         string `validate:"required_if=Driver sqlite"`
	Host               string `validate:"required_if=Driver postgres"`
	Port               string `validate:"required_if=Driver postgres"`
	User               string
	Password           string
	Database           string `validate:"required_if=Driver postgres"`
	SSLMode            string
	MaxOpenConnections int `validate:"gte=0"`
}

func (c Config) IsLocal() bool {
	return c.AppEnv == "local"
}

func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first by godotenv.
func Load() (Config, error) {
	cfg := Config{
		AppEnv:   os.Getenv(ENV_KEY_APP_ENV),
		Port:     8080,
		LogLevel: getenv(ENV_KEY_LOG_LEVEL, "INFO"),
		DB: DBConfig{
			Driver:     getenv(ENV_KEY_DB_DRIVER, DB_DRIVER_SQLITE),
			SQLitePath: getenv(ENV_KEY_DB_SQLITE_PATH, "database.sqlite"),
			Host:       os.Getenv(ENV_KEY_DB_HOST),
			Port:       getenv(ENV_KEY_DB_PORT, "5432"),
			User:       os.Getenv(ENV_KEY_DB_USER),
			Password:   os.Getenv(ENV_KEY_DB_PASSWORD),
			Database:   os.Getenv(ENV_KEY_DB_DATABASE),
			SSLMode:    getenv(ENV_KEY_DB_SSLMODE, "disable"),
		},
		StaticDir:       getenv(ENV_KEY_STATIC_DIR, "dist"),
		OtelEndpoint:    os.Getenv(ENV_KEY_OTEL_ENDPOINT),
		OtelServiceName: getenv(ENV_KEY_OTEL_SERVICE_NAME, "catalog-api"),
	}

	if p := os.Getenv(ENV_KEY_PORT); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", ENV_KEY_PORT, p, err)
		}
		cfg.Port = port
	}

	if m := os.Getenv(ENV_KEY_DB_MAX_OPEN_CONNECTIONS); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", ENV_KEY_DB_MAX_OPEN_CONNECTIONS, m, err)
		}
		cfg.DB.MaxOpenConnections = n
	}

	if r := os.Getenv(ENV_KEY_RATE_LIMIT); r != "" {
		n, err := strconv.ParseFloat(r, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", ENV_KEY_RATE_LIMIT, r, err)
		}
		cfg.RateLimit = n
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config validation error: %w", err)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
