package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		ENV_KEY_PORT, ENV_KEY_LOG_LEVEL, ENV_KEY_DB_DRIVER, ENV_KEY_DB_SQLITE_PATH,
		ENV_KEY_DB_MAX_OPEN_CONNECTIONS, ENV_KEY_RATE_LIMIT, ENV_KEY_STATIC_DIR,
		ENV_KEY_OTEL_SERVICE_NAME,
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, DB_DRIVER_SQLITE, cfg.DB.Driver)
	assert.Equal(t, "database.sqlite", cfg.DB.SQLitePath)
	assert.Equal(t, "dist", cfg.StaticDir)
	assert.Equal(t, "catalog-api", cfg.OtelServiceName)
	assert.Zero(t, cfg.RateLimit)
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv(ENV_KEY_DB_DRIVER, DB_DRIVER_POSTGRES)
	t.Setenv(ENV_KEY_DB_HOST, "db")
	t.Setenv(ENV_KEY_DB_PORT, "6543")
	t.Setenv(ENV_KEY_DB_DATABASE, "catalog")
	t.Setenv(ENV_KEY_DB_MAX_OPEN_CONNECTIONS, "12")
	t.Setenv(ENV_KEY_PORT, "9090")
	t.Setenv(ENV_KEY_RATE_LIMIT, "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, "6543", cfg.DB.Port)
	assert.Equal(t, "catalog", cfg.DB.Database)
	assert.Equal(t, 12, cfg.DB.MaxOpenConnections)
	assert.Equal(t, 9090, cfg.Port)
	assert.InDelta(t, 2.5, cfg.RateLimit, 0.0001)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port not a number", map[string]string{ENV_KEY_PORT: "http"}},
		{"port out of range", map[string]string{ENV_KEY_PORT: "70000"}},
		{"unknown driver", map[string]string{ENV_KEY_DB_DRIVER: "mysql"}},
		{"unknown log level", map[string]string{ENV_KEY_LOG_LEVEL: "TRACE"}},
		{"postgres without host", map[string]string{ENV_KEY_DB_DRIVER: DB_DRIVER_POSTGRES, ENV_KEY_DB_HOST: "", ENV_KEY_DB_DATABASE: "catalog"}},
		{"negative rate limit", map[string]string{ENV_KEY_RATE_LIMIT: "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{LogLevel: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "INFO"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "WARN"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "ERROR"}.SlogLevel())
}
