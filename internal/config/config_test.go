package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "MONGO_URI", "STRICT_STATUS_CODES", "LOG_LEVEL", "LOG_FORMAT",
		"SHUTDOWN_TIMEOUT", "OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME", "OTEL_TRACES_STDOUT",
	} {
		t.Setenv(key, "")
	}
	// Run from an empty directory so no stray .env is picked up.
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, DefaultDatabaseURL, cfg.DatabaseURL)
	assert.False(t, cfg.StrictStatus)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "exercise-tracker", cfg.Telemetry.ServiceName)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "redis://localhost:6379/0")
	t.Setenv("STRICT_STATUS_CODES", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "redis://localhost:6379/0", cfg.DatabaseURL)
	assert.True(t, cfg.StrictStatus)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "collector:4317", cfg.Telemetry.Endpoint)
}

func TestLoad_MongoURIFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017/fcc")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017/fcc", cfg.DatabaseURL)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")

	_, err := Load()
	assert.Error(t, err)
}
