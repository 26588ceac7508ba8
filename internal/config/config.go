package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultDatabaseURL is used when neither DATABASE_URL nor MONGO_URI is set.
const DefaultDatabaseURL = "sqlite://exercise-tracker.db"

// Config holds everything the server reads from its environment.
type Config struct {
	Port            string
	DatabaseURL     string
	StrictStatus    bool
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	Telemetry       Telemetry
}

// Telemetry configures the OpenTelemetry SDK.
type Telemetry struct {
	Enabled      bool
	Endpoint     string
	ServiceName  string
	StdoutTraces bool
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// Load reads an optional .env file from the working directory and then the
// process environment. Environment variables win over .env values.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "3000")
	v.SetDefault("STRICT_STATUS_CODES", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SERVICE_NAME", "exercise-tracker")
	v.SetDefault("OTEL_TRACES_STDOUT", false)

	cfg := &Config{
		Port:            v.GetString("PORT"),
		DatabaseURL:     databaseURL(v),
		StrictStatus:    v.GetBool("STRICT_STATUS_CODES"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:       strings.ToLower(v.GetString("LOG_FORMAT")),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		Telemetry: Telemetry{
			Enabled:      v.GetBool("OTEL_ENABLED"),
			Endpoint:     v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName:  v.GetString("OTEL_SERVICE_NAME"),
			StdoutTraces: v.GetBool("OTEL_TRACES_STDOUT"),
		},
	}

	if cfg.Port == "" {
		return nil, errors.New("PORT must not be empty")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}
	return cfg, nil
}

func databaseURL(v *viper.Viper) string {
	if url := v.GetString("DATABASE_URL"); url != "" {
		return url
	}
	if url := v.GetString("MONGO_URI"); url != "" {
		return url
	}
	return DefaultDatabaseURL
}
