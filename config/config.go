package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all configuration for the castle
type Config struct {
	Log LogConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  slog.Level
	Format string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Log: LogConfig{
			Format: strings.ToLower(getEnvOrDefault("CASTLE_LOG_FORMAT", FormatText)),
		},
	}

	if err := cfg.Log.Level.UnmarshalText([]byte(getEnvOrDefault("CASTLE_LOG_LEVEL", "warn"))); err != nil {
		return nil, fmt.Errorf("CASTLE_LOG_LEVEL: %w", err)
	}
	if cfg.Log.Format != FormatText && cfg.Log.Format != FormatJSON {
		return nil, fmt.Errorf("CASTLE_LOG_FORMAT must be %q or %q, got %q", FormatText, FormatJSON, cfg.Log.Format)
	}

	return cfg, nil
}

// NewLogger builds the logger described by c, writing to w.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level}
	if c.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
