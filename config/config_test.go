package config

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CASTLE_LOG_LEVEL", "")
	t.Setenv("CASTLE_LOG_FORMAT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.Log.Level)
	assert.Equal(t, FormatText, cfg.Log.Format)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CASTLE_LOG_LEVEL", "debug")
	t.Setenv("CASTLE_LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("CASTLE_LOG_LEVEL", "loud")
	t.Setenv("CASTLE_LOG_FORMAT", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CASTLE_LOG_LEVEL", "info")
	t.Setenv("CASTLE_LOG_FORMAT", "scroll")
	_, err = Load()
	assert.Error(t, err)
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: slog.LevelInfo, Format: FormatJSON}.NewLogger(&buf)
	logger.Debug("hidden")
	logger.Info("room added", slog.String("label", "dungeon"))

	jsonassert.New(t).Assertf(buf.String(), `{"time":"<<PRESENCE>>","level":"INFO","msg":"room added","label":"dungeon"}`)
}
