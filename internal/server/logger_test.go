package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"jobportal-auth/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONAndLevel(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: config.EnvironmentProduction},
		Log:    config.LogConfig{Level: "warn", Format: "json"},
	}

	var buf bytes.Buffer
	logger := newLogger(cfg, &buf)

	logger.Info("hidden")
	logger.Warn("visible", "user_id", "42")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "42", record["user_id"])
	assert.Equal(t, "jobportal-auth", record["service"])
}

func TestNewLogger_StackTraceInDevelopment(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: config.EnvironmentDevelopment},
		Log:    config.LogConfig{Level: "info", Format: "text"},
	}

	var buf bytes.Buffer
	newLogger(cfg, &buf).Error("failure")

	assert.Contains(t, buf.String(), "stack=")
}

func TestMultiHandler_FansOut(t *testing.T) {
	var first, second bytes.Buffer
	cfg := &config.Config{Log: config.LogConfig{Level: "info", Format: "text"}}

	a := newLogger(cfg, &first).Handler()
	b := newLogger(cfg, &second).Handler()

	logger := slog.New(NewMultiHandler(a, b))
	logger.Info("hello")

	assert.Contains(t, first.String(), "hello")
	assert.Contains(t, second.String(), "hello")
}
