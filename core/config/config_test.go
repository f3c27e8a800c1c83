package config_test

import (
	"testing"

	"listing-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "data/listings.json", cfg.Store.Path)
	assert.Equal(t, 10, cfg.Notify.TimeoutSeconds)
	assert.Equal(t, 30, cfg.Platform.TimeoutSeconds)
	assert.Equal(t, "localhost:6379", cfg.Queue.RedisAddr)
	assert.Equal(t, "mock", cfg.AI.Provider)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("STORE_PATH", "/tmp/listings.json")
	t.Setenv("PLATFORM_AIRBNB_API_KEY", "key-123")
	t.Setenv("NOTIFY_BASE_URL", "http://n8n:5678/webhook")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "/tmp/listings.json", cfg.Store.Path)
	assert.Equal(t, "key-123", cfg.Platform.AirbnbAPIKey)
	assert.Equal(t, "http://n8n:5678/webhook", cfg.Notify.BaseURL)
}
