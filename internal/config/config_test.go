package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "edupet-engine", cfg.ServiceName)
		assert.Equal(t, "edupet.db", cfg.DBPath)
		assert.Equal(t, 60*time.Second, cfg.ResetInterval)
		assert.Empty(t, cfg.RewardsFile)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("DB_PATH", "/data/edupet.db")
		t.Setenv("RESET_INTERVAL", "5m")
		t.Setenv("REWARDS_FILE", "/etc/edupet/rewards.toml")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "/data/edupet.db", cfg.DBPath)
		assert.Equal(t, 5*time.Minute, cfg.ResetInterval)
		assert.Equal(t, "/etc/edupet/rewards.toml", cfg.RewardsFile)
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("rejects out-of-range port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "70000")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("returns error for invalid RESET_INTERVAL", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("RESET_INTERVAL", "soon")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid RESET_INTERVAL")
	})

	t.Run("rejects sub-second reset interval", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("RESET_INTERVAL", "500ms")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("rejects unknown environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENVIRONMENT", "purgatory")

		_, err := Load()

		assert.Error(t, err)
	})
}

// Helper function to clear environment variables
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT",
		"SERVICE_NAME", "VERSION", "ENVIRONMENT",
		"DB_PATH", "RESET_INTERVAL", "REWARDS_FILE",
	}

	for _, key := range envVars {
		os.Unsetenv(key)
	}
}
