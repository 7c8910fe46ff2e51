package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port          int    `validate:"min=1,max=65535"`
	LogLevel      string `validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat     string `validate:"oneof=json text"`
	ServiceName   string `validate:"required"`
	Version       string
	Environment   string `validate:"oneof=dev development staging prod production test"`
	DBPath        string `validate:"required"`
	ResetInterval time.Duration `validate:"min=1s"`
	RewardsFile   string // optional TOML reward-table override
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "edupet-engine"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		DBPath:      getEnv("DB_PATH", "edupet.db"),
		RewardsFile: getEnv("REWARDS_FILE", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	intervalStr := getEnv("RESET_INTERVAL", "60s")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RESET_INTERVAL value: %w", err)
	}
	cfg.ResetInterval = interval

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
