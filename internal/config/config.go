package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	SnapshotPath           string   `env:"SNAPSHOT_PATH" validate:"required_without=SnapshotURL,excluded_with=SnapshotURL"`
	SnapshotURL            string   `env:"SNAPSHOT_URL" validate:"omitempty,url"`
	ADXStructuralThreshold float64  `env:"ADX_STRUCTURAL_THRESHOLD" default:"25" validate:"gte=0"`
	Timeframes             []string `env:"TIMEFRAMES" default:"[\"M1\",\"M5\",\"M15\",\"M30\",\"H1\",\"H4\",\"D1\",\"W1\",\"MN1\"]" validate:"dive,required"`
	OutputFormat           string   `env:"OUTPUT_FORMAT" default:"table" validate:"oneof=table json"`
	LogLevel               string   `env:"LOG_LEVEL" default:"info"`
	RequestTimeout         int      `env:"REQUEST_TIMEOUT" default:"30" validate:"gt=0"` // seconds
	RequestsPerSec         int      `env:"REQUESTS_PER_SEC" default:"5" validate:"gt=0"`
	MaxRetries             int      `env:"MAX_RETRIES" default:"3" validate:"gte=0"`
}

var validate = validator.New()

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}

	cfg.SnapshotPath = getEnvWithDefault("SNAPSHOT_PATH", cfg.SnapshotPath)
	cfg.SnapshotURL = getEnvWithDefault("SNAPSHOT_URL", cfg.SnapshotURL)
	cfg.ADXStructuralThreshold = getEnvFloatWithDefault("ADX_STRUCTURAL_THRESHOLD", cfg.ADXStructuralThreshold)
	cfg.Timeframes = getEnvListWithDefault("TIMEFRAMES", cfg.Timeframes)
	cfg.OutputFormat = strings.ToLower(getEnvWithDefault("OUTPUT_FORMAT", cfg.OutputFormat))
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.RequestsPerSec = getEnvIntWithDefault("REQUESTS_PER_SEC", cfg.RequestsPerSec)
	cfg.MaxRetries = getEnvIntWithDefault("MAX_RETRIES", cfg.MaxRetries)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints; exactly one snapshot source must be set.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvListWithDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
