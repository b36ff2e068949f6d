package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/osse101/etwmath/internal/validation"
)

// Config holds the calculator configuration
type Config struct {
	LogLevel    string `validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat   string `validate:"omitempty,oneof=text json"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// OptimalRatio is the size-level to multiplier ratio used when a command omits it
	OptimalRatio float64 `validate:"finite,gt=0"`
	// UseDecimals prints results with two decimal places
	UseDecimals bool
	// TableFormat is the default output of the table command
	TableFormat string `validate:"oneof=csv yaml"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, "")),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, "")),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		TableFormat: strings.ToLower(getEnv(EnvTableFormat, DefaultTableFormat)),
	}

	ratio, err := getEnvAsFloat(EnvOptimalRatio, DefaultOptimalRatio)
	if err != nil {
		return nil, err
	}
	cfg.OptimalRatio = ratio

	useDecimals, err := getEnvAsBool(EnvUseDecimals, false)
	if err != nil {
		return nil, err
	}
	cfg.UseDecimals = useDecimals

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether source locations should be logged
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}
