package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/etwmath/internal/domain"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Empty(t, cfg.LogLevel, "Level comes from the logger preset")
		assert.Empty(t, cfg.LogFormat, "Format comes from the logger preset")
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "etwcalc", cfg.ServiceName)
		assert.Equal(t, 5.5, cfg.OptimalRatio)
		assert.False(t, cfg.UseDecimals)
		assert.Equal(t, "csv", cfg.TableFormat)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("SERVICE_NAME", "etw-bot")
		t.Setenv("VERSION", "1.2.3")
		t.Setenv("OPTIMAL_RATIO", "4.25")
		t.Setenv("USE_DECIMALS", "true")
		t.Setenv("TABLE_FORMAT", "YAML")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel, "Level is normalised to lower case")
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "etw-bot", cfg.ServiceName)
		assert.Equal(t, "1.2.3", cfg.Version)
		assert.Equal(t, 4.25, cfg.OptimalRatio)
		assert.True(t, cfg.UseDecimals)
		assert.Equal(t, "yaml", cfg.TableFormat)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("returns error for unparsable OPTIMAL_RATIO", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("OPTIMAL_RATIO", "five")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid OPTIMAL_RATIO")
	})

	t.Run("returns error for invalid USE_DECIMALS", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("USE_DECIMALS", "maybe")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid USE_DECIMALS")
	})

	t.Run("rejects values outside the allowed set", func(t *testing.T) {
		testCases := []struct {
			name  string
			key   string
			value string
		}{
			{"zero ratio", "OPTIMAL_RATIO", "0"},
			{"negative ratio", "OPTIMAL_RATIO", "-5.5"},
			{"infinite ratio", "OPTIMAL_RATIO", "Inf"},
			{"unknown log level", "LOG_LEVEL", "verbose"},
			{"unknown log format", "LOG_FORMAT", "xml"},
			{"unknown table format", "TABLE_FORMAT", "xlsx"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(tc.key, tc.value)

				cfg, err := Load()

				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Contains(t, err.Error(), "invalid configuration")
			})
		}
	})
}

// TestEnvHelpers tests the typed environment helpers
func TestEnvHelpers(t *testing.T) {
	t.Run("empty value falls back to default", func(t *testing.T) {
		t.Setenv("TEST_FLOAT_VAR", "")
		v, err := getEnvAsFloat("TEST_FLOAT_VAR", 1.5)
		require.NoError(t, err)
		assert.Equal(t, 1.5, v)

		t.Setenv("TEST_BOOL_VAR", "")
		b, err := getEnvAsBool("TEST_BOOL_VAR", true)
		require.NoError(t, err)
		assert.True(t, b)
	})

	t.Run("parses set values", func(t *testing.T) {
		t.Setenv("TEST_FLOAT_VAR", "42.5")
		v, err := getEnvAsFloat("TEST_FLOAT_VAR", 1.5)
		require.NoError(t, err)
		assert.Equal(t, 42.5, v)

		t.Setenv("TEST_BOOL_VAR", "0")
		b, err := getEnvAsBool("TEST_BOOL_VAR", true)
		require.NoError(t, err)
		assert.False(t, b)
	})
}

// Helper function to clear environment variables
func clearEnvVars(t *testing.T) {
	t.Helper()

	// Clear all config-related env vars to ensure clean test state
	envVars := []string{
		EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion,
		EnvOptimalRatio, EnvUseDecimals, EnvTableFormat,
	}

	for _, key := range envVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
