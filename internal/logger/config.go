package logger

import (
	"log/slog"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	Environment string
	AddSource   bool // Include source file/line in logs
}

// ProductionConfig returns quiet JSON logging for scripted runs
func ProductionConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentProduction,
		AddSource:   false,
	}
}

// DevelopmentConfig returns verbose text logging with source locations
func DevelopmentConfig() Config {
	return Config{
		Level:       LogLevelDebug,
		Format:      LogFormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentDev,
		AddSource:   true,
	}
}

// ForEnvironment picks the development preset for "dev" and "development"
// and the production preset for anything else
func ForEnvironment(environment string) Config {
	cfg := ProductionConfig()
	switch strings.ToLower(environment) {
	case EnvironmentDev, EnvironmentDevelopment:
		cfg = DevelopmentConfig()
	}
	if environment != "" {
		cfg.Environment = environment
	}
	return cfg
}

// WithOverrides replaces preset fields with every non-empty value given
func (c Config) WithOverrides(level, format, serviceName, version string) Config {
	if level != "" {
		c.Level = level
	}
	if format != "" {
		c.Format = format
	}
	if serviceName != "" {
		c.ServiceName = serviceName
	}
	if version != "" {
		c.Version = version
	}
	return c
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// BaseAttributes returns common attributes to add to all logs
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
