package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const runIDKey ctxKey = "runID"

// InitLogger installs the default logger writing to stderr
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stderr)
}

// InitLoggerWithWriter installs the default logger writing to w
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}

// GenerateRunID creates a new UUID identifying one CLI invocation.
func GenerateRunID() string {
	return uuid.NewString()
}

// WithRunID returns a new context containing the run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// GetRunID returns the run ID stored in ctx, or "" when absent.
func GetRunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// FromContext returns a logger that includes the run_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id := GetRunID(ctx); id != "" {
		return slog.Default().With(AttrKeyRunID, id)
	}
	return slog.Default()
}

// Debug logs through the default logger, for code that has no context
func Debug(msg string, args ...any) { slog.Default().Debug(msg, args...) }

// Warn logs through the default logger, for code that has no context
func Warn(msg string, args ...any) { slog.Default().Warn(msg, args...) }
