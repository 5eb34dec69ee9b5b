package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type contextKey string

const loggerKey contextKey = "logger"

// Setup configures the global slog logger based on environment
func Setup(env string) *slog.Logger {
	logger := slog.New(newHandler(env, os.Stdout))
	slog.SetDefault(logger)

	slog.Info("Logger 초기화", "env", env)
	return logger
}

func newHandler(env string, w io.Writer) slog.Handler {
	switch env {
	case "production", "prod":
		// Production: JSON format, info level
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	case "local", "dev", "development":
		// Development: Text format, debug level
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	case "test":
		return slog.NewTextHandler(io.Discard, nil)
	default:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
}

// WithLogger returns a new context with the logger attached
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger from context, or default logger if not found
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
