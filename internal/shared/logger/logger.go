package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup configures the global slog logger based on environment
func Setup(env string) {
	SetupWriter(env, os.Stdout)
}

// SetupWriter is Setup with an explicit destination
func SetupWriter(env string, w io.Writer) {
	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	switch env {
	case "production", "prod":
		// Production: JSON format, info level
		handler = slog.NewJSONHandler(w, opts)
	case "local", "dev", "development":
		// Development: Text format, debug level
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))

	slog.Info("logger initialized", "env", env, "level", opts.Level.Level().String())
}
