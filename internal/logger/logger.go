package logger

import (
	"log/slog"
	"os"

	"github.com/linksound/wavekit/internal/config"
)

// Setup configures structured logging based on environment.
func Setup(cfg *config.Config) *slog.Logger {
	logLevel := slog.LevelInfo
	if cfg.Env != config.EnvProduction {
		logLevel = slog.LevelDebug
	}
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}

	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
