// Package logging configures the process-wide slog logger.
package logging

import (
	"log/slog"
	"os"

	"github.com/bkozlov/betsheet/internal/pkg/config"
)

// Setup builds a text logger at the configured level, tags it with the
// service name, and installs it as the slog default.
func Setup(cfg *config.LoggingConfig, serviceName string) *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil {
		switch cfg.Level {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("service", serviceName)
	slog.SetDefault(logger)

	return logger
}
