// Package logger configures the process wide slog logger
package logger

import (
	"io"
	"log/slog"

	"github.com/KirkDiggler/ddb-importer/internal/config"
)

// Setup installs the default logger. Production writes JSON, everything
// else writes text.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
