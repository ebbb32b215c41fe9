package main

import (
	"log/slog"

	"github.com/pterm/pterm"
)

// newLogger routes slog through the pterm logger at the configured level.
func newLogger(level string) *slog.Logger {
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level)))
	return slog.New(handler)
}

func ptermLevel(level string) pterm.LogLevel {
	switch level {
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}
