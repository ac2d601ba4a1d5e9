// Package logging configures the process-wide slog default logger.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// SetDefaultStructuredLogger installs a slog default logger that tags
// every record with the tool name and version. Debug wins over the
// LOG_LEVEL environment variable; jsonOut selects the JSON handler.
func SetDefaultStructuredLogger(name, version string, debug, jsonOut bool) {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOut {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler).With(
		slog.String("tool", name),
		slog.String("version", version),
	)
	slog.SetDefault(logger)
}
