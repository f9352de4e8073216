package app

import (
	"io"
	"log/slog"
)

// newLogger creates a slog.Logger writing diagnostics to outW. Each step of
// verbosity lowers the threshold by one slog level, down to debug. It does
// not set the global logger.
func newLogger(levelStr, formatStr string, verbosity int, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	level -= slog.Level(4 * verbosity)
	if level < slog.LevelDebug {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
