package app

import (
	"io"
	"log/slog"
)

// App owns one converter run: its validated configuration and its own
// diagnostic logger.
type App struct {
	logger *slog.Logger
	config *Config
}

// NewApp builds an App whose diagnostics go to logW. logW must not be the
// stream the result is printed on.
func NewApp(logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, cfg.Verbosity, logW)
	logger.Debug("Logger configured.", "level", cfg.LogLevel, "verbosity", cfg.Verbosity)

	return &App{
		logger: logger,
		config: cfg,
	}
}
