package app

import (
	"context"

	"github.com/specialistvlad/tempconv/internal/convert"
	"github.com/specialistvlad/tempconv/internal/ctxlog"
)

// Run converts the configured value and returns it formatted to two
// decimals. It never prints the result itself.
func (a *App) Run(ctx context.Context) string {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	return convertValue(ctx, a.config)
}

func convertValue(ctx context.Context, cfg *Config) string {
	logger := ctxlog.FromContext(ctx)

	input := convert.InputUnit(cfg.To, cfg.From)
	if convert.Overridden(cfg.To, cfg.From) {
		logger.Debug("Output is Fahrenheit, reading input as Celsius.", "requested_from", cfg.From.String())
	}

	from, to := input.LongForm(), cfg.To.LongForm()
	result := convert.Convert(from, to, cfg.Value)
	logger.Info("Converted.", "from", from.String(), "to", to.String(), "value", cfg.Value, "result", result)

	return convert.Format(result)
}
