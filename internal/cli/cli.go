package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/tempconv/internal/app"
	"github.com/specialistvlad/tempconv/internal/unit"
)

const (
	programName = "tempconv"
	displayName = "Temperature Converter"
	usageLine   = "USAGE:\n    tempconv [options] --to <UNIT> <VALUE>"
)

// Version is overridden at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "0.1.0"

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Help and version text are written to output.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet(programName, flag.ContinueOnError)
	// Errors are reported by the caller through ExitError, not by the FlagSet.
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}

	var to, from unitFlag
	var verbosity countFlag
	unitHelp := "one of " + strings.Join(unit.Variants(), ", ") + " (case-insensitive)"
	flagSet.Var(&to, "to", "The desired output units, "+unitHelp+". Required.")
	flagSet.Var(&to, "w", "The desired output units (shorthand).")
	flagSet.Var(&from, "from", "The input units, "+unitHelp+". Default Fahrenheit.")
	flagSet.Var(&from, "r", "The input units (shorthand).")
	versionFlag := flagSet.Bool("version", false, "Prints version information.")
	flagSet.BoolVar(versionFlag, "V", false, "Prints version information (shorthand).")
	flagSet.Var(&verbosity, "verbosity", "Increase diagnostic output on stderr. Repeatable.")
	flagSet.Var(&verbosity, "v", "Increase diagnostic output on stderr (shorthand, -vv allowed).")
	logFormatFlag := flagSet.String("log-format", "text", "Diagnostic log format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Diagnostic log level. Options: 'debug', 'info', 'warn', 'error'.")

	flagArgs, positional, dangling := splitArgs(flagSet, args)
	if err := flagSet.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(output, flagSet)
			return nil, true, nil
		}
		return nil, false, usageError(err)
	}
	slog.Debug("Arguments parsed successfully.", "flags", flagArgs, "positional", positional)

	if *versionFlag {
		fmt.Fprintf(output, "%s %s\n", displayName, Version)
		return nil, true, nil
	}

	if dangling != "" {
		return nil, false, usageError(fmt.Errorf("%w: %s needs a value", ErrMissingArgument, dangling))
	}

	if !to.set {
		return nil, false, usageError(fmt.Errorf("%w: --to <UNIT>", ErrMissingArgument))
	}
	toUnit, err := unit.Parse(to.raw)
	if err != nil {
		return nil, false, usageError(fmt.Errorf("--to: %w", err))
	}

	fromUnit := unit.Fahrenheit
	if from.set {
		fromUnit, err = unit.Parse(from.raw)
		if err != nil {
			return nil, false, usageError(fmt.Errorf("--from: %w", err))
		}
	}

	switch {
	case len(positional) == 0:
		return nil, false, usageError(fmt.Errorf("%w: <VALUE>", ErrMissingArgument))
	case len(positional) > 1:
		return nil, false, usageError(fmt.Errorf("%w: %q", ErrUnexpectedArgument, positional[1]))
	}
	value, err := parseValue(positional[0])
	if err != nil {
		return nil, false, usageError(fmt.Errorf("%w: %q is not a floating-point number", ErrInvalidNumber, positional[0]))
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError(errors.New("invalid log-format: must be 'text' or 'json'"))
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError(errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'"))
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		To:        toUnit,
		From:      fromUnit,
		Value:     value,
		LogFormat: logFormat,
		LogLevel:  logLevel,
		Verbosity: int(verbosity),
	})
	if err != nil {
		return nil, false, usageError(err)
	}

	slog.Debug("CLI parser finished successfully.", "to", toUnit.String(), "from", fromUnit.String(), "value", value)
	return config, false, nil
}

// parseValue accepts decimal literals plus inf and nan. Values beyond
// float64 range become ±Inf instead of failing. Hex floats and digit
// separators are rejected even though strconv allows them.
func parseValue(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if strings.Contains(s, "_") || strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}

func printUsage(w io.Writer, flagSet *flag.FlagSet) {
	fmt.Fprintf(w, `%s %s
Convert temperature units as if by magic.

%s

Arguments:
  VALUE
    The temperature to convert. Negative values need no "--".

Options:
`, displayName, Version, usageLine)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
	flagSet.SetOutput(io.Discard)
}
