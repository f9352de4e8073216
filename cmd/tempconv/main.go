package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/tempconv/internal/app"
	"github.com/specialistvlad/tempconv/internal/cli"
)

// main is the entrypoint for tempconv and the only place that exits the process.
func main() {
	// Use a minimal logger until the App builds its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, converts, and writes exactly one line to outW.
// Diagnostics go to errW.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	converter := app.NewApp(errW, appConfig)
	if _, err := fmt.Fprintln(outW, converter.Run(context.Background())); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
