package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/tempconv/internal/unit"
)

// Config holds one parsed invocation of the converter.
type Config struct {
	To    unit.Unit
	From  unit.Unit // Fahrenheit unless --from is given
	Value float64

	LogFormat string
	LogLevel  string
	Verbosity int
}

func NewConfig(cfg Config) (*Config, error) {
	if !cfg.To.Valid() {
		return nil, fmt.Errorf("To is not a known unit: %s", cfg.To)
	}
	if !cfg.From.Valid() {
		return nil, fmt.Errorf("From is not a known unit: %s", cfg.From)
	}
	if cfg.Verbosity < 0 {
		return nil, errors.New("Verbosity cannot be negative")
	}

	return &cfg, nil
}
