package cli

import (
	"errors"

	"github.com/specialistvlad/tempconv/internal/unit"
)

// usageExitCode is the status for any argument error, matching the flag package.
const usageExitCode = 2

var (
	ErrMissingArgument    = errors.New("missing required argument")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrInvalidUnit        = unit.ErrInvalidUnit
	ErrUnexpectedArgument = errors.New("unexpected argument")
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) *ExitError {
	return &ExitError{
		Code:    usageExitCode,
		Message: "error: " + err.Error() + "\n\n" + usageLine + "\n\nFor more information try --help",
		Err:     err,
	}
}
