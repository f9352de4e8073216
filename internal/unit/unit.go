// internal/unit/unit.go
package unit

import (
	"errors"
	"fmt"
	"strings"
)

// Unit is a temperature unit tag, either canonical or a short alias.
type Unit int

const (
	Fahrenheit Unit = iota
	Celsius
	Kelvin
	F
	C
	K
)

var names = [...]string{
	Fahrenheit: "Fahrenheit",
	Celsius:    "Celsius",
	Kelvin:     "Kelvin",
	F:          "F",
	C:          "C",
	K:          "K",
}

// ErrInvalidUnit is matched by every error returned from Parse.
var ErrInvalidUnit = errors.New("invalid unit")

// InvalidUnitError reports a token that is not one of the accepted units.
type InvalidUnitError struct {
	Token string
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("invalid value %q for unit [possible values: %s]", e.Token, strings.Join(Variants(), ", "))
}

// Unwrap lets errors.Is match ErrInvalidUnit.
func (e *InvalidUnitError) Unwrap() error {
	return ErrInvalidUnit
}

// Variants returns the accepted unit names in declaration order.
func Variants() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	return out
}

// Parse matches s case-insensitively against the accepted unit names.
func Parse(s string) (Unit, error) {
	for i, name := range names {
		if strings.EqualFold(s, name) {
			return Unit(i), nil
		}
	}
	return 0, &InvalidUnitError{Token: s}
}

// String returns the tag name, e.g. "Kelvin" or "K".
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return names[u]
}

// LongForm maps a short alias to its canonical unit. Canonical units map to themselves.
func (u Unit) LongForm() Unit {
	switch u {
	case F:
		return Fahrenheit
	case C:
		return Celsius
	case K:
		return Kelvin
	default:
		return u
	}
}

// Valid reports whether u is one of the six declared tags.
func (u Unit) Valid() bool {
	return u >= 0 && int(u) < len(names)
}
