// internal/convert/infer.go
package convert

import "github.com/specialistvlad/tempconv/internal/unit"

// InputUnit returns the unit the value is interpreted in.
//
// When the output is Fahrenheit the input is always Celsius, even if the
// caller asked for something else with --from. Without this a bare
// `--to Fahrenheit` would be a Fahrenheit to Fahrenheit no-op. Do not remove
// it: it changes the output of the default invocation.
func InputUnit(to, from unit.Unit) unit.Unit {
	if to.LongForm() == unit.Fahrenheit {
		return unit.Celsius
	}
	return from
}

// Overridden reports whether InputUnit discards the from value given by the caller.
func Overridden(to, from unit.Unit) bool {
	return InputUnit(to, from).LongForm() != from.LongForm()
}
