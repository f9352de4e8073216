// internal/convert/convert.go
package convert

import (
	"math"
	"strconv"

	"github.com/specialistvlad/tempconv/internal/unit"
)

const (
	fahrenheitOffset = 32.0
	kelvinOffset     = 273.15
)

// Convert converts value from one unit to another. Aliases are accepted.
// Same-unit pairs return value unchanged. NaN and infinities go through the
// arithmetic like any other value.
func Convert(from, to unit.Unit, value float64) float64 {
	from, to = from.LongForm(), to.LongForm()

	switch {
	case from == unit.Fahrenheit && to == unit.Celsius:
		return (value - fahrenheitOffset) * 5.0 / 9.0
	case from == unit.Fahrenheit && to == unit.Kelvin:
		return (value-fahrenheitOffset)*5.0/9.0 + kelvinOffset
	case from == unit.Celsius && to == unit.Fahrenheit:
		return value*9.0/5.0 + fahrenheitOffset
	case from == unit.Celsius && to == unit.Kelvin:
		return value + kelvinOffset
	case from == unit.Kelvin && to == unit.Fahrenheit:
		// Kept bit-for-bit with the released tool. The physical formula is
		// (v-273.15)*9/5+32; see DESIGN.md before changing it.
		return ((value - kelvinOffset) - fahrenheitOffset) * 9.0 / 5.0
	case from == unit.Kelvin && to == unit.Celsius:
		return value - kelvinOffset
	default:
		return value
	}
}

// Format renders v with exactly two digits after the decimal point.
// Infinities print as inf and -inf, NaN as NaN.
func Format(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
