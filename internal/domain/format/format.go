// Package format turns raw indicator values into display strings.
package format

import (
	"math"
	"strconv"

	"github.com/okian/arena/internal/domain/catalog"
)

// Placeholder is shown where a value is missing.
const Placeholder = "—"

// Format renders value with one decimal place following the indicator's
// unit convention.
func Format(ind catalog.Indicator, value float64) string {
	s := tenths(value)
	switch ind.Unit {
	case catalog.UnitPercent:
		return s + "%"
	case catalog.UnitDelta:
		// TODO: negative deltas render as "+-1.2"; settle the sign policy with product.
		return "+" + s
	default:
		return s
	}
}

// UnitLabel returns the label the container prints next to a value.
func UnitLabel(ind catalog.Indicator) string {
	switch ind.Unit {
	case catalog.UnitPercent:
		return "%"
	case catalog.UnitScore10:
		return "/10"
	case catalog.UnitDelta:
		return " pts"
	default:
		return ""
	}
}

// tenths formats v with one decimal. strconv rounds exact ties to even;
// ties are pushed away from zero instead.
func tenths(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	d := v * 10
	if math.FMA(v, 10, -d) == 0 && math.Abs(d-math.Trunc(d)) == 0.5 {
		v = (math.Trunc(d) + math.Copysign(1, d)) / 10
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
