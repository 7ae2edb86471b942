package model

import "fmt"

// PeriodKey identifies a selectable period.
type PeriodKey string

// Period keys. The set is closed.
const (
	PeriodCurrent     PeriodKey = "current"
	PeriodAccumulated PeriodKey = "accumulated"
)

// PeriodOrder lists the periods as offered by the selector.
var PeriodOrder = []PeriodKey{PeriodCurrent, PeriodAccumulated} //nolint:gochecknoglobals // constant table

// ParsePeriod validates s against the closed period set.
func ParsePeriod(s string) (PeriodKey, error) {
	switch PeriodKey(s) {
	case PeriodCurrent, PeriodAccumulated:
		return PeriodKey(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
	}
}

// MustParsePeriod is ParsePeriod for compile-time constants; it panics on
// an unknown key.
func MustParsePeriod(s string) PeriodKey {
	k, err := ParsePeriod(s)
	if err != nil {
		panic(err)
	}
	return k
}
