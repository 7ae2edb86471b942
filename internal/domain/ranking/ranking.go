// Package ranking computes axis scales and best performers from a period
// data cube. Every function is pure.
package ranking

import (
	"fmt"
	"math"

	"github.com/okian/arena/internal/domain/catalog"
	"github.com/okian/arena/internal/domain/model"
)

// DefaultHeadroom keeps the longest dynamic bar off the container edge.
const DefaultHeadroom = 1.15

const fullWidth = 100

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithHouseOrder sets the scan and tie-break order.
func WithHouseOrder(order []catalog.HouseKey) Option {
	return func(e *Engine) {
		e.order = append([]catalog.HouseKey(nil), order...)
	}
}

// WithHeadroom sets the multiplier applied to dynamic axis maxima.
func WithHeadroom(h float64) Option {
	return func(e *Engine) {
		if h > 0 {
			e.headroom = h
		}
	}
}

// Engine ranks and scales indicators over a fixed house order.
type Engine struct {
	order    []catalog.HouseKey
	headroom float64
}

// New creates an Engine using the canonical house order.
func New(opts ...Option) *Engine {
	e := &Engine{
		order:    catalog.HouseOrder,
		headroom: DefaultHeadroom,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New() //nolint:gochecknoglobals // stateless default

// AxisMaximum returns the upper bound used to scale bars for ind.
func AxisMaximum(ind catalog.Indicator, cube model.Cube) (float64, error) {
	return defaultEngine.AxisMaximum(ind, cube)
}

// BestHouse returns the house with the strictly greatest value for ind.
func BestHouse(ind catalog.Indicator, cube model.Cube) (catalog.HouseKey, error) {
	return defaultEngine.BestHouse(ind, cube)
}

// AxisMaximum returns the fixed maximum when the indicator declares one,
// otherwise the largest house value times the headroom.
func (e *Engine) AxisMaximum(ind catalog.Indicator, cube model.Cube) (float64, error) {
	if ind.HasFixedMax() {
		return ind.FixedMax, nil
	}
	if len(e.order) == 0 {
		return 0, ErrNoHouses
	}
	highest := math.Inf(-1)
	for _, h := range e.order {
		v, ok := cube.Value(ind.Key, h)
		if !ok {
			return 0, missing(ind.Key, h)
		}
		highest = math.Max(highest, v)
	}
	return highest * e.headroom, nil
}

// BestHouse scans houses in order keeping the first strictly greater value,
// so earlier houses win ties.
func (e *Engine) BestHouse(ind catalog.Indicator, cube model.Cube) (catalog.HouseKey, error) {
	if len(e.order) == 0 {
		return "", ErrNoHouses
	}
	var best catalog.HouseKey
	bestVal := math.Inf(-1)
	for _, h := range e.order {
		v, ok := cube.Value(ind.Key, h)
		if !ok {
			return "", missing(ind.Key, h)
		}
		if v > bestVal {
			bestVal = v
			best = h
		}
	}
	if best == "" {
		return "", fmt.Errorf("%w: %s", ErrNoBestHouse, ind.Key)
	}
	return best, nil
}

// BarWidth returns the bar fill in percent of the container, in [0, 100].
// A non-positive axis yields an empty bar.
func BarWidth(value, axisMax float64) float64 {
	if !(axisMax > 0) || math.IsNaN(value) {
		return 0
	}
	pct := value / axisMax * fullWidth
	return math.Max(0, math.Min(pct, fullWidth))
}

func missing(ind catalog.IndicatorKey, h catalog.HouseKey) error {
	return fmt.Errorf("%w: indicator=%s house=%s", ErrMissingDataPoint, ind, h)
}
