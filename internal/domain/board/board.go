// Package board assembles the display-ready view of one period: house cards
// plus, per indicator, the axis scale, the best house and formatted values.
package board

import (
	"errors"
	"fmt"
	"time"

	"github.com/okian/arena/internal/domain/catalog"
	"github.com/okian/arena/internal/domain/format"
	"github.com/okian/arena/internal/domain/model"
	"github.com/okian/arena/internal/domain/ranking"
)

// DisplayValue is what the presentation layer draws for one house.
type DisplayValue struct {
	House     catalog.HouseKey `json:"house"`
	Value     float64          `json:"value"`
	Formatted string           `json:"formatted"`
	Best      bool             `json:"best"`
	BarWidth  float64          `json:"bar_width"`
	Missing   bool             `json:"missing,omitempty"`
}

// IndicatorView is one indicator section of the board.
type IndicatorView struct {
	Indicator catalog.Indicator `json:"indicator"`
	UnitLabel string            `json:"unit_label"`
	AxisMax   float64           `json:"axis_max"`
	Best      catalog.HouseKey  `json:"best,omitempty"`
	Values    []DisplayValue    `json:"values"`
	Missing   bool              `json:"missing,omitempty"`
}

// HouseCard is the header card of a house.
type HouseCard struct {
	Key   catalog.HouseKey   `json:"key"`
	House model.House        `json:"house"`
	Style catalog.HouseStyle `json:"style"`
	Wins  int                `json:"wins"`
}

// PeriodOption is an entry of the period selector.
type PeriodOption struct {
	Key      model.PeriodKey `json:"key"`
	Label    string          `json:"label"`
	Selected bool            `json:"selected"`
}

// Board is the complete display model for the selected period.
type Board struct {
	Period     model.PeriodKey `json:"period"`
	Label      string          `json:"label"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Periods    []PeriodOption  `json:"periods"`
	Houses     []HouseCard     `json:"houses"`
	Indicators []IndicatorView `json:"indicators"`
}

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithEngine sets the ranking engine.
func WithEngine(e *ranking.Engine) Option {
	return func(b *Builder) {
		if e != nil {
			b.engine = e
		}
	}
}

// WithHouseOrder sets the display order of houses and bars. The ranking
// engine is rebuilt with the same order.
func WithHouseOrder(order []catalog.HouseKey) Option {
	return func(b *Builder) {
		b.order = append([]catalog.HouseKey(nil), order...)
		b.engine = ranking.New(ranking.WithHouseOrder(order))
	}
}

// WithIndicators sets the indicator list, in display order.
func WithIndicators(inds []catalog.Indicator) Option {
	return func(b *Builder) {
		b.indicators = append([]catalog.Indicator(nil), inds...)
	}
}

// Builder turns a snapshot into a Board.
type Builder struct {
	engine     *ranking.Engine
	order      []catalog.HouseKey
	indicators []catalog.Indicator
}

// NewBuilder creates a Builder over the catalog tables.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		engine:     ranking.New(),
		order:      catalog.HouseOrder,
		indicators: catalog.Indicators,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build renders the board with the default builder.
func Build(snap *model.Snapshot, period model.PeriodKey) (Board, error) {
	return NewBuilder().Build(snap, period)
}

// Build renders the board of period. A data gap in one indicator marks that
// indicator as missing instead of failing the board.
func (b *Builder) Build(snap *model.Snapshot, period model.PeriodKey) (Board, error) {
	if snap == nil {
		return Board{}, ErrNoSnapshot
	}
	p, err := snap.Period(period)
	if err != nil {
		return Board{}, err
	}

	out := Board{
		Period:     period,
		Label:      p.Label,
		UpdatedAt:  snap.UpdatedAt.Time,
		Periods:    periodOptions(snap, period),
		Indicators: make([]IndicatorView, 0, len(b.indicators)),
	}

	wins := make(map[catalog.HouseKey]int, len(b.order))
	for _, ind := range b.indicators {
		view := b.indicatorView(ind, p.KPIs)
		if view.Best != "" {
			wins[view.Best]++
		}
		out.Indicators = append(out.Indicators, view)
	}

	out.Houses = make([]HouseCard, 0, len(b.order))
	for _, h := range b.order {
		out.Houses = append(out.Houses, HouseCard{
			Key:   h,
			House: snap.Houses[h],
			Style: catalog.StyleOf(h),
			Wins:  wins[h],
		})
	}
	return out, nil
}

// Indicator renders a single indicator section of period.
func (b *Builder) Indicator(snap *model.Snapshot, period model.PeriodKey, key catalog.IndicatorKey) (IndicatorView, error) {
	if snap == nil {
		return IndicatorView{}, ErrNoSnapshot
	}
	ind, ok := catalog.LookupIndicator(key)
	if !ok {
		return IndicatorView{}, fmt.Errorf("%w: %s", ErrUnknownIndicator, key)
	}
	p, err := snap.Period(period)
	if err != nil {
		return IndicatorView{}, err
	}
	view := b.indicatorView(ind, p.KPIs)
	if view.Missing {
		return view, fmt.Errorf("%w: indicator=%s period=%s", ranking.ErrMissingDataPoint, key, period)
	}
	return view, nil
}

func (b *Builder) indicatorView(ind catalog.Indicator, cube model.Cube) IndicatorView {
	view := IndicatorView{
		Indicator: ind,
		UnitLabel: format.UnitLabel(ind),
		Values:    make([]DisplayValue, 0, len(b.order)),
	}

	axis, axisErr := b.engine.AxisMaximum(ind, cube)
	best, bestErr := b.engine.BestHouse(ind, cube)
	if axisErr == nil {
		view.AxisMax = axis
	}
	if bestErr == nil {
		view.Best = best
	}
	view.Missing = errors.Is(axisErr, ranking.ErrMissingDataPoint) || errors.Is(bestErr, ranking.ErrMissingDataPoint)

	for _, h := range b.order {
		v, ok := cube.Value(ind.Key, h)
		if !ok {
			view.Values = append(view.Values, DisplayValue{House: h, Formatted: format.Placeholder, Missing: true})
			continue
		}
		dv := DisplayValue{
			House:     h,
			Value:     v,
			Formatted: format.Format(ind, v),
			Best:      h == view.Best,
		}
		if !view.Missing {
			dv.BarWidth = ranking.BarWidth(v, view.AxisMax)
		}
		view.Values = append(view.Values, dv)
	}
	return view
}

func periodOptions(snap *model.Snapshot, selected model.PeriodKey) []PeriodOption {
	opts := make([]PeriodOption, 0, len(model.PeriodOrder))
	for _, k := range model.PeriodOrder {
		p, ok := snap.Periods[k]
		if !ok {
			continue
		}
		opts = append(opts, PeriodOption{Key: k, Label: p.Label, Selected: k == selected})
	}
	return opts
}
