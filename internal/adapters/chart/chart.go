// Package chart renders an indicator section as a PNG bar chart.
package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/okian/arena/internal/domain/board"
	"github.com/okian/arena/internal/domain/catalog"
	"github.com/okian/arena/internal/domain/format"
	"github.com/okian/arena/pkg/metrics"
)

const (
	defaultWidth  = 640
	defaultHeight = 360
	bestMarker    = " ★"
)

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithSize sets the image size in pixels. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// Renderer draws indicator views with go-chart.
type Renderer struct {
	width  int
	height int
}

// NewRenderer creates a Renderer with a 640x360 canvas.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{width: defaultWidth, height: defaultHeight}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes view as a PNG. Bars take the house colors; the best house
// label carries a star.
func (r *Renderer) Render(w io.Writer, view board.IndicatorView) error {
	if len(view.Values) == 0 {
		metrics.RecordChartRender("error")
		return fmt.Errorf("%w: %s has no values", ErrEmptyView, view.Indicator.Key)
	}

	barWidth := r.width / (2*len(view.Values) + 1)
	graph := chart.BarChart{
		Title:      title(view),
		Width:      r.width,
		Height:     r.height,
		BarWidth:   barWidth,
		BarSpacing: barWidth / 2,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: axisMax(view.AxisMax)},
			ValueFormatter: func(v interface{}) string {
				f, ok := v.(float64)
				if !ok {
					return ""
				}
				return format.Format(view.Indicator, f)
			},
		},
		Bars: bars(view),
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		metrics.RecordChartRender("error")
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	metrics.RecordChartRender("ok")
	return nil
}

func bars(view board.IndicatorView) []chart.Value {
	out := make([]chart.Value, 0, len(view.Values))
	for _, dv := range view.Values {
		style := catalog.StyleOf(dv.House)
		label := houseLabel(dv.House) + " " + dv.Formatted
		if dv.Best {
			label += bestMarker
		}
		value := dv.Value
		if dv.Missing || view.Missing {
			value = 0
		}
		out = append(out, chart.Value{
			Label: label,
			Value: value,
			Style: chart.Style{
				FillColor:   color(style.Color),
				StrokeColor: color(style.ColorDark),
				StrokeWidth: 1,
			},
		})
	}
	return out
}

func title(view board.IndicatorView) string {
	if view.UnitLabel == "" {
		return view.Indicator.Label
	}
	return fmt.Sprintf("%s (%s)", view.Indicator.Label, strings.TrimSpace(view.UnitLabel))
}

// axisMax keeps the y range non-empty; go-chart rejects a zero-height range.
func axisMax(v float64) float64 {
	if v > 0 {
		return v
	}
	return 1
}

func color(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func houseLabel(h catalog.HouseKey) string {
	s := string(h)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
