package site

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/okian/arena/internal/domain/board"
	"github.com/okian/arena/internal/domain/catalog"
)

var funcs = template.FuncMap{ //nolint:gochecknoglobals // template helpers
	"dateBR": dateBR,
}

type page struct {
	Board      board.Board
	Houses     []houseView
	Indicators []indicatorView
	Error      string
}

type houseView struct {
	board.HouseCard
	CardStyle template.CSS
	NameStyle template.CSS
}

type indicatorView struct {
	board.IndicatorView
	Rows []rowView
}

type rowView struct {
	board.DisplayValue
	Name     string
	Style    catalog.HouseStyle
	BarStyle template.CSS
}

func newPage(b board.Board) page {
	p := page{Board: b}
	names := make(map[catalog.HouseKey]string, len(b.Houses))
	for _, h := range b.Houses {
		names[h.Key] = h.House.Name
		p.Houses = append(p.Houses, houseView{
			HouseCard: h,
			CardStyle: template.CSS(fmt.Sprintf("background:%s;border-color:%s", h.Style.BgAccent, h.Style.GlowColor)),
			NameStyle: template.CSS("color:" + h.Style.ColorLight),
		})
	}
	for _, ind := range b.Indicators {
		iv := indicatorView{IndicatorView: ind}
		for _, v := range ind.Values {
			style := catalog.StyleOf(v.House)
			name := names[v.House]
			if name == "" {
				name = string(v.House)
			}
			iv.Rows = append(iv.Rows, rowView{
				DisplayValue: v,
				Name:         name,
				Style:        style,
				BarStyle:     barStyle(v.BarWidth, style),
			})
		}
		p.Indicators = append(p.Indicators, iv)
	}
	return p
}

func barStyle(width float64, style catalog.HouseStyle) template.CSS {
	gradient := style.Color
	if len(style.Gradient) > 0 {
		gradient = "linear-gradient(90deg," + strings.Join(style.Gradient, ",") + ")"
	}
	return template.CSS(fmt.Sprintf("width:%.2f%%;background:%s;box-shadow:0 0 20px %s", width, gradient, style.GlowColor))
}

var monthsBR = [...]string{ //nolint:gochecknoglobals // month names
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// dateBR renders t the way the clinic reads dates, e.g.
// "26 de fevereiro de 2026 às 08:30".
func dateBR(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return fmt.Sprintf("%02d de %s de %d às %02d:%02d", t.Day(), monthsBR[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
