package site

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/arena/internal/domain/board"
	"github.com/okian/arena/internal/domain/catalog"
	"github.com/okian/arena/internal/domain/model"
)

type providerFunc func(ctx context.Context, period string) (board.Board, error)

func (f providerFunc) Board(ctx context.Context, period string) (board.Board, error) {
	return f(ctx, period)
}

func fixture() *model.Snapshot {
	return &model.Snapshot{
		UpdatedAt: model.Timestamp{Time: time.Date(2026, 2, 26, 8, 30, 0, 0, time.UTC)},
		Houses: map[catalog.HouseKey]model.House{
			catalog.Prisma:   {Name: "Prisma", Leader: "Diogo", Motto: "Decompor a complexidade em clareza"},
			catalog.Macondo:  {Name: "Macondo", Leader: "Flávia"},
			catalog.Marmoris: {Name: "Marmoris", Leader: "Alice Guedon"},
		},
		Periods: map[model.PeriodKey]model.Period{
			model.PeriodCurrent: {
				Label: "Fevereiro 2026",
				KPIs: model.Cube{
					catalog.Adimplencia:     {catalog.Prisma: 87.5, catalog.Macondo: 78.6, catalog.Marmoris: 91.7},
					catalog.SessoesPaciente: {catalog.Prisma: 3.4, catalog.Macondo: 3.1, catalog.Marmoris: 3.6},
					catalog.Qualidade:       {catalog.Prisma: 8.2, catalog.Macondo: 7.8, catalog.Marmoris: 8.9},
					catalog.Comparecimento:  {catalog.Prisma: 89.3, catalog.Macondo: 82.1, catalog.Marmoris: 86.5},
					catalog.EvolucaoORS:     {catalog.Prisma: 4.7, catalog.Macondo: 6.2},
				},
			},
		},
	}
}

func newRouter() http.Handler {
	snap := fixture()
	provider := providerFunc(func(_ context.Context, period string) (board.Board, error) {
		if period == "" {
			period = string(model.PeriodCurrent)
		}
		key, err := model.ParsePeriod(period)
		if err != nil {
			return board.Board{}, err
		}
		return board.Build(snap, key)
	})
	r := chi.NewRouter()
	Register(context.Background(), r, provider, nil)
	return r
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSiteHandler(t *testing.T) {
	Convey("Given the dashboard site", t, func() {
		h := newRouter()

		Convey("When requesting the root page", func() {
			w := get(h, "/")
			body := w.Body.String()

			Convey("Then it should render the current board", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldEqual, "text/html; charset=utf-8")
				So(body, ShouldContainSubstring, "Arena das")
				So(body, ShouldContainSubstring, "Fevereiro 2026")
				So(body, ShouldContainSubstring, "91.7%")
				So(html.UnescapeString(body), ShouldContainSubstring, "+6.2")
				So(body, ShouldContainSubstring, "26 de fevereiro de 2026 às 08:30")
			})

			Convey("Then each house should get its emblem", func() {
				So(body, ShouldContainSubstring, `id="fill-prisma"`)
				So(body, ShouldContainSubstring, "<polygon")
				So(body, ShouldContainSubstring, "<rect")
				So(body, ShouldContainSubstring, "<path")
			})

			Convey("Then bars should be sized by the board widths", func() {
				// 3.6 on a 4.14 axis.
				So(body, ShouldContainSubstring, fmt.Sprintf("width:%.2f%%", 3.6/(3.6*1.15)*100))
				So(body, ShouldNotContainSubstring, "ZgotmplZ")
			})

			Convey("Then best houses should carry the star badge", func() {
				So(strings.Count(body, `class="badge"`), ShouldEqual, 4)
			})

			Convey("Then the incomplete indicator should be flagged", func() {
				So(body, ShouldContainSubstring, "Dados incompletos")
				So(body, ShouldContainSubstring, "—")
			})
		})

		Convey("When requesting an unknown period", func() {
			w := get(h, "/?period=yearly")

			Convey("Then it should answer 400 with the reason", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(w.Body.String(), ShouldContainSubstring, "unknown period")
			})
		})

		Convey("When requesting the stylesheet", func() {
			w := get(h, "/static/arena.css")

			Convey("Then it should be served from the embedded assets", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, ".kpi-section")
			})
		})
	})
}

func TestDateBR(t *testing.T) {
	Convey("Dates render in Portuguese", t, func() {
		So(dateBR(time.Date(2025, 12, 1, 9, 5, 0, 0, time.UTC)), ShouldEqual, "01 de dezembro de 2025 às 09:05")
		So(dateBR(time.Time{}), ShouldEqual, "—")
	})
}
