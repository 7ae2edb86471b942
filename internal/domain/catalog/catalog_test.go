package catalog_test

import (
	"testing"

	"github.com/okian/arena/internal/domain/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCatalog(t *testing.T) {
	Convey("Given the indicator catalog", t, func() {
		Convey("Then it should list five indicators in display order", func() {
			So(len(catalog.Indicators), ShouldEqual, 5)
			So(catalog.Indicators[0].Key, ShouldEqual, catalog.Adimplencia)
			So(catalog.Indicators[4].Key, ShouldEqual, catalog.EvolucaoORS)
		})

		Convey("Then bounded indicators should declare a fixed maximum", func() {
			adim, ok := catalog.LookupIndicator(catalog.Adimplencia)
			So(ok, ShouldBeTrue)
			So(adim.HasFixedMax(), ShouldBeTrue)
			So(adim.FixedMax, ShouldEqual, 100)

			q, _ := catalog.LookupIndicator(catalog.Qualidade)
			So(q.FixedMax, ShouldEqual, 10)
		})

		Convey("Then dynamic indicators should not declare a maximum", func() {
			s, _ := catalog.LookupIndicator(catalog.SessoesPaciente)
			So(s.HasFixedMax(), ShouldBeFalse)
			e, _ := catalog.LookupIndicator(catalog.EvolucaoORS)
			So(e.HasFixedMax(), ShouldBeFalse)
		})

		Convey("When looking up an unknown indicator", func() {
			_, ok := catalog.LookupIndicator("nope")
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given the house tables", t, func() {
		Convey("Then the canonical order should be prisma, macondo, marmoris", func() {
			So(catalog.HouseOrder, ShouldResemble, []catalog.HouseKey{catalog.Prisma, catalog.Macondo, catalog.Marmoris})
		})

		Convey("Then every house should have a style", func() {
			for _, h := range catalog.HouseOrder {
				_, ok := catalog.HouseStyles[h]
				So(ok, ShouldBeTrue)
			}
			So(catalog.StyleOf(catalog.Marmoris).Symbol, ShouldEqual, catalog.SymbolSun)
		})

		Convey("Then an unknown house should get the neutral style", func() {
			So(catalog.StyleOf("other").Color, ShouldEqual, "#888888")
		})
	})
}
