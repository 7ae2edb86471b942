package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/arena/internal/domain/catalog"
	"github.com/okian/arena/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

const sample = `{
  "updated_at": "2026-02-26T08:30:00",
  "houses": {
    "prisma": {"name": "Prisma", "leader": "Diogo", "sensibility": "TCC e Comportamentais",
               "motto": "Decompor a complexidade em clareza", "therapists_count": 16, "active_patients": 48}
  },
  "periods": {
    "current": {"label": "Fevereiro 2026", "kpis": {"adimplencia": {"prisma": 87.5}}}
  }
}`

func TestDecodeSnapshot(t *testing.T) {
	Convey("Given a data object written by the extraction job", t, func() {
		snap, err := model.DecodeSnapshot([]byte(sample))

		Convey("Then it should decode houses, periods and cube values", func() {
			So(err, ShouldBeNil)
			So(snap.Houses[catalog.Prisma].Leader, ShouldEqual, "Diogo")
			So(snap.Houses[catalog.Prisma].ActivePatients, ShouldEqual, 48)
			v, ok := snap.Periods[model.PeriodCurrent].KPIs.Value(catalog.Adimplencia, catalog.Prisma)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 87.5)
		})

		Convey("Then the zone-less updated_at should parse", func() {
			So(snap.UpdatedAt.Equal(time.Date(2026, 2, 26, 8, 30, 0, 0, time.UTC)), ShouldBeTrue)
		})

		Convey("When looking up a cube value that is absent", func() {
			_, ok := snap.Periods[model.PeriodCurrent].KPIs.Value(catalog.Qualidade, catalog.Prisma)
			So(ok, ShouldBeFalse)
			_, ok = snap.Periods[model.PeriodCurrent].KPIs.Value(catalog.Adimplencia, catalog.Macondo)
			So(ok, ShouldBeFalse)
		})

		Convey("When selecting a period missing from the snapshot", func() {
			_, err := snap.Period(model.PeriodAccumulated)
			So(errors.Is(err, model.ErrPeriodNotFound), ShouldBeTrue)
		})

		Convey("When selecting an unknown period", func() {
			_, err := snap.Period("weekly")
			So(errors.Is(err, model.ErrUnknownPeriod), ShouldBeTrue)
		})
	})

	Convey("Given malformed input", t, func() {
		Convey("Then invalid JSON should fail with a decode error", func() {
			_, err := model.DecodeSnapshot([]byte(`{`))
			So(errors.Is(err, model.ErrDecodeSnapshot), ShouldBeTrue)
		})

		Convey("Then an unparseable updated_at should fail with a decode error", func() {
			_, err := model.DecodeSnapshot([]byte(`{"updated_at": "yesterday"}`))
			So(errors.Is(err, model.ErrDecodeSnapshot), ShouldBeTrue)
		})

		Convey("Then RFC3339 timestamps should also parse", func() {
			snap, err := model.DecodeSnapshot([]byte(`{"updated_at": "2026-02-26T08:30:00-03:00"}`))
			So(err, ShouldBeNil)
			So(snap.UpdatedAt.Hour(), ShouldEqual, 8)
		})
	})
}

func TestParsePeriod(t *testing.T) {
	Convey("Given the closed period set", t, func() {
		Convey("Then current and accumulated should be accepted", func() {
			k, err := model.ParsePeriod("current")
			So(err, ShouldBeNil)
			So(k, ShouldEqual, model.PeriodCurrent)
			k, err = model.ParsePeriod("accumulated")
			So(err, ShouldBeNil)
			So(k, ShouldEqual, model.PeriodAccumulated)
		})

		Convey("Then anything else should be rejected", func() {
			for _, s := range []string{"", "Current", "monthly"} {
				_, err := model.ParsePeriod(s)
				So(errors.Is(err, model.ErrUnknownPeriod), ShouldBeTrue)
			}
		})

		Convey("Then MustParsePeriod should panic on unknown keys", func() {
			So(func() { model.MustParsePeriod("weekly") }, ShouldPanic)
			So(model.MustParsePeriod("current"), ShouldEqual, model.PeriodCurrent)
		})
	})
}
