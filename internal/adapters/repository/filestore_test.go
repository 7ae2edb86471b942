package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/okian/arena/internal/adapters/repository"
	"github.com/okian/arena/internal/domain/catalog"
	"github.com/okian/arena/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

const minimal = `{"updated_at": "2026-03-01T10:00:00", "houses": {}, "periods": {"current": {"label": "%s", "kpis": {}}}}`

func writeSnapshot(t *testing.T, path, label string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.Replace(minimal, "%s", label, 1)), 0o600); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
}

func label(ctx context.Context, s repository.Store) string {
	snap, err := s.Current(ctx)
	if err != nil {
		return ""
	}
	return snap.Periods[model.PeriodCurrent].Label
}

func TestFileStoreEmbedded(t *testing.T) {
	Convey("Given a store without a data path", t, func() {
		ctx := context.Background()
		s, err := repository.NewFileStore(ctx)
		So(err, ShouldBeNil)

		Convey("Then it should serve the embedded sample data", func() {
			snap, err := s.Current(ctx)
			So(err, ShouldBeNil)
			So(s.Source(), ShouldEqual, "embedded:mock.json")
			So(len(snap.Houses), ShouldEqual, 3)
			v, ok := snap.Periods[model.PeriodAccumulated].KPIs.Value(catalog.SessoesPaciente, catalog.Marmoris)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 10.2)
		})

		Convey("Then watching should be a no-op", func() {
			So(s.Watch(ctx), ShouldBeNil)
			So(s.Close(), ShouldBeNil)
		})
	})

	Convey("Given broken embedded data", t, func() {
		_, err := repository.NewFileStore(context.Background(), repository.WithEmbedded([]byte(`{"houses": [`)))

		Convey("Then construction should fail with a decode error", func() {
			So(errors.Is(err, model.ErrDecodeSnapshot), ShouldBeTrue)
		})
	})
}

func TestFileStoreFile(t *testing.T) {
	Convey("Given a snapshot file", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "data.json")
		writeSnapshot(t, path, "Março 2026")

		s, err := repository.NewFileStore(ctx, repository.WithPath(path))
		So(err, ShouldBeNil)
		So(s.Source(), ShouldEqual, path)
		So(label(ctx, s), ShouldEqual, "Março 2026")

		Convey("When the file is rewritten and reloaded", func() {
			before := s.Version()
			writeSnapshot(t, path, "Abril 2026")
			So(s.Reload(ctx), ShouldBeNil)

			Convey("Then the new snapshot should be served under a new version", func() {
				So(label(ctx, s), ShouldEqual, "Abril 2026")
				So(before, ShouldNotBeEmpty)
				So(s.Version(), ShouldNotEqual, before)
				So(s.LoadedAt().IsZero(), ShouldBeFalse)
			})
		})

		Convey("When the file becomes invalid", func() {
			before := s.Version()
			So(os.WriteFile(path, []byte("not json"), 0o600), ShouldBeNil)
			err := s.Reload(ctx)

			Convey("Then reload should fail and keep the previous snapshot", func() {
				So(errors.Is(err, model.ErrDecodeSnapshot), ShouldBeTrue)
				So(label(ctx, s), ShouldEqual, "Março 2026")
				So(s.Version(), ShouldEqual, before)
			})
		})

		Convey("When the file disappears", func() {
			So(os.Remove(path), ShouldBeNil)
			err := s.Reload(ctx)

			Convey("Then reload should report a read error", func() {
				So(errors.Is(err, repository.ErrReadSource), ShouldBeTrue)
				So(label(ctx, s), ShouldEqual, "Março 2026")
			})
		})

		Convey("When watching the file", func() {
			wctx, cancel := context.WithCancel(ctx)
			done := make(chan error, 1)
			go func() { done <- s.Watch(wctx) }()

			// Give the watcher time to register before writing.
			time.Sleep(200 * time.Millisecond)
			writeSnapshot(t, path, "Maio 2026")

			deadline := time.Now().Add(5 * time.Second)
			for time.Now().Before(deadline) && label(ctx, s) != "Maio 2026" {
				time.Sleep(50 * time.Millisecond)
			}
			cancel()

			Convey("Then the change should be picked up and the watch should stop cleanly", func() {
				So(label(ctx, s), ShouldEqual, "Maio 2026")
				So(<-done, ShouldBeNil)
			})
		})
	})

	Convey("Given a watched file that keeps changing", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "data.json")
		writeSnapshot(t, path, "Março 2026")
		s, err := repository.NewFileStore(ctx, repository.WithPath(path))
		So(err, ShouldBeNil)

		wctx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() { done <- s.Watch(wctx) }()
		time.Sleep(200 * time.Millisecond)

		stop := make(chan struct{})
		writerDone := make(chan struct{})
		go func() {
			defer close(writerDone)
			for i := 0; ; i++ {
				select {
				case <-stop:
					return
				default:
				}
				data := strings.Replace(minimal, "%s", fmt.Sprintf("Abril %d", i), 1)
				_ = os.WriteFile(path, []byte(data), 0o600)
				time.Sleep(time.Millisecond)
			}
		}()

		time.Sleep(100 * time.Millisecond)
		cancel()

		Convey("Then shutdown should not stall on an in-flight reload", func() {
			var watchErr error
			stopped := false
			select {
			case watchErr = <-done:
				stopped = true
			case <-time.After(5 * time.Second):
			}
			close(stop)
			<-writerDone

			So(stopped, ShouldBeTrue)
			So(watchErr, ShouldBeNil)
			So(s.Close(), ShouldBeNil)
		})
	})

	Convey("Given a missing file", t, func() {
		_, err := repository.NewFileStore(context.Background(), repository.WithPath(filepath.Join(t.TempDir(), "nope.json")))

		Convey("Then construction should fail", func() {
			So(errors.Is(err, repository.ErrReadSource), ShouldBeTrue)
		})
	})
}
