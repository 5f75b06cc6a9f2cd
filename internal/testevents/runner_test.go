package testevents_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/arcstar/internal/adapters/http/api"
	service "github.com/okian/arcstar/internal/app"
	"github.com/okian/arcstar/internal/testevents"
	"github.com/okian/arcstar/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestRun(t *testing.T) {
	Convey("Given a detection service behind its HTTP API", t, func() {
		s := smallScenario()
		svc := service.New(
			service.WithWorkerCount(1),
			service.WithSensorSize(s.Rows, s.Cols),
		)
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		mux := http.NewServeMux()
		api.NewServer(svc, svc, 1000).Register(ctx, mux)
		srv := httptest.NewServer(mux)
		defer srv.Close()

		config := &testevents.Config{
			BaseURL:      srv.URL,
			Scenario:     s,
			BatchSize:    64,
			Workers:      2,
			Timeout:      5 * time.Second,
			Settle:       20 * time.Second,
			CornerLimit:  1000,
			Tolerance:    2,
			MinPrecision: 0.8,
			OutputFile:   filepath.Join(t.TempDir(), "events.json"),
		}

		Convey("When the moving squares are replayed", func() {
			err := testevents.Run(ctx, config)

			Convey("Then the run should pass verification", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats()
				So(stats["processed"], ShouldEqual, uint64(1672))
				So(stats["corners"], ShouldEqual, uint64(734))
			})

			Convey("Then the generated events should be saved", func() {
				info, statErr := os.Stat(config.OutputFile)
				So(statErr, ShouldBeNil)
				So(info.Size(), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When the precision threshold cannot be met", func() {
			config.MinPrecision = 0.99
			err := testevents.Run(ctx, config)

			Convey("Then the run should fail verification", func() {
				So(errors.Is(err, testevents.ErrLowPrecision), ShouldBeTrue)
			})
		})

		Convey("When the sensor cannot fit a square", func() {
			config.Scenario.Rows = 8
			err := testevents.Run(ctx, config)

			Convey("Then generation should fail", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "event generation failed")
			})
		})
	})

	Convey("Given no service", t, func() {
		config := &testevents.Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}

		Convey("Then the health check should fail", func() {
			err := testevents.Run(context.Background(), config)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "health check")
		})
	})
}
