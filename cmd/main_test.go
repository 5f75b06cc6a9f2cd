package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/arcstar/internal/config"
	"github.com/okian/arcstar/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When loading configuration from the environment", func() {
			_ = os.Setenv("ARCSTAR_ADDR", ":8080")
			_ = os.Setenv("ARCSTAR_QUEUE_SIZE", "1000")
			_ = os.Setenv("ARCSTAR_WORKER_COUNT", "4")
			defer func() {
				_ = os.Unsetenv("ARCSTAR_ADDR")
				_ = os.Unsetenv("ARCSTAR_QUEUE_SIZE")
				_ = os.Unsetenv("ARCSTAR_WORKER_COUNT")
			}()

			cfg, err := config.Load(context.Background())

			convey.Convey("Then the service should be built from it", func() {
				convey.So(err, convey.ShouldBeNil)
				svc := newService(cfg, logger.Discard())
				stats := svc.GetStats()
				convey.So(stats["workerCount"], convey.ShouldEqual, 4)
				convey.So(stats["queueSize"], convey.ShouldEqual, 1000)
				convey.So(stats["sensorRows"], convey.ShouldEqual, cfg.SensorRows)
			})
		})

		convey.Convey("When running with an invalid configuration", func() {
			_ = os.Setenv("ARCSTAR_SENSOR_ROWS", "0")
			defer func() { _ = os.Unsetenv("ARCSTAR_SENSOR_ROWS") }()

			err := run(context.Background())

			convey.Convey("Then it should fail before serving", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "load config")
			})
		})

		convey.Convey("When the context is already cancelled", func() {
			_ = os.Setenv("ARCSTAR_ADDR", "127.0.0.1:0")
			defer func() { _ = os.Unsetenv("ARCSTAR_ADDR") }()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			convey.Convey("Then run should shut down cleanly", func() {
				convey.So(run(ctx), convey.ShouldBeNil)
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given a running service behind the API mux", t, func() {
		cfg := config.New()
		cfg.WorkerCount = 1
		cfg.SensorRows, cfg.SensorCols = 20, 20
		cfg.MaxCornerLimit = 5

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		svc := newService(cfg, logger.Discard())
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		srv := httptest.NewServer(newMux(ctx, svc, cfg))
		defer srv.Close()

		convey.Convey("When a block corner is posted as a batch", func() {
			var events []string
			for r := 10; r <= 14; r++ {
				for c := 10; c <= 14; c++ {
					if r == 10 && c == 10 {
						continue
					}
					events = append(events, `{"row":`+strconv.Itoa(r)+`,"col":`+strconv.Itoa(c)+`,"ts":7}`)
				}
			}
			events = append(events, `{"row":10,"col":10,"ts":9}`)
			resp, err := http.Post(srv.URL+"/events", "application/json", strings.NewReader("["+strings.Join(events, ",")+"]"))
			convey.So(err, convey.ShouldBeNil)
			_ = resp.Body.Close()
			convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusAccepted)

			convey.Convey("Then the corner should be listed", func() {
				var corners []map[string]any
				deadline := time.Now().Add(5 * time.Second)
				for time.Now().Before(deadline) {
					corners = getCorners(srv.URL + "/corners?limit=5")
					if hasCorner(corners, 10, 10) {
						break
					}
					time.Sleep(10 * time.Millisecond)
				}
				convey.So(hasCorner(corners, 10, 10), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the limit exceeds the configured maximum", func() {
			resp, err := http.Get(srv.URL + "/corners?limit=6")
			convey.So(err, convey.ShouldBeNil)
			_ = resp.Body.Close()

			convey.Convey("Then it should be rejected", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusBadRequest)
			})
		})

		convey.Convey("When the API docs are requested", func() {
			resp, err := http.Get(srv.URL + "/openapi.yaml")
			convey.So(err, convey.ShouldBeNil)
			_ = resp.Body.Close()

			convey.Convey("Then the OpenAPI document should be served", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				convey.So(resp.Header.Get("Content-Type"), convey.ShouldStartWith, "application/yaml")
			})
		})

		convey.Convey("When the service metrics updater runs", func() {
			convey.Convey("Then it should not panic", func() {
				convey.So(func() { updateServiceMetrics(svc) }, convey.ShouldNotPanic)
				convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMetricsUpdaters(t *testing.T) {
	convey.Convey("Given cancelled contexts", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		convey.Convey("Then the updaters should return promptly", func() {
			done := make(chan struct{})
			go func() {
				startSystemMetricsUpdater(ctx)
				startServiceMetricsUpdater(ctx, newService(config.New(), logger.Discard()))
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("updaters did not stop")
			}
		})
	})
}

func getCorners(url string) []map[string]any {
	resp, err := http.Get(url) //nolint:gosec,noctx // test server URL
	if err != nil {
		return nil
	}
	defer func() { _ = resp.Body.Close() }()
	var out []map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return out
}

func hasCorner(corners []map[string]any, row, col float64) bool {
	for _, c := range corners {
		if c["row"] == row && c["col"] == col {
			return true
		}
	}
	return false
}
