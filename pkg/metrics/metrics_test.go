package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given a private registry", t, func() {
		registry := prometheus.NewRegistry()

		Convey("When creating a manager with options", func() {
			m := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{1, 10}),
				WithDetectionBuckets([]float64{1, 2}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			m.eventsReceived.Inc()
			m.classifications.WithLabelValues("accepted").Inc()

			Convey("Then metrics are registered under the configured names", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "test_unit_events_received_total")
				So(names, ShouldContain, "test_unit_classifications_total")
			})

			Convey("And constant labels are attached", func() {
				expected := `
# HELP test_unit_events_received_total Total number of events accepted for detection
# TYPE test_unit_events_received_total counter
test_unit_events_received_total{env="test"} 1
`
				So(testutil.GatherAndCompare(registry, strings.NewReader(expected), "test_unit_events_received_total"), ShouldBeNil)
			})
		})

		Convey("When two managers share a registry", func() {
			NewManager(WithPrometheusRegistry(registry))

			Convey("Then the second registration panics", func() {
				So(func() { NewManager(WithPrometheusRegistry(registry)) }, ShouldPanic)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global manager", t, func() {
		m := globalManager

		Convey("Detection counters advance", func() {
			before := testutil.ToFloat64(m.eventsProcessed)
			RecordEventProcessed()
			RecordEventProcessed()
			So(testutil.ToFloat64(m.eventsProcessed), ShouldEqual, before+2)

			rejected := testutil.ToFloat64(m.classifications.WithLabelValues("rejected_ring3"))
			RecordClassification("rejected_ring3")
			So(testutil.ToFloat64(m.classifications.WithLabelValues("rejected_ring3")), ShouldEqual, rejected+1)

			dropped := testutil.ToFloat64(m.eventsDropped.WithLabelValues("out_of_bounds"))
			RecordEventDropped("out_of_bounds")
			So(testutil.ToFloat64(m.eventsDropped.WithLabelValues("out_of_bounds")), ShouldEqual, dropped+1)

			corners := testutil.ToFloat64(m.cornersDetected)
			RecordCornerDetected()
			So(testutil.ToFloat64(m.cornersDetected), ShouldEqual, corners+1)
		})

		Convey("Gauges hold the last value", func() {
			UpdateQueueSize(12)
			UpdateQueueCapacity(100)
			UpdateQueueUtilization(0.12)
			UpdateWorkerCount(4)
			UpdateWorkerActiveCount(3)
			UpdateCornerStoreSize(7)
			UpdateSurfacePlanes(2)
			So(testutil.ToFloat64(m.queueSize), ShouldEqual, 12)
			So(testutil.ToFloat64(m.queueCapacity), ShouldEqual, 100)
			So(testutil.ToFloat64(m.queueUtilization), ShouldEqual, 0.12)
			So(testutil.ToFloat64(m.workerCount), ShouldEqual, 4)
			So(testutil.ToFloat64(m.workerActiveCount), ShouldEqual, 3)
			So(testutil.ToFloat64(m.cornerStoreSize), ShouldEqual, 7)
			So(testutil.ToFloat64(m.surfacePlanes), ShouldEqual, 2)
		})

		Convey("Histograms and labelled series accept observations", func() {
			So(func() {
				RecordDetectionLatency(3.5)
				RecordHTTPRequest("/events", "POST", "202")
				RecordHTTPRequestDuration("/events", "POST", "202", 1.5)
				RecordErrorByComponent("queue", "queue_full")
				RecordCornerMatch("hit")
				RecordCornerEviction()
				RecordEventReceived()
				RecordQueueEnqueue()
				RecordQueueDequeue()
				RecordQueueEnqueueError()
				RecordWorkerError()
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(10)
				RecordSystemGCPauseTime(0.2)
			}, ShouldNotPanic)
			So(testutil.CollectAndCount(m.httpRequests), ShouldBeGreaterThanOrEqualTo, 1)
		})
	})
}

func TestRuntimeCollectors(t *testing.T) {
	Convey("Runtime collectors register once and tolerate repeats", t, func() {
		So(EnableRuntimeCollectors(), ShouldBeNil)
		So(EnableRuntimeCollectors(), ShouldBeNil)

		families, err := GetRegistry().Gather()
		So(err, ShouldBeNil)
		found := false
		for _, f := range families {
			if f.GetName() == "go_goroutines" {
				found = true
			}
		}
		So(found, ShouldBeTrue)
	})
}
