// Package metrics provides Prometheus metrics for the corner detection service.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every metric of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	detectionBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Detection
	eventsReceived   prometheus.Counter
	eventsProcessed  prometheus.Counter
	eventsDropped    *prometheus.CounterVec
	classifications  *prometheus.CounterVec
	cornersDetected  prometheus.Counter
	detectionLatency prometheus.Histogram
	surfacePlanes    prometheus.Gauge

	// Queue
	queueSize          prometheus.Gauge
	queueCapacity      prometheus.Gauge
	queueUtilization   prometheus.Gauge
	queueEnqueued      prometheus.Counter
	queueDequeued      prometheus.Counter
	queueEnqueueErrors prometheus.Counter

	// Workers
	workerCount       prometheus.Gauge
	workerActiveCount prometheus.Gauge
	workerErrors      prometheus.Counter

	// Corner store
	cornerStoreSize      prometheus.Gauge
	cornerStoreEvictions prometheus.Counter
	cornerMatches        *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorsByComponent *prometheus.CounterVec

	// Runtime
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Default detection latency buckets in microseconds. Classification of a
// single event is a handful of microseconds.
var defaultDetectionBuckets = []float64{0.5, 1, 2, 5, 10, 25, 50, 100, 250, 1000} //nolint:gochecknoglobals // constant bucket layout

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "arcstar",
		subsystem:        "detector",
		histogramBuckets: prometheus.DefBuckets,
		detectionBuckets: defaultDetectionBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every metric definition
	auto := promauto.With(m.registry)

	m.eventsReceived = auto.NewCounter(m.counterOpts("events_received_total",
		"Total number of events accepted for detection"))
	m.eventsProcessed = auto.NewCounter(m.counterOpts("events_processed_total",
		"Total number of events stamped on the surface and classified"))
	m.eventsDropped = auto.NewCounterVec(m.counterOpts("events_dropped_total",
		"Total number of events dropped before classification by reason"), []string{"reason"})
	m.classifications = auto.NewCounterVec(m.counterOpts("classifications_total",
		"Total number of classified events by outcome"), []string{"outcome"})
	m.cornersDetected = auto.NewCounter(m.counterOpts("corners_detected_total",
		"Total number of events accepted as corners"))
	m.detectionLatency = auto.NewHistogram(m.histogramOpts("detection_latency_microseconds",
		"Time to stamp and classify one event in microseconds", m.detectionBuckets))
	m.surfacePlanes = auto.NewGauge(m.gaugeOpts("surface_planes",
		"Number of allocated timestamp surfaces"))

	m.queueSize = auto.NewGauge(m.gaugeOpts("queue_size",
		"Current number of events waiting in the queue"))
	m.queueCapacity = auto.NewGauge(m.gaugeOpts("queue_capacity",
		"Maximum number of events the queue holds"))
	m.queueUtilization = auto.NewGauge(m.gaugeOpts("queue_utilization_ratio",
		"Queue size divided by capacity"))
	m.queueEnqueued = auto.NewCounter(m.counterOpts("queue_enqueue_total",
		"Total number of events enqueued"))
	m.queueDequeued = auto.NewCounter(m.counterOpts("queue_dequeue_total",
		"Total number of events dequeued"))
	m.queueEnqueueErrors = auto.NewCounter(m.counterOpts("queue_enqueue_errors_total",
		"Total number of rejected enqueue attempts"))

	m.workerCount = auto.NewGauge(m.gaugeOpts("worker_count",
		"Configured number of detection workers"))
	m.workerActiveCount = auto.NewGauge(m.gaugeOpts("worker_active_count",
		"Number of running detection workers"))
	m.workerErrors = auto.NewCounter(m.counterOpts("worker_errors_total",
		"Total number of events a worker failed to process"))

	m.cornerStoreSize = auto.NewGauge(m.gaugeOpts("corner_store_size",
		"Number of corners currently retained"))
	m.cornerStoreEvictions = auto.NewCounter(m.counterOpts("corner_store_evictions_total",
		"Total number of corners evicted to make room for newer ones"))
	m.cornerMatches = auto.NewCounterVec(m.counterOpts("corner_matches_total",
		"Total number of descriptor match queries by result"), []string{"result"})

	m.httpRequests = auto.NewCounterVec(m.counterOpts("http_requests_total",
		"Total number of HTTP requests by endpoint and method"), []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(m.histogramOpts("http_request_duration_milliseconds",
		"HTTP request duration in milliseconds", m.histogramBuckets), []string{"endpoint", "method", "status_code"})

	m.errorsByComponent = auto.NewCounterVec(m.counterOpts("errors_total",
		"Total number of errors by component and type"), []string{"component", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_bytes",
		"Heap memory in use in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutines",
		"Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts("system_gc_pause_milliseconds",
		"Most recent GC pause in milliseconds", m.histogramBuckets))
}

// EnableRuntimeCollectors registers the Go runtime and process collectors on
// the service registry. Calling it more than once is harmless.
func EnableRuntimeCollectors() error {
	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := customRegistry.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return fmt.Errorf("%w: %w", ErrRegisterCollector, err)
		}
	}
	return nil
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
