// Package metrics provides Prometheus metrics for the arena dashboard.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the dashboard.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Board Metrics - what the dashboard shows
	boardBuilds       *prometheus.CounterVec
	boardErrors       *prometheus.CounterVec
	boardBuildLatency prometheus.Histogram
	indicatorValue    *prometheus.GaugeVec
	bestHouse         *prometheus.GaugeVec
	chartRenders      *prometheus.CounterVec

	// Snapshot Metrics - data freshness
	snapshotReloads   *prometheus.CounterVec
	snapshotUpdatedAt prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "arena",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.boardBuilds = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "board_builds_total",
		Help:        "Total number of boards built by period",
		ConstLabels: labels,
	}, []string{"period"})

	m.boardErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "board_errors_total",
		Help:        "Board build problems by kind (unknown_period, missing_data, no_snapshot)",
		ConstLabels: labels,
	}, []string{"kind"})

	m.boardBuildLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "board_build_latency_milliseconds",
		Help:        "Time to build a board in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.indicatorValue = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "indicator_value",
		Help:        "Last rendered indicator value per period and house",
		ConstLabels: labels,
	}, []string{"period", "indicator", "house"})

	m.bestHouse = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "best_house",
		Help:        "1 when the house holds the best badge for the indicator, else 0",
		ConstLabels: labels,
	}, []string{"period", "indicator", "house"})

	m.chartRenders = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "chart_renders_total",
		Help:        "Total number of PNG chart renders by result",
		ConstLabels: labels,
	}, []string{"result"})

	m.snapshotReloads = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "snapshot_reloads_total",
		Help:        "Total number of snapshot loads by result",
		ConstLabels: labels,
	}, []string{"result"})

	m.snapshotUpdatedAt = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "snapshot_updated_timestamp_seconds",
		Help:        "updated_at of the served snapshot as a unix timestamp",
		ConstLabels: labels,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests by endpoint and method",
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_errors_total",
		Help:        "HTTP error responses by endpoint, type and severity",
		ConstLabels: labels,
	}, []string{"endpoint", "method", "error_type", "severity"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_memory_usage_bytes",
		Help:        "System memory usage in bytes",
		ConstLabels: labels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_goroutine_count",
		Help:        "Number of goroutines",
		ConstLabels: labels,
	})
}

// RecordBoardBuild counts a board build for period and observes its latency.
func (m *Manager) RecordBoardBuild(period string, latencyMs float64) {
	if !m.enabled {
		return
	}
	m.boardBuilds.WithLabelValues(period).Inc()
	m.boardBuildLatency.Observe(latencyMs)
}

// RecordBoardError counts a board problem of the given kind.
func (m *Manager) RecordBoardError(kind string) {
	if !m.enabled {
		return
	}
	m.boardErrors.WithLabelValues(kind).Inc()
}

// UpdateIndicatorValue publishes a rendered value and whether it is the best.
func (m *Manager) UpdateIndicatorValue(period, indicator, house string, value float64, best bool) {
	if !m.enabled {
		return
	}
	m.indicatorValue.WithLabelValues(period, indicator, house).Set(value)
	flag := 0.0
	if best {
		flag = 1
	}
	m.bestHouse.WithLabelValues(period, indicator, house).Set(flag)
}

// RecordChartRender counts a chart render with result ok or error.
func (m *Manager) RecordChartRender(result string) {
	if !m.enabled {
		return
	}
	m.chartRenders.WithLabelValues(result).Inc()
}

// RecordSnapshotReload counts a snapshot load with result ok or error.
func (m *Manager) RecordSnapshotReload(result string) {
	if !m.enabled {
		return
	}
	m.snapshotReloads.WithLabelValues(result).Inc()
}

// UpdateSnapshotTimestamp publishes the updated_at of the served snapshot.
func (m *Manager) UpdateSnapshotTimestamp(t time.Time) {
	if !m.enabled || t.IsZero() {
		return
	}
	m.snapshotUpdatedAt.Set(float64(t.Unix()))
}

// RecordHTTPRequest records an HTTP request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordHTTPError records an error response.
func (m *Manager) RecordHTTPError(endpoint, method, errorType, severity string) {
	if !m.enabled {
		return
	}
	m.httpErrors.WithLabelValues(endpoint, method, errorType, severity).Inc()
}

// UpdateSystem publishes memory and goroutine gauges.
func (m *Manager) UpdateSystem(memBytes uint64, goroutines int) {
	if !m.enabled {
		return
	}
	m.systemMemoryUsage.Set(float64(memBytes))
	m.systemGoroutineCount.Set(float64(goroutines))
}

// RecordBoardBuild records on the global manager.
func RecordBoardBuild(period string, latencyMs float64) {
	globalManager.RecordBoardBuild(period, latencyMs)
}

// RecordBoardError records on the global manager.
func RecordBoardError(kind string) {
	globalManager.RecordBoardError(kind)
}

// UpdateIndicatorValue records on the global manager.
func UpdateIndicatorValue(period, indicator, house string, value float64, best bool) {
	globalManager.UpdateIndicatorValue(period, indicator, house, value, best)
}

// RecordChartRender records on the global manager.
func RecordChartRender(result string) {
	globalManager.RecordChartRender(result)
}

// RecordSnapshotReload records on the global manager.
func RecordSnapshotReload(result string) {
	globalManager.RecordSnapshotReload(result)
}

// UpdateSnapshotTimestamp records on the global manager.
func UpdateSnapshotTimestamp(t time.Time) {
	globalManager.UpdateSnapshotTimestamp(t)
}

// RecordHTTPRequest records on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordHTTPError records on the global manager.
func RecordHTTPError(endpoint, method, errorType, severity string) {
	globalManager.RecordHTTPError(endpoint, method, errorType, severity)
}

// UpdateSystem records on the global manager.
func UpdateSystem(memBytes uint64, goroutines int) {
	globalManager.UpdateSystem(memBytes, goroutines)
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
