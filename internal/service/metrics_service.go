package service

import (
	"net/http"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query outcomes recorded by AvailabilityService.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// MetricsService encapsulates Prometheus instrumentation for the API and the engine.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	queryTotal      *prometheus.CounterVec
	snapshotHits    prometheus.Counter
	snapshotMisses  prometheus.Counter
	datasetDays     prometheus.Gauge

	requestCount uint64
	queryCount   uint64
	dayCount     int64
}

// MetricsSnapshot is a lightweight view of counters for health endpoints.
type MetricsSnapshot struct {
	RequestsTotal uint64    `json:"requests_total"`
	QueriesTotal  uint64    `json:"queries_total"`
	DatasetDays   int       `json:"dataset_days"`
	Goroutines    int       `json:"goroutines"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	queryTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "availability_queries_total",
		Help: "Availability engine queries by operation and outcome",
	}, []string{"operation", "outcome"})

	snapshotHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dataset_snapshot_cache_hits_total",
		Help: "Dataset loads served from the snapshot cache",
	})

	snapshotMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dataset_snapshot_cache_misses_total",
		Help: "Dataset loads that went to the source",
	})

	datasetDays := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dataset_days",
		Help: "Number of working days in the loaded dataset",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, queryTotal, snapshotHits, snapshotMisses, datasetDays, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		queryTotal:      queryTotal,
		snapshotHits:    snapshotHits,
		snapshotMisses:  snapshotMisses,
		datasetDays:     datasetDays,
	}
}

// Handler exposes the Prometheus scrape handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return m.handler
}

// Registry returns the underlying registry.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
}

// RecordQuery counts one engine operation with its outcome.
func (m *MetricsService) RecordQuery(operation, outcome string) {
	if m == nil {
		return
	}
	m.queryTotal.WithLabelValues(operation, outcome).Inc()
	atomic.AddUint64(&m.queryCount, 1)
}

// RecordSnapshotLookup counts a snapshot cache hit or miss.
func (m *MetricsService) RecordSnapshotLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.snapshotHits.Inc()
		return
	}
	m.snapshotMisses.Inc()
}

// SetDatasetDays records the size of the loaded dataset.
func (m *MetricsService) SetDatasetDays(n int) {
	if m == nil {
		return
	}
	m.datasetDays.Set(float64(n))
	atomic.StoreInt64(&m.dayCount, int64(n))
}

// Snapshot returns aggregated counters.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		RequestsTotal: atomic.LoadUint64(&m.requestCount),
		QueriesTotal:  atomic.LoadUint64(&m.queryCount),
		DatasetDays:   int(atomic.LoadInt64(&m.dayCount)),
		Goroutines:    runtime.NumGoroutine(),
		GeneratedAt:   time.Now().UTC(),
	}
}
