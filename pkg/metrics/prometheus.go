// Package metrics provides Prometheus metrics for the field mapping service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the fieldmap service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core Business Metrics - What really matters for a mapping engine
	mappingsTotal     *prometheus.CounterVec
	mappingLatency    prometheus.Histogram
	fuzzySimilarity   prometheus.Histogram
	mappingConfidence prometheus.Histogram
	batchSize         prometheus.Histogram

	// Operational Health Metrics
	queueSize   prometheus.Gauge
	workerCount prometheus.Gauge

	// Memo cache metrics
	memoHits   prometheus.Counter
	memoMisses prometheus.Counter

	// Queue Metrics - Job queue performance
	queueCapacity       prometheus.Gauge
	queueUtilization    prometheus.Gauge
	queueEnqueueRate    prometheus.Counter
	queueDequeueRate    prometheus.Counter
	queueEnqueueErrors  prometheus.Counter
	queueDequeueErrors  prometheus.Counter

	// Business Quality Metrics
	mappingErrors  *prometheus.CounterVec
	registryFields prometheus.Gauge
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
		namespace:        "fieldmap",
		subsystem:        "mapper",
		histogramBuckets: prometheus.DefBuckets,
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
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Core Business Metrics
	m.mappingsTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "mappings_total",
			Help:      "Total number of field mappings by match kind (exact, fuzzy, ignored, none)",
		},
		[]string{"kind"},
	)

	m.mappingLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "mapping_latency_milliseconds",
		Help:      "Histogram of single-field mapping latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.fuzzySimilarity = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fuzzy_similarity_ratio",
		Help:      "Histogram of best-candidate similarity ratios for fuzzy scans",
		Buckets:   prometheus.LinearBuckets(0.0, 0.1, 11),
	})

	m.mappingConfidence = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "mapping_confidence",
		Help:      "Histogram of reported confidence for accepted mappings",
		Buckets:   prometheus.LinearBuckets(0.0, 0.1, 11),
	})

	m.batchSize = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_size",
		Help:      "Histogram of batch mapping request sizes",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250},
	})

	// Operational Health Metrics
	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_size",
		Help:      "Current size of the mapping job queue (backlog indicator)",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Current number of active mapping workers (processing capacity)",
	})

	// Memo cache metrics
	m.memoHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "memo_hits_total",
		Help:      "Total number of memo cache hits for repeated field names",
	})

	m.memoMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "memo_misses_total",
		Help:      "Total number of memo cache misses",
	})

	// Queue Metrics
	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_capacity",
		Help:      "Configured capacity of the mapping job queue",
	})

	m.queueUtilization = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_utilization_ratio",
		Help:      "Queue utilization ratio (size / capacity)",
	})

	m.queueEnqueueRate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_enqueue_total",
		Help:      "Total number of jobs enqueued",
	})

	m.queueDequeueRate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_dequeue_total",
		Help:      "Total number of jobs dequeued",
	})

	m.queueEnqueueErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_enqueue_errors_total",
		Help:      "Total number of failed enqueue attempts",
	})

	m.queueDequeueErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_dequeue_errors_total",
		Help:      "Total number of failed dequeue attempts",
	})

	// Business Quality Metrics
	m.mappingErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "mapping_errors_total",
			Help:      "Total number of mapping errors by kind (index, validation)",
		},
		[]string{"kind"},
	)

	m.registryFields = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "registry_canonical_fields",
		Help:      "Number of canonical fields in the loaded schema registry",
	})
}

// Package-level helper functions that use the global manager.

// RecordMapping increments the mapping counter for a match kind.
func RecordMapping(kind string) {
	globalManager.mappingsTotal.WithLabelValues(kind).Inc()
}

// RecordMappingLatency records a single-field mapping latency.
func RecordMappingLatency(latencyMs float64) {
	globalManager.mappingLatency.Observe(latencyMs)
}

// RecordFuzzySimilarity records the best similarity found during a fuzzy scan.
func RecordFuzzySimilarity(ratio float64) {
	globalManager.fuzzySimilarity.Observe(ratio)
}

// RecordConfidence records the reported confidence of an accepted mapping.
func RecordConfidence(confidence float64) {
	globalManager.mappingConfidence.Observe(confidence)
}

// RecordBatchSize records the size of a batch mapping request.
func RecordBatchSize(size int) {
	globalManager.batchSize.Observe(float64(size))
}

// UpdateQueueSize sets the current queue size gauge.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateWorkerCount sets the current worker count gauge.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// RecordMemoHit increments the memo cache hit counter.
func RecordMemoHit() {
	globalManager.memoHits.Inc()
}

// RecordMemoMiss increments the memo cache miss counter.
func RecordMemoMiss() {
	globalManager.memoMisses.Inc()
}

// UpdateQueueCapacity sets the queue capacity gauge.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// UpdateQueueUtilization sets the queue utilization gauge.
func UpdateQueueUtilization(utilization float64) {
	globalManager.queueUtilization.Set(utilization)
}

// RecordQueueEnqueue increments the enqueue counter.
func RecordQueueEnqueue() {
	globalManager.queueEnqueueRate.Inc()
}

// RecordQueueDequeue increments the dequeue counter.
func RecordQueueDequeue() {
	globalManager.queueDequeueRate.Inc()
}

// RecordQueueEnqueueError increments the enqueue error counter.
func RecordQueueEnqueueError() {
	globalManager.queueEnqueueErrors.Inc()
}

// RecordQueueDequeueError increments the dequeue error counter.
func RecordQueueDequeueError() {
	globalManager.queueDequeueErrors.Inc()
}

// RecordMappingError increments the mapping error counter for an error kind.
func RecordMappingError(kind string) {
	globalManager.mappingErrors.WithLabelValues(kind).Inc()
}

// UpdateRegistryFields sets the canonical field count gauge.
func UpdateRegistryFields(count int) {
	globalManager.registryFields.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
