package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Provider call outcomes used as the "outcome" label.
const (
	OutcomeSuccess     = "success"
	OutcomeUnavailable = "unavailable"
	OutcomeMalformed   = "malformed"
	OutcomeNoCreds     = "missing_credentials"
)

var latencyBuckets = []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000}

// Manager owns every Prometheus collector of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Scoring
	profilesComputed *prometheus.CounterVec
	profileLatency   prometheus.Histogram
	overallTier      prometheus.Histogram
	overridesApplied *prometheus.CounterVec

	// Providers
	providerRequests *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
	providerPages    *prometheus.CounterVec
	familyExhausted  *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec

	// Batch
	batchAddresses  *prometheus.CounterVec
	batchDuplicates prometheus.Counter
	workerCount     prometheus.Gauge

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // keeps default Go collectors out

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "beast",
		subsystem:        "score",
		histogramBuckets: latencyBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, Buckets: buckets, ConstLabels: m.constLabels}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for all collectors
	auto := promauto.With(m.registry)

	m.profilesComputed = auto.NewCounterVec(m.counterOpts("profiles_total",
		"Wallet profile computations by result"), []string{"result"})
	m.profileLatency = auto.NewHistogram(m.histogramOpts("profile_latency_milliseconds",
		"End-to-end wallet profile latency in milliseconds", m.histogramBuckets))
	m.overallTier = auto.NewHistogram(m.histogramOpts("overall_tier",
		"Distribution of computed overall tiers", []float64{0, 1, 2, 3, 4, 5}))
	m.overridesApplied = auto.NewCounterVec(m.counterOpts("overrides_applied_total",
		"Manual overrides applied by metric"), []string{"metric"})

	m.providerRequests = auto.NewCounterVec(m.counterOpts("provider_requests_total",
		"Provider calls by provider, metric family and outcome"), []string{"provider", "family", "outcome"})
	m.providerLatency = auto.NewHistogramVec(m.histogramOpts("provider_latency_milliseconds",
		"Provider call latency in milliseconds, pagination included", m.histogramBuckets), []string{"provider", "family"})
	m.providerPages = auto.NewCounterVec(m.counterOpts("provider_pages_total",
		"Pages fetched from paginated provider endpoints"), []string{"provider", "family"})
	m.familyExhausted = auto.NewCounterVec(m.counterOpts("family_exhausted_total",
		"Metric families for which every provider failed"), []string{"family"})

	m.httpRequests = auto.NewCounterVec(m.counterOpts("http_requests_total",
		"Total number of HTTP requests by endpoint and method"), []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(m.histogramOpts("http_request_duration_milliseconds",
		"HTTP request duration in milliseconds", m.histogramBuckets), []string{"endpoint", "method", "status_code"})
	m.errorRateByEndpoint = auto.NewCounterVec(m.counterOpts("errors_by_endpoint_total",
		"Total number of errors by endpoint"), []string{"endpoint", "method", "error_type"})

	m.batchAddresses = auto.NewCounterVec(m.counterOpts("batch_addresses_total",
		"Addresses processed by the batch runner by result"), []string{"result"})
	m.batchDuplicates = auto.NewCounter(m.counterOpts("batch_duplicates_total",
		"Duplicate addresses skipped by the batch runner"))
	m.workerCount = auto.NewGauge(m.gaugeOpts("worker_count",
		"Current number of batch workers"))

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes",
		"System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count",
		"Number of goroutines"))
}

// RecordProfile counts a profile computation; result is "ok" or "error".
func (m *Manager) RecordProfile(result string, latencyMs float64) {
	m.profilesComputed.WithLabelValues(result).Inc()
	m.profileLatency.Observe(latencyMs)
}

// RecordOverallTier observes a computed overall tier.
func (m *Manager) RecordOverallTier(tier int) { m.overallTier.Observe(float64(tier)) }

// RecordOverride counts an applied manual override.
func (m *Manager) RecordOverride(metric string) { m.overridesApplied.WithLabelValues(metric).Inc() }

// RecordProviderRequest counts one provider call with its outcome and latency.
func (m *Manager) RecordProviderRequest(provider, family, outcome string, latencyMs float64) {
	m.providerRequests.WithLabelValues(provider, family, outcome).Inc()
	m.providerLatency.WithLabelValues(provider, family).Observe(latencyMs)
}

// RecordProviderPage counts one fetched page.
func (m *Manager) RecordProviderPage(provider, family string) {
	m.providerPages.WithLabelValues(provider, family).Inc()
}

// RecordFamilyExhausted counts a family whose fallback chain ran out.
func (m *Manager) RecordFamilyExhausted(family string) { m.familyExhausted.WithLabelValues(family).Inc() }

// RecordHTTPRequest records an HTTP request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByEndpoint records an HTTP error response.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordBatchAddress counts one batch entry by result.
func (m *Manager) RecordBatchAddress(result string) { m.batchAddresses.WithLabelValues(result).Inc() }

// RecordBatchDuplicate counts a skipped duplicate address.
func (m *Manager) RecordBatchDuplicate() { m.batchDuplicates.Inc() }

// UpdateWorkerCount sets the current worker count.
func (m *Manager) UpdateWorkerCount(count int) { m.workerCount.Set(float64(count)) }

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) { m.systemMemoryUsage.Set(float64(bytes)) }

// UpdateSystemGoroutineCount sets the number of goroutines.
func (m *Manager) UpdateSystemGoroutineCount(count int) { m.systemGoroutineCount.Set(float64(count)) }

// Package-level helpers delegate to the global manager.

func RecordProfile(result string, latencyMs float64) { globalManager.RecordProfile(result, latencyMs) }
func RecordOverallTier(tier int)                     { globalManager.RecordOverallTier(tier) }
func RecordOverride(metric string)                   { globalManager.RecordOverride(metric) }
func RecordProviderRequest(provider, family, outcome string, latencyMs float64) {
	globalManager.RecordProviderRequest(provider, family, outcome, latencyMs)
}
func RecordProviderPage(provider, family string) { globalManager.RecordProviderPage(provider, family) }
func RecordFamilyExhausted(family string)         { globalManager.RecordFamilyExhausted(family) }
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.RecordErrorByEndpoint(endpoint, method, errorType)
}
func RecordBatchAddress(result string)        { globalManager.RecordBatchAddress(result) }
func RecordBatchDuplicate()                   { globalManager.RecordBatchDuplicate() }
func UpdateWorkerCount(count int)             { globalManager.UpdateWorkerCount(count) }
func UpdateSystemMemoryUsage(bytes uint64)    { globalManager.UpdateSystemMemoryUsage(bytes) }
func UpdateSystemGoroutineCount(count int)    { globalManager.UpdateSystemGoroutineCount(count) }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
