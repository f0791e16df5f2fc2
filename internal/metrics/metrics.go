// Package metrics provides the centralized Prometheus metrics registry for
// the analyzer service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	BatchesAnalyzedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sportsline_analyzer",
		Name:      "batches_analyzed_total",
		Help:      "Total number of game batches analyzed",
	})
	GamesAnalyzedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sportsline_analyzer",
		Name:      "games_analyzed_total",
		Help:      "Total number of games analyzed",
	})
	ValidationFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sportsline_analyzer",
		Name:      "validation_failures_total",
		Help:      "Total number of rejected request payloads",
	})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sportsline_analyzer",
		Name:      "cache_hits_total",
		Help:      "Total number of analysis responses served from cache",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sportsline_analyzer",
		Name:      "cache_misses_total",
		Help:      "Total number of analysis requests not found in cache",
	})
)

// Histogram metrics
var (
	AnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sportsline_analyzer",
		Name:      "analysis_duration_seconds",
		Help:      "Duration of batch analysis in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	BatchSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sportsline_analyzer",
		Name:      "batch_size_games",
		Help:      "Number of games per analyzed batch",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(BatchesAnalyzedTotal)
		registry.MustRegister(GamesAnalyzedTotal)
		registry.MustRegister(ValidationFailuresTotal)
		registry.MustRegister(CacheHitsTotal)
		registry.MustRegister(CacheMissesTotal)

		registry.MustRegister(AnalysisDuration)
		registry.MustRegister(BatchSize)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordBatchAnalyzed records one completed batch analysis.
func RecordBatchAnalyzed(games int, durationSeconds float64) {
	BatchesAnalyzedTotal.Inc()
	GamesAnalyzedTotal.Add(float64(games))
	BatchSize.Observe(float64(games))
	AnalysisDuration.Observe(durationSeconds)
}

// RecordValidationFailure records one rejected payload.
func RecordValidationFailure() {
	ValidationFailuresTotal.Inc()
}
