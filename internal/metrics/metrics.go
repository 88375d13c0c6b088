package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store metrics
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_store_query_duration_seconds",
			Help:    "Duration of record store fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_store_query_errors_total",
			Help: "Total number of failed record store fetches",
		},
		[]string{"backend"},
	)

	StoreBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recipe_store_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)

	// Retrieval metrics
	RetrievalOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_retrieval_outcomes_total",
			Help: "Retrieval requests by endpoint intent and outcome (found, not_found, invalid, error)",
		},
		[]string{"intent", "outcome"},
	)

	RetrievalCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_retrieval_candidates",
			Help:    "Number of candidates fetched before in-memory filtering",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"intent"},
	)

	// API metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	RateLimitRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limit_rejections_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"backend"},
	)
)

// ObserveStoreQuery records the duration and outcome of a store fetch
func ObserveStoreQuery(backend string, start time.Time, err error) {
	StoreQueryDuration.WithLabelValues(backend).Observe(time.Since(start).Seconds())
	if err != nil {
		StoreQueryErrors.WithLabelValues(backend).Inc()
	}
}

// ObserveHTTPRequest records the latency of one handled request
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
