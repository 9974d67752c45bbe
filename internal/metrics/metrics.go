// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time spent scoring a recommendation request",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendCorpusSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_corpus_size",
			Help:    "Number of movies scored per recommendation request",
			Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_results",
			Help:    "Number of movies returned per recommendation request",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	RecommendEmpty = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_empty_total",
			Help: "Recommendation requests that returned no movies",
		},
		[]string{"reason"}, // "no_likes", "no_match", "no_candidates"
	)

	RecommendErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_errors_total",
			Help: "Recommendation requests that failed",
		},
	)

	// TMDB Metrics
	TMDBRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_requests_total",
			Help: "Total number of TMDB API requests",
		},
		[]string{"operation", "status"}, // status: "success", "error"
	)

	TMDBRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "Duration of TMDB API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	TMDBRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_retries_total",
			Help: "TMDB requests retried after HTTP 429",
		},
		[]string{"operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Requests through the circuit breaker by result",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current consecutive failures seen by the circuit breaker",
		},
		[]string{"name"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"backend"}, // "memory", "redis"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"backend"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Entries evicted for capacity or expiry",
		},
		[]string{"backend"},
	)

	// Preference Store Metrics
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preference_store_operations_total",
			Help: "Preference store operations by backend, operation and result",
		},
		[]string{"backend", "operation", "result"},
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "preference_store_operation_duration_seconds",
			Help:    "Preference store operation latency",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"backend", "operation"},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections_active",
			Help: "Currently open recommendation websocket connections",
		},
	)

	WSMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_messages_total",
			Help: "WebSocket messages by direction",
		},
		[]string{"direction"}, // "in", "out"
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records a completed scoring run.
func RecordRecommendation(duration time.Duration, corpusSize, results int) {
	RecommendDuration.Observe(duration.Seconds())
	RecommendCorpusSize.Observe(float64(corpusSize))
	RecommendResults.Observe(float64(results))
}

// RecordEmptyRecommendation records why a request returned nothing.
func RecordEmptyRecommendation(reason string) {
	RecommendEmpty.WithLabelValues(reason).Inc()
}

// RecordRecommendationError counts a failed recommendation request.
func RecordRecommendationError() {
	RecommendErrors.Inc()
}

// RecordTMDBRequest records a TMDB call.
func RecordTMDBRequest(operation string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	TMDBRequestsTotal.WithLabelValues(operation, status).Inc()
	TMDBRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordTMDBRetry counts a retry after a 429.
func RecordTMDBRetry(operation string) {
	TMDBRetries.WithLabelValues(operation).Inc()
}

// RecordCacheHit records a cache hit
func RecordCacheHit(backend string) {
	CacheHits.WithLabelValues(backend).Inc()
}

// RecordCacheMiss records a cache miss
func RecordCacheMiss(backend string) {
	CacheMisses.WithLabelValues(backend).Inc()
}

// RecordCacheEviction records an evicted entry.
func RecordCacheEviction(backend string) {
	CacheEvictions.WithLabelValues(backend).Inc()
}

// RecordStoreOperation records a preference store call.
func RecordStoreOperation(backend, operation string, err error, duration time.Duration) {
	result := "success"
	if err != nil {
		result = "error"
	}
	StoreOperations.WithLabelValues(backend, operation, result).Inc()
	StoreOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
}

// TrackWSConnection increments or decrements the websocket gauge.
func TrackWSConnection(open bool) {
	if open {
		WSConnections.Inc()
	} else {
		WSConnections.Dec()
	}
}

// RecordWSMessage counts a websocket frame.
func RecordWSMessage(direction string) {
	WSMessages.WithLabelValues(direction).Inc()
}
