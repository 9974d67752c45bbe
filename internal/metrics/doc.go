// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

/*
Package metrics provides Prometheus metrics for the recommendation service.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Recommendation latency, corpus size and result size
  - TMDB API calls and circuit breaker state
  - Response cache hit/miss rates per backend
  - Preference store operations per backend
  - WebSocket connection counts

# Metrics Endpoint

Metrics are exposed at /metrics in Prometheus text format:

	curl http://localhost:5002/metrics

# Usage

All collectors are registered with the default registry through promauto.
Call the Record* helpers rather than touching collectors directly:

	start := time.Now()
	movies, err := client.Popular(ctx, 1)
	metrics.RecordTMDBRequest("popular", err, time.Since(start))
*/
package metrics
