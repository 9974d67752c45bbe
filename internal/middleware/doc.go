// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

/*
Package middleware provides chi-compatible HTTP middleware shared by every route.

Key Components:

  - RequestID: UUID request ids on the response header, request context and
    logging context
  - PrometheusMetrics: request counts, latency and in-flight gauge, labelled
    by chi route pattern so user ids never become label values
  - AccessLog: one structured zerolog line per request

Middleware Stack:

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

The response writer wrapper used by the metrics and access log middleware
implements http.Hijacker so websocket upgrades pass through it.
*/
package middleware
