// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package models

import (
	"time"
)

// APIResponse is the envelope every JSON endpoint writes.
//
// Status field values:
//   - "success": Request completed, see Data
//   - "error": Request failed, see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"preferences": [...]},
//	  "metadata": {"timestamp": "2026-10-19T12:00:00Z", "query_time_ms": 12}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "NO_PREFERENCES", "message": "No liked movies found for recommendations"},
//	  "metadata": {"timestamp": "2026-10-19T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and tracing information for a response.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is the structured error body.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - MISSING_QUERY: /search called without a query
//   - NO_PREFERENCES: User has no liked movies yet
//   - MOVIE_NOT_FOUND: A liked title could not be resolved
//   - UPSTREAM_ERROR: The movie metadata service failed
//   - STORE_ERROR: The preference store failed
//   - UNAUTHORIZED / FORBIDDEN: Authentication failures
//   - INTERNAL_ERROR: Anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
