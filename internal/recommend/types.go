// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package recommend

import (
	"time"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

// ScoredMovie is a movie with its similarity to the user's profile.
type ScoredMovie struct {
	models.Movie

	// Score is the cosine similarity to the profile, in [-1, 1].
	Score float64 `json:"score"`

	// Rank is the 1-based position in the result.
	Rank int `json:"rank"`
}

// Request contains parameters for a recommendation request.
type Request struct {
	// UserID is the user the recommendations are for. Used for logging only.
	UserID string `json:"user_id"`

	// Likes are the movies the user liked, in the order they were liked.
	Likes []models.Movie `json:"likes"`

	// Corpus is every movie that may be scored. Liked movies should be
	// part of it for their vectors to contribute to the profile.
	Corpus []models.Movie `json:"corpus"`

	// K is the number of recommendations to return.
	// If zero, DefaultK from config is used.
	K int `json:"k"`

	// RequestID is an optional request identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// Response contains recommendation results.
type Response struct {
	// Items are the recommended movies, best first.
	Items []ScoredMovie `json:"items"`

	// TotalCandidates is the number of movies scored.
	TotalCandidates int `json:"total_candidates"`

	// Metadata contains information about the request processing.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains information about how recommendations were generated.
type ResponseMetadata struct {
	// RequestID is the unique identifier for this request.
	RequestID string `json:"request_id"`

	// UserID is the user recommendations were generated for.
	UserID string `json:"user_id"`

	// K is the effective number of results requested.
	K int `json:"k"`

	// LikesTotal is the number of liked movies in the request.
	LikesTotal int `json:"likes_total"`

	// LikesMatched is the number of liked movies found in the corpus.
	LikesMatched int `json:"likes_matched"`

	// CorpusSize is the number of movies in the scored corpus.
	CorpusSize int `json:"corpus_size"`

	// Vocabulary is the number of distinct terms in the corpus.
	Vocabulary int `json:"vocabulary"`

	// Smoothing is the IDF formula used.
	Smoothing string `json:"smoothing"`

	// LatencyMS is the processing time in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Timestamp is when the recommendations were generated.
	Timestamp time.Time `json:"timestamp"`
}

// Metrics contains engine performance counters.
type Metrics struct {
	// RequestCount is the total number of recommendation requests.
	RequestCount int64 `json:"request_count"`

	// EmptyCount is the number of requests that returned no movies.
	EmptyCount int64 `json:"empty_count"`

	// ErrorCount is the total number of errors.
	ErrorCount int64 `json:"error_count"`

	// AverageLatencyMS is the mean scoring latency.
	AverageLatencyMS float64 `json:"average_latency_ms"`
}
