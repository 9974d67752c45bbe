// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/metrics"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/recommend/tfidf"
)

// Reasons reported when a request produces no recommendations.
const (
	EmptyNoLikes      = "no_likes"
	EmptyNoMatch      = "no_match"
	EmptyNoCandidates = "no_candidates"
	EmptyProfile      = "empty_profile"
)

// Engine scores a corpus against a user's liked movies.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	requestCount   atomic.Int64
	emptyCount     atomic.Int64
	errorCount     atomic.Int64
	latencyMicros  atomic.Int64
	completedCount atomic.Int64
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend ranks req.Corpus against req.Likes and returns the top K movies.
// The only errors are context cancellation before or after scoring.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := ctx.Err(); err != nil {
		e.recordError()
		return nil, fmt.Errorf("recommend: %w", err)
	}

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req)
	logger.Debug().
		Int("likes", len(req.Likes)).
		Int("corpus", len(req.Corpus)).
		Msg("processing recommendation request")

	if len(req.Likes) == 0 {
		logger.Debug().Msg("no liked movies")
		return e.emptyResponse(req, tfidf.Result{}, start, EmptyNoLikes), nil
	}

	result := tfidf.Rank(req.Likes, req.Corpus, req.K, e.config.options())

	if err := ctx.Err(); err != nil {
		e.recordError()
		return nil, fmt.Errorf("recommend: %w", err)
	}

	if len(result.Items) == 0 {
		reason := emptyReason(result)
		logger.Debug().
			Str("reason", reason).
			Int("likes_matched", result.LikesMatched).
			Msg("no recommendations produced")
		return e.emptyResponse(req, result, start, reason), nil
	}

	resp := e.buildResponse(req, result, start)
	e.recordLatency(start)
	metrics.RecordRecommendation(time.Since(start), len(req.Corpus), len(resp.Items))

	logger.Debug().
		Int("candidates", result.Candidates).
		Int("returned", len(resp.Items)).
		Int("likes_matched", result.LikesMatched).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies defaults and generates request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}

	if req.K <= 0 {
		req.K = e.config.Limits.DefaultK
	}
	if req.K > e.config.Limits.MaxK {
		req.K = e.config.Limits.MaxK
	}

	if len(req.Corpus) > e.config.Limits.MaxCorpus {
		e.logger.Warn().
			Str("request_id", req.RequestID).
			Int("corpus", len(req.Corpus)).
			Int("max_corpus", e.config.Limits.MaxCorpus).
			Msg("corpus truncated")
		req.Corpus = req.Corpus[:e.config.Limits.MaxCorpus]
	}

	return req
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("user_id", req.UserID).
		Int("k", req.K).
		Logger()
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponse(req Request, result tfidf.Result, start time.Time) *Response {
	items := make([]ScoredMovie, len(result.Items))
	for i, it := range result.Items {
		items[i] = ScoredMovie{Movie: it.Movie, Score: it.Score, Rank: i + 1}
	}

	return &Response{
		Items:           items,
		TotalCandidates: result.Candidates,
		Metadata:        e.buildResponseMetadata(req, result, start),
	}
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponseMetadata(req Request, result tfidf.Result, start time.Time) ResponseMetadata {
	smoothing := e.config.Weighting.Smoothing
	if smoothing == "" {
		smoothing = tfidf.SmoothingReference
	}

	return ResponseMetadata{
		RequestID:    req.RequestID,
		UserID:       req.UserID,
		K:            req.K,
		LikesTotal:   len(req.Likes),
		LikesMatched: result.LikesMatched,
		CorpusSize:   len(req.Corpus),
		Vocabulary:   result.Vocabulary,
		Smoothing:    string(smoothing),
		LatencyMS:    time.Since(start).Milliseconds(),
		Timestamp:    time.Now(),
	}
}

// emptyResponse returns a response with no items.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) emptyResponse(req Request, result tfidf.Result, start time.Time, reason string) *Response {
	e.emptyCount.Add(1)
	e.recordLatency(start)
	metrics.RecordEmptyRecommendation(reason)

	return &Response{
		Items:           []ScoredMovie{},
		TotalCandidates: result.Candidates,
		Metadata:        e.buildResponseMetadata(req, result, start),
	}
}

func emptyReason(result tfidf.Result) string {
	switch {
	case result.LikesMatched == 0:
		return EmptyNoMatch
	case result.ProfileTerms == 0:
		return EmptyProfile
	default:
		return EmptyNoCandidates
	}
}

func (e *Engine) recordLatency(start time.Time) {
	e.latencyMicros.Add(time.Since(start).Microseconds())
	e.completedCount.Add(1)
}

func (e *Engine) recordError() {
	e.errorCount.Add(1)
	metrics.RecordRecommendationError()
}

// GetMetrics returns the current engine metrics.
func (e *Engine) GetMetrics() Metrics {
	m := Metrics{
		RequestCount: e.requestCount.Load(),
		EmptyCount:   e.emptyCount.Load(),
		ErrorCount:   e.errorCount.Load(),
	}
	if n := e.completedCount.Load(); n > 0 {
		m.AverageLatencyMS = float64(e.latencyMicros.Load()) / float64(n) / 1000
	}
	return m
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}
