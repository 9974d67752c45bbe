// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/logging"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/metrics"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

// breakerName labels the circuit breaker metrics.
const breakerName = "tmdb-api"

// BreakerSettings tunes the circuit breaker. Zero values take the defaults
// from DefaultBreakerSettings.
type BreakerSettings struct {
	MaxRequests  uint32        // requests allowed while half-open
	Interval     time.Duration // closed-state count reset period
	Timeout      time.Duration // open period before half-open
	MinRequests  uint32        // requests needed before the ratio is considered
	FailureRatio float64       // trip threshold
}

// DefaultBreakerSettings opens the circuit when at least 60% of 10 or more
// requests in a minute fail, and probes again after two minutes.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// BreakerClient wraps a Provider with a circuit breaker so a failing TMDB
// is not hammered by every recommendation request.
type BreakerClient struct {
	next Provider
	cb   *gobreaker.CircuitBreaker[interface{}]
	name string
}

// NewBreakerClient wraps next with DefaultBreakerSettings.
func NewBreakerClient(next Provider) *BreakerClient {
	return NewBreakerClientWithSettings(next, DefaultBreakerSettings())
}

// NewBreakerClientWithSettings wraps next with s.
func NewBreakerClientWithSettings(next Provider, s BreakerSettings) *BreakerClient {
	def := DefaultBreakerSettings()
	if s.MaxRequests == 0 {
		s.MaxRequests = def.MaxRequests
	}
	if s.Interval <= 0 {
		s.Interval = def.Interval
	}
	if s.Timeout <= 0 {
		s.Timeout = def.Timeout
	}
	if s.MinRequests == 0 {
		s.MinRequests = def.MinRequests
	}
	if s.FailureRatio <= 0 {
		s.FailureRatio = def.FailureRatio
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= s.FailureRatio
			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// Client mistakes and cancellations say nothing about TMDB health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrNotFound) ||
				errors.Is(err, ErrNotConfigured) ||
				errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &BreakerClient{next: next, cb: cb, name: breakerName}
}

// State returns the current breaker state as "closed", "half-open" or "open".
func (b *BreakerClient) State() string {
	return stateToString(b.cb.State())
}

func (b *BreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("tmdb unavailable: %w", err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

// castResult converts the breaker's interface{} result back to T.
func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Popular calls through the breaker.
func (b *BreakerClient) Popular(ctx context.Context, page int) ([]models.Movie, error) {
	return castResult[[]models.Movie](b.execute(func() (interface{}, error) {
		return b.next.Popular(ctx, page)
	}))
}

// Search calls through the breaker.
func (b *BreakerClient) Search(ctx context.Context, query string) ([]models.Movie, error) {
	return castResult[[]models.Movie](b.execute(func() (interface{}, error) {
		return b.next.Search(ctx, query)
	}))
}

// Recommendations calls through the breaker.
func (b *BreakerClient) Recommendations(ctx context.Context, movieID int64) ([]models.Movie, error) {
	return castResult[[]models.Movie](b.execute(func() (interface{}, error) {
		return b.next.Recommendations(ctx, movieID)
	}))
}

// Movie calls through the breaker.
func (b *BreakerClient) Movie(ctx context.Context, movieID int64) (*models.Movie, error) {
	return castResult[*models.Movie](b.execute(func() (interface{}, error) {
		return b.next.Movie(ctx, movieID)
	}))
}

// Genres calls through the breaker.
func (b *BreakerClient) Genres(ctx context.Context) (map[int]string, error) {
	return castResult[map[int]string](b.execute(func() (interface{}, error) {
		return b.next.Genres(ctx)
	}))
}
