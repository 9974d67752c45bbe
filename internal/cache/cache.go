// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/config"
)

// Backend names accepted by New.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Cache is a byte-oriented key/value cache with expiry.
type Cache interface {
	// Get returns the stored value and true, or false when absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value. A ttl of zero or less uses the backend default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// New builds the cache selected by cfg.Backend.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(cfg config.CacheConfig, logger zerolog.Logger) (Cache, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		logger.Info().Int("max_entries", cfg.MaxEntries).Dur("ttl", cfg.TTL).Msg("Using in-memory response cache")
		return NewLRUCache(cfg.MaxEntries, cfg.TTL), nil
	case BackendRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rc, err := NewRedisCache(ctx, RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.TTL,
		})
		if err != nil {
			return nil, err
		}
		logger.Info().Str("addr", cfg.RedisAddr).Int("db", cfg.RedisDB).Msg("Using Redis response cache")
		return rc, nil
	case BackendNone:
		logger.Warn().Msg("Response cache disabled; every catalog read goes to TMDB")
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Nop is a Cache that stores nothing.
type Nop struct{}

// Get always misses.
func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards value.
func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete does nothing.
func (Nop) Delete(context.Context, string) error { return nil }

// Close does nothing.
func (Nop) Close() error { return nil }
