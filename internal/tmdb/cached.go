// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/cache"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

// CachedClient memoizes Provider results in a cache.Cache. Cache failures
// are logged and fall through to the wrapped provider; errors are never cached.
type CachedClient struct {
	next   Provider
	cache  cache.Cache
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCachedClient wraps next. A ttl of zero uses the cache default.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCachedClient(next Provider, c cache.Cache, ttl time.Duration, logger zerolog.Logger) *CachedClient {
	return &CachedClient{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger.With().Str("component", "tmdb-cache").Logger(),
	}
}

// Popular is cached per page.
func (c *CachedClient) Popular(ctx context.Context, page int) ([]models.Movie, error) {
	return cached(ctx, c, fmt.Sprintf("tmdb:popular:%d", page), func() ([]models.Movie, error) {
		return c.next.Popular(ctx, page)
	})
}

// Search is cached per normalized query.
func (c *CachedClient) Search(ctx context.Context, query string) ([]models.Movie, error) {
	key := "tmdb:search:" + url.QueryEscape(strings.ToLower(strings.TrimSpace(query)))
	return cached(ctx, c, key, func() ([]models.Movie, error) {
		return c.next.Search(ctx, query)
	})
}

// Recommendations is cached per movie.
func (c *CachedClient) Recommendations(ctx context.Context, movieID int64) ([]models.Movie, error) {
	return cached(ctx, c, fmt.Sprintf("tmdb:recommendations:%d", movieID), func() ([]models.Movie, error) {
		return c.next.Recommendations(ctx, movieID)
	})
}

// Movie is cached per id.
func (c *CachedClient) Movie(ctx context.Context, movieID int64) (*models.Movie, error) {
	return cached(ctx, c, fmt.Sprintf("tmdb:movie:%d", movieID), func() (*models.Movie, error) {
		return c.next.Movie(ctx, movieID)
	})
}

// Genres is cached as a whole table.
func (c *CachedClient) Genres(ctx context.Context) (map[int]string, error) {
	return cached(ctx, c, "tmdb:genres", func() (map[int]string, error) {
		return c.next.Genres(ctx)
	})
}

// cached returns the decoded cache entry for key, or calls fetch and stores
// its result.
func cached[T any](ctx context.Context, c *CachedClient, key string, fetch func() (T, error)) (T, error) {
	if data, ok, err := c.cache.Get(ctx, key); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Cache read failed")
	} else if ok {
		var value T
		if err := json.Unmarshal(data, &value); err == nil {
			return value, nil
		}
		c.logger.Warn().Str("key", key).Msg("Discarding undecodable cache entry")
	}

	value, err := fetch()
	if err != nil {
		return value, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Cache encode failed")
		return value, nil
	}
	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
	return value, nil
}
