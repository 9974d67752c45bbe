// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/cache"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/config"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/supervisor/services"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/tmdb"
)

// catalogComponents is the TMDB provider stack and the cache under it.
type catalogComponents struct {
	// Provider is client -> circuit breaker -> response cache.
	Provider tmdb.Provider
	cache    cache.Cache
}

// initCatalog builds the TMDB provider. Cache hits never reach the breaker,
// so an open breaker still serves cached pages.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initCatalog(cfg *config.Config, logger zerolog.Logger) (*catalogComponents, error) {
	c, err := cache.New(cfg.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("response cache: %w", err)
	}

	client := tmdb.NewClient(cfg.TMDB, logger)
	breaker := tmdb.NewBreakerClient(client)

	return &catalogComponents{
		Provider: tmdb.NewCachedClient(breaker, c, cfg.Cache.TTL, logger),
		cache:    c,
	}, nil
}

// Services returns the data-layer services for this catalog: the warmer when
// a warm interval and API key are set, the janitor for the in-process cache.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func (c *catalogComponents) Services(cfg *config.Config, logger zerolog.Logger) []suture.Service {
	var out []suture.Service

	if cfg.TMDB.WarmInterval > 0 && cfg.TMDBEnabled() && cfg.Cache.Backend != cache.BackendNone {
		provider := c.Provider
		fetch := func(ctx context.Context, n int) ([]models.Movie, error) {
			return tmdb.PopularPages(ctx, provider, n)
		}
		out = append(out, services.NewCatalogWarmerService(fetch, services.CatalogWarmerConfig{
			Pages:    cfg.TMDB.PopularPages,
			Interval: cfg.TMDB.WarmInterval,
		}, logger))
	}

	if lru, ok := c.cache.(*cache.LRUCache); ok {
		out = append(out, services.NewCacheJanitorService(lru, cfg.Cache.TTL, logger))
	}

	return out
}

// Close releases the cache.
func (c *catalogComponents) Close() error {
	return c.cache.Close()
}
