// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

// PopularFetcher fetches the first n popular pages. Satisfied by a closure
// over tmdb.PopularPages.
type PopularFetcher func(ctx context.Context, n int) ([]models.Movie, error)

// CatalogWarmerConfig controls the warm loop.
type CatalogWarmerConfig struct {
	// Pages is how many popular pages to fetch. Match tmdb.popular_pages so
	// the recommendation corpus is served from cache.
	Pages int

	// Interval between refreshes. Should be shorter than the cache TTL.
	Interval time.Duration

	// Timeout bounds one refresh. Default 1m.
	Timeout time.Duration
}

// CatalogWarmerService keeps the popular pages in the TMDB response cache.
type CatalogWarmerService struct {
	fetch  PopularFetcher
	config CatalogWarmerConfig
	logger zerolog.Logger
}

// NewCatalogWarmerService creates the warmer.
//
//nolint:gocritic // zerolog.Logger is passed by value throughout
func NewCatalogWarmerService(fetch PopularFetcher, cfg CatalogWarmerConfig, logger zerolog.Logger) *CatalogWarmerService {
	if cfg.Pages < 1 {
		cfg.Pages = 1
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}
	return &CatalogWarmerService{
		fetch:  fetch,
		config: cfg,
		logger: logger.With().Str("component", "catalog-warmer").Logger(),
	}
}

// Serve warms once on start, then on every tick. Failed refreshes are
// logged; the next tick retries.
func (s *CatalogWarmerService) Serve(ctx context.Context) error {
	s.logger.Info().
		Int("pages", s.config.Pages).
		Dur("interval", s.config.Interval).
		Msg("catalog warmer starting")

	s.warm(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.warm(ctx)
		}
	}
}

func (s *CatalogWarmerService) warm(ctx context.Context) {
	warmCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	movies, err := s.fetch(warmCtx, s.config.Pages)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn().Err(err).Msg("catalog warm failed")
		}
		return
	}

	s.logger.Debug().
		Int("movies", len(movies)).
		Dur("duration", time.Since(start)).
		Msg("catalog warmed")
}

func (s *CatalogWarmerService) String() string {
	return "catalog-warmer"
}
