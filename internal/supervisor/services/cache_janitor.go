// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ExpiringCache drops expired entries on demand. Satisfied by *cache.LRUCache.
type ExpiringCache interface {
	CleanupExpired() int
}

// CacheJanitorService periodically sweeps an ExpiringCache.
type CacheJanitorService struct {
	cache    ExpiringCache
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheJanitorService sweeps c every interval (default 1m).
//
//nolint:gocritic // zerolog.Logger is passed by value throughout
func NewCacheJanitorService(c ExpiringCache, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{
		cache:    c,
		interval: interval,
		logger:   logger.With().Str("component", "cache-janitor").Logger(),
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.cache.CleanupExpired(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired cache entries removed")
			}
		}
	}
}

func (s *CacheJanitorService) String() string {
	return "cache-janitor"
}
