// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

/*
Package cache holds TMDB responses so repeated catalog reads and corpus
assembly do not hit the upstream API.

# Backends

  - memory: LRU with per-entry TTL, bounded by entry count (default)
  - redis: shared cache across replicas, TTL enforced by Redis
  - none: every Get misses and Set is discarded

All backends store opaque []byte values; callers own serialization.

# Usage

	c, err := cache.New(cfg.Cache, logger)
	if err != nil {
	    return err
	}
	defer c.Close()

	if data, ok, err := c.Get(ctx, "tmdb:popular:1"); err == nil && ok {
	    // decode data
	}
	_ = c.Set(ctx, "tmdb:popular:1", payload, 0) // 0 uses the backend default TTL

Every hit, miss and eviction is counted in the cache_* Prometheus metrics
labelled by backend.
*/
package cache
