// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

/*
Package tmdb supplies the movie corpus from The Movie Database v3 API.

# Layers

The service talks to a Provider built in three layers:

	client := tmdb.NewClient(cfg.TMDB, logger)      // HTTP, rate limit, 429 retry
	breaker := tmdb.NewBreakerClient(client)        // gobreaker circuit breaker
	provider := tmdb.NewCachedClient(breaker, c, ttl) // cache.Cache memoization

Each layer implements Provider, so tests substitute any of them.

# Genre Text

TMDB list endpoints return genre_ids. The client resolves them through the
genre list (fetched once and kept for the process lifetime) and stores the
names joined by a single space in models.Movie.Genre, which is the genre
text the recommender tokenizes.

# Errors

  - ErrNotConfigured: no API key; no request is made
  - ErrUnauthorized: TMDB answered 401
  - ErrNotFound: TMDB answered 404
  - *APIError: any other non-200 status
*/
package tmdb
