// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

/*
Package config loads and validates the service configuration.

# Configuration Sources

Values are layered, later sources winning:

 1. Built-in defaults (defaultConfig)
 2. A .env file in the working directory (development)
 3. A YAML file: CONFIG_PATH, else config.yaml / config.yml, else /etc/movie-recommendations/
 4. Environment variables

Only the environment variables listed in envMappings are read; anything else
in the process environment is ignored.

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - PORT, HTTP_PORT: Listen port (default: 5002)
  - HTTP_TIMEOUT: Request timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)

TMDB:
  - TMDB_API_KEY: API key; catalog endpoints fail with UPSTREAM_ERROR when unset
  - TMDB_BASE_URL: API root (default: https://api.themoviedb.org/3)
  - TMDB_LANGUAGE: Response language (default: en-US)
  - TMDB_TIMEOUT, TMDB_RPS, TMDB_BURST, TMDB_MAX_RETRIES
  - TMDB_POPULAR_PAGES: Popular pages in the recommendation corpus (default: 2)

Cache:
  - CACHE_BACKEND: memory, redis or none (default: memory)
  - CACHE_TTL, CACHE_MAX_ENTRIES
  - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB

Preference Store:
  - STORE_DRIVER: memory, badger, mongo or postgres (default: memory)
  - BADGER_PATH, MONGO_URI, MONGO_DATABASE, POSTGRES_DSN

Recommendations:
  - RECOMMEND_DEFAULT_K (5), RECOMMEND_MAX_K (50)
  - RECOMMEND_IDF_SMOOTHING: reference or plus_one
  - RECOMMEND_KEEP_ZERO_IDF: keep terms whose IDF is exactly zero
  - RECOMMEND_MAX_CORPUS, RECOMMEND_TIMEOUT

Security:
  - AUTH_ENABLED: require bearer tokens on per-user routes (default: false)
  - JWT_SECRET: HMAC secret, min 32 chars when auth is enabled
  - JWT_TOKEN_TTL (24h), CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config
