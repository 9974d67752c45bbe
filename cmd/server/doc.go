// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

/*
Package main is the entry point for the movie recommendation server.

The server keeps a list of liked movies per user and ranks candidate movies
from TMDB against those likes with TF-IDF and cosine similarity.

# Application Architecture

	RootSupervisor ("movie-recommendations")
	├── DataSupervisor ("data-layer")
	│   ├── Catalog warmer (TMDB_WARM_INTERVAL > 0)
	│   └── Cache janitor (CACHE_BACKEND=memory)
	├── MessagingSupervisor ("messaging-layer")
	│   └── WebSocket hub
	└── APISupervisor ("api-layer")
	    └── HTTP server

Component initialization order:

 1. Configuration: .env, config.yaml and environment via koanf
 2. Logging: zerolog, JSON or console
 3. Preference store: memory, badger, mongo or postgres
 4. Response cache: memory LRU, redis or none
 5. TMDB client: rate limited, behind a circuit breaker and the cache
 6. Recommendation engine and service
 7. WebSocket hub and optional JWT auth
 8. Supervisor tree and HTTP server

# Configuration

Common environment variables:

	TMDB_API_KEY         TMDB v3 API key (catalog endpoints fail without it)
	PORT                 HTTP port (default 5002)
	STORE_DRIVER         memory, badger, mongo, postgres
	CACHE_BACKEND        memory, redis, none
	RECOMMEND_DEFAULT_K  results when ?k= is absent (default 5)
	AUTH_ENABLED         require bearer tokens on per-user routes
	JWT_SECRET           32+ character signing secret
	TOKEN_ISSUER_SECRET  32+ character secret sent as X-Issuer-Secret to mint tokens
	LOG_LEVEL            trace, debug, info, warn, error

# Example Usage

	export TMDB_API_KEY=...
	./server

	curl -X POST localhost:5002/preferences/alice -d '{"movieTitle":"Inception"}'
	curl localhost:5002/recommendations/alice?k=10

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains for
HTTP_SHUTDOWN_TIMEOUT, websocket clients are closed, and the preference store
and cache are closed last.
*/
package main
