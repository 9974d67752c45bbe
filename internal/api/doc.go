// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

/*
Package api serves the recommendation HTTP API on a chi router.

Handler methods are split across files:
  - handlers.go: Handler struct and constructor
  - handlers_helpers.go: JSON responses, parameter parsing, error mapping
  - handlers_health.go: root banner and health check
  - handlers_movies.go: popular movies and title search
  - handlers_preferences.go: per-user likes
  - handlers_recommend.go: ranked recommendations over HTTP and websocket
  - handlers_auth.go: token issuing when auth is enabled

Routes:

	GET    /                                banner
	GET    /health                          {"status":"ok"}
	GET    /metrics                         prometheus
	GET    /movies?page=                    popular movies
	GET    /search?query=                   title search
	POST   /preferences/{userID}            add a like
	GET    /preferences/{userID}            list likes
	DELETE /preferences/{userID}/{movieID}  remove a like
	DELETE /preferences/{userID}            clear likes
	GET    /recommendations/{userID}?k=     ranked recommendations
	GET    /ws/recommendations/{userID}     websocket recommendations
	POST   /auth/token                      issue a token (auth enabled, X-Issuer-Secret)

Every JSON endpoint except /health writes the models.APIResponse envelope.
*/
package api
