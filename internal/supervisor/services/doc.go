// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

/*
Package services adapts application components to suture.Service.

Each wrapper implements

	Serve(ctx context.Context) error
	String() string

and returns when ctx is canceled.

HTTPServerService turns http.Server's blocking ListenAndServe into Serve and
shuts the server down gracefully on cancel.

CatalogWarmerService fetches the popular pages on a ticker so the response
cache in front of TMDB stays warm and the first recommendation after a quiet
period does not pay for the full corpus fetch.

CacheJanitorService drops expired entries from the in-process LRU cache,
which otherwise only expires entries lazily on Get.
*/
package services
