// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

/*
Package models defines the data shared across packages.

  - Movie: a catalog entry. Title, Genre and Overview are the text the
    recommender scores. The same struct is stored by every preference
    backend (json and bson tags).
  - PreferenceRequest, PreferenceAddedResponse, PreferencesResponse: bodies
    of the /preferences routes.
  - TokenRequest, TokenResponse: bodies of POST /auth/token.
  - APIResponse, APIError, Metadata: the JSON envelope every endpoint except
    / and /health writes.

Request types carry go-playground/validator tags; see internal/validation.
*/
package models
