// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

/*
Package auth provides optional bearer-token authentication for per-user routes.

Tokens are HS256 JWTs whose subject is the user id. When auth is enabled,
every route carrying a {userID} path parameter requires a token whose subject
matches that parameter, so a user can only read and change their own likes.

Key Components:

  - JWTManager: token issuing and validation, plus the issuer secret
    check that gates who may mint tokens
  - Middleware: chi middleware binding the token subject to {userID}

Usage:

	manager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
	    return err
	}
	mw := auth.NewMiddleware(manager, "userID")
	r.With(mw.RequireUser).Get("/preferences/{userID}", h.GetPreferences)

A nil manager disables the check; RequireUser then passes every request.
*/
package auth
