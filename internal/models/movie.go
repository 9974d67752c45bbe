// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package models

// Movie is a single catalog entry as seen by the recommender.
// Genre holds genre names separated by spaces; it is free text for scoring.
type Movie struct {
	// ID is the TMDB identifier. Unique and stable.
	ID int64 `json:"id" bson:"id"`

	// Title is the display title.
	Title string `json:"title" bson:"title"`

	// Genre is optional.
	Genre string `json:"genre,omitempty" bson:"genre,omitempty"`

	// Overview is the plot text. Optional.
	Overview string `json:"overview,omitempty" bson:"overview,omitempty"`

	// Popularity is the TMDB popularity score. Not used for scoring.
	Popularity float64 `json:"popularity,omitempty" bson:"popularity,omitempty"`

	// ReleaseDate is YYYY-MM-DD when known.
	ReleaseDate string `json:"release_date,omitempty" bson:"release_date,omitempty"`

	// PosterPath is the TMDB poster path, relative to the image CDN.
	PosterPath string `json:"poster_path,omitempty" bson:"poster_path,omitempty"`
}

// PreferenceRequest is the body of POST /preferences/{userID}.
// At least one of MovieID or MovieTitle must be set.
type PreferenceRequest struct {
	MovieID    int64  `json:"movieId" validate:"required_without=MovieTitle,gte=0"`
	MovieTitle string `json:"movieTitle" validate:"required_without=MovieID,max=300"`
}

// PreferenceAddedResponse is returned after a like is stored.
type PreferenceAddedResponse struct {
	Message     string  `json:"message"`
	LikedMovies []Movie `json:"likedMovies"`
}

// PreferencesResponse is returned by GET /preferences/{userID}.
type PreferencesResponse struct {
	Preferences []Movie `json:"preferences"`
}

// TokenRequest is the body of POST /auth/token.
type TokenRequest struct {
	UserID string `json:"userId" validate:"required,min=1,max=128,userid"`
}

// TokenResponse carries a signed bearer token.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}
