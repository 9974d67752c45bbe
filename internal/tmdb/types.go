// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package tmdb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

var (
	// ErrNotConfigured is returned when no API key is set.
	ErrNotConfigured = errors.New("tmdb: api key not configured")

	// ErrUnauthorized is returned when TMDB rejects the API key.
	ErrUnauthorized = errors.New("tmdb: unauthorized")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("tmdb: not found")
)

// APIError is a non-200 response that maps to no sentinel.
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tmdb %s: status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("tmdb %s: status %d: %s", e.Operation, e.StatusCode, e.Message)
}

// movieResult is one entry of a TMDB paged movie list.
type movieResult struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	GenreIDs    []int   `json:"genre_ids"`
	Popularity  float64 `json:"popularity"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
}

type pageResponse struct {
	Page         int           `json:"page"`
	Results      []movieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

type genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type genreListResponse struct {
	Genres []genre `json:"genres"`
}

// movieDetails is the /movie/{id} payload; genres arrive already named.
type movieDetails struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	Genres      []genre `json:"genres"`
	Popularity  float64 `json:"popularity"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
}

// errorResponse is TMDB's error body.
type errorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

// toMovie maps a list entry, resolving genre ids through names.
// Unknown ids are skipped.
func (r *movieResult) toMovie(names map[int]string) models.Movie {
	genres := make([]string, 0, len(r.GenreIDs))
	for _, id := range r.GenreIDs {
		if name, ok := names[id]; ok {
			genres = append(genres, name)
		}
	}
	return models.Movie{
		ID:          r.ID,
		Title:       r.Title,
		Genre:       strings.Join(genres, " "),
		Overview:    r.Overview,
		Popularity:  r.Popularity,
		ReleaseDate: r.ReleaseDate,
		PosterPath:  r.PosterPath,
	}
}

func (d *movieDetails) toMovie() models.Movie {
	genres := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		genres = append(genres, g.Name)
	}
	return models.Movie{
		ID:          d.ID,
		Title:       d.Title,
		Genre:       strings.Join(genres, " "),
		Overview:    d.Overview,
		Popularity:  d.Popularity,
		ReleaseDate: d.ReleaseDate,
		PosterPath:  d.PosterPath,
	}
}
