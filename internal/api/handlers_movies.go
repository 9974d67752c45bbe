// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/validation"
)

// pageRule bounds the page parameter to what TMDB serves.
var pageRule = fmt.Sprintf("min=1,max=%d", maxTMDBPage)

// MoviesResponse is the data of GET /movies.
type MoviesResponse struct {
	Page   int         `json:"page"`
	Movies interface{} `json:"movies"`
}

// Movies answers GET /movies?page= with one page of popular movies.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	page, apiErr := getIntParam(r, "page", 1)
	if apiErr == nil {
		apiErr = toModelError(validation.ValidateVar("page", page, pageRule))
	}
	if apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	movies, err := h.svc.Movies(r.Context(), page)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, MoviesResponse{Page: page, Movies: movies}, start)
}

// Search answers GET /search?query= with title matches.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		respondError(w, http.StatusBadRequest, "MISSING_QUERY", "Query parameter is required", nil)
		return
	}
	if apiErr := toModelError(validation.ValidateVar("query", query, "max=300")); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	movies, err := h.svc.Search(r.Context(), query)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, movies, start)
}
