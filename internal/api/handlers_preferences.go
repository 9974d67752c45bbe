// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

// PreferenceAddedMessage is the message returned after a like is stored.
const PreferenceAddedMessage = "Movies added to preferences"

// AddPreference answers POST /preferences/{userID}. The body names a movie
// by movieId, movieTitle or both; the id wins when both are set.
func (h *Handler) AddPreference(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, apiErr := userIDParam(r)
	if apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	var req models.PreferenceRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	likes, err := h.svc.AddPreference(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.notifyPreferences(userID, len(likes))
	respondSuccess(w, r, http.StatusOK, models.PreferenceAddedResponse{
		Message:     PreferenceAddedMessage,
		LikedMovies: likes,
	}, start)
}

// GetPreferences answers GET /preferences/{userID}.
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, apiErr := userIDParam(r)
	if apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	likes, err := h.svc.Preferences(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, models.PreferencesResponse{Preferences: likes}, start)
}

// RemovePreference answers DELETE /preferences/{userID}/{movieID} with the
// remaining likes.
func (h *Handler) RemovePreference(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, apiErr := userIDParam(r)
	if apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil || movieID <= 0 {
		respondErrorDetails(w, http.StatusBadRequest, &models.APIError{
			Code:    "VALIDATION_ERROR",
			Message: "movieID must be a positive integer",
			Details: map[string]interface{}{"field": "movieID"},
		}, nil)
		return
	}

	likes, err := h.svc.RemovePreference(r.Context(), userID, movieID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.notifyPreferences(userID, len(likes))
	respondSuccess(w, r, http.StatusOK, models.PreferencesResponse{Preferences: likes}, start)
}

// ClearPreferences answers DELETE /preferences/{userID}.
func (h *Handler) ClearPreferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, apiErr := userIDParam(r)
	if apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	if err := h.svc.ClearPreferences(r.Context(), userID); err != nil {
		respondServiceError(w, err)
		return
	}

	h.notifyPreferences(userID, 0)
	respondSuccess(w, r, http.StatusOK, models.PreferencesResponse{Preferences: []models.Movie{}}, start)
}
