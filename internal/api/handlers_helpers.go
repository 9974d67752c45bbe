// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/logging"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/service"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/store"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/tmdb"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/validation"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 * 1024

// maxTMDBPage is the highest page TMDB serves for list endpoints.
const maxTMDBPage = 500

// sanitizeLogValue escapes control characters to prevent log injection.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response interface{}) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in the success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, status int, data interface{}, start time.Time) {
	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			RequestID:   logging.RequestIDFromContext(r.Context()),
		},
	})
}

// respondError sends an error response. err, when given, is logged.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	respondErrorDetails(w, status, &models.APIError{Code: code, Message: message}, err)
}

func respondErrorDetails(w http.ResponseWriter, status int, apiErr *models.APIError, err error) {
	if err != nil {
		event := logging.Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Error()
		}
		event.Str("code", sanitizeLogValue(apiErr.Code)).
			Int("status", status).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Data:     nil,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error:    apiErr,
	})
}

// errorMapping is the HTTP translation of a service error.
type errorMapping struct {
	status  int
	code    string
	message string
}

// mapServiceError translates service, store and catalog errors. Specific
// errors are checked before the wrappers that carry them.
func mapServiceError(err error) errorMapping {
	switch {
	case errors.Is(err, service.ErrEmptyQuery):
		return errorMapping{http.StatusBadRequest, "MISSING_QUERY", "Query parameter is required"}
	case errors.Is(err, service.ErrNoPreferences):
		return errorMapping{http.StatusBadRequest, "NO_PREFERENCES", "No liked movies found for recommendations"}
	case errors.Is(err, service.ErrInvalidPreference), errors.Is(err, store.ErrInvalidUser):
		return errorMapping{http.StatusBadRequest, "VALIDATION_ERROR", err.Error()}
	case errors.Is(err, service.ErrMovieNotFound):
		return errorMapping{http.StatusNotFound, "MOVIE_NOT_FOUND", "Movie not found"}
	case errors.Is(err, store.ErrNotFound):
		return errorMapping{http.StatusNotFound, "MOVIE_NOT_FOUND", "Movie is not in the user's preferences"}
	case errors.Is(err, tmdb.ErrNotConfigured):
		return errorMapping{http.StatusServiceUnavailable, "UPSTREAM_ERROR", "Movie catalog is not configured"}
	case errors.Is(err, context.DeadlineExceeded):
		return errorMapping{http.StatusGatewayTimeout, "UPSTREAM_ERROR", "Request timed out"}
	case errors.Is(err, service.ErrUpstream):
		return errorMapping{http.StatusBadGateway, "UPSTREAM_ERROR", "Movie catalog request failed"}
	case errors.Is(err, service.ErrStore):
		return errorMapping{http.StatusInternalServerError, "STORE_ERROR", "Preference store failure"}
	default:
		return errorMapping{http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"}
	}
}

// respondServiceError writes the mapped error for err.
func respondServiceError(w http.ResponseWriter, err error) {
	m := mapServiceError(err)
	respondError(w, m.status, m.code, m.message, err)
}

// validateRequest validates a struct and returns a VALIDATION_ERROR body on failure.
func validateRequest(v interface{}) *models.APIError {
	return toModelError(validation.ValidateStruct(v))
}

func toModelError(verr *validation.RequestValidationError) *models.APIError {
	if verr == nil {
		return nil
	}
	apiErr := verr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// decodeJSONBody decodes a bounded JSON body into dst.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// userIDParam reads and validates the {userID} path parameter.
func userIDParam(r *http.Request) (string, *models.APIError) {
	userID := chi.URLParam(r, "userID")
	return userID, toModelError(validation.ValidateVar("userID", userID, "required,max=128,userid"))
}

// getIntParam parses an integer query parameter. Missing means def; a value
// that is not an integer is a validation error.
func getIntParam(r *http.Request, key string, def int) (int, *models.APIError) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &models.APIError{
			Code:    "VALIDATION_ERROR",
			Message: fmt.Sprintf("%s must be an integer", key),
			Details: map[string]interface{}{"field": key},
		}
	}
	return v, nil
}
