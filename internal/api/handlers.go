// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package api

import (
	"context"
	"time"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/auth"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/recommend"
	ws "github.com/ShreyamPatel22/PersonalizedRecommendations/internal/websocket"
)

// RecommendationService is the service surface the handlers call.
type RecommendationService interface {
	Movies(ctx context.Context, page int) ([]models.Movie, error)
	Search(ctx context.Context, query string) ([]models.Movie, error)
	AddPreference(ctx context.Context, userID string, req models.PreferenceRequest) ([]models.Movie, error)
	Preferences(ctx context.Context, userID string) ([]models.Movie, error)
	RemovePreference(ctx context.Context, userID string, movieID int64) ([]models.Movie, error)
	ClearPreferences(ctx context.Context, userID string) error
	Recommend(ctx context.Context, userID string, k int) (*recommend.Response, error)
}

// Handler contains dependencies for API handlers.
type Handler struct {
	svc        RecommendationService
	wsHub      *ws.Hub
	jwtManager *auth.JWTManager
	startTime  time.Time
}

// NewHandler creates the API handler. hub and jwtManager may be nil: a nil
// hub disables the websocket endpoint and preference notices, a nil
// manager disables token issuing.
func NewHandler(svc RecommendationService, hub *ws.Hub, jwtManager *auth.JWTManager) *Handler {
	return &Handler{
		svc:        svc,
		wsHub:      hub,
		jwtManager: jwtManager,
		startTime:  time.Now(),
	}
}

// notifyPreferences pushes a preferences_updated notice to the user's sockets.
func (h *Handler) notifyPreferences(userID string, likes int) {
	if h.wsHub != nil {
		h.wsHub.NotifyPreferencesUpdated(userID, likes)
	}
}
