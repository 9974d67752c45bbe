// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/logging"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
	ws "github.com/ShreyamPatel22/PersonalizedRecommendations/internal/websocket"
)

// Recommendations answers GET /recommendations/{userID}?k=. k defaults to
// the engine default and is capped at the configured maximum.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, apiErr := userIDParam(r)
	if apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	k, apiErr := getIntParam(r, "k", 0)
	if apiErr == nil && k < 0 {
		apiErr = &models.APIError{
			Code:    "VALIDATION_ERROR",
			Message: "k must be at least 0",
			Details: map[string]interface{}{"field": "k"},
		}
	}
	if apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	resp, err := h.svc.Recommend(r.Context(), userID, k)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, resp, start)
}

// upgrader builds a websocket upgrader that enforces the CORS allow list.
func (h *Handler) upgrader(allowOrigin func(string) bool) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			return allowOrigin(r.Header.Get("Origin"))
		},
	}
}

// WebSocketRecommendations returns the handler for
// GET /ws/recommendations/{userID}. Each {"k":N} frame is answered with a
// recommendations frame.
func (h *Handler) WebSocketRecommendations(allowOrigin func(string) bool) http.HandlerFunc {
	up := h.upgrader(allowOrigin)

	return func(w http.ResponseWriter, r *http.Request) {
		if h.wsHub == nil {
			respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "WebSocket service unavailable", nil)
			return
		}

		userID, apiErr := userIDParam(r)
		if apiErr != nil {
			respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
			return
		}

		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already written the HTTP error.
			logging.Ctx(r.Context()).Warn().Err(err).Msg("WebSocket upgrade failed")
			return
		}

		// The request context ends when this handler returns; the
		// connection outlives it.
		ctx := logging.ContextWithUserID(context.WithoutCancel(r.Context()), userID)
		ws.NewClient(ctx, h.wsHub, conn, userID, ws.HandlerFunc(h.answerFrame)).Start()
	}
}

// answerFrame computes recommendations for one websocket frame.
func (h *Handler) answerFrame(ctx context.Context, userID string, msg ws.ClientMessage) ws.Message {
	if msg.K < 0 {
		return ws.Message{
			Type: ws.MessageTypeError,
			Data: ws.ErrorData{Code: "VALIDATION_ERROR", Message: "k must be at least 0"},
		}
	}

	resp, err := h.svc.Recommend(ctx, userID, msg.K)
	if err != nil {
		m := mapServiceError(err)
		if m.status >= http.StatusInternalServerError {
			logging.Ctx(ctx).Error().Err(err).Str("code", m.code).Msg("WebSocket recommendation failed")
		}
		return ws.Message{Type: ws.MessageTypeError, Data: ws.ErrorData{Code: m.code, Message: m.message}}
	}
	return ws.Message{Type: ws.MessageTypeRecommendations, Data: resp}
}
