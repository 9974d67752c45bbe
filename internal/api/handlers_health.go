// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package api

import (
	"net/http"
	"time"
)

// Banner is the body of GET /.
const Banner = "Movie Recommendation System API is running"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status           string  `json:"status"`
	UptimeSeconds    float64 `json:"uptime_seconds"`
	WebSocketClients int     `json:"websocket_clients"`
}

// Root answers GET / with a plain text banner.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Banner))
}

// Health answers GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	resp := HealthResponse{
		Status:        "ok",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
	if h.wsHub != nil {
		resp.WebSocketClients = h.wsHub.ClientCount()
	}
	respondJSON(w, http.StatusOK, resp)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
}

// MethodNotAllowed answers known routes called with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
}
