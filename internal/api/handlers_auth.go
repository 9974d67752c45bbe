// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package api

import (
	"net/http"
	"time"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/logging"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

// IssuerSecretHeader carries the issuer secret on POST /auth/token.
const IssuerSecretHeader = "X-Issuer-Secret"

// IssueToken answers POST /auth/token with a bearer token for {userId}.
// Only trusted callers holding the issuer secret may mint tokens; the
// token then scopes a client to one user's routes.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.jwtManager == nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Authentication is disabled", nil)
		return
	}

	if !h.jwtManager.AuthorizeIssuer(r.Header.Get(IssuerSecretHeader)) {
		logging.Ctx(r.Context()).Warn().Str("remote_addr", sanitizeLogValue(r.RemoteAddr)).Msg("Token request rejected")
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid issuer secret", nil)
		return
	}

	var req models.TokenRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	token, err := h.jwtManager.GenerateToken(req.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token", err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("user_id", req.UserID).Msg("Token issued")
	respondSuccess(w, r, http.StatusOK, models.TokenResponse{
		Token:     token,
		ExpiresIn: int64(h.jwtManager.TTL().Seconds()),
	}, start)
}
