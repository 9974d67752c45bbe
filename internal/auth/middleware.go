// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/logging"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

type contextKey string

// ClaimsContextKey holds the validated *Claims on the request context.
const ClaimsContextKey contextKey = "claims"

// Middleware binds bearer tokens to the user path parameter.
type Middleware struct {
	jwtManager *JWTManager
	userParam  string
}

// NewMiddleware creates the middleware. A nil manager disables auth.
func NewMiddleware(jwtManager *JWTManager, userParam string) *Middleware {
	if userParam == "" {
		userParam = "userID"
	}
	return &Middleware{jwtManager: jwtManager, userParam: userParam}
}

// Enabled reports whether tokens are checked.
func (m *Middleware) Enabled() bool {
	return m != nil && m.jwtManager != nil
}

// RequireUser rejects requests without a valid token (401) or whose token
// subject differs from the {userID} parameter (403).
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractToken(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Token validation failed")
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			return
		}

		if userID := chi.URLParam(r, m.userParam); userID != claims.Subject {
			logging.Ctx(r.Context()).Warn().
				Str("subject", claims.Subject).
				Str("path_user", userID).
				Msg("Token subject does not match path user")
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Token does not grant access to this user")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		ctx = logging.ContextWithUserID(ctx, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the validated claims, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok
}

// extractToken reads the bearer token from the Authorization header, or
// the "token" cookie for clients that cannot set headers (browser websockets).
func extractToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		cookie, err := r.Cookie("token")
		if err != nil || cookie.Value == "" {
			return "", ErrMissingToken
		}
		return cookie.Value, nil
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="movie-recommendations"`)
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error:    &models.APIError{Code: code, Message: message},
	})
}
