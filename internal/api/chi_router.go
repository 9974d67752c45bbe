// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/auth"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	authMW        *auth.Middleware
}

// NewRouter creates a router. A nil authMW disables per-user auth.
func NewRouter(handler *Handler, chiMW *ChiMiddleware, authMW *auth.Middleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	if authMW == nil {
		authMW = auth.NewMiddleware(nil, "userID")
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
		authMW:        authMW,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to all routes in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered

	r.NotFound(router.handler.NotFound)
	r.MethodNotAllowed(router.handler.MethodNotAllowed)

	// Monitoring, not rate limited.
	r.Get("/", router.handler.Root)
	r.Get("/health", router.handler.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())

		r.Get("/movies", router.handler.Movies)
		r.Get("/search", router.handler.Search)

		if router.authMW.Enabled() {
			r.Post("/auth/token", router.handler.IssueToken)
		}

		r.Group(func(r chi.Router) {
			r.Use(router.authMW.RequireUser)

			r.Route("/preferences/{userID}", func(r chi.Router) {
				r.Get("/", router.handler.GetPreferences)
				r.Post("/", router.handler.AddPreference)
				r.Delete("/", router.handler.ClearPreferences)
				r.Delete("/{movieID}", router.handler.RemovePreference)
			})

			r.Get("/recommendations/{userID}", router.handler.Recommendations)
			r.Get("/ws/recommendations/{userID}", router.handler.WebSocketRecommendations(router.chiMiddleware.AllowsOrigin))
		})
	})

	return r
}
