// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/api"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/auth"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/config"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/logging"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/service"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/store"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/supervisor"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/supervisor/services"
	ws "github.com/ShreyamPatel22/PersonalizedRecommendations/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logger := logging.Logger()

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("Starting movie recommendation server")
	logging.Debug().
		Str("store_driver", cfg.Store.Driver).
		Str("cache_backend", cfg.Cache.Backend).
		Str("idf_smoothing", cfg.Recommend.IDFSmoothing).
		Bool("auth_enabled", cfg.Security.AuthEnabled).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	prefs, err := store.New(ctx, cfg.Store, logger)
	if err != nil {
		logging.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("Failed to open preference store")
	}
	defer func() {
		if err := prefs.Close(); err != nil {
			logging.Err(err).Msg("Error closing preference store")
		}
	}()

	catalog, err := initCatalog(cfg, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize movie catalog")
	}
	defer func() {
		if err := catalog.Close(); err != nil {
			logging.Err(err).Msg("Error closing response cache")
		}
	}()
	if !cfg.TMDBEnabled() {
		logging.Warn().Msg("TMDB_API_KEY is not set; catalog and recommendation endpoints will answer UPSTREAM_ERROR")
	}

	engine, err := initRecommend(cfg, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	svc := service.New(catalog.Provider, prefs, engine, service.Options{
		PopularPages: cfg.TMDB.PopularPages,
		MaxCorpus:    cfg.Recommend.MaxCorpus,
		Timeout:      cfg.Recommend.Timeout,
	}, logger)

	var jwtManager *auth.JWTManager
	if cfg.Security.AuthEnabled {
		jwtManager, err = auth.NewJWTManager(&cfg.Security)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
		}
		logging.Info().Dur("token_ttl", jwtManager.TTL()).Msg("JWT authentication enabled")
	} else {
		logging.Warn().Msg("Authentication is disabled; any client can read and change any user's preferences")
	}
	if cfg.Security.AuthEnabled && cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS_ORIGINS=* with authentication enabled; set explicit origins in production")
	}
	if cfg.Security.RateLimitRequests <= 0 {
		logging.Warn().Msg("Rate limiting is disabled (RATE_LIMIT_REQUESTS <= 0)")
	}

	hub := ws.NewHub(logger)

	handler := api.NewHandler(svc, hub, jwtManager)
	router := api.NewRouter(
		handler,
		api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)),
		auth.NewMiddleware(jwtManager, "userID"),
	)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// Websocket connections are hijacked, so the write timeout only
		// bounds plain HTTP responses.
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	for _, dataSvc := range catalog.Services(cfg, logger) {
		tree.AddDataService(dataSvc)
	}
	tree.AddMessagingService(hub)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	logging.Info().Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Err(err).Msg("Supervisor tree stopped with error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, u := range unstopped {
		logging.Warn().Str("service", u.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Server stopped")
}
