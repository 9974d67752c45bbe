// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

// Package logging provides the process-wide zerolog logger.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Msg("Server starting")
//	logging.Error().Err(err).Msg("Operation failed")
//
//	// With request tracing fields
//	logging.Ctx(ctx).Info().Str("user_id", userID).Msg("Preference stored")
//
// # Configuration
//
// Environment variables, read through package config:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # Components
//
// Long-lived components take a zerolog.Logger in their constructor and tag it:
//
//	logger := logging.WithComponent("tmdb")
//	client := tmdb.NewClient(cfg, logger)
//
// Libraries that only accept log/slog (the suture supervisor event hook) get
// a zerolog-backed slog.Logger from NewSlogLogger.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
