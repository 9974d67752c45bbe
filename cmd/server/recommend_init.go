// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/config"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/recommend"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/recommend/tfidf"
)

// initRecommend creates the recommendation engine.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	engineCfg, err := buildEngineConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("idf_smoothing", string(engineCfg.Weighting.Smoothing)).
		Bool("keep_zero_idf_terms", engineCfg.Weighting.KeepZeroIDFTerms).
		Int("default_k", engineCfg.Limits.DefaultK).
		Int("max_k", engineCfg.Limits.MaxK).
		Int("max_corpus", engineCfg.Limits.MaxCorpus).
		Msg("initializing recommendation engine")

	return recommend.NewEngine(engineCfg, logger)
}

// buildEngineConfig maps the recommend config section onto recommend.Config,
// keeping engine defaults for anything left at zero.
func buildEngineConfig(cfg *config.Config) (*recommend.Config, error) {
	engineCfg := recommend.DefaultConfig()

	smoothing, err := tfidf.ParseSmoothing(cfg.Recommend.IDFSmoothing)
	if err != nil {
		return nil, fmt.Errorf("recommend.idf_smoothing: %w", err)
	}
	engineCfg.Weighting.Smoothing = smoothing
	engineCfg.Weighting.KeepZeroIDFTerms = cfg.Recommend.KeepZeroIDFTerms

	if cfg.Recommend.DefaultK > 0 {
		engineCfg.Limits.DefaultK = cfg.Recommend.DefaultK
	}
	if cfg.Recommend.MaxK > 0 {
		engineCfg.Limits.MaxK = cfg.Recommend.MaxK
	}
	if cfg.Recommend.MaxCorpus > 0 {
		engineCfg.Limits.MaxCorpus = cfg.Recommend.MaxCorpus
	}

	return engineCfg, nil
}
