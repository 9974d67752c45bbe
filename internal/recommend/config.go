// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package recommend

import (
	"fmt"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/recommend/tfidf"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weighting selects how terms are weighted.
	Weighting WeightingConfig `json:"weighting"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`
}

// WeightingConfig controls the TF-IDF weighting.
type WeightingConfig struct {
	// Smoothing selects the IDF formula.
	// Default: reference, ln(N / (1 + df)).
	Smoothing tfidf.Smoothing `json:"smoothing"`

	// KeepZeroIDFTerms keeps terms whose IDF is exactly zero in document
	// vectors instead of dropping them.
	// Default: false.
	KeepZeroIDFTerms bool `json:"keep_zero_idf_terms"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is the number of recommendations returned when a request
	// does not ask for a specific count.
	// Default: 5.
	DefaultK int `json:"default_k"`

	// MaxK is the maximum allowed K value.
	// Default: 50.
	MaxK int `json:"max_k"`

	// MaxCorpus is the maximum number of movies scored per request.
	// Larger corpora are truncated, keeping the head.
	// Default: 2000.
	MaxCorpus int `json:"max_corpus"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Weighting: WeightingConfig{
			Smoothing:        tfidf.SmoothingReference,
			KeepZeroIDFTerms: false,
		},
		Limits: LimitsConfig{
			DefaultK:  tfidf.DefaultTopK,
			MaxK:      50,
			MaxCorpus: 2000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := tfidf.ParseSmoothing(string(c.Weighting.Smoothing)); err != nil {
		return fmt.Errorf("weighting.smoothing: %w", err)
	}

	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k (%d) must be >= limits.default_k (%d)", c.Limits.MaxK, c.Limits.DefaultK)
	}
	if c.Limits.MaxCorpus < 1 {
		return fmt.Errorf("limits.max_corpus must be positive, got %d", c.Limits.MaxCorpus)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs are plain values.
	return &Config{
		Weighting: c.Weighting,
		Limits:    c.Limits,
	}
}

func (c *Config) options() tfidf.Options {
	return tfidf.Options{
		Smoothing:   c.Weighting.Smoothing,
		KeepZeroIDF: c.Weighting.KeepZeroIDFTerms,
	}
}
