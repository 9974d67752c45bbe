// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package tfidf

import (
	"strings"
	"unicode"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

// MinTokenLength is the shortest token kept by Tokenize.
const MinTokenLength = 3

// Tokenize lowercases text, turns every rune outside [a-z0-9] and whitespace
// into a space, splits on whitespace and drops tokens shorter than
// MinTokenLength. Order and duplicates are preserved.
func Tokenize(text string) []string {
	normalized := strings.Map(normalizeRune, strings.ToLower(text))

	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		// Only ASCII survives normalizeRune, so byte length is rune length.
		if len(f) >= MinTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func normalizeRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return r
	case unicode.IsSpace(r):
		return r
	default:
		return ' '
	}
}

// FeatureText is the text a movie is scored on: title, genre and overview
// joined by single spaces. Missing fields contribute an empty string.
func FeatureText(m *models.Movie) string {
	return m.Title + " " + m.Genre + " " + m.Overview
}
