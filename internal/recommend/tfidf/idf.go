// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package tfidf

import (
	"fmt"
	"math"
)

// Smoothing selects the IDF formula.
type Smoothing string

const (
	// SmoothingReference is ln(N / (1 + df)). Can be zero or negative.
	SmoothingReference Smoothing = "reference"

	// SmoothingPlusOne is ln((1 + N) / (1 + df)) + 1. Always positive.
	SmoothingPlusOne Smoothing = "plus_one"
)

// ParseSmoothing converts a config value to a Smoothing.
// An empty string selects SmoothingReference.
func ParseSmoothing(s string) (Smoothing, error) {
	switch Smoothing(s) {
	case "", SmoothingReference:
		return SmoothingReference, nil
	case SmoothingPlusOne:
		return SmoothingPlusOne, nil
	default:
		return "", fmt.Errorf("unknown idf smoothing %q", s)
	}
}

// ComputeIDF builds the reference IDF table over tokenized documents.
func ComputeIDF(documents [][]string) Vector {
	return computeIDF(documents, SmoothingReference)
}

func computeIDF(documents [][]string, smoothing Smoothing) Vector {
	df := make(map[string]int)
	for _, doc := range documents {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	n := float64(len(documents))
	if n == 0 {
		n = 1
	}

	idf := make(Vector, len(df))
	for term, count := range df {
		if smoothing == SmoothingPlusOne {
			idf[term] = math.Log((1+n)/(1+float64(count))) + 1
			continue
		}
		idf[term] = math.Log(n / (1 + float64(count)))
	}
	return idf
}
