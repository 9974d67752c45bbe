// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package tfidf

import (
	"math"
	"sort"
)

// CosineSimilarity returns dot(a,b) / (|a| |b|), or 0 when either vector has
// zero magnitude. The dot product runs over terms of a that also appear in b.
func CosineSimilarity(a, b Vector) float64 {
	return cosine(a, sortedTerms(a), b, sortedTerms(b))
}

// cosine sums in sorted term order so that equal inputs always produce
// bit-identical scores.
func cosine(a Vector, aTerms []string, b Vector, bTerms []string) float64 {
	var dot, magA, magB float64
	for _, term := range aTerms {
		wa := a[term]
		magA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, term := range bTerms {
		wb := b[term]
		magB += wb * wb
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

func sortedTerms(v Vector) []string {
	terms := make([]string, 0, len(v))
	for t := range v {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}
