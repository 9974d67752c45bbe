// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package tfidf

// Vector is a sparse term to weight mapping.
type Vector map[string]float64

// ComputeTF returns count/len for every term. An empty document yields an
// empty vector.
func ComputeTF(tokens []string) Vector {
	tf := make(Vector, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}

	total := float64(len(tokens))
	if total < 1 {
		total = 1
	}
	for t, c := range tf {
		tf[t] = c / total
	}
	return tf
}

// ComputeTFIDF multiplies tf by idf. A term is kept only when its IDF is
// present and non-zero.
func ComputeTFIDF(tf, idf Vector) Vector {
	return computeTFIDF(tf, idf, false)
}

func computeTFIDF(tf, idf Vector, keepZero bool) Vector {
	out := make(Vector, len(tf))
	for term, freq := range tf {
		w, ok := idf[term]
		if !ok {
			continue
		}
		if w == 0 && !keepZero {
			continue
		}
		out[term] = freq * w
	}
	return out
}
