// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package tfidf

import "github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"

// BuildProfile averages the vectors of the liked movies found in the corpus.
// ids[i] is the identifier of vectors[i]; the first index with a given id
// wins. Liked movies missing from the corpus are skipped and do not count
// toward the mean. When none are found the profile is empty.
func BuildProfile(liked []models.Movie, vectors []Vector, ids []int64) Vector {
	profile, _ := buildProfile(liked, vectors, indexByID(ids))
	return profile
}

func buildProfile(liked []models.Movie, vectors []Vector, index map[int64]int) (Vector, int) {
	profile := make(Vector)
	matched := 0
	for i := range liked {
		idx, ok := index[liked[i].ID]
		if !ok || idx >= len(vectors) {
			continue
		}
		matched++
		for term, w := range vectors[idx] {
			profile[term] += w
		}
	}

	if matched == 0 {
		return Vector{}, 0
	}

	n := float64(matched)
	for term := range profile {
		profile[term] /= n
	}
	return profile, matched
}

func indexByID(ids []int64) map[int64]int {
	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		if _, dup := index[id]; !dup {
			index[id] = i
		}
	}
	return index
}
