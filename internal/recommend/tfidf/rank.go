// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package tfidf

import (
	"sort"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

// DefaultTopK is the conventional result size for hosts that take no k.
const DefaultTopK = 5

// Options tunes the weighting. The zero value is the reference weighting.
type Options struct {
	// Smoothing selects the IDF formula. Empty means SmoothingReference.
	Smoothing Smoothing

	// KeepZeroIDF keeps terms whose IDF is exactly zero in TF-IDF vectors.
	// They carry no weight but still appear as keys.
	KeepZeroIDF bool
}

// Scored is a candidate movie with its similarity to the profile.
type Scored struct {
	Movie models.Movie `json:"movie"`
	Score float64      `json:"score"`
}

// Result is the outcome of Rank.
type Result struct {
	// Items holds at most topK movies, best first.
	Items []Scored

	// LikesMatched is how many liked movies were found in the corpus.
	LikesMatched int

	// Candidates is the number of corpus movies left after excluding likes.
	Candidates int

	// Vocabulary is the number of distinct terms in the corpus.
	Vocabulary int

	// ProfileTerms is the number of terms in the user profile.
	ProfileTerms int
}

// Recommend returns the topK corpus movies most similar to likes under the
// reference weighting.
func Recommend(likes, corpus []models.Movie, topK int) []models.Movie {
	res := Rank(likes, corpus, topK, Options{})
	movies := make([]models.Movie, len(res.Items))
	for i := range res.Items {
		movies[i] = res.Items[i].Movie
	}
	return movies
}

// Rank scores every corpus movie that is not liked against the profile of the
// liked movies and returns the topK best. Ties keep corpus order. Empty likes,
// topK <= 0 or an empty profile produce an empty result.
func Rank(likes, corpus []models.Movie, topK int, opts Options) Result {
	res := Result{Items: []Scored{}}
	if len(likes) == 0 || topK <= 0 {
		return res
	}

	docs := make([][]string, len(corpus))
	ids := make([]int64, len(corpus))
	for i := range corpus {
		docs[i] = Tokenize(FeatureText(&corpus[i]))
		ids[i] = corpus[i].ID
	}

	idf := computeIDF(docs, opts.Smoothing)
	res.Vocabulary = len(idf)

	vectors := make([]Vector, len(docs))
	for i, doc := range docs {
		vectors[i] = computeTFIDF(ComputeTF(doc), idf, opts.KeepZeroIDF)
	}

	profile, matched := buildProfile(likes, vectors, indexByID(ids))
	res.LikesMatched = matched
	res.ProfileTerms = len(profile)
	if len(profile) == 0 {
		return res
	}
	profileTerms := sortedTerms(profile)

	liked := make(map[int64]struct{}, len(likes))
	for i := range likes {
		liked[likes[i].ID] = struct{}{}
	}

	scored := make([]Scored, 0, len(corpus))
	for i := range corpus {
		if _, ok := liked[corpus[i].ID]; ok {
			continue
		}
		scored = append(scored, Scored{
			Movie: corpus[i],
			Score: cosine(profile, profileTerms, vectors[i], sortedTerms(vectors[i])),
		})
	}
	res.Candidates = len(scored)

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	res.Items = scored
	return res
}
