// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

// Package tfidf scores movies against a user's liked movies with TF-IDF
// weighting and cosine similarity.
//
// # Pipeline
//
// Each call to Rank runs the full pipeline over the corpus it is given:
//
//  1. Tokenize: title, genre and overview are joined and normalized into terms
//  2. ComputeIDF: document frequencies over the whole corpus become IDF weights
//  3. ComputeTF / ComputeTFIDF: every movie becomes a sparse weighted vector
//  4. BuildProfile: the liked movies' vectors are averaged into one profile
//  5. CosineSimilarity: every other movie is scored against the profile
//
// Candidates are stable-sorted by score, so corpus order breaks ties, and the
// first topK are returned.
//
// # Weighting
//
// The reference IDF is ln(N / (1 + df)). It goes to zero when a term appears
// in N-1 documents and below zero when it appears in all of them. Terms whose
// IDF is exactly zero are left out of the TF-IDF vector. Options can switch to
// a plus-one smoothed IDF or keep zero-weight terms, but the defaults
// reproduce the reference weighting.
//
// # Concurrency
//
// Nothing is cached between calls and inputs are never modified. Concurrent
// calls over a shared corpus slice are safe.
//
// # Usage
//
//	movies := tfidf.Recommend(likes, corpus, 5)
//
//	// With scores and non-default weighting
//	result := tfidf.Rank(likes, corpus, 10, tfidf.Options{Smoothing: tfidf.SmoothingPlusOne})
package tfidf
