// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

// Package recommend wraps the TF-IDF scorer in package tfidf with request
// handling: defaults and limits for K, corpus size caps, request IDs,
// structured logging and metrics.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    UserID: "alice",
//	    Likes:  likes,
//	    Corpus: corpus,
//	    K:      10,
//	})
//
// The engine does not fetch anything. Callers assemble the corpus (see
// package service) and impose their own request deadline; the engine only
// checks the context before and after scoring.
//
// # Thread Safety
//
// The engine keeps only atomic counters and an immutable config copy, so a
// single Engine can serve any number of concurrent requests.
package recommend
