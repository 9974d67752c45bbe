// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/logging"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/tmdb"
)

// maxConcurrentLikeFetches bounds parallel per-like recommendation calls.
const maxConcurrentLikeFetches = 4

// assembleCorpus builds likes, then popular pages, then TMDB's own
// recommendations for each distinct liked movie, de-duplicated by id in
// that order and capped at MaxCorpus. The likes come first so the cap
// never drops them.
//
// The popular list is required. A failed per-like lookup is logged and
// skipped.
func (s *Service) assembleCorpus(ctx context.Context, likes []models.Movie) ([]models.Movie, error) {
	popular, err := tmdb.PopularPages(ctx, s.catalog, s.opts.PopularPages)
	if err != nil {
		return nil, upstream(err)
	}

	likedIDs := distinctIDs(likes)
	related := make([][]models.Movie, len(likedIDs))

	var g errgroup.Group
	g.SetLimit(maxConcurrentLikeFetches)
	for i, id := range likedIDs {
		g.Go(func() error {
			movies, err := s.catalog.Recommendations(ctx, id)
			if err != nil {
				logging.Ctx(ctx).Warn().Err(err).Int64("movie_id", id).Msg("Skipping related movies for like")
				return nil
			}
			related[i] = movies
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := newCorpusBuilder(s.opts.MaxCorpus)
	b.add(likes)
	b.add(popular)
	for _, movies := range related {
		b.add(movies)
	}
	return b.movies, nil
}

func distinctIDs(movies []models.Movie) []int64 {
	seen := make(map[int64]struct{}, len(movies))
	ids := make([]int64, 0, len(movies))
	for i := range movies {
		if _, ok := seen[movies[i].ID]; ok {
			continue
		}
		seen[movies[i].ID] = struct{}{}
		ids = append(ids, movies[i].ID)
	}
	return ids
}

// corpusBuilder appends movies not seen before until the limit is reached.
type corpusBuilder struct {
	limit  int
	seen   map[int64]struct{}
	movies []models.Movie
}

func newCorpusBuilder(limit int) *corpusBuilder {
	return &corpusBuilder{
		limit:  limit,
		seen:   make(map[int64]struct{}),
		movies: make([]models.Movie, 0, min(limit, 256)),
	}
}

func (b *corpusBuilder) add(movies []models.Movie) {
	for i := range movies {
		if len(b.movies) >= b.limit {
			return
		}
		if _, ok := b.seen[movies[i].ID]; ok {
			continue
		}
		b.seen[movies[i].ID] = struct{}{}
		b.movies = append(b.movies, movies[i])
	}
}
