// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package tmdb

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

// maxConcurrentPages bounds parallel page fetches.
const maxConcurrentPages = 4

// PopularPages fetches popular pages 1..n concurrently and concatenates them
// in page order. Any page failure fails the whole call.
func PopularPages(ctx context.Context, p Provider, n int) ([]models.Movie, error) {
	if n < 1 {
		n = 1
	}

	pages := make([][]models.Movie, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPages)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			movies, err := p.Popular(gctx, i+1)
			if err != nil {
				return fmt.Errorf("popular page %d: %w", i+1, err)
			}
			pages[i] = movies
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, page := range pages {
		total += len(page)
	}
	out := make([]models.Movie, 0, total)
	for _, page := range pages {
		out = append(out, page...)
	}
	return out, nil
}
