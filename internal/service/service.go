// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

// Package service joins the movie catalog, the preference store and the
// recommendation engine behind the operations the HTTP API exposes.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/logging"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/recommend"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/store"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/tmdb"
)

var (
	// ErrEmptyQuery is returned by Search for a blank query.
	ErrEmptyQuery = errors.New("query parameter is required")

	// ErrNoPreferences is returned by Recommend when the user has no likes.
	ErrNoPreferences = errors.New("no liked movies found for recommendations")

	// ErrMovieNotFound is returned when a liked movie cannot be resolved.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrInvalidPreference is returned when neither id nor title is given.
	ErrInvalidPreference = errors.New("movieId or movieTitle is required")

	// ErrUpstream wraps catalog failures.
	ErrUpstream = errors.New("movie catalog unavailable")

	// ErrStore wraps preference store failures.
	ErrStore = errors.New("preference store failure")
)

// Recommender is the engine surface the service needs.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
}

// Options tunes corpus assembly.
type Options struct {
	// PopularPages is how many popular pages seed every corpus.
	PopularPages int

	// MaxCorpus caps the assembled corpus. Likes are always kept.
	MaxCorpus int

	// Timeout bounds a whole Recommend call.
	Timeout time.Duration
}

// Service implements the catalog, preference and recommendation operations.
type Service struct {
	catalog tmdb.Provider
	prefs   store.PreferenceStore
	engine  Recommender
	opts    Options
	logger  zerolog.Logger
}

// New builds a Service. Zero options fall back to 2 pages, 2000 movies and 15s.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(catalog tmdb.Provider, prefs store.PreferenceStore, engine Recommender, opts Options, logger zerolog.Logger) *Service {
	if opts.PopularPages < 1 {
		opts.PopularPages = 2
	}
	if opts.MaxCorpus < 1 {
		opts.MaxCorpus = 2000
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	return &Service{
		catalog: catalog,
		prefs:   prefs,
		engine:  engine,
		opts:    opts,
		logger:  logger.With().Str("component", "service").Logger(),
	}
}

// Movies returns one page of popular movies.
func (s *Service) Movies(ctx context.Context, page int) ([]models.Movie, error) {
	movies, err := s.catalog.Popular(ctx, page)
	if err != nil {
		return nil, upstream(err)
	}
	return movies, nil
}

// Search returns title matches for query.
func (s *Service) Search(ctx context.Context, query string) ([]models.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	movies, err := s.catalog.Search(ctx, query)
	if err != nil {
		return nil, upstream(err)
	}
	return movies, nil
}

// AddPreference resolves the requested movie and appends it to the user's
// likes. An id is looked up directly; a title alone takes the first search
// result. Returns the updated likes.
func (s *Service) AddPreference(ctx context.Context, userID string, req models.PreferenceRequest) ([]models.Movie, error) {
	movie, err := s.resolveMovie(ctx, req)
	if err != nil {
		return nil, err
	}

	likes, err := s.prefs.Add(ctx, userID, *movie)
	if err != nil {
		return nil, storeErr(err)
	}

	logging.Ctx(ctx).Info().
		Str("user_id", userID).
		Int64("movie_id", movie.ID).
		Str("title", movie.Title).
		Int("likes", len(likes)).
		Msg("Preference added")
	return likes, nil
}

func (s *Service) resolveMovie(ctx context.Context, req models.PreferenceRequest) (*models.Movie, error) {
	if req.MovieID > 0 {
		movie, err := s.catalog.Movie(ctx, req.MovieID)
		if errors.Is(err, tmdb.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrMovieNotFound, req.MovieID)
		}
		if err != nil {
			return nil, upstream(err)
		}
		return movie, nil
	}

	title := strings.TrimSpace(req.MovieTitle)
	if title == "" {
		return nil, ErrInvalidPreference
	}
	results, err := s.catalog.Search(ctx, title)
	if err != nil {
		return nil, upstream(err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMovieNotFound, title)
	}
	return &results[0], nil
}

// Preferences returns the user's likes; never nil.
func (s *Service) Preferences(ctx context.Context, userID string) ([]models.Movie, error) {
	likes, err := s.prefs.List(ctx, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	return likes, nil
}

// RemovePreference drops movieID from the user's likes and returns the rest.
func (s *Service) RemovePreference(ctx context.Context, userID string, movieID int64) ([]models.Movie, error) {
	likes, err := s.prefs.Remove(ctx, userID, movieID)
	if err != nil {
		return nil, storeErr(err)
	}
	logging.Ctx(ctx).Info().Str("user_id", userID).Int64("movie_id", movieID).Msg("Preference removed")
	return likes, nil
}

// ClearPreferences drops every like of the user.
func (s *Service) ClearPreferences(ctx context.Context, userID string) error {
	if err := s.prefs.Clear(ctx, userID); err != nil {
		return storeErr(err)
	}
	logging.Ctx(ctx).Info().Str("user_id", userID).Msg("Preferences cleared")
	return nil
}

// Recommend ranks a corpus assembled around the user's likes. k <= 0 uses
// the engine default.
func (s *Service) Recommend(ctx context.Context, userID string, k int) (*recommend.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	likes, err := s.prefs.List(ctx, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(likes) == 0 {
		return nil, ErrNoPreferences
	}

	corpus, err := s.assembleCorpus(ctx, likes)
	if err != nil {
		return nil, err
	}

	resp, err := s.engine.Recommend(ctx, recommend.Request{
		UserID:    userID,
		Likes:     likes,
		Corpus:    corpus,
		K:         k,
		RequestID: logging.RequestIDFromContext(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("recommend for %s: %w", userID, err)
	}
	return resp, nil
}

func upstream(err error) error {
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %w", ErrStore, err)
}
