// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

// Package store persists each user's liked movies.
//
// Likes are an ordered list per user. Adding the same movie twice keeps
// both entries, and the recommender weights such a movie twice in the
// user's profile. Removing a movie drops every entry with that id.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/config"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/metrics"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

// Driver names accepted by New.
const (
	DriverMemory   = "memory"
	DriverBadger   = "badger"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

var (
	// ErrNotFound is returned by Remove when the user has no like for the movie.
	ErrNotFound = errors.New("store: preference not found")

	// ErrInvalidUser is returned for an empty or oversized user id.
	ErrInvalidUser = errors.New("store: invalid user id")
)

// maxUserIDLength bounds user ids accepted by every backend.
const maxUserIDLength = 128

// PreferenceStore holds liked movies per user.
type PreferenceStore interface {
	// Add appends movie to the user's likes and returns the full list.
	Add(ctx context.Context, userID string, movie models.Movie) ([]models.Movie, error)

	// List returns the likes in insertion order; never nil.
	List(ctx context.Context, userID string) ([]models.Movie, error)

	// Remove drops every like of movieID and returns the remaining list.
	Remove(ctx context.Context, userID string, movieID int64) ([]models.Movie, error)

	// Clear drops all likes of the user.
	Clear(ctx context.Context, userID string) error

	// Close releases the backend.
	Close() error
}

// New opens the backend selected by cfg.Driver, wrapped with metrics.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(ctx context.Context, cfg config.StoreConfig, logger zerolog.Logger) (PreferenceStore, error) {
	logger = logger.With().Str("component", "store").Str("driver", cfg.Driver).Logger()

	var (
		s   PreferenceStore
		err error
	)
	switch cfg.Driver {
	case DriverMemory, "":
		s = NewMemoryStore()
		logger.Warn().Msg("Using in-memory preference store; likes are lost on restart")
	case DriverBadger:
		s, err = OpenBadgerStore(cfg.BadgerPath)
	case DriverMongo:
		s, err = OpenMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	case DriverPostgres:
		s, err = OpenPostgresStore(ctx, cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("Preference store ready")
	driver := cfg.Driver
	if driver == "" {
		driver = DriverMemory
	}
	return &instrumented{next: s, backend: driver}, nil
}

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" || len(userID) > maxUserIDLength {
		return ErrInvalidUser
	}
	return nil
}

// withoutMovie returns likes minus every entry with movieID and whether any was dropped.
func withoutMovie(likes []models.Movie, movieID int64) ([]models.Movie, bool) {
	kept := make([]models.Movie, 0, len(likes))
	for i := range likes {
		if likes[i].ID != movieID {
			kept = append(kept, likes[i])
		}
	}
	return kept, len(kept) != len(likes)
}

// instrumented records store_operations metrics around another store.
type instrumented struct {
	next    PreferenceStore
	backend string
}

func (s *instrumented) observe(op string, start time.Time, err error) {
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	metrics.RecordStoreOperation(s.backend, op, err, time.Since(start))
}

func (s *instrumented) Add(ctx context.Context, userID string, movie models.Movie) ([]models.Movie, error) {
	start := time.Now()
	likes, err := s.next.Add(ctx, userID, movie)
	s.observe("add", start, err)
	return likes, err
}

func (s *instrumented) List(ctx context.Context, userID string) ([]models.Movie, error) {
	start := time.Now()
	likes, err := s.next.List(ctx, userID)
	s.observe("list", start, err)
	return likes, err
}

func (s *instrumented) Remove(ctx context.Context, userID string, movieID int64) ([]models.Movie, error) {
	start := time.Now()
	likes, err := s.next.Remove(ctx, userID, movieID)
	s.observe("remove", start, err)
	return likes, err
}

func (s *instrumented) Clear(ctx context.Context, userID string) error {
	start := time.Now()
	err := s.next.Clear(ctx, userID)
	s.observe("clear", start, err)
	return err
}

func (s *instrumented) Close() error {
	return s.next.Close()
}
