// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package store

import (
	"context"
	"sync"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

// MemoryStore keeps likes in a map. Returned slices are copies.
type MemoryStore struct {
	mu    sync.RWMutex
	likes map[string][]models.Movie
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{likes: make(map[string][]models.Movie)}
}

// Add appends movie to the user's likes and returns a copy of the list.
func (s *MemoryStore) Add(_ context.Context, userID string, movie models.Movie) ([]models.Movie, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.likes[userID] = append(s.likes[userID], movie)
	return copyMovies(s.likes[userID]), nil
}

// List returns a copy of the user's likes.
func (s *MemoryStore) List(_ context.Context, userID string) ([]models.Movie, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyMovies(s.likes[userID]), nil
}

// Remove deletes every like with movieID, or returns ErrNotFound.
func (s *MemoryStore) Remove(_ context.Context, userID string, movieID int64) ([]models.Movie, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept, removed := withoutMovie(s.likes[userID], movieID)
	if !removed {
		return nil, ErrNotFound
	}
	if len(kept) == 0 {
		delete(s.likes, userID)
	} else {
		s.likes[userID] = kept
	}
	return copyMovies(kept), nil
}

// Clear drops all of the user's likes.
func (s *MemoryStore) Clear(_ context.Context, userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.likes, userID)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

func copyMovies(in []models.Movie) []models.Movie {
	out := make([]models.Movie, len(in))
	copy(out, in)
	return out
}
