// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

const (
	prefsKeyPrefix = "prefs:"

	// maxTxnRetries bounds retries of read-modify-write transactions
	// that lose a race with another writer sharing the same database.
	maxTxnRetries   = 5
	txnRetryBackoff = 5 * time.Millisecond
)

// BadgerStore keeps each user's likes as one JSON value under prefs:<user>.
// Writes from one store are serialized, so its own callers never conflict.
type BadgerStore struct {
	db     *badger.DB
	ownsDB bool

	writeMu sync.Mutex
}

// OpenBadgerStore opens (or creates) a database directory at path.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for preferences: %w", err)
	}
	return &BadgerStore{db: db, ownsDB: true}, nil
}

// NewBadgerStore uses an already open database. Close leaves db open.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

func prefsKey(userID string) []byte {
	return []byte(prefsKeyPrefix + userID)
}

// readLikes loads the list inside txn. A missing key is an empty list.
func readLikes(txn *badger.Txn, userID string) ([]models.Movie, error) {
	likes := []models.Movie{}
	item, err := txn.Get(prefsKey(userID))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return likes, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &likes)
	})
	if err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	return likes, nil
}

func writeLikes(txn *badger.Txn, userID string, likes []models.Movie) error {
	if len(likes) == 0 {
		return txn.Delete(prefsKey(userID))
	}
	data, err := json.Marshal(likes)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	return txn.Set(prefsKey(userID), data)
}

// update runs fn in a read-write transaction under writeMu, retrying on
// conflicts with writers outside this store.
func (s *BadgerStore) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var err error
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * txnRetryBackoff):
		}
	}
	return err
}

// Add appends movie to the user's likes and returns the new list.
func (s *BadgerStore) Add(ctx context.Context, userID string, movie models.Movie) ([]models.Movie, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	var result []models.Movie
	err := s.update(ctx, func(txn *badger.Txn) error {
		likes, err := readLikes(txn, userID)
		if err != nil {
			return err
		}
		likes = append(likes, movie)
		if err := writeLikes(txn, userID, likes); err != nil {
			return err
		}
		result = likes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// List returns the user's likes in insertion order.
func (s *BadgerStore) List(ctx context.Context, userID string) ([]models.Movie, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var likes []models.Movie
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		likes, err = readLikes(txn, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return likes, nil
}

// Remove deletes every like with movieID, or returns ErrNotFound.
func (s *BadgerStore) Remove(ctx context.Context, userID string, movieID int64) ([]models.Movie, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	var result []models.Movie
	err := s.update(ctx, func(txn *badger.Txn) error {
		likes, err := readLikes(txn, userID)
		if err != nil {
			return err
		}
		kept, removed := withoutMovie(likes, movieID)
		if !removed {
			return ErrNotFound
		}
		if err := writeLikes(txn, userID, kept); err != nil {
			return err
		}
		result = kept
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Clear drops all of the user's likes.
func (s *BadgerStore) Clear(ctx context.Context, userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	return s.update(ctx, func(txn *badger.Txn) error {
		if err := txn.Delete(prefsKey(userID)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete preferences: %w", err)
		}
		return nil
	})
}

// Close closes the database if the store opened it.
func (s *BadgerStore) Close() error {
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}
