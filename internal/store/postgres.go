// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package store

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

// PostgresStore keeps one row per like; row id gives insertion order.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgresStore connects and applies the schema.
func OpenPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply preference schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Add appends movie to the user's likes and returns the new list.
func (s *PostgresStore) Add(ctx context.Context, userID string, movie models.Movie) ([]models.Movie, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	data, err := json.Marshal(movie)
	if err != nil {
		return nil, fmt.Errorf("marshal movie: %w", err)
	}

	var likes []models.Movie
	err = pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO user_preferences (user_id, movie_id, movie) VALUES ($1, $2, $3)`,
			userID, movie.ID, data)
		if err != nil {
			return fmt.Errorf("insert preference: %w", err)
		}
		likes, err = listLikes(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return likes, nil
}

// List returns the user's likes in insertion order.
func (s *PostgresStore) List(ctx context.Context, userID string) ([]models.Movie, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	return listLikes(ctx, s.pool, userID)
}

// Remove deletes every like with movieID, or returns ErrNotFound.
func (s *PostgresStore) Remove(ctx context.Context, userID string, movieID int64) ([]models.Movie, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	var likes []models.Movie
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`DELETE FROM user_preferences WHERE user_id = $1 AND movie_id = $2`,
			userID, movieID)
		if err != nil {
			return fmt.Errorf("delete preference: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		likes, err = listLikes(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return likes, nil
}

// Clear drops all of the user's likes.
func (s *PostgresStore) Clear(ctx context.Context, userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM user_preferences WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear preferences: %w", err)
	}
	return nil
}

// Close closes the pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func listLikes(ctx context.Context, db DBTX, userID string) ([]models.Movie, error) {
	rows, err := db.Query(ctx,
		`SELECT movie FROM user_preferences WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	defer rows.Close()

	likes := []models.Movie{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		var m models.Movie
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decode preference: %w", err)
		}
		likes = append(likes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	return likes, nil
}
