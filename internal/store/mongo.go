// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

const usersCollection = "users"

// userDoc is one document in the users collection.
type userDoc struct {
	Username    string         `bson:"username"`
	Preferences []models.Movie `bson:"preferences"`
}

// MongoStore keeps one document per user with an embedded preferences array.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

// OpenMongoStore connects, pings the primary and ensures a unique index on username.
func OpenMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	col := client.Database(database).Collection(usersCollection)
	_, err = col.Indexes().CreateOne(connectCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create username index: %w", err)
	}

	return &MongoStore{client: client, col: col}, nil
}

// Add appends movie to the user's likes and returns the new list.
func (s *MongoStore) Add(ctx context.Context, userID string, movie models.Movie) ([]models.Movie, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc userDoc
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"username": userID},
		bson.M{"$push": bson.M{"preferences": movie}},
		opts,
	).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("add preference: %w", err)
	}
	return nonNil(doc.Preferences), nil
}

// List returns the user's likes in insertion order.
func (s *MongoStore) List(ctx context.Context, userID string) ([]models.Movie, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	var doc userDoc
	err := s.col.FindOne(ctx, bson.M{"username": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []models.Movie{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	return nonNil(doc.Preferences), nil
}

// Remove deletes every like with movieID, or returns ErrNotFound.
func (s *MongoStore) Remove(ctx context.Context, userID string, movieID int64) ([]models.Movie, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	var doc userDoc
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"username": userID, "preferences.id": movieID},
		bson.M{"$pull": bson.M{"preferences": bson.M{"id": movieID}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("remove preference: %w", err)
	}
	return nonNil(doc.Preferences), nil
}

// Clear drops all of the user's likes.
func (s *MongoStore) Clear(ctx context.Context, userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	if _, err := s.col.DeleteOne(ctx, bson.M{"username": userID}); err != nil {
		return fmt.Errorf("clear preferences: %w", err)
	}
	return nil
}

// Close releases the connection.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func nonNil(likes []models.Movie) []models.Movie {
	if likes == nil {
		return []models.Movie{}
	}
	return likes
}
