// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package tfidf

import (
	"math"
	"testing"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

func TestBuildProfile(t *testing.T) {
	vectors := []Vector{
		{"space": 1, "odyssey": 2},
		{"love": 4},
		{"space": 3},
	}
	ids := []int64{10, 20, 30}

	tests := []struct {
		name  string
		liked []models.Movie
		want  Vector
	}{
		{
			name:  "single liked movie",
			liked: []models.Movie{{ID: 20}},
			want:  Vector{"love": 4},
		},
		{
			name:  "mean of two",
			liked: []models.Movie{{ID: 10}, {ID: 30}},
			want:  Vector{"space": 2, "odyssey": 1},
		},
		{
			name:  "missing liked movie skipped from denominator",
			liked: []models.Movie{{ID: 10}, {ID: 99}},
			want:  Vector{"space": 1, "odyssey": 2},
		},
		{
			name:  "duplicate like counts twice",
			liked: []models.Movie{{ID: 10}, {ID: 10}, {ID: 20}},
			want:  Vector{"space": 2.0 / 3, "odyssey": 4.0 / 3, "love": 4.0 / 3},
		},
		{
			name:  "none found",
			liked: []models.Movie{{ID: 98}, {ID: 99}},
			want:  Vector{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildProfile(tt.liked, vectors, ids)
			if len(got) != len(tt.want) {
				t.Fatalf("BuildProfile() = %v, want %v", got, tt.want)
			}
			for term, w := range tt.want {
				if !approxEqual(got[term], w) {
					t.Errorf("profile[%q] = %v, want %v", term, got[term], w)
				}
			}
			for term, w := range got {
				if math.IsNaN(w) || math.IsInf(w, 0) {
					t.Errorf("profile[%q] = %v, want finite", term, w)
				}
			}
		})
	}
}

func TestBuildProfile_FirstMatchingIndexWins(t *testing.T) {
	vectors := []Vector{{"first": 1}, {"second": 1}}
	got := BuildProfile([]models.Movie{{ID: 7}}, vectors, []int64{7, 7})
	if _, ok := got["first"]; !ok || len(got) != 1 {
		t.Errorf("BuildProfile() = %v, want vector of first index", got)
	}
}

func TestBuildProfile_DoesNotModifyVectors(t *testing.T) {
	vectors := []Vector{{"space": 1}}
	_ = BuildProfile([]models.Movie{{ID: 1}, {ID: 1}}, vectors, []int64{1})
	if vectors[0]["space"] != 1 {
		t.Errorf("input vector modified: %v", vectors[0])
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
		want float64
	}{
		{"identical", Vector{"space": 0.3, "wars": 0.7}, Vector{"space": 0.3, "wars": 0.7}, 1},
		{"scaled copy", Vector{"space": 1, "wars": 2}, Vector{"space": 2, "wars": 4}, 1},
		{"orthogonal", Vector{"space": 1}, Vector{"love": 1}, 0},
		{"zero vector", Vector{"space": 1}, Vector{}, 0},
		{"both empty", Vector{}, Vector{}, 0},
		{"explicit zero weights", Vector{"space": 0}, Vector{"space": 1}, 0},
		{"opposite signs", Vector{"movie": 1}, Vector{"movie": -1}, -1},
		{"partial overlap", Vector{"a": 1, "b": 1}, Vector{"a": 1}, 1 / math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
			if got < -1-1e-9 || got > 1+1e-9 {
				t.Errorf("CosineSimilarity() = %v, outside [-1,1]", got)
			}
		})
	}
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	a := Vector{"space": 0.2, "odyssey": 0.4, "mission": 0.1}
	b := Vector{"space": 0.5, "wars": 0.3}
	if ab, ba := CosineSimilarity(a, b), CosineSimilarity(b, a); ab != ba {
		t.Errorf("CosineSimilarity not symmetric: %v vs %v", ab, ba)
	}
}
