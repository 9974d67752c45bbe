// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package tfidf

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

func spaceCorpus() []models.Movie {
	return []models.Movie{
		{ID: 1, Title: "Space Odyssey", Overview: "astronaut space mission"},
		{ID: 2, Title: "Romance in Paris", Overview: "love story paris"},
		{ID: 3, Title: "Space Wars", Overview: "astronaut space battle"},
	}
}

func catalogCorpus() []models.Movie {
	return []models.Movie{
		{ID: 1, Title: "Space Odyssey", Genre: "Science Fiction", Overview: "astronaut space mission to jupiter"},
		{ID: 2, Title: "Romance in Paris", Genre: "Romance", Overview: "love story in paris"},
		{ID: 3, Title: "Space Wars", Genre: "Science Fiction Action", Overview: "astronaut space battle"},
		{ID: 4, Title: "Kitchen Nightmares", Genre: "Documentary", Overview: "chef rescues failing restaurant"},
		{ID: 5, Title: "Paris Kitchen", Genre: "Romance Comedy", Overview: "chef falls in love in paris"},
		{ID: 6, Title: "Jupiter Rising", Genre: "Science Fiction", Overview: "mission to jupiter moons"},
		{ID: 7, Title: "Haunted House", Genre: "Horror", Overview: "family moves into a haunted house"},
	}
}

func ids(items []Scored) []int64 {
	out := make([]int64, len(items))
	for i := range items {
		out[i] = items[i].Movie.ID
	}
	return out
}

func TestRank_SpaceScenario_ReferenceWeighting(t *testing.T) {
	// "space" and "astronaut" appear in 2 of 3 documents, so their reference
	// IDF is ln(3/3) = 0 and they are dropped. No candidate shares a weighted
	// term with the profile, both score 0 and corpus order decides.
	res := Rank([]models.Movie{{ID: 1}}, spaceCorpus(), 2, Options{})

	if got, want := ids(res.Items), []int64{2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Rank() ids = %v, want %v", got, want)
	}
	for _, it := range res.Items {
		if it.Score != 0 {
			t.Errorf("score(%d) = %v, want 0", it.Movie.ID, it.Score)
		}
	}
	if res.LikesMatched != 1 {
		t.Errorf("LikesMatched = %d, want 1", res.LikesMatched)
	}
}

func TestRank_SpaceScenario_PlusOneSmoothing(t *testing.T) {
	res := Rank([]models.Movie{{ID: 1}}, spaceCorpus(), 2, Options{Smoothing: SmoothingPlusOne})

	if got, want := ids(res.Items), []int64{3, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Rank() ids = %v, want %v", got, want)
	}
	if res.Items[0].Score <= res.Items[1].Score {
		t.Errorf("score(3) = %v should exceed score(2) = %v", res.Items[0].Score, res.Items[1].Score)
	}
}

func TestRecommend_SpaceScenario_WiderCorpus(t *testing.T) {
	// With a fourth document "space" and "astronaut" get a positive IDF.
	corpus := append(spaceCorpus(), models.Movie{ID: 4, Title: "Cooking Show", Overview: "chef kitchen recipe"})

	got := Recommend([]models.Movie{{ID: 1}}, corpus, 2)
	if len(got) != 2 {
		t.Fatalf("Recommend() returned %d movies, want 2", len(got))
	}
	if got[0].ID != 3 || got[1].ID != 2 {
		t.Errorf("Recommend() ids = [%d %d], want [3 2]", got[0].ID, got[1].ID)
	}
	for _, m := range got {
		if m.ID == 1 {
			t.Error("liked movie 1 must not be recommended")
		}
	}
}

func TestRecommend_EmptyLikes(t *testing.T) {
	for _, k := range []int{0, 1, 5, 100} {
		if got := Recommend(nil, catalogCorpus(), k); len(got) != 0 {
			t.Errorf("Recommend(nil, corpus, %d) = %v, want empty", k, got)
		}
	}
	if got := Recommend([]models.Movie{}, catalogCorpus(), 5); got == nil || len(got) != 0 {
		t.Errorf("Recommend([]) = %v, want non-nil empty", got)
	}
}

func TestRecommend_EmptyCorpus(t *testing.T) {
	if got := Recommend([]models.Movie{{ID: 1}}, nil, 5); len(got) != 0 {
		t.Errorf("Recommend(likes, nil) = %v, want empty", got)
	}
}

func TestRecommend_LikesMissingFromCorpus(t *testing.T) {
	res := Rank([]models.Movie{{ID: 404}}, catalogCorpus(), 5, Options{})
	if len(res.Items) != 0 {
		t.Errorf("Rank() = %v, want empty when no like is in the corpus", ids(res.Items))
	}
	if res.LikesMatched != 0 {
		t.Errorf("LikesMatched = %d, want 0", res.LikesMatched)
	}
}

func TestRecommend_NonPositiveTopK(t *testing.T) {
	for _, k := range []int{0, -1} {
		if got := Rank([]models.Movie{{ID: 1}}, catalogCorpus(), k, Options{}); len(got.Items) != 0 {
			t.Errorf("Rank(k=%d) = %v, want empty", k, ids(got.Items))
		}
		if got := Recommend([]models.Movie{{ID: 1}}, catalogCorpus(), k); got == nil || len(got) != 0 {
			t.Errorf("Recommend(k=%d) = %v, want empty non-nil", k, got)
		}
	}
}

func TestRank_Properties(t *testing.T) {
	corpus := catalogCorpus()
	likeSets := [][]models.Movie{
		{{ID: 1}},
		{{ID: 2}, {ID: 4}},
		{{ID: 1}, {ID: 1}},
		{{ID: 6}, {ID: 404}},
		{{ID: 7}, {ID: 5}, {ID: 3}},
	}
	topKs := []int{1, 2, 3, 10}

	for _, likes := range likeSets {
		for _, k := range topKs {
			name := fmt.Sprintf("likes=%v/k=%d", likeIDs(likes), k)
			t.Run(name, func(t *testing.T) {
				for _, opts := range []Options{{}, {Smoothing: SmoothingPlusOne}, {KeepZeroIDF: true}} {
					res := Rank(likes, corpus, k, opts)

					liked := make(map[int64]bool)
					for _, l := range likes {
						liked[l.ID] = true
					}
					inCorpus := 0
					for _, m := range corpus {
						if liked[m.ID] {
							inCorpus++
						}
					}

					if len(res.Items) > k {
						t.Errorf("len = %d exceeds topK %d", len(res.Items), k)
					}
					if len(res.Items) > len(corpus)-inCorpus {
						t.Errorf("len = %d exceeds candidate pool %d", len(res.Items), len(corpus)-inCorpus)
					}
					for i, it := range res.Items {
						if liked[it.Movie.ID] {
							t.Errorf("liked movie %d recommended", it.Movie.ID)
						}
						if i > 0 && res.Items[i-1].Score < it.Score {
							t.Errorf("scores not descending at %d: %v < %v", i, res.Items[i-1].Score, it.Score)
						}
					}

					again := Rank(likes, corpus, k, opts)
					if !reflect.DeepEqual(res, again) {
						t.Errorf("Rank() not deterministic: %v vs %v", ids(res.Items), ids(again.Items))
					}
				}
			})
		}
	}
}

func likeIDs(likes []models.Movie) []int64 {
	out := make([]int64, len(likes))
	for i := range likes {
		out[i] = likes[i].ID
	}
	return out
}

func TestRank_TiesKeepCorpusOrder(t *testing.T) {
	corpus := []models.Movie{
		{ID: 1, Title: "alpha bravo", Overview: "charlie"},
		{ID: 2, Title: "delta echo"},
		{ID: 3, Title: "delta echo"},
		{ID: 4, Title: "foxtrot golf"},
		{ID: 5, Title: "hotel india"},
	}
	res := Rank([]models.Movie{{ID: 1}}, corpus, 4, Options{})
	if got, want := ids(res.Items), []int64{2, 3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() ids = %v, want %v", got, want)
	}
}

func TestRank_DoesNotModifyInputs(t *testing.T) {
	corpus := catalogCorpus()
	likes := []models.Movie{{ID: 3}, {ID: 1}}
	corpusCopy := append([]models.Movie(nil), corpus...)
	likesCopy := append([]models.Movie(nil), likes...)

	_ = Rank(likes, corpus, 3, Options{})

	if !reflect.DeepEqual(corpus, corpusCopy) {
		t.Error("corpus modified by Rank")
	}
	if !reflect.DeepEqual(likes, likesCopy) {
		t.Error("likes modified by Rank")
	}
}

func TestRank_ConcurrentCallsShareCorpus(t *testing.T) {
	corpus := catalogCorpus()
	want := Rank([]models.Movie{{ID: 6}}, corpus, 3, Options{})

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := Rank([]models.Movie{{ID: 6}}, corpus, 3, Options{})
			if !reflect.DeepEqual(got, want) {
				errs <- fmt.Sprintf("got %v, want %v", ids(got.Items), ids(want.Items))
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestRank_ScienceFictionLikesPreferScienceFiction(t *testing.T) {
	res := Rank([]models.Movie{{ID: 1}}, catalogCorpus(), 2, Options{})
	got := ids(res.Items)
	for _, id := range got {
		if id != 3 && id != 6 {
			t.Errorf("Rank() ids = %v, want the two science fiction titles", got)
			break
		}
	}
}

func BenchmarkRank(b *testing.B) {
	corpus := make([]models.Movie, 0, 1000)
	words := []string{"space", "love", "chef", "haunted", "jupiter", "paris", "battle", "mission", "family", "robot"}
	for i := 0; i < 1000; i++ {
		corpus = append(corpus, models.Movie{
			ID:       int64(i + 1),
			Title:    fmt.Sprintf("%s %s", words[i%len(words)], words[(i*7)%len(words)]),
			Overview: fmt.Sprintf("%s %s %s", words[(i*3)%len(words)], words[(i*5)%len(words)], words[(i+1)%len(words)]),
		})
	}
	likes := []models.Movie{{ID: 1}, {ID: 42}, {ID: 512}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Rank(likes, corpus, 10, Options{})
	}
}
