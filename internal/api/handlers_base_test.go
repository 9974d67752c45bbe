// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/auth"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/config"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/recommend"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/service"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/store"
	ws "github.com/ShreyamPatel22/PersonalizedRecommendations/internal/websocket"
)

const (
	testJWTSecret    = "test-secret-key-that-is-at-least-32-characters-long"
	testIssuerSecret = "test-issuer-secret-that-is-also-32-characters-long"
)

var testCatalog = []models.Movie{
	{ID: 1, Title: "Space Odyssey", Genre: "Science Fiction"},
	{ID: 2, Title: "Romance in Paris", Genre: "Romance"},
	{ID: 3, Title: "Space Wars", Genre: "Science Fiction Action"},
}

// fakeService is an in-memory RecommendationService.
type fakeService struct {
	mu       sync.Mutex
	likes    map[string][]models.Movie
	err      error
	lastK    int
	lastPage int
}

func newFakeService() *fakeService {
	return &fakeService{likes: make(map[string][]models.Movie)}
}

func (f *fakeService) Movies(_ context.Context, page int) ([]models.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPage = page
	if f.err != nil {
		return nil, f.err
	}
	return testCatalog, nil
}

func (f *fakeService) Search(_ context.Context, query string) ([]models.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Movie
	for _, m := range testCatalog {
		if strings.Contains(strings.ToLower(m.Title), strings.ToLower(query)) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeService) AddPreference(_ context.Context, userID string, req models.PreferenceRequest) ([]models.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range testCatalog {
		if (req.MovieID > 0 && m.ID == req.MovieID) || (req.MovieID == 0 && strings.EqualFold(m.Title, req.MovieTitle)) {
			f.likes[userID] = append(f.likes[userID], m)
			return append([]models.Movie(nil), f.likes[userID]...), nil
		}
	}
	return nil, fmt.Errorf("%w: %v", service.ErrMovieNotFound, req)
}

func (f *fakeService) Preferences(_ context.Context, userID string) ([]models.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Movie{}, f.likes[userID]...), nil
}

func (f *fakeService) RemovePreference(_ context.Context, userID string, movieID int64) ([]models.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []models.Movie
	found := false
	for _, m := range f.likes[userID] {
		if m.ID == movieID {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return nil, fmt.Errorf("%w: %w", service.ErrStore, store.ErrNotFound)
	}
	f.likes[userID] = kept
	return append([]models.Movie{}, kept...), nil
}

func (f *fakeService) ClearPreferences(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.likes, userID)
	return nil
}

func (f *fakeService) Recommend(_ context.Context, userID string, k int) (*recommend.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastK = k
	if f.err != nil {
		return nil, f.err
	}
	if len(f.likes[userID]) == 0 {
		return nil, service.ErrNoPreferences
	}
	return &recommend.Response{
		Items:           []recommend.ScoredMovie{{Movie: testCatalog[2], Score: 0.42, Rank: 1}},
		TotalCandidates: 2,
		Metadata:        recommend.ResponseMetadata{UserID: userID, K: k},
	}, nil
}

// testEnv bundles a router over a fake service.
type testEnv struct {
	svc     *fakeService
	hub     *ws.Hub
	handler http.Handler
	jwt     *auth.JWTManager
}

type envOption func(*config.SecurityConfig)

func withAuth() envOption {
	return func(s *config.SecurityConfig) {
		s.AuthEnabled = true
		s.JWTSecret = testJWTSecret
		s.IssuerSecret = testIssuerSecret
	}
}

func withRateLimit(n int) envOption {
	return func(s *config.SecurityConfig) { s.RateLimitRequests = n }
}

func withOrigins(origins ...string) envOption {
	return func(s *config.SecurityConfig) { s.CORSOrigins = origins }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	sec := config.SecurityConfig{
		CORSOrigins:     []string{"*"},
		TokenTTL:        time.Hour,
		RateLimitWindow: time.Minute,
	}
	for _, opt := range opts {
		opt(&sec)
	}

	var jwtManager *auth.JWTManager
	if sec.AuthEnabled {
		var err error
		jwtManager, err = auth.NewJWTManager(&sec)
		if err != nil {
			t.Fatalf("NewJWTManager() error = %v", err)
		}
	}

	svc := newFakeService()
	hub := ws.NewHub(zerolog.New(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = hub.RunWithContext(ctx) }()
	t.Cleanup(cancel)

	h := NewHandler(svc, hub, jwtManager)
	router := NewRouter(h, NewChiMiddleware(ChiMiddlewareConfigFromSecurity(&sec)), auth.NewMiddleware(jwtManager, "userID"))

	return &testEnv{svc: svc, hub: hub, handler: router.SetupChi(), jwt: jwtManager}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

// envelope decodes an API response with raw data.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, wantStatus, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Status != "error" || env.Error == nil || env.Error.Code != wantCode {
		t.Errorf("error = %+v, want code %s", env.Error, wantCode)
	}
}
