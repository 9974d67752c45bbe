// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/config"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/metrics"
	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/models"
)

// maxErrorBodySize caps how much of an error body is read.
const maxErrorBodySize = 64 * 1024

// Provider is the catalog surface the service depends on.
type Provider interface {
	// Popular returns one page (1-based) of the popular movie list.
	Popular(ctx context.Context, page int) ([]models.Movie, error)

	// Search returns the first page of title matches for query.
	Search(ctx context.Context, query string) ([]models.Movie, error)

	// Recommendations returns TMDB's own recommendations for movieID.
	Recommendations(ctx context.Context, movieID int64) ([]models.Movie, error)

	// Movie returns a single movie by id.
	Movie(ctx context.Context, movieID int64) (*models.Movie, error)

	// Genres returns the genre id to name table.
	Genres(ctx context.Context) (map[int]string, error)
}

// Client calls the TMDB v3 REST API.
type Client struct {
	baseURL        string
	apiKey         string
	language       string
	client         *http.Client
	limiter        *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration
	logger         zerolog.Logger

	genreMu sync.Mutex
	genres  map[int]string
}

// NewClient builds a client from cfg.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewClient(cfg config.TMDBConfig, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 20
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	language := cfg.Language
	if language == "" {
		language = "en-US"
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		language:       language,
		client:         &http.Client{Timeout: timeout},
		limiter:        rate.NewLimiter(rate.Limit(rps), burst),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: time.Second,
		logger:         logger.With().Str("component", "tmdb").Logger(),
	}
}

// Popular returns one page of /movie/popular. Pages below 1 are treated as 1.
func (c *Client) Popular(ctx context.Context, page int) ([]models.Movie, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	return c.fetchList(ctx, "popular", "/movie/popular", params)
}

// Search returns the first page of /search/movie for query.
func (c *Client) Search(ctx context.Context, query string) ([]models.Movie, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	return c.fetchList(ctx, "search", "/search/movie", params)
}

// Recommendations returns /movie/{id}/recommendations.
func (c *Client) Recommendations(ctx context.Context, movieID int64) ([]models.Movie, error) {
	path := fmt.Sprintf("/movie/%d/recommendations", movieID)
	return c.fetchList(ctx, "recommendations", path, nil)
}

// Movie returns /movie/{id}.
func (c *Client) Movie(ctx context.Context, movieID int64) (*models.Movie, error) {
	var details movieDetails
	if err := c.makeRequest(ctx, "movie", fmt.Sprintf("/movie/%d", movieID), nil, &details); err != nil {
		return nil, err
	}
	m := details.toMovie()
	return &m, nil
}

// Genres returns /genre/movie/list. A successful result is kept for the
// lifetime of the client.
func (c *Client) Genres(ctx context.Context) (map[int]string, error) {
	c.genreMu.Lock()
	defer c.genreMu.Unlock()

	if c.genres != nil {
		return c.genres, nil
	}

	var list genreListResponse
	if err := c.makeRequest(ctx, "genres", "/genre/movie/list", nil, &list); err != nil {
		return nil, err
	}

	names := make(map[int]string, len(list.Genres))
	for _, g := range list.Genres {
		names[g.ID] = g.Name
	}
	c.genres = names
	return names, nil
}

// fetchList fetches a paged list and maps it to movies. A genre table
// failure degrades to empty genre text rather than failing the list.
func (c *Client) fetchList(ctx context.Context, op, path string, params url.Values) ([]models.Movie, error) {
	var page pageResponse
	if err := c.makeRequest(ctx, op, path, params, &page); err != nil {
		return nil, err
	}

	names, err := c.Genres(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Str("operation", op).Msg("Genre list unavailable; continuing without genre text")
		names = nil
	}

	movies := make([]models.Movie, 0, len(page.Results))
	for i := range page.Results {
		movies = append(movies, page.Results[i].toMovie(names))
	}
	return movies, nil
}

// makeRequest adds api_key and language, performs the request with rate
// limiting and retry, checks the status and decodes the JSON body into result.
func (c *Client) makeRequest(ctx context.Context, op, path string, params url.Values, result interface{}) (err error) {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	start := time.Now()
	defer func() { metrics.RecordTMDBRequest(op, err, time.Since(start)) }()

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)
	reqURL := c.baseURL + path + "?" + params.Encode()

	resp, err := c.doRequestWithRateLimit(ctx, op, reqURL)
	if err != nil {
		return fmt.Errorf("tmdb %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(op, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("tmdb %s: failed to decode response: %w", op, err)
	}
	return nil
}

// doRequestWithRateLimit waits on the local limiter, then retries HTTP 429
// responses with exponential backoff (1s, 2s, 4s...) or the Retry-After
// header when present.
func (c *Client) doRequestWithRateLimit(ctx context.Context, op, reqURL string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", redactKey(err, c.apiKey))
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		_ = resp.Body.Close()

		if attempt >= c.maxRetries {
			return nil, fmt.Errorf("rate limit exceeded after %d retries (HTTP 429)", c.maxRetries)
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
				delay = time.Duration(seconds) * time.Second
			}
		}

		metrics.RecordTMDBRetry(op)
		c.logger.Debug().Str("operation", op).Int("attempt", attempt+1).Dur("delay", delay).Msg("TMDB rate limited, retrying")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func statusError(op string, resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	apiErr := &APIError{Operation: op, StatusCode: resp.StatusCode}
	var payload errorResponse
	if json.Unmarshal(body, &payload) == nil && payload.StatusMessage != "" {
		apiErr.Message = payload.StatusMessage
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

// redactKey strips the API key from transport errors, which embed the URL.
func redactKey(err error, key string) error {
	var urlErr *url.Error
	if key == "" || !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{
		Op:  urlErr.Op,
		URL: strings.ReplaceAll(urlErr.URL, key, "REDACTED"),
		Err: urlErr.Err,
	}
}
