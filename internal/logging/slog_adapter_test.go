// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	return entry
}

func TestSlogHandler_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelInfo, "info"},
		{slog.LevelWarn, "warn"},
		{slog.LevelError, "error"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger := slog.New(NewSlogHandler(zerolog.New(&buf)))
		logger.Log(context.Background(), tt.level, "event")

		entry := decodeLine(t, &buf)
		if entry["level"] != tt.want {
			t.Errorf("level %v logged as %v, want %s", tt.level, entry["level"], tt.want)
		}
	}
}

func TestSlogHandler_Attributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(zerolog.New(&buf))).With("service", "http-server")
	logger.Info("service restarted",
		"attempt", 2,
		"healthy", true,
		"backoff", 15*time.Second,
		"err", errors.New("listen failed"),
		slog.Group("tree", slog.String("layer", "api")),
	)

	entry := decodeLine(t, &buf)
	if entry["service"] != "http-server" {
		t.Errorf("service = %v", entry["service"])
	}
	if entry["attempt"] != float64(2) {
		t.Errorf("attempt = %v", entry["attempt"])
	}
	if entry["healthy"] != true {
		t.Errorf("healthy = %v", entry["healthy"])
	}
	if entry["err"] != "listen failed" {
		t.Errorf("err = %v", entry["err"])
	}
	if entry["tree.layer"] != "api" {
		t.Errorf("tree.layer = %v", entry["tree.layer"])
	}
}

func TestSlogHandler_WithGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(zerolog.New(&buf))).WithGroup("suture").WithGroup("event")
	logger.Info("terminated", "service", "tmdb-warmup")

	entry := decodeLine(t, &buf)
	if entry["suture.event.service"] != "tmdb-warmup" {
		t.Errorf("grouped key missing: %v", entry)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}
