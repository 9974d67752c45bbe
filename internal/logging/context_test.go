// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestGenerateIDs(t *testing.T) {
	t.Parallel()

	if got := GenerateCorrelationID(); len(got) != 8 {
		t.Errorf("correlation ID length = %d, want 8", len(got))
	}
	a, b := GenerateRequestID(), GenerateRequestID()
	if len(a) != 36 {
		t.Errorf("request ID length = %d, want 36", len(a))
	}
	if a == b {
		t.Error("request IDs should be unique")
	}
}

func TestContextValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if RequestIDFromContext(ctx) != "" || CorrelationIDFromContext(ctx) != "" || UserIDFromContext(ctx) != "" {
		t.Fatal("empty context should carry no IDs")
	}

	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")
	ctx = ContextWithUserID(ctx, "alice")

	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("request ID = %q", got)
	}
	if got := CorrelationIDFromContext(ctx); got != "corr-1" {
		t.Errorf("correlation ID = %q", got)
	}
	if got := UserIDFromContext(ctx); got != "alice" {
		t.Errorf("user ID = %q", got)
	}

	fresh := ContextWithNewCorrelationID(context.Background())
	if len(CorrelationIDFromContext(fresh)) != 8 {
		t.Error("expected generated correlation ID")
	}
}

func TestCtx_AddsTracingFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-42")
	ctx = ContextWithCorrelationID(ctx, "abcd1234")
	ctx = ContextWithUserID(ctx, "bob")

	Ctx(ctx).Info().Msg("ranked")

	out := buf.String()
	for _, want := range []string{`"request_id":"req-42"`, `"correlation_id":"abcd1234"`, `"user_id":"bob"`, `"message":"ranked"`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %q", want, out)
		}
	}
}

func TestCtx_OmitsMissingFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	Ctx(ctx).Info().Msg("plain")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id in %q", buf.String())
	}
}
