// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/config"
)

const testSecret = "test-secret-key-that-is-at-least-32-characters-long"

func newTestManager(t *testing.T) *JWTManager {
	t.Helper()
	m, err := NewJWTManager(&config.SecurityConfig{JWTSecret: testSecret, TokenTTL: time.Hour})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	return m
}

func TestNewJWTManager(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *config.SecurityConfig
		wantTTL time.Duration
		wantErr bool
	}{
		{name: "valid", cfg: &config.SecurityConfig{JWTSecret: testSecret, TokenTTL: time.Hour}, wantTTL: time.Hour},
		{name: "zero ttl defaults", cfg: &config.SecurityConfig{JWTSecret: testSecret}, wantTTL: 24 * time.Hour},
		{name: "empty secret", cfg: &config.SecurityConfig{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := NewJWTManager(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("NewJWTManager() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewJWTManager() error = %v", err)
			}
			if m.TTL() != tt.wantTTL {
				t.Errorf("TTL() = %v, want %v", m.TTL(), tt.wantTTL)
			}
		})
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	token, err := m.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("Subject = %q, want alice", claims.Subject)
	}
	if claims.Issuer != Issuer {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, Issuer)
	}
}

func TestValidateToken_Rejects(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)

	expired := newTestManager(t)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	other, err := NewJWTManager(&config.SecurityConfig{JWTSecret: "another-secret-key-that-is-32-characters-plus"})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	foreignToken, _ := other.GenerateToken("alice")

	noneToken, _ := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			Issuer:    Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	wrongIssuer, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))

	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice", Issuer: Issuer},
	}).SignedString([]byte(testSecret))

	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "not.a.token"},
		{"empty", ""},
		{"expired", expiredToken},
		{"wrong secret", foreignToken},
		{"alg none", noneToken},
		{"wrong issuer", wrongIssuer},
		{"no expiry", noExpiry},
		{"no subject", noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := m.ValidateToken(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestAuthorizeIssuer(t *testing.T) {
	t.Parallel()

	const issuerSecret = "issuer-secret-key-that-is-at-least-32-chars"
	m, err := NewJWTManager(&config.SecurityConfig{JWTSecret: testSecret, IssuerSecret: issuerSecret})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}

	tests := []struct {
		name      string
		presented string
		want      bool
	}{
		{"match", issuerSecret, true},
		{"empty", "", false},
		{"prefix", issuerSecret[:10], false},
		{"jwt secret", testSecret, false},
	}
	for _, tt := range tests {
		if got := m.AuthorizeIssuer(tt.presented); got != tt.want {
			t.Errorf("%s: AuthorizeIssuer() = %v, want %v", tt.name, got, tt.want)
		}
	}

	if newTestManager(t).AuthorizeIssuer("") {
		t.Error("AuthorizeIssuer(\"\") with no issuer secret = true")
	}
}
