// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/config"
)

// Issuer is set on every token and required on validation.
const Issuer = "movie-recommendations"

var (
	// ErrInvalidToken is returned for any token that fails validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingToken is returned when a request carries no token.
	ErrMissingToken = errors.New("missing token")
)

// Claims are the JWT claims. Subject holds the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTManager handles JWT token creation and validation.
type JWTManager struct {
	secret       []byte
	issuerSecret []byte
	timeout      time.Duration
	now          func() time.Time
}

// NewJWTManager creates a token manager from the security config.
// The secret length is enforced by config validation; only an empty
// secret is rejected here.
func NewJWTManager(cfg *config.SecurityConfig) (*JWTManager, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but was empty")
	}

	timeout := cfg.TokenTTL
	if timeout <= 0 {
		timeout = 24 * time.Hour
	}

	return &JWTManager{
		secret:       []byte(cfg.JWTSecret),
		issuerSecret: []byte(cfg.IssuerSecret),
		timeout:      timeout,
		now:          time.Now,
	}, nil
}

// AuthorizeIssuer reports whether presented matches the configured issuer
// secret. It is always false when no issuer secret is configured.
func (m *JWTManager) AuthorizeIssuer(presented string) bool {
	if len(m.issuerSecret) == 0 || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), m.issuerSecret) == 1
}

// TTL returns how long issued tokens stay valid.
func (m *JWTManager) TTL() time.Duration {
	return m.timeout
}

// GenerateToken issues a signed token for userID.
func (m *JWTManager) GenerateToken(userID string) (string, error) {
	now := m.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    Issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.timeout)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks signature, algorithm, issuer and expiry and returns
// the claims. Every failure wraps ErrInvalidToken.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}
