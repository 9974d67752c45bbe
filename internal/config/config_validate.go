// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/logging"
)

var (
	validCacheBackends = map[string]bool{"memory": true, "redis": true, "none": true}
	validStoreDrivers  = map[string]bool{"memory": true, "badger": true, "mongo": true, "postgres": true}
	validSmoothing     = map[string]bool{"reference": true, "plus_one": true}
	validLogFormats    = map[string]bool{"json": true, "console": true}
)

// minJWTSecretLength is the shortest accepted HMAC secret.
const minJWTSecretLength = 32

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateTMDB,
		c.validateCache,
		c.validateStore,
		c.validateRecommend,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	return nil
}

// validateTMDB does not require an API key; without one the catalog
// endpoints answer with UPSTREAM_ERROR instead of failing startup.
func (c *Config) validateTMDB() error {
	if c.TMDB.RequestsPerSecond <= 0 {
		return fmt.Errorf("TMDB_RPS must be positive")
	}
	if c.TMDB.Burst < 1 {
		return fmt.Errorf("TMDB_BURST must be at least 1")
	}
	if c.TMDB.MaxRetries < 0 {
		return fmt.Errorf("TMDB_MAX_RETRIES must not be negative")
	}
	if c.TMDB.PopularPages < 1 {
		return fmt.Errorf("TMDB_POPULAR_PAGES must be at least 1")
	}
	if c.TMDB.WarmInterval < 0 {
		return fmt.Errorf("TMDB_WARM_INTERVAL must not be negative")
	}
	if !strings.HasPrefix(c.TMDB.BaseURL, "http://") && !strings.HasPrefix(c.TMDB.BaseURL, "https://") {
		return fmt.Errorf("TMDB_BASE_URL must start with http:// or https://")
	}
	return nil
}

func (c *Config) validateCache() error {
	if !validCacheBackends[c.Cache.Backend] {
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, redis, none")
	}
	if c.Cache.Backend == "redis" && c.Cache.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND=redis")
	}
	if c.Cache.Backend == "memory" && c.Cache.MaxEntries < 1 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be at least 1")
	}
	return nil
}

func (c *Config) validateStore() error {
	if !validStoreDrivers[c.Store.Driver] {
		return fmt.Errorf("STORE_DRIVER must be one of: memory, badger, mongo, postgres")
	}
	switch c.Store.Driver {
	case "badger":
		if c.Store.BadgerPath == "" {
			return fmt.Errorf("BADGER_PATH is required when STORE_DRIVER=badger")
		}
	case "mongo":
		if c.Store.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required when STORE_DRIVER=mongo")
		}
	case "postgres":
		if c.Store.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required when STORE_DRIVER=postgres")
		}
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if !validSmoothing[r.IDFSmoothing] {
		return fmt.Errorf("RECOMMEND_IDF_SMOOTHING must be one of: reference, plus_one")
	}
	if r.DefaultK < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_K must be at least 1")
	}
	if r.MaxK < r.DefaultK {
		return fmt.Errorf("RECOMMEND_MAX_K (%d) must not be below RECOMMEND_DEFAULT_K (%d)", r.MaxK, r.DefaultK)
	}
	if r.MaxCorpus < 1 {
		return fmt.Errorf("RECOMMEND_MAX_CORPUS must be at least 1")
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("RECOMMEND_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.AuthEnabled {
		if len(c.Security.JWTSecret) < minJWTSecretLength {
			return fmt.Errorf("JWT_SECRET must be at least %d characters when AUTH_ENABLED=true", minJWTSecretLength)
		}
		if containsPlaceholder(c.Security.JWTSecret) {
			return fmt.Errorf("JWT_SECRET contains a placeholder value; set a real secret")
		}
		if c.Security.TokenTTL <= 0 {
			return fmt.Errorf("JWT_TOKEN_TTL must be positive")
		}
		if len(c.Security.IssuerSecret) < minJWTSecretLength {
			return fmt.Errorf("TOKEN_ISSUER_SECRET must be at least %d characters when AUTH_ENABLED=true", minJWTSecretLength)
		}
		if containsPlaceholder(c.Security.IssuerSecret) {
			return fmt.Errorf("TOKEN_ISSUER_SECRET contains a placeholder value; set a real secret")
		}
		if c.Security.IssuerSecret == c.Security.JWTSecret {
			return fmt.Errorf("TOKEN_ISSUER_SECRET must differ from JWT_SECRET")
		}
	}
	if c.Security.RateLimitRequests < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
	}
	return nil
}

// HasWildcardCORS reports whether any origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic, disabled")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns catch secrets copied verbatim from example configs.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SECRET",
	"PLACEHOLDER",
	"EXAMPLE",
}

func containsPlaceholder(value string) bool {
	upper := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}
