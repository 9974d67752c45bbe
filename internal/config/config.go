// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Cache     CacheConfig     `koanf:"cache"`
	Store     StoreConfig     `koanf:"store"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// TMDBConfig holds The Movie Database client settings.
type TMDBConfig struct {
	APIKey            string        `koanf:"api_key"`
	BaseURL           string        `koanf:"base_url"`
	Language          string        `koanf:"language"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	MaxRetries        int           `koanf:"max_retries"`

	// PopularPages is how many pages of the popular list seed the
	// recommendation corpus.
	PopularPages int `koanf:"popular_pages"`

	// WarmInterval refreshes the cached popular pages in the background.
	// Zero disables warming.
	WarmInterval time.Duration `koanf:"warm_interval"`
}

// CacheConfig selects the response cache in front of TMDB.
type CacheConfig struct {
	Backend       string        `koanf:"backend"` // memory, redis, none
	TTL           time.Duration `koanf:"ttl"`
	MaxEntries    int           `koanf:"max_entries"`
	RedisAddr     string        `koanf:"redis_addr"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db"`
}

// StoreConfig selects the preference store backend.
type StoreConfig struct {
	Driver        string `koanf:"driver"` // memory, badger, mongo, postgres
	BadgerPath    string `koanf:"badger_path"`
	MongoURI      string `koanf:"mongo_uri"`
	MongoDatabase string `koanf:"mongo_database"`
	PostgresDSN   string `koanf:"postgres_dsn"`
}

// RecommendConfig holds ranking limits and weighting options.
type RecommendConfig struct {
	DefaultK         int           `koanf:"default_k"`
	MaxK             int           `koanf:"max_k"`
	KeepZeroIDFTerms bool          `koanf:"keep_zero_idf_terms"`
	IDFSmoothing     string        `koanf:"idf_smoothing"` // reference, plus_one
	MaxCorpus        int           `koanf:"max_corpus"`
	Timeout          time.Duration `koanf:"timeout"`
}

// SecurityConfig holds authentication, CORS and rate limit settings.
type SecurityConfig struct {
	AuthEnabled       bool          `koanf:"auth_enabled"`
	JWTSecret         string        `koanf:"jwt_secret"`
	IssuerSecret      string        `koanf:"issuer_secret"` // required to call POST /auth/token
	TokenTTL          time.Duration `koanf:"token_ttl"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// TMDBEnabled reports whether an API key is configured.
func (c *Config) TMDBEnabled() bool {
	return c.TMDB.APIKey != ""
}

// Load reads configuration with the following precedence, lowest first:
//
//  1. Built-in defaults
//  2. A .env file in the working directory, copied into the environment
//  3. Config file (config.yaml, or the path in CONFIG_PATH)
//  4. Environment variables
//
// See LoadWithKoanf for the layering itself.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return LoadWithKoanf()
}
