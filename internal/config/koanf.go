// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/movie-recommendations/config.yaml",
	"/etc/movie-recommendations/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults. Config file and environment
// values are layered over these.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5002,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		TMDB: TMDBConfig{
			APIKey:            "",
			BaseURL:           "https://api.themoviedb.org/3",
			Language:          "en-US",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 20,
			Burst:             10,
			MaxRetries:        3,
			PopularPages:      2,
			WarmInterval:      5 * time.Minute,
		},
		Cache: CacheConfig{
			Backend:    "memory",
			TTL:        10 * time.Minute,
			MaxEntries: 1000,
			RedisAddr:  "localhost:6379",
			RedisDB:    0,
		},
		Store: StoreConfig{
			Driver:        "memory",
			BadgerPath:    "./data/preferences",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "movie_recommendations",
			PostgresDSN:   "",
		},
		Recommend: RecommendConfig{
			DefaultK:         5,
			MaxK:             50,
			KeepZeroIDFTerms: false,
			IDFSmoothing:     "reference",
			MaxCorpus:        2000,
			Timeout:          15 * time.Second,
		},
		Security: SecurityConfig{
			AuthEnabled:       false,
			JWTSecret:         "",
			IssuerSecret:      "",
			TokenTTL:          24 * time.Hour,
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads defaults, then the optional YAML file, then mapped
// environment variables, and validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Environment variables, e.g. TMDB_API_KEY -> tmdb.api_key
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns CONFIG_PATH when it exists, otherwise the first
// existing entry of DefaultConfigPaths, otherwise "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when they come from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names, lowercased, to koanf paths.
// Unmapped variables are ignored so unrelated environment never leaks into config.
var envMappings = map[string]string{
	"http_host":             "server.host",
	"http_port":             "server.port",
	"port":                  "server.port",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	"tmdb_api_key":       "tmdb.api_key",
	"tmdb_base_url":      "tmdb.base_url",
	"tmdb_language":      "tmdb.language",
	"tmdb_timeout":       "tmdb.timeout",
	"tmdb_rps":           "tmdb.requests_per_second",
	"tmdb_burst":         "tmdb.burst",
	"tmdb_max_retries":   "tmdb.max_retries",
	"tmdb_popular_pages": "tmdb.popular_pages",
	"tmdb_warm_interval": "tmdb.warm_interval",

	"cache_backend":     "cache.backend",
	"cache_ttl":         "cache.ttl",
	"cache_max_entries": "cache.max_entries",
	"redis_addr":        "cache.redis_addr",
	"redis_password":    "cache.redis_password",
	"redis_db":          "cache.redis_db",

	"store_driver":   "store.driver",
	"badger_path":    "store.badger_path",
	"mongo_uri":      "store.mongo_uri",
	"mongo_database": "store.mongo_database",
	"postgres_dsn":   "store.postgres_dsn",

	"recommend_default_k":     "recommend.default_k",
	"recommend_max_k":         "recommend.max_k",
	"recommend_keep_zero_idf": "recommend.keep_zero_idf_terms",
	"recommend_idf_smoothing": "recommend.idf_smoothing",
	"recommend_max_corpus":    "recommend.max_corpus",
	"recommend_timeout":       "recommend.timeout",

	"auth_enabled":        "security.auth_enabled",
	"jwt_secret":          "security.jwt_secret",
	"token_issuer_secret": "security.issuer_secret",
	"jwt_token_ttl":       "security.token_ttl",
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_requests",
	"rate_limit_window":   "security.rate_limit_window",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - TMDB_API_KEY -> tmdb.api_key
//   - PORT -> server.port
//   - REDIS_ADDR -> cache.redis_addr
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
