// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// clearConfigEnv unsets every mapped variable for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	names := []string{ConfigPathEnvVar}
	for name := range envMappings {
		names = append(names, strings.ToUpper(name))
	}
	for _, name := range names {
		if old, ok := os.LookupEnv(name); ok {
			os.Unsetenv(name)
			t.Cleanup(func() { os.Setenv(name, old) })
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 5002 {
		t.Errorf("Server.Port = %d, want 5002", cfg.Server.Port)
	}
	if cfg.TMDB.BaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("TMDB.BaseURL = %q", cfg.TMDB.BaseURL)
	}
	if cfg.Store.Driver != "memory" || cfg.Cache.Backend != "memory" {
		t.Errorf("drivers = %q/%q, want memory/memory", cfg.Store.Driver, cfg.Cache.Backend)
	}
	if cfg.Recommend.DefaultK != 5 || cfg.Recommend.IDFSmoothing != "reference" || cfg.Recommend.KeepZeroIDFTerms {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"TMDB_API_KEY", "tmdb.api_key"},
		{"PORT", "server.port"},
		{"HTTP_PORT", "server.port"},
		{"REDIS_ADDR", "cache.redis_addr"},
		{"STORE_DRIVER", "store.driver"},
		{"RECOMMEND_KEEP_ZERO_IDF", "recommend.keep_zero_idf_terms"},
		{"JWT_TOKEN_TTL", "security.token_ttl"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	clearConfigEnv(t)
	tmpDir := t.TempDir()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("server: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := findConfigFile(); got != "config.yaml" {
		t.Errorf("findConfigFile() = %q, want config.yaml", got)
	}

	custom := filepath.Join(tmpDir, "custom.yaml")
	if err := os.WriteFile(custom, []byte("server: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, custom)
	if got := findConfigFile(); got != custom {
		t.Errorf("findConfigFile() = %q, want %q", got, custom)
	}

	t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
	if got := findConfigFile(); got != "config.yaml" {
		t.Errorf("missing CONFIG_PATH should fall back, got %q", got)
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
	t.Setenv("TMDB_API_KEY", "tmdb-test-key")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("TMDB_RPS", "4.5")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("RECOMMEND_KEEP_ZERO_IDF", "true")
	t.Setenv("RECOMMEND_IDF_SMOOTHING", "plus_one")
	t.Setenv("CORS_ORIGINS", "https://a.example.org, https://b.example.org,")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.TMDB.APIKey != "tmdb-test-key" || !cfg.TMDBEnabled() {
		t.Errorf("TMDB.APIKey = %q", cfg.TMDB.APIKey)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.TMDB.RequestsPerSecond != 4.5 {
		t.Errorf("RequestsPerSecond = %v, want 4.5", cfg.TMDB.RequestsPerSecond)
	}
	if cfg.Cache.TTL != 90*time.Second {
		t.Errorf("Cache.TTL = %v, want 90s", cfg.Cache.TTL)
	}
	if !cfg.Recommend.KeepZeroIDFTerms || cfg.Recommend.IDFSmoothing != "plus_one" {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	wantOrigins := []string{"https://a.example.org", "https://b.example.org"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, wantOrigins) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, wantOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}

	// Defaults survive for unset values.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default", cfg.Server.Host)
	}
	if cfg.Store.MongoDatabase != "movie_recommendations" {
		t.Errorf("Store.MongoDatabase = %q, want default", cfg.Store.MongoDatabase)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	clearConfigEnv(t)

	content := `
server:
  port: 8888
  host: "127.0.0.1"
store:
  driver: badger
  badger_path: /tmp/prefs
recommend:
  default_k: 10
  max_k: 20
security:
  cors_origins:
    - https://movies.example.org
logging:
  level: warn
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8888 || cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Store.Driver != "badger" || cfg.Store.BadgerPath != "/tmp/prefs" {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Recommend.DefaultK != 10 || cfg.Recommend.MaxK != 20 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"https://movies.example.org"}) {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("env should override file, Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Server.Addr() != "127.0.0.1:8888" {
		t.Errorf("Addr() = %q", cfg.Server.Addr())
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		errMsg  string
	}{
		{"port out of range", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"unknown store", map[string]string{"STORE_DRIVER": "cassandra"}, "STORE_DRIVER"},
		{"postgres without dsn", map[string]string{"STORE_DRIVER": "postgres"}, "POSTGRES_DSN"},
		{"unknown cache", map[string]string{"CACHE_BACKEND": "memcached"}, "CACHE_BACKEND"},
		{"bad smoothing", map[string]string{"RECOMMEND_IDF_SMOOTHING": "bm25"}, "RECOMMEND_IDF_SMOOTHING"},
		{"default k above max", map[string]string{"RECOMMEND_DEFAULT_K": "60"}, "RECOMMEND_MAX_K"},
		{"auth without secret", map[string]string{"AUTH_ENABLED": "true"}, "JWT_SECRET"},
		{"short secret", map[string]string{"AUTH_ENABLED": "true", "JWT_SECRET": "too-short"}, "JWT_SECRET"},
		{"zero rps", map[string]string{"TMDB_RPS": "0"}, "TMDB_RPS"},
		{"bad log level", map[string]string{"LOG_LEVEL": "chatty"}, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q should mention %s", err, tt.errMsg)
			}
		})
	}
}

func TestValidate_AuthEnabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.AuthEnabled = true
	cfg.Security.JWTSecret = strings.Repeat("k", 40)
	cfg.Security.IssuerSecret = strings.Repeat("i", 40)
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid auth config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*SecurityConfig)
		errMsg string
	}{
		{"placeholder jwt secret", func(s *SecurityConfig) { s.JWTSecret = "CHANGEME-" + strings.Repeat("k", 40) }, "JWT_SECRET"},
		{"missing issuer secret", func(s *SecurityConfig) { s.IssuerSecret = "" }, "TOKEN_ISSUER_SECRET"},
		{"short issuer secret", func(s *SecurityConfig) { s.IssuerSecret = "short" }, "TOKEN_ISSUER_SECRET"},
		{"issuer equals jwt secret", func(s *SecurityConfig) { s.IssuerSecret = s.JWTSecret }, "TOKEN_ISSUER_SECRET"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaultConfig()
			c.Security = cfg.Security
			tt.mutate(&c.Security)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.errMsg)
			}
		})
	}
}

func TestHasWildcardCORS(t *testing.T) {
	cfg := defaultConfig()
	if !cfg.HasWildcardCORS() {
		t.Error("default origins should be wildcard")
	}
	cfg.Security.CORSOrigins = []string{"https://movies.example.org"}
	if cfg.HasWildcardCORS() {
		t.Error("explicit origins are not wildcard")
	}
}

func TestValidate_LogLevelsMatchLogger(t *testing.T) {
	for _, level := range []string{"trace", "DEBUG", "warning", "fatal", "disabled", " info "} {
		cfg := defaultConfig()
		cfg.Logging.Level = level
		if err := cfg.Validate(); err != nil {
			t.Errorf("level %q rejected: %v", level, err)
		}
	}
}
