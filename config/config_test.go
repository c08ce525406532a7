package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("FYNDA_SERVER_PORT")
		os.Unsetenv("FYNDA_SERVER_ENVIRONMENT")
		os.Unsetenv("FYNDA_CACHE_TYPE")
		os.Unsetenv("FYNDA_CACHE_BADGER_PATH")
		os.Unsetenv("FYNDA_CACHE_REQUEST_TTL")
		os.Unsetenv("FYNDA_CACHE_AGGREGATE_TTL")
		os.Unsetenv("FYNDA_SEARCH_MAX_RESULTS")
		os.Unsetenv("FYNDA_SEARCH_FETCH_TIMEOUT")
		os.Unsetenv("FYNDA_SPELL_ENABLED")
		os.Unsetenv("FYNDA_SPELL_MODEL")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.RequestTTL != 5*time.Minute {
			t.Errorf("Cache.RequestTTL = %v, want 5m", cfg.Cache.RequestTTL)
		}
		if cfg.Cache.AggregateTTL != 6*time.Hour {
			t.Errorf("Cache.AggregateTTL = %v, want 6h", cfg.Cache.AggregateTTL)
		}
		if cfg.Search.MaxResults != 20 {
			t.Errorf("Search.MaxResults = %d, want 20", cfg.Search.MaxResults)
		}
		if cfg.Search.FetchTimeout != 20*time.Second {
			t.Errorf("Search.FetchTimeout = %v, want 20s", cfg.Search.FetchTimeout)
		}
		if cfg.Search.SpellTimeout != 500*time.Millisecond {
			t.Errorf("Search.SpellTimeout = %v, want 500ms", cfg.Search.SpellTimeout)
		}
		if !cfg.Vendors.FakeStore.Enabled {
			t.Error("Vendors.FakeStore.Enabled = false, want true")
		}
		if cfg.Vendors.DummyJSON.BaseURL != "https://dummyjson.com" {
			t.Errorf("Vendors.DummyJSON.BaseURL = %s, want https://dummyjson.com", cfg.Vendors.DummyJSON.BaseURL)
		}
		if cfg.Spell.Enabled {
			t.Error("Spell.Enabled = true, want false by default")
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("FYNDA_SERVER_PORT", "9090")
		os.Setenv("FYNDA_SERVER_ENVIRONMENT", "production")
		os.Setenv("FYNDA_CACHE_TYPE", "badger")
		os.Setenv("FYNDA_CACHE_BADGER_PATH", "/tmp/fynda-cache")
		os.Setenv("FYNDA_CACHE_REQUEST_TTL", "10m")
		os.Setenv("FYNDA_SEARCH_MAX_RESULTS", "50")
		os.Setenv("FYNDA_SEARCH_FETCH_TIMEOUT", "30s")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Cache.Type != "badger" {
			t.Errorf("Cache.Type = %s, want badger", cfg.Cache.Type)
		}
		if cfg.Cache.BadgerPath != "/tmp/fynda-cache" {
			t.Errorf("Cache.BadgerPath = %s, want /tmp/fynda-cache", cfg.Cache.BadgerPath)
		}
		if cfg.Cache.RequestTTL != 10*time.Minute {
			t.Errorf("Cache.RequestTTL = %v, want 10m", cfg.Cache.RequestTTL)
		}
		if cfg.Search.MaxResults != 50 {
			t.Errorf("Search.MaxResults = %d, want 50", cfg.Search.MaxResults)
		}
		if cfg.Search.FetchTimeout != 30*time.Second {
			t.Errorf("Search.FetchTimeout = %v, want 30s", cfg.Search.FetchTimeout)
		}
	})

	t.Run("fails validation for invalid cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("FYNDA_CACHE_TYPE", "redis")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid cache type")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Cache:  CacheConfig{Type: "memory"},
			Search: SearchConfig{MaxResults: 20},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails for invalid cache type", func(t *testing.T) {
		cfg := valid()
		cfg.Cache.Type = "invalid-type"
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for invalid cache type")
		}
	})

	t.Run("fails for badger cache without path", func(t *testing.T) {
		cfg := valid()
		cfg.Cache.Type = "badger"
		cfg.Cache.BadgerPath = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for badger without path")
		}
	})

	t.Run("validates badger cache type with path", func(t *testing.T) {
		cfg := valid()
		cfg.Cache.Type = "badger"
		cfg.Cache.BadgerPath = "./data/cache"
		if err := validate(cfg); err != nil {
			t.Errorf("validate() error = %v, want nil for valid badger config", err)
		}
	})

	t.Run("fails for non-positive max results", func(t *testing.T) {
		cfg := valid()
		cfg.Search.MaxResults = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero max_results")
		}
	})

	t.Run("fails when spell enabled without model", func(t *testing.T) {
		cfg := valid()
		cfg.Spell.Enabled = true
		cfg.Spell.Model = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for spell without model")
		}
	})
}
