package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Cache   CacheConfig
	Search  SearchConfig
	Vendors VendorsConfig
	Spell   SpellConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type         string        `mapstructure:"type"` // "memory" or "badger"
	BadgerPath   string        `mapstructure:"badger_path"`
	RequestTTL   time.Duration `mapstructure:"request_ttl"`
	AggregateTTL time.Duration `mapstructure:"aggregate_ttl"`
}

// SearchConfig holds search pipeline configuration
type SearchConfig struct {
	MaxResults       int           `mapstructure:"max_results"`
	VendorLimit      int           `mapstructure:"vendor_limit"`
	FetchTimeout     time.Duration `mapstructure:"fetch_timeout"`
	SpellTimeout     time.Duration `mapstructure:"spell_timeout"`
	PoolSize         int           `mapstructure:"pool_size"`
	FuzzyMaxDistance int           `mapstructure:"fuzzy_max_distance"`
	TaxonomyPath     string        `mapstructure:"taxonomy_path"`
	Debug            bool          `mapstructure:"debug"`
}

// VendorsConfig holds per-vendor configuration
type VendorsConfig struct {
	FakeStore VendorConfig `mapstructure:"fakestore"`
	DummyJSON VendorConfig `mapstructure:"dummyjson"`
}

// VendorConfig holds configuration for a single product source
type VendorConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	BaseURL  string `mapstructure:"base_url"`
	Priority int    `mapstructure:"priority"`
}

// SpellConfig holds spell correction configuration
type SpellConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/fynda/")

	// Environment variable settings
	v.SetEnvPrefix("FYNDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.badger_path", "./data/cache")
	v.SetDefault("cache.request_ttl", "5m")
	v.SetDefault("cache.aggregate_ttl", "6h")

	// Search defaults
	v.SetDefault("search.max_results", 20)
	v.SetDefault("search.vendor_limit", 15)
	v.SetDefault("search.fetch_timeout", "20s")
	v.SetDefault("search.spell_timeout", "500ms")
	v.SetDefault("search.pool_size", 10)
	v.SetDefault("search.fuzzy_max_distance", 2)
	v.SetDefault("search.taxonomy_path", "./data/taxonomy.json")
	v.SetDefault("search.debug", false)

	// Vendor defaults
	v.SetDefault("vendors.fakestore.enabled", true)
	v.SetDefault("vendors.fakestore.base_url", "https://fakestoreapi.com")
	v.SetDefault("vendors.fakestore.priority", 15)
	v.SetDefault("vendors.dummyjson.enabled", true)
	v.SetDefault("vendors.dummyjson.base_url", "https://dummyjson.com")
	v.SetDefault("vendors.dummyjson.priority", 10)

	// Spell defaults
	v.SetDefault("spell.enabled", false)
	v.SetDefault("spell.base_url", "")
	v.SetDefault("spell.api_key", "")
	v.SetDefault("spell.model", "gpt-4o-mini")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" && config.Cache.Type != "badger" {
		return fmt.Errorf("cache type must be 'memory' or 'badger', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "badger" && config.Cache.BadgerPath == "" {
		return fmt.Errorf("badger path is required when cache type is 'badger'")
	}

	if config.Search.MaxResults <= 0 {
		return fmt.Errorf("search max_results must be positive, got: %d", config.Search.MaxResults)
	}

	if config.Spell.Enabled && config.Spell.Model == "" {
		return fmt.Errorf("spell model is required when spell correction is enabled")
	}

	return nil
}
