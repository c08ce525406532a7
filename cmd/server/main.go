package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fynda/backend/config"
	httpDelivery "github.com/fynda/backend/internal/delivery/http"
	"github.com/fynda/backend/internal/domain"
	"github.com/fynda/backend/internal/fuzzy"
	"github.com/fynda/backend/internal/gazetteer"
	"github.com/fynda/backend/internal/infrastructure/cache"
	"github.com/fynda/backend/internal/infrastructure/spell"
	"github.com/fynda/backend/internal/infrastructure/vendors"
	"github.com/fynda/backend/internal/infrastructure/vendors/dummyjson"
	"github.com/fynda/backend/internal/infrastructure/vendors/fakestore"
	"github.com/fynda/backend/internal/taxonomy"
	"github.com/fynda/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debug := cfg.Search.Debug || cfg.Server.Environment == "development"

	log.Printf("Starting Fynda Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Query understanding
	gaz := gazetteer.New()
	log.Printf("Gazetteer loaded: %d terms", gaz.Size())

	matcher := fuzzy.NewMatcher(cfg.Search.FuzzyMaxDistance)
	parser := usecase.NewQueryParser(gaz, matcher, debug)

	tax := taxonomy.Load(cfg.Search.TaxonomyPath, debug)

	// Cache backends
	requestCache, aggregateCache, err := buildCaches(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	defer requestCache.Close()
	defer aggregateCache.Close()

	// Vendor registry
	registry := vendors.NewRegistry()
	registry.Register(vendors.Config{
		ID:       "fakestore",
		Name:     "FakeStore",
		Category: "general",
		Priority: float64(cfg.Vendors.FakeStore.Priority),
		Enabled:  cfg.Vendors.FakeStore.Enabled,
	}, fakestore.NewClient(cfg.Vendors.FakeStore.BaseURL, debug))
	registry.Register(vendors.Config{
		ID:       "dummyjson",
		Name:     "DummyJSON",
		Category: "general",
		Priority: float64(cfg.Vendors.DummyJSON.Priority),
		Enabled:  cfg.Vendors.DummyJSON.Enabled,
	}, dummyjson.NewClient(cfg.Vendors.DummyJSON.BaseURL, debug))

	enabled := registry.Enabled()
	if len(enabled) == 0 {
		log.Printf("WARNING: no vendors enabled - searches will return empty results")
	}
	for _, v := range enabled {
		log.Printf("Vendor enabled: %s", v.Name())
	}

	// Spell correction is optional
	var speller domain.SpellCorrector
	if cfg.Spell.Enabled {
		corrector, err := spell.New(cfg.Spell.BaseURL, cfg.Spell.APIKey, cfg.Spell.Model, debug)
		if err != nil {
			log.Fatalf("Failed to initialize spell corrector: %v", err)
		}
		speller = corrector
		log.Printf("Spell correction enabled: model=%s", cfg.Spell.Model)
	}

	// Search orchestrator
	orchestrator, err := usecase.NewSearchOrchestrator(
		parser,
		enabled,
		registry.SourceBonuses(),
		speller,
		requestCache,
		aggregateCache,
		tax,
		usecase.Options{
			VendorLimit:  cfg.Search.VendorLimit,
			MaxResults:   cfg.Search.MaxResults,
			FetchTimeout: cfg.Search.FetchTimeout,
			SpellTimeout: cfg.Search.SpellTimeout,
			AggregateTTL: cfg.Cache.AggregateTTL,
			RequestTTL:   cfg.Cache.RequestTTL,
			PoolSize:     cfg.Search.PoolSize,
			Debug:        debug,
		},
	)
	if err != nil {
		log.Fatalf("Failed to initialize orchestrator: %v", err)
	}
	defer orchestrator.Close()

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(orchestrator, registry)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildCaches returns the request and aggregate tiers. The request
// tier is always in-memory; the aggregate tier is memory or badger per
// config. The tiers share a key space, so they must be distinct stores
// or the second write of a search would clobber the first tier's TTL.
func buildCaches(cfg *config.Config) (domain.CacheRepository, domain.CacheRepository, error) {
	requestCache := cache.NewMemoryCache()
	if cfg.Cache.Type == "badger" {
		store, err := cache.NewBadgerCache(cfg.Cache.BadgerPath)
		if err != nil {
			return nil, nil, err
		}
		return requestCache, store, nil
	}
	return requestCache, cache.NewMemoryCache(), nil
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
