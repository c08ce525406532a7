package usecase

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/fynda/backend/internal/domain"
	"github.com/fynda/backend/internal/taxonomy"
)

// Orchestrator defaults; all overridable through Options.
const (
	defaultVendorLimit  = 15
	defaultMaxResults   = 20
	defaultFetchTimeout = 20 * time.Second
	defaultSpellTimeout = 500 * time.Millisecond
	defaultAggregateTTL = 6 * time.Hour
	defaultRequestTTL   = 5 * time.Minute
	defaultPoolSize     = 10
	suggestionThreshold = 3
)

// Options tune the orchestrator. Zero values fall back to defaults.
type Options struct {
	VendorLimit   int
	MaxResults    int
	FetchTimeout  time.Duration
	SpellTimeout  time.Duration
	AggregateTTL  time.Duration
	RequestTTL    time.Duration
	PoolSize      int
	Debug         bool
}

func (o *Options) applyDefaults() {
	if o.VendorLimit <= 0 {
		o.VendorLimit = defaultVendorLimit
	}
	if o.MaxResults <= 0 {
		o.MaxResults = defaultMaxResults
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = defaultFetchTimeout
	}
	if o.SpellTimeout <= 0 {
		o.SpellTimeout = defaultSpellTimeout
	}
	if o.AggregateTTL <= 0 {
		o.AggregateTTL = defaultAggregateTTL
	}
	if o.RequestTTL <= 0 {
		o.RequestTTL = defaultRequestTTL
	}
	if o.PoolSize <= 0 {
		o.PoolSize = defaultPoolSize
	}
}

// cacheEntry is the payload stored in both cache tiers. It holds the
// full ranked list before truncation, so a later read with a larger
// result cap still works.
type cacheEntry struct {
	Products           []domain.StandardProduct `json:"products"`
	SourcesQueried     []string                 `json:"sources_queried"`
	SourcesWithResults []string                 `json:"sources_with_results"`
	QuotaExceeded      bool                     `json:"quota_exceeded"`
}

// SearchOrchestrator fans a parsed query out to every configured vendor
// plus the spell corrector, then merges, filters, ranks, and caches the
// results. Vendor failures never fail the overall search.
type SearchOrchestrator struct {
	parser         domain.QueryParser
	vendors        []domain.Vendor
	speller        domain.SpellCorrector
	requestCache   domain.CacheRepository
	aggregateCache domain.CacheRepository
	taxonomy       *taxonomy.Taxonomy
	ranker         *ranker
	pool           *ants.Pool
	opts           Options
}

// NewSearchOrchestrator wires the orchestrator. speller may be nil to
// run without spell suggestions; sourceBonus maps vendor display names
// to their ranking priority bonus.
func NewSearchOrchestrator(
	parser domain.QueryParser,
	vendors []domain.Vendor,
	sourceBonus map[string]float64,
	speller domain.SpellCorrector,
	requestCache domain.CacheRepository,
	aggregateCache domain.CacheRepository,
	tax *taxonomy.Taxonomy,
	opts Options,
) (*SearchOrchestrator, error) {
	opts.applyDefaults()

	pool, err := ants.NewPool(opts.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}

	configured := make([]domain.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if v.IsConfigured() {
			configured = append(configured, v)
		} else if opts.Debug {
			log.Printf("[ORCHESTRATOR] vendor %s not configured, skipping", v.Name())
		}
	}

	return &SearchOrchestrator{
		parser:         parser,
		vendors:        configured,
		speller:        speller,
		requestCache:   requestCache,
		aggregateCache: aggregateCache,
		taxonomy:       tax,
		ranker:         newRanker(sourceBonus),
		pool:           pool,
		opts:           opts,
	}, nil
}

// Close releases the worker pool.
func (o *SearchOrchestrator) Close() {
	o.pool.Release()
}

// Search runs the full aggregation pipeline for a raw query.
func (o *SearchOrchestrator) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidRequest)
	}
	start := time.Now()
	key := cacheKey(query)

	// Parsing is cheap enough to re-run on cache hits; it produces the
	// parsed-query field of the response.
	parsed := o.parser.Parse(query)

	if entry := o.readCache(ctx, key); entry != nil {
		if o.opts.Debug {
			log.Printf("[ORCHESTRATOR] cache hit for %q", query)
		}
		return o.buildResult(parsed, entry, true, "", start), nil
	}
	if o.opts.Debug {
		log.Printf("[ORCHESTRATOR] cache miss for %q, querying %d vendors", query, len(o.vendors))
	}

	merged, sourcesWithResults, quotaExceeded, spell := o.fanOut(ctx, parsed, query)

	if parsed.HasBudget() {
		merged = filterByBudget(merged, parsed.BudgetMax)
	}
	merged = deduplicate(merged)

	preFilter := len(merged)
	merged = o.filterNonFashion(merged)
	if o.opts.Debug && preFilter != len(merged) {
		log.Printf("[ORCHESTRATOR] taxonomy filter removed %d items", preFilter-len(merged))
	}

	if parsed.Gender != "" {
		merged = filterByGender(merged, parsed.Gender)
	}

	merged = o.ranker.rank(merged, parsed)

	entry := &cacheEntry{
		Products:           merged,
		SourcesQueried:     o.sourceNames(),
		SourcesWithResults: sourcesWithResults,
		QuotaExceeded:      quotaExceeded,
	}
	o.writeCache(ctx, key, entry)

	suggestion := ""
	if spell != nil && spell.WasCorrected && len(merged) < suggestionThreshold {
		suggestion = spell.Corrected
		if o.opts.Debug {
			log.Printf("[ORCHESTRATOR] suggesting corrected query %q -> %q", query, suggestion)
		}
	}

	return o.buildResult(parsed, entry, false, suggestion, start), nil
}

type vendorResult struct {
	source   string
	products []domain.StandardProduct
	quota    bool
	err      error
}

// fanOut submits one task per vendor plus the spell corrector to the
// bounded pool and collects whatever finishes before the aggregate
// deadline. Stragglers are abandoned, never awaited.
func (o *SearchOrchestrator) fanOut(ctx context.Context, parsed *domain.ParsedQuery, rawQuery string) ([]domain.StandardProduct, []string, bool, *domain.SpellCorrection) {
	// Vendor results are cache-worthy even if the client goes away, so
	// the fetch context detaches from client cancellation.
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.opts.FetchTimeout)
	defer cancel()

	results := make(chan vendorResult, len(o.vendors))
	submitted := 0
	for _, v := range o.vendors {
		vendor := v
		if err := o.pool.Submit(func() {
			results <- o.fetchFromVendor(fetchCtx, vendor, parsed)
		}); err != nil {
			log.Printf("[ORCHESTRATOR] submitting task for %s: %v", vendor.Name(), err)
			continue
		}
		submitted++
	}

	spellCh := make(chan *domain.SpellCorrection, 1)
	if o.speller != nil {
		speller := o.speller
		if err := o.pool.Submit(func() {
			spellCtx, spellCancel := context.WithTimeout(fetchCtx, o.opts.SpellTimeout)
			defer spellCancel()
			correction, err := speller.Correct(spellCtx, rawQuery)
			if err != nil {
				spellCh <- nil
				return
			}
			spellCh <- &correction
		}); err != nil {
			spellCh <- nil
		}
	} else {
		spellCh <- nil
	}

	var merged []domain.StandardProduct
	var sourcesWithResults []string
	quotaExceeded := false

	deadline := time.NewTimer(o.opts.FetchTimeout)
	defer deadline.Stop()

collect:
	for i := 0; i < submitted; i++ {
		select {
		case res := <-results:
			if res.quota {
				quotaExceeded = true
			}
			if res.err != nil {
				log.Printf("[ORCHESTRATOR] vendor %s: %v", res.source, res.err)
				continue
			}
			if len(res.products) > 0 {
				merged = append(merged, res.products...)
				sourcesWithResults = append(sourcesWithResults, res.source)
				if o.opts.Debug {
					log.Printf("[ORCHESTRATOR] %d products from %s", len(res.products), res.source)
				}
			}
		case <-deadline.C:
			log.Printf("[ORCHESTRATOR] fetch deadline reached, %d vendor(s) abandoned", submitted-i)
			break collect
		}
	}

	// The spell task has its own short window; a slow correction never
	// delays the primary result.
	var spell *domain.SpellCorrection
	select {
	case spell = <-spellCh:
	case <-time.After(o.opts.SpellTimeout):
	}

	return merged, sourcesWithResults, quotaExceeded, spell
}

// fetchFromVendor runs one vendor search and applies the per-vendor
// budget filter before merge.
func (o *SearchOrchestrator) fetchFromVendor(ctx context.Context, vendor domain.Vendor, parsed *domain.ParsedQuery) vendorResult {
	searchQuery := parsed.SearchTerms()

	products, err := vendor.Search(ctx, searchQuery, o.opts.VendorLimit)
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			return vendorResult{source: vendor.Name(), quota: true}
		}
		return vendorResult{source: vendor.Name(), err: err}
	}
	if parsed.HasBudget() {
		products = filterByBudget(products, parsed.BudgetMax)
	}
	return vendorResult{source: vendor.Name(), products: products}
}

func (o *SearchOrchestrator) filterNonFashion(products []domain.StandardProduct) []domain.StandardProduct {
	if o.taxonomy == nil {
		return products
	}
	kept := products[:0:0]
	for _, p := range products {
		if o.taxonomy.IsFashion(p.Title) {
			kept = append(kept, p)
		}
	}
	return kept
}

func (o *SearchOrchestrator) buildResult(parsed *domain.ParsedQuery, entry *cacheEntry, cacheHit bool, suggestion string, start time.Time) *domain.SearchResult {
	products := entry.Products
	if len(products) > o.opts.MaxResults {
		products = products[:o.opts.MaxResults]
	}
	return &domain.SearchResult{
		QueryID:            uuid.NewString(),
		Query:              parsed,
		Products:           products,
		SourcesQueried:     entry.SourcesQueried,
		SourcesWithResults: entry.SourcesWithResults,
		CacheHit:           cacheHit,
		SearchTimeMs:       time.Since(start).Milliseconds(),
		QuotaExceeded:      entry.QuotaExceeded,
		SuggestedQuery:     suggestion,
	}
}

// readCache tries the request tier first, then the aggregate tier. Any
// backend error is treated as a miss.
func (o *SearchOrchestrator) readCache(ctx context.Context, key string) *cacheEntry {
	for _, c := range []domain.CacheRepository{o.requestCache, o.aggregateCache} {
		if c == nil {
			continue
		}
		value, err := c.Get(ctx, key)
		if err != nil {
			continue
		}
		entry, err := decodeEntry(value)
		if err != nil {
			log.Printf("[ORCHESTRATOR] decoding cache entry: %v", err)
			continue
		}
		return entry
	}
	return nil
}

func (o *SearchOrchestrator) writeCache(ctx context.Context, key string, entry *cacheEntry) {
	if o.requestCache != nil {
		if err := o.requestCache.Set(ctx, key, entry, o.opts.RequestTTL); err != nil {
			log.Printf("[ORCHESTRATOR] request cache write: %v", err)
		}
	}
	if o.aggregateCache != nil {
		if err := o.aggregateCache.Set(ctx, key, entry, o.opts.AggregateTTL); err != nil {
			log.Printf("[ORCHESTRATOR] aggregate cache write: %v", err)
		}
	}
}

// decodeEntry converts whatever the cache backend returned into a
// cacheEntry via a JSON round trip, which covers both in-process
// structs and deserialized maps.
func decodeEntry(value interface{}) (*cacheEntry, error) {
	if entry, ok := value.(*cacheEntry); ok {
		return entry, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshaling cached value: %w", err)
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("unmarshaling cached value: %w", err)
	}
	return &entry, nil
}

func (o *SearchOrchestrator) sourceNames() []string {
	names := make([]string, 0, len(o.vendors))
	for _, v := range o.vendors {
		names = append(names, v.Name())
	}
	return names
}

// cacheKey hashes the normalized query so arbitrary text becomes a
// fixed-length key.
func cacheKey(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	sum := md5.Sum([]byte(normalized))
	return "search:" + hex.EncodeToString(sum[:])
}

