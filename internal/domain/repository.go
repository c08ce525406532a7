package domain

import (
	"context"
	"time"
)

// Vendor is the contract every product source must satisfy. Search
// returns an empty slice, not an error, when the vendor simply has
// nothing matching. Quota exhaustion is reported as ErrQuotaExceeded.
type Vendor interface {
	Name() string
	IsConfigured() bool
	Search(ctx context.Context, query string, limit int) ([]StandardProduct, error)
}

// VendorStatus describes one registered vendor for the status endpoint.
type VendorStatus struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Priority   float64 `json:"priority"`
	Enabled    bool    `json:"enabled"`
	Configured bool    `json:"configured"`
}

// CacheRepository is a TTL key/value store for serializable values.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// SpellCorrection carries the outcome of a spell check on a raw query.
type SpellCorrection struct {
	Original     string `json:"original"`
	Corrected    string `json:"corrected"`
	WasCorrected bool   `json:"was_corrected"`
}

// SpellCorrector proposes a corrected form of a query, or echoes it back
// unchanged when nothing looks wrong.
type SpellCorrector interface {
	Correct(ctx context.Context, query string) (SpellCorrection, error)
}

// QueryParser turns a raw query into a ParsedQuery.
type QueryParser interface {
	Parse(query string) *ParsedQuery
}
