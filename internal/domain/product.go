package domain

import "time"

// StandardProduct is the single product format every vendor must return.
// The orchestrator only ever deals with StandardProduct; vendor payload
// shapes stay inside their infrastructure packages.
type StandardProduct struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	OriginalPrice   float64   `json:"original_price,omitempty"`
	DiscountPercent float64   `json:"discount_percent,omitempty"`
	Currency        string    `json:"currency"`
	URL             string    `json:"url"`
	ImageURL        string    `json:"image_url,omitempty"`
	Source          string    `json:"source"` // display name: "FakeStore", "DummyJSON", ...
	MerchantName    string    `json:"merchant_name,omitempty"`
	Brand           string    `json:"brand,omitempty"`
	Category        string    `json:"category,omitempty"`
	InStock         bool      `json:"in_stock"`
	Rating          float64   `json:"rating,omitempty"`
	ReviewsCount    int       `json:"reviews_count,omitempty"`
	Features        []string  `json:"features,omitempty"`
	RelevanceScore  float64   `json:"relevance_score,omitempty"`
	FetchedAt       time.Time `json:"fetched_at"`
}

// SearchResult is what the orchestrator returns to the delivery layer.
// Products are in rank order, capped at the configured maximum.
type SearchResult struct {
	QueryID            string            `json:"query_id"`
	Query              *ParsedQuery      `json:"query"`
	Products           []StandardProduct `json:"products"`
	SourcesQueried     []string          `json:"sources_queried"`
	SourcesWithResults []string          `json:"sources_with_results"`
	CacheHit           bool              `json:"cache_hit"`
	SearchTimeMs       int64             `json:"search_time_ms"`
	QuotaExceeded      bool              `json:"quota_exceeded,omitempty"`
	SuggestedQuery     string            `json:"suggested_query,omitempty"`
}
