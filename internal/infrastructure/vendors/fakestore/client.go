// Package fakestore integrates the Fake Store API
// (https://fakestoreapi.com) as a product source. The API has no
// server-side search, so the client fetches the catalog and filters by
// query tokens locally.
package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/fynda/backend/internal/domain"
)

const vendorName = "FakeStore"

// Client handles communication with the Fake Store API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a Fake Store client. The public API is unmetered
// but shared, so requests are kept to 2/sec with a small burst.
func NewClient(baseURL string, debug bool) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		rateLimiter: rate.NewLimiter(rate.Limit(2), 5),
		debug:       debug,
	}
}

// Name returns the display name used in result bookkeeping.
func (c *Client) Name() string { return vendorName }

// IsConfigured reports whether the client has an endpoint to call.
func (c *Client) IsConfigured() bool { return c.baseURL != "" }

// Search fetches the catalog and keeps products whose title or
// category mention any query token. No matches is an empty slice, not
// an error.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.StandardProduct, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("%w: %s has no base URL", domain.ErrVendorNotConfigured, vendorName)
	}

	payload, err := c.fetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	products := mapProducts(filterByQuery(payload, query), c.baseURL)
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	if c.debug {
		log.Printf("[FAKESTORE] %d of %d products match %q", len(products), len(payload), query)
	}
	return products, nil
}

func (c *Client) fetchCatalog(ctx context.Context) ([]fakeStoreProduct, error) {
	reqURL := c.baseURL + "/products"

	// Retry transient failures; 429 is surfaced as the quota signal
	// instead of being retried.
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", "Fynda/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Printf("[FAKESTORE] request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: fakestore returned 429", domain.ErrQuotaExceeded)
		}
		if resp.StatusCode != http.StatusOK {
			log.Printf("[FAKESTORE] status %d (attempt %d)", resp.StatusCode, attempt)
			lastErr = fmt.Errorf("fakestore status %d", resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var payload []fakeStoreProduct
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("decoding fakestore response: %w", err)
		}
		return payload, nil
	}
	return nil, lastErr
}

// filterByQuery keeps products whose title or category contains any
// query token.
func filterByQuery(payload []fakeStoreProduct, query string) []fakeStoreProduct {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return payload
	}

	kept := payload[:0:0]
	for _, p := range payload {
		haystack := strings.ToLower(p.Title + " " + p.Category)
		for _, tok := range tokens {
			if strings.Contains(haystack, tok) {
				kept = append(kept, p)
				break
			}
		}
	}
	return kept
}
