// Package dummyjson integrates the DummyJSON products API
// (https://dummyjson.com) as a product source with server-side search.
package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/fynda/backend/internal/domain"
)

const vendorName = "DummyJSON"

// Client handles communication with the DummyJSON API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a DummyJSON client.
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

// Search queries the products search endpoint. No matches is an empty
// slice, not an error.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.StandardProduct, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("%w: %s has no base URL", domain.ErrVendorNotConfigured, vendorName)
	}

	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	reqURL := fmt.Sprintf("%s/products/search?%s", c.baseURL, params.Encode())

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
			log.Printf("[DUMMYJSON] request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: dummyjson returned 429", domain.ErrQuotaExceeded)
		}
		if resp.StatusCode != http.StatusOK {
			log.Printf("[DUMMYJSON] status %d (attempt %d)", resp.StatusCode, attempt)
			lastErr = fmt.Errorf("dummyjson status %d", resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var payload searchResponse
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("decoding dummyjson response: %w", err)
		}

		products := mapProducts(payload.Products, c.baseURL)
		if c.debug {
			log.Printf("[DUMMYJSON] %d products for %q", len(products), query)
		}
		return products, nil
	}
	return nil, lastErr
}
