package domain

import "errors"

var (
	// ErrCacheMiss is returned when a key is not in the cache.
	ErrCacheMiss = errors.New("cache miss")

	// ErrQuotaExceeded is returned by a vendor when its API quota or
	// rate limit was exhausted. The orchestrator surfaces it to the
	// caller instead of treating it as a plain failure.
	ErrQuotaExceeded = errors.New("vendor quota exceeded")

	// ErrVendorNotConfigured is returned when a vendor is asked to
	// search without the credentials or endpoint it needs.
	ErrVendorNotConfigured = errors.New("vendor not configured")

	// ErrInvalidRequest is returned for malformed or empty queries.
	ErrInvalidRequest = errors.New("invalid request")
)
