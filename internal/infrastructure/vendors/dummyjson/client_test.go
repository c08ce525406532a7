package dummyjson

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fynda/backend/internal/domain"
)

const searchJSON = `{
	"products": [
		{"id": 83, "title": "Blue Frock", "description": "Casual summer dress",
		 "price": 13.99, "discountPercentage": 10.0, "rating": 4.7, "stock": 52,
		 "brand": "Glamour Beauty", "category": "womens-dresses",
		 "thumbnail": "https://img.example/83.jpg", "tags": ["dresses", "summer"]},
		{"id": 84, "title": "Corset Leather With Skirt", "description": "Edgy look",
		 "price": 89.99, "discountPercentage": 0, "rating": 4.0, "stock": 0,
		 "brand": "Steel Noir", "category": "womens-dresses",
		 "thumbnail": "https://img.example/84.jpg", "tags": ["dresses"]}
	],
	"total": 2
}`

func TestSearchMapsProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/search", r.URL.Path)
		assert.Equal(t, "dress", r.URL.Query().Get("q"))
		assert.Equal(t, "15", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchJSON))
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	products, err := client.Search(context.Background(), "dress", 15)
	require.NoError(t, err)
	require.Len(t, products, 2)

	first := products[0]
	assert.Equal(t, "dummyjson-83", first.ID)
	assert.Equal(t, "Blue Frock", first.Title)
	assert.Equal(t, 13.99, first.Price)
	assert.Equal(t, 10.0, first.DiscountPercent)
	assert.InDelta(t, 15.54, first.OriginalPrice, 0.01)
	assert.Equal(t, "DummyJSON", first.Source)
	assert.Equal(t, "Glamour Beauty", first.Brand)
	assert.True(t, first.InStock)
	assert.Equal(t, []string{"dresses", "summer"}, first.Features)

	second := products[1]
	assert.False(t, second.InStock)
	assert.Zero(t, second.OriginalPrice)
}

func TestSearchEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [], "total": 0}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	products, err := client.Search(context.Background(), "xyzzy", 15)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSearchQuotaExceeded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	_, err := client.Search(context.Background(), "dress", 15)
	assert.True(t, errors.Is(err, domain.ErrQuotaExceeded))
}

func TestSearchRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(searchJSON))
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	products, err := client.Search(context.Background(), "dress", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Len(t, products, 2)
}

func TestSearchUnconfigured(t *testing.T) {
	_, err := NewClient("", false).Search(context.Background(), "jacket", 10)
	assert.ErrorIs(t, err, domain.ErrVendorNotConfigured)
}

func TestIsConfigured(t *testing.T) {
	assert.True(t, NewClient("https://dummyjson.com", false).IsConfigured())
	assert.False(t, NewClient("", false).IsConfigured())
}
