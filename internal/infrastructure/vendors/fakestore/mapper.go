package fakestore

import (
	"fmt"
	"time"

	"github.com/fynda/backend/internal/domain"
)

// fakeStoreProduct mirrors the Fake Store API product payload.
type fakeStoreProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

// mapProducts converts API payloads into the standard product format.
func mapProducts(payload []fakeStoreProduct, baseURL string) []domain.StandardProduct {
	now := time.Now().UTC()
	out := make([]domain.StandardProduct, 0, len(payload))
	for _, p := range payload {
		out = append(out, domain.StandardProduct{
			ID:           fmt.Sprintf("fakestore-%d", p.ID),
			Title:        p.Title,
			Description:  p.Description,
			Price:        p.Price,
			Currency:     "USD",
			URL:          fmt.Sprintf("%s/products/%d", baseURL, p.ID),
			ImageURL:     p.Image,
			Source:       vendorName,
			Category:     p.Category,
			InStock:      true,
			Rating:       p.Rating.Rate,
			ReviewsCount: p.Rating.Count,
			FetchedAt:    now,
		})
	}
	return out
}
