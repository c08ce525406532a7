package dummyjson

import (
	"fmt"
	"math"
	"time"

	"github.com/fynda/backend/internal/domain"
)

type searchResponse struct {
	Products []dummyProduct `json:"products"`
	Total    int            `json:"total"`
}

// dummyProduct mirrors the DummyJSON product payload.
type dummyProduct struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Tags               []string `json:"tags"`
}

// mapProducts converts API payloads into the standard product format.
// DummyJSON reports a discount percentage, so the pre-discount price is
// reconstructed for display.
func mapProducts(payload []dummyProduct, baseURL string) []domain.StandardProduct {
	now := time.Now().UTC()
	out := make([]domain.StandardProduct, 0, len(payload))
	for _, p := range payload {
		original := 0.0
		if p.DiscountPercentage > 0 && p.DiscountPercentage < 100 {
			original = round2(p.Price / (1 - p.DiscountPercentage/100))
		}
		out = append(out, domain.StandardProduct{
			ID:              fmt.Sprintf("dummyjson-%d", p.ID),
			Title:           p.Title,
			Description:     p.Description,
			Price:           p.Price,
			OriginalPrice:   original,
			DiscountPercent: p.DiscountPercentage,
			Currency:        "USD",
			URL:             fmt.Sprintf("%s/products/%d", baseURL, p.ID),
			ImageURL:        p.Thumbnail,
			Source:          vendorName,
			Brand:           p.Brand,
			Category:        p.Category,
			InStock:         p.Stock > 0,
			Rating:          p.Rating,
			Features:        p.Tags,
			FetchedAt:       now,
		})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
