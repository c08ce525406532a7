package usecase

import (
	"testing"

	"github.com/fynda/backend/internal/domain"
)

func titles(products []domain.StandardProduct) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Title
	}
	return out
}

func TestFilterByGenderMen(t *testing.T) {
	products := []domain.StandardProduct{
		{Title: "Women's White Winter Coat"},
		{Title: "Men's White Winter Coat"},
		{Title: "White Winter Coat Unisex"},
		{Title: "Ladies Wool Scarf"},
		{Title: "Maternity Leggings Black"},
	}

	got := titles(filterByGender(products, "men"))
	want := []string{"Men's White Winter Coat", "White Winter Coat Unisex"}
	if len(got) != len(want) {
		t.Fatalf("kept %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kept[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterByGenderWomen(t *testing.T) {
	products := []domain.StandardProduct{
		// Must survive: "men" appears only inside "Women's".
		{Title: "Women's Summer Dress"},
		{Title: "Men's Oxford Shirt"},
		{Title: "Mens Running Shorts"},
		{Title: "Boys Graphic Tee"},
		{Title: "Floral Summer Dress"},
		{Title: "Gentleman's Leather Gloves"},
	}

	got := titles(filterByGender(products, "women"))
	want := []string{"Women's Summer Dress", "Floral Summer Dress"}
	if len(got) != len(want) {
		t.Fatalf("kept %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kept[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterByGenderKids(t *testing.T) {
	products := []domain.StandardProduct{
		{Title: "Women's Summer Dress"},
		{Title: "Men's Oxford Shirt"},
		{Title: "Rainbow Light-Up Sneakers"},
	}

	got := titles(filterByGender(products, "kids"))
	if len(got) != 1 || got[0] != "Rainbow Light-Up Sneakers" {
		t.Errorf("kept %v, want only the unmarked title", got)
	}
}

func TestFilterByGenderNoGender(t *testing.T) {
	products := []domain.StandardProduct{
		{Title: "Women's Summer Dress"},
		{Title: "Men's Oxford Shirt"},
	}

	if got := filterByGender(products, ""); len(got) != 2 {
		t.Errorf("empty gender filtered products: kept %d", len(got))
	}
	if got := filterByGender(products, "unisex"); len(got) != 2 {
		t.Errorf("unisex filtered products: kept %d", len(got))
	}
}

func TestDeduplicateKeepsCheaper(t *testing.T) {
	products := []domain.StandardProduct{
		{Title: "Nike Air Max 90 Essential Running Shoe White Size 10", Price: 120, Source: "A"},
		{Title: "Nike Air Max 90 Essential Running Shoe White Size 11", Price: 95, Source: "B"},
		{Title: "Adidas Ultraboost Knit Sneaker", Price: 140, Source: "A"},
	}

	got := deduplicate(products)
	if len(got) != 2 {
		t.Fatalf("kept %d products, want 2", len(got))
	}
	// The two Nike titles share a 50-char prefix; the cheaper survives
	// in the first-seen position.
	if got[0].Price != 95 || got[0].Source != "B" {
		t.Errorf("kept %+v, want the cheaper duplicate", got[0])
	}
	if got[1].Title != "Adidas Ultraboost Knit Sneaker" {
		t.Errorf("unrelated product lost: %v", titles(got))
	}
}

func TestDeduplicateDistinctTitles(t *testing.T) {
	products := []domain.StandardProduct{
		{Title: "Red Dress", Price: 50},
		{Title: "Blue Dress", Price: 40},
	}
	if got := deduplicate(products); len(got) != 2 {
		t.Errorf("kept %d, want 2 distinct titles", len(got))
	}
}

func TestFilterByBudget(t *testing.T) {
	products := []domain.StandardProduct{
		{Title: "Cheap Tee", Price: 15},
		{Title: "Mid Jacket", Price: 99.99},
		{Title: "Pricey Coat", Price: 100.01},
	}

	got := filterByBudget(products, 100)
	if len(got) != 2 {
		t.Fatalf("kept %v, want 2 products at or under budget", titles(got))
	}

	if got := filterByBudget(products, 0); len(got) != 3 {
		t.Errorf("zero budget should disable the filter, kept %d", len(got))
	}
}
