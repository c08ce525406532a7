package usecase

import (
	"regexp"
	"strings"

	"github.com/fynda/backend/internal/domain"
)

// dedupPrefixLength is how much of the normalized title identifies a
// listing for deduplication.
const dedupPrefixLength = 50

// womenIndicators are matched as plain substrings; none of them occurs
// inside a men-indicator word, so substring matching is safe here.
var womenIndicators = []string{
	"women", "womens", "women's", "woman", "ladies", "lady",
	"girls", "girl", "female", "maternity",
}

// menPatterns use word boundaries specifically so "men" never matches
// inside "women".
var menPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bmen\b`),
	regexp.MustCompile(`(?i)\bmens\b`),
	regexp.MustCompile(`(?i)\bmen's\b`),
	regexp.MustCompile(`(?i)\bboys?\b`),
	regexp.MustCompile(`(?i)\bmale\b`),
	regexp.MustCompile(`(?i)\bgentleman\b`),
}

// filterByBudget drops products priced above the ceiling. Products
// without a price (zero) are kept.
func filterByBudget(products []domain.StandardProduct, budgetMax float64) []domain.StandardProduct {
	if budgetMax <= 0 {
		return products
	}
	kept := products[:0:0]
	for _, p := range products {
		if p.Price <= budgetMax {
			kept = append(kept, p)
		}
	}
	return kept
}

// deduplicate removes near-identical listings, keyed by the lower-cased
// title truncated to a fixed prefix. On collision the cheaper entry
// wins; surviving products keep their first-seen relative order.
func deduplicate(products []domain.StandardProduct) []domain.StandardProduct {
	type slot struct {
		index int
		price float64
	}
	seen := make(map[string]slot, len(products))
	kept := make([]domain.StandardProduct, 0, len(products))

	for _, p := range products {
		key := strings.ToLower(p.Title)
		if runes := []rune(key); len(runes) > dedupPrefixLength {
			key = string(runes[:dedupPrefixLength])
		}
		existing, ok := seen[key]
		if !ok {
			seen[key] = slot{index: len(kept), price: p.Price}
			kept = append(kept, p)
			continue
		}
		if p.Price < existing.price {
			kept[existing.index] = p
			seen[key] = slot{index: existing.index, price: p.Price}
		}
	}
	return kept
}

// filterByGender drops products clearly meant for another audience.
// Products with no gender markers in the title always pass.
func filterByGender(products []domain.StandardProduct, gender string) []domain.StandardProduct {
	gender = strings.ToLower(gender)
	if gender == "" || gender == "unisex" {
		return products
	}

	kept := products[:0:0]
	for _, p := range products {
		if passesGender(p.Title, gender) {
			kept = append(kept, p)
		}
	}
	return kept
}

func passesGender(title, gender string) bool {
	lower := strings.ToLower(title)

	switch gender {
	case "men":
		return !containsWomenIndicator(lower)
	case "women":
		return !matchesMenPattern(lower)
	case "kids", "children":
		return !containsWomenIndicator(lower) && !matchesMenPattern(lower)
	}
	return true
}

func containsWomenIndicator(title string) bool {
	for _, ind := range womenIndicators {
		if strings.Contains(title, ind) {
			return true
		}
	}
	return false
}

func matchesMenPattern(title string) bool {
	for _, re := range menPatterns {
		if re.MatchString(title) {
			return true
		}
	}
	return false
}
