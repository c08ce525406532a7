package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/fynda/backend/internal/domain"
)

// Ranking weights. Tunable; the intended ordering of influence is that
// source-priority and requirement-match bonuses dominate, with rating,
// discount, and review volume as secondary signals.
const (
	weightRelevance   = 0.3
	weightDiscount    = 0.2
	weightRating      = 4.0
	weightReviews     = 2.0
	requirementBonus  = 20.0
	defaultRelevance  = 50.0
	defaultRating     = 4.0
	maxReviewScore    = 5.0
	overlapBoost      = 5.0
	maxOverlapBoost   = 25.0
)

// ranker scores products against a parsed query. Source bonuses come
// from the vendor registry priorities, so higher-trust integrations
// surface first.
type ranker struct {
	sourceBonus map[string]float64
}

func newRanker(sourceBonus map[string]float64) *ranker {
	if sourceBonus == nil {
		sourceBonus = map[string]float64{}
	}
	return &ranker{sourceBonus: sourceBonus}
}

// rank sorts products by descending score. The sort is stable so ties
// keep their merge order, which makes repeated searches deterministic
// once the input order is fixed.
func (r *ranker) rank(products []domain.StandardProduct, parsed *domain.ParsedQuery) []domain.StandardProduct {
	scores := make([]float64, len(products))
	for i := range products {
		scores[i] = r.score(&products[i], parsed)
	}
	idx := make([]int, len(products))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	out := make([]domain.StandardProduct, len(products))
	for i, j := range idx {
		out[i] = products[j]
	}
	return out
}

func (r *ranker) score(p *domain.StandardProduct, parsed *domain.ParsedQuery) float64 {
	relevance := p.RelevanceScore
	if relevance == 0 {
		relevance = defaultRelevance + titleOverlapBoost(p.Title, parsed)
	}

	rating := p.Rating
	if rating == 0 {
		rating = defaultRating
	}

	// Log-dampened review volume, capped so review farms cannot
	// dominate the score.
	reviews := math.Log1p(float64(p.ReviewsCount))
	if reviews > maxReviewScore {
		reviews = maxReviewScore
	}

	score := relevance*weightRelevance +
		p.DiscountPercent*weightDiscount +
		rating*weightRating +
		reviews*weightReviews +
		r.sourceBonus[p.Source]

	if len(parsed.Requirements) > 0 {
		title := strings.ToLower(p.Title)
		for _, req := range parsed.Requirements {
			req = strings.ToLower(req)
			if strings.Contains(title, req) || featureContains(p.Features, req) {
				score += requirementBonus
			}
		}
	}
	return score
}

// titleOverlapBoost rewards titles containing the query's resolved
// search terms when the source itself did not score relevance.
func titleOverlapBoost(title string, parsed *domain.ParsedQuery) float64 {
	title = strings.ToLower(title)
	boost := 0.0
	for _, word := range strings.Fields(strings.ToLower(parsed.SearchTerms())) {
		if strings.Contains(title, word) {
			boost += overlapBoost
		}
	}
	if boost > maxOverlapBoost {
		boost = maxOverlapBoost
	}
	return boost
}

func featureContains(features []string, req string) bool {
	for _, f := range features {
		if strings.Contains(strings.ToLower(f), req) {
			return true
		}
	}
	return false
}
