package domain

import "strings"

// Intent classifies what the shopper is trying to do with a query.
type Intent string

const (
	IntentSearch   Intent = "search"
	IntentCompare  Intent = "compare"
	IntentBrowse   Intent = "browse"
	IntentDealHunt Intent = "deal_hunt"
	IntentTrending Intent = "trending"
)

// EntityType identifies which gazetteer a matched phrase came from.
type EntityType string

const (
	EntityBrand    EntityType = "brand"
	EntityColor    EntityType = "color"
	EntityCategory EntityType = "category"
	EntityMaterial EntityType = "material"
	EntityStyle    EntityType = "style"
	EntityGender   EntityType = "gender"
	EntityOccasion EntityType = "occasion"
)

// ParsedQuery is the structured interpretation of a raw shopping query.
// Unset string fields are empty and unset budgets are zero; BudgetMax > 0
// means a usable budget was extracted.
type ParsedQuery struct {
	Original         string   `json:"original"`
	NormalizedTokens []string `json:"normalized_tokens,omitempty"`
	Product          string   `json:"product,omitempty"`
	Brand            string   `json:"brand,omitempty"`
	Color            string   `json:"color,omitempty"`
	Category         string   `json:"category,omitempty"`
	Material         string   `json:"material,omitempty"`
	Style            string   `json:"style,omitempty"`
	Gender           string   `json:"gender,omitempty"`
	Occasion         string   `json:"occasion,omitempty"`
	BudgetMin        float64  `json:"budget_min,omitempty"`
	BudgetMax        float64  `json:"budget_max,omitempty"`
	Requirements     []string `json:"requirements,omitempty"`

	// Secondary holds additional hits per entity type for compound
	// queries ("nike shoes and gucci bags"); the primary fields above
	// always carry the first match in scan order.
	Secondary map[EntityType][]string `json:"secondary,omitempty"`

	Intent          Intent  `json:"intent"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// SearchTerms rebuilds a vendor-friendly search string from the extracted
// entities, falling back to the original query when nothing was recognized.
func (q *ParsedQuery) SearchTerms() string {
	parts := make([]string, 0, 4)
	if q.Brand != "" {
		parts = append(parts, q.Brand)
	}
	if q.Color != "" {
		parts = append(parts, q.Color)
	}
	if q.Material != "" {
		parts = append(parts, q.Material)
	}
	if q.Category != "" {
		parts = append(parts, q.Category)
	} else if q.Product != "" {
		parts = append(parts, q.Product)
	}
	if len(parts) == 0 {
		return q.Original
	}
	return strings.Join(parts, " ")
}

// HasBudget reports whether a usable budget ceiling was extracted.
func (q *ParsedQuery) HasBudget() bool {
	return q.BudgetMax > 0
}
