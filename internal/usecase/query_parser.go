package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/fynda/backend/internal/domain"
	"github.com/fynda/backend/internal/fuzzy"
	"github.com/fynda/backend/internal/gazetteer"
)

// maxQueryLength caps the input so pathological queries cannot blow up
// the n-gram scan.
const maxQueryLength = 500

// Budget patterns, checked in order; the first hit wins. Range patterns
// come first so "between $50 and $100" is not consumed by the bare
// dollar pattern.
var (
	reBudgetBetween = regexp.MustCompile(`between\s+\$?\s*(\d+(?:,\d{3})*(?:\.\d{1,2})?)\s+and\s+\$?\s*(\d+(?:,\d{3})*(?:\.\d{1,2})?)`)
	// "max" requires an explicit dollar sign; a bare trailing number is
	// usually a model name ("air max 90"), not a budget.
	reBudgetUnder   = regexp.MustCompile(`(?:(?:under|below|less\s+than)\s+\$?|max(?:imum)?\s+\$)\s*(\d+(?:,\d{3})*(?:\.\d{1,2})?)`)
	reBudgetIs      = regexp.MustCompile(`budget\s+(?:is\s+)?(?:of\s+)?\$?\s*(\d+(?:,\d{3})*(?:\.\d{1,2})?)`)
	reBudgetDollar  = regexp.MustCompile(`\$\s*(\d+(?:,\d{3})*(?:\.\d{1,2})?)`)
	reBudgetWord    = regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d{1,2})?)\s*(?:dollars?|usd)\b`)

	budgetPatterns = []*regexp.Regexp{
		reBudgetBetween, reBudgetUnder, reBudgetIs, reBudgetDollar, reBudgetWord,
	}

	reRequirement = regexp.MustCompile(`\b(?:that\s+)?(?:with|includes?|comes?\s+with|has|featuring)\s+(?:an?\s+)?(.+?)(?:\s+and\s+|\s*,\s*|$)`)

	leadInPhrases = []string{
		"i am looking for", "i'm looking for", "i want to buy", "i want",
		"i need", "looking for", "show me", "find me", "search for",
		"my budget is", "and my budget",
	}
)

var stopWords = map[string]bool{
	"i": true, "am": true, "a": true, "an": true, "the": true,
	"for": true, "want": true, "need": true, "buy": true, "purchase": true,
	"find": true, "me": true, "and": true, "my": true, "budget": true,
	"is": true, "that": true, "comes": true, "with": true, "which": true,
	"has": true, "includes": true, "including": true, "under": true,
	"below": true, "less": true, "than": true, "around": true,
	"about": true, "approximately": true, "please": true, "can": true,
	"you": true, "show": true, "get": true, "search": true, "looking": true,
	"some": true, "of": true, "in": true, "on": true, "to": true,
	"or": true, "good": true, "nice": true, "new": true,
}

var compareMarkers = map[string]bool{
	"vs": true, "versus": true, "compare": true, "comparison": true,
}

var trendingMarkers = map[string]bool{
	"trending": true, "popular": true, "bestseller": true,
	"bestsellers": true, "viral": true,
}

// Confidence weights. The score must grow with the number and quality
// of resolved signals; exact hits count more than fuzzy ones.
const (
	confidenceBase   = 0.10
	confidencePerHit = 0.15
	confidenceFuzzy  = 0.10
	confidenceBudget = 0.15
)

// QueryParser turns raw shopping text into a ParsedQuery using exact
// gazetteer lookups with a fuzzy fallback for typos. Parsing is pure
// and deterministic; the same input always yields the same output.
type QueryParser struct {
	gazetteer *gazetteer.Gazetteer
	matcher   *fuzzy.Matcher
	debug     bool
}

// NewQueryParser builds a parser. A nil matcher disables the fuzzy
// fallback; exact gazetteer hits still work.
func NewQueryParser(g *gazetteer.Gazetteer, m *fuzzy.Matcher, debug bool) *QueryParser {
	return &QueryParser{gazetteer: g, matcher: m, debug: debug}
}

// Parse runs the full parsing pipeline. It never fails; unmatched
// fields are simply left unset.
func (p *QueryParser) Parse(raw string) *domain.ParsedQuery {
	parsed := &domain.ParsedQuery{
		Original: strings.TrimSpace(raw),
		Intent:   domain.IntentBrowse,
	}

	text := normalizeQuery(raw)
	if text == "" {
		parsed.ConfidenceScore = confidenceBase
		return parsed
	}
	parsed.NormalizedTokens = tokenize(text)

	text = p.extractBudget(text, parsed)
	text, requirements := extractRequirements(text)
	text = stripLeadIns(text)

	tokens := tokenize(text)
	exactHits, fuzzyHits, leftover, dealSignal := p.scanEntities(tokens, parsed)

	parsed.Requirements = requirements
	parsed.Product = strings.Join(leftover, " ")
	parsed.ConfidenceScore = confidence(exactHits, fuzzyHits, parsed.HasBudget())
	parsed.Intent = p.classifyIntent(tokens, parsed, dealSignal)

	if p.debug {
		log.Printf("[PARSER] %q -> brand=%q category=%q color=%q budget=%.2f intent=%s conf=%.2f",
			parsed.Original, parsed.Brand, parsed.Category, parsed.Color,
			parsed.BudgetMax, parsed.Intent, parsed.ConfidenceScore)
	}
	return parsed
}

// extractBudget finds the first matching budget pattern, then strips
// every budget-shaped span from the text so digits never leak into
// entity scanning.
func (p *QueryParser) extractBudget(text string, parsed *domain.ParsedQuery) string {
	if m := reBudgetBetween.FindStringSubmatch(text); m != nil {
		lo, okLo := parseAmount(m[1])
		hi, okHi := parseAmount(m[2])
		if okLo && okHi && hi > 0 {
			if lo > hi {
				lo, hi = hi, lo
			}
			parsed.BudgetMin = lo
			parsed.BudgetMax = hi
		}
	} else {
		for _, re := range budgetPatterns[1:] {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			if v, ok := parseAmount(m[1]); ok && v > 0 {
				parsed.BudgetMax = v
				break
			}
		}
	}

	for _, re := range budgetPatterns {
		text = re.ReplaceAllString(text, " ")
	}
	return text
}

func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// extractRequirements pulls free-form feature mentions out of "with X"
// style constructions and removes those spans from the text.
func extractRequirements(text string) (string, []string) {
	var requirements []string
	seen := map[string]bool{}

	for _, m := range reRequirement.FindAllStringSubmatch(text, -1) {
		req := strings.TrimSpace(m[1])
		if req == "" {
			continue
		}
		// Keep just the head word of the captured phrase.
		req = strings.Fields(req)[0]
		req = strings.Trim(req, ".,!?")
		if len(req) > 2 && !stopWords[req] && !seen[req] {
			seen[req] = true
			requirements = append(requirements, req)
		}
	}

	text = reRequirement.ReplaceAllString(text, " ")
	return text, requirements
}

func stripLeadIns(text string) string {
	for _, phrase := range leadInPhrases {
		text = strings.ReplaceAll(text, phrase, " ")
	}
	return text
}

// scanEntities walks phrase windows from the longest gazetteer phrase
// down to single tokens, preferring multi-word hits, then falls back to
// fuzzy matching for tokens nothing claimed. Returns the exact and
// fuzzy hit counts, the unconsumed content words, and whether a price
// modifier was seen.
func (p *QueryParser) scanEntities(tokens []string, parsed *domain.ParsedQuery) (exact, fuzzyHits int, leftover []string, dealSignal bool) {
	consumed := make([]bool, len(tokens))

	maxWindow := p.gazetteer.MaxPhraseWords()
	if maxWindow > len(tokens) {
		maxWindow = len(tokens)
	}
	for n := maxWindow; n >= 1; n-- {
		for i := 0; i+n <= len(tokens); i++ {
			if anyConsumed(consumed[i : i+n]) {
				continue
			}
			phrase := strings.Join(tokens[i:i+n], " ")
			canonical, entity, ok := p.gazetteer.Lookup(phrase)
			if !ok {
				continue
			}
			if p.setEntity(parsed, entity, canonical) {
				exact++
				markConsumed(consumed[i : i+n])
			}
		}
	}

	for i, tok := range tokens {
		if consumed[i] {
			continue
		}
		if p.gazetteer.IsPriceModifier(tok) {
			dealSignal = true
			consumed[i] = true
			continue
		}
		if compareMarkers[tok] || trendingMarkers[tok] {
			consumed[i] = true
			continue
		}
		if p.matcher == nil || len([]rune(tok)) < 3 || stopWords[tok] {
			continue
		}
		if entity, canonical, ok := p.fuzzyResolve(tok); ok {
			if p.setEntity(parsed, entity, canonical) {
				fuzzyHits++
				consumed[i] = true
			}
		}
	}

	for i, tok := range tokens {
		if !consumed[i] && !stopWords[tok] {
			leftover = append(leftover, tok)
		}
	}
	return exact, fuzzyHits, leftover, dealSignal
}

// fuzzyResolve tries the token against each entity vocabulary in
// priority order and keeps the overall closest match. Gender and
// occasion terms are excluded; they are short, common words where a
// one-edit correction does more harm than good.
func (p *QueryParser) fuzzyResolve(token string) (domain.EntityType, string, bool) {
	types := []domain.EntityType{
		domain.EntityBrand, domain.EntityCategory, domain.EntityColor,
		domain.EntityMaterial, domain.EntityStyle,
	}

	bestType := domain.EntityType("")
	bestMatch := ""
	bestDist := -1
	for _, entity := range types {
		match, dist, ok := p.matcher.Match(token, p.gazetteer.Candidates(entity))
		if !ok {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			bestType, bestMatch, bestDist = entity, match, dist
			if dist == 0 {
				break
			}
		}
	}
	if bestDist == -1 {
		return "", "", false
	}
	return bestType, bestMatch, true
}

// setEntity records a hit in the matching ParsedQuery field. The first
// hit per entity type becomes the primary; later hits go to the
// secondary list so compound queries keep all their entities.
func (p *QueryParser) setEntity(parsed *domain.ParsedQuery, entity domain.EntityType, canonical string) bool {
	primary := map[domain.EntityType]*string{
		domain.EntityBrand:    &parsed.Brand,
		domain.EntityColor:    &parsed.Color,
		domain.EntityCategory: &parsed.Category,
		domain.EntityMaterial: &parsed.Material,
		domain.EntityStyle:    &parsed.Style,
		domain.EntityGender:   &parsed.Gender,
		domain.EntityOccasion: &parsed.Occasion,
	}[entity]
	if primary == nil {
		return false
	}
	if *primary == "" {
		*primary = canonical
		return true
	}
	if *primary == canonical {
		return true
	}
	for _, s := range parsed.Secondary[entity] {
		if s == canonical {
			return true
		}
	}
	if parsed.Secondary == nil {
		parsed.Secondary = make(map[domain.EntityType][]string)
	}
	parsed.Secondary[entity] = append(parsed.Secondary[entity], canonical)
	return true
}

func (p *QueryParser) classifyIntent(tokens []string, parsed *domain.ParsedQuery, dealSignal bool) domain.Intent {
	for _, tok := range tokens {
		if compareMarkers[tok] {
			return domain.IntentCompare
		}
	}
	if parsed.HasBudget() || dealSignal {
		return domain.IntentDealHunt
	}
	for _, tok := range tokens {
		if trendingMarkers[tok] {
			return domain.IntentTrending
		}
	}
	if parsed.Brand != "" || parsed.Category != "" {
		return domain.IntentSearch
	}
	return domain.IntentBrowse
}

func confidence(exact, fuzzyHits int, hasBudget bool) float64 {
	score := confidenceBase
	score += float64(exact) * confidencePerHit
	score += float64(fuzzyHits) * confidenceFuzzy
	if hasBudget {
		score += confidenceBudget
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// normalizeQuery lower-cases, collapses whitespace, and caps length.
func normalizeQuery(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if runes := []rune(s); len(runes) > maxQueryLength {
		s = string(runes[:maxQueryLength])
	}
	return s
}

// tokenize splits on whitespace and trims surrounding punctuation,
// keeping characters that occur inside entity names ("h&m", "levi's",
// "t-shirt").
func tokenize(s string) []string {
	fields := strings.Fields(s)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?:;\"()[]")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func anyConsumed(window []bool) bool {
	for _, c := range window {
		if c {
			return true
		}
	}
	return false
}

func markConsumed(window []bool) {
	for i := range window {
		window[i] = true
	}
}
