// Package gazetteer holds the fashion entity dictionaries and the trie
// used for exact phrase recognition during query parsing.
package gazetteer

import (
	"strings"

	"github.com/fynda/backend/internal/domain"
)

// Gazetteer answers exact phrase lookups against the entity tables and
// exposes per-type candidate lists for fuzzy matching. It is immutable
// after construction and safe for concurrent use.
type Gazetteer struct {
	trie          *trie
	candidates    map[domain.EntityType][]string
	priceModifier map[string]bool
	maxWords      int
}

// New builds the gazetteer from the built-in entity tables. Ambiguous
// terms are claimed by the earlier entity type: brand wins over
// category, category over color, and so on.
func New() *Gazetteer {
	g := &Gazetteer{
		trie:          newTrie(),
		candidates:    make(map[domain.EntityType][]string),
		priceModifier: make(map[string]bool),
	}

	g.load(domain.EntityBrand, brands, brandAliases)
	g.load(domain.EntityCategory, categories, categoryNormalization)
	g.load(domain.EntityColor, colors, colorAliases)
	g.load(domain.EntityMaterial, materials, nil)
	g.load(domain.EntityStyle, styles, nil)
	g.load(domain.EntityGender, genders, genderNormalization)
	g.load(domain.EntityOccasion, occasions, nil)

	for _, m := range priceModifiers {
		g.priceModifier[m] = true
	}
	return g
}

func (g *Gazetteer) load(entity domain.EntityType, phrases []string, aliases map[string]string) {
	canonicals := make(map[string]bool, len(phrases))
	for _, p := range phrases {
		p = normalizePhrase(p)
		canonical := p
		if c, ok := aliases[p]; ok {
			canonical = c
		}
		g.trie.insert(p, canonical, entity)
		if !canonicals[canonical] {
			canonicals[canonical] = true
			g.candidates[entity] = append(g.candidates[entity], canonical)
		}
		if n := len(strings.Fields(p)); n > g.maxWords {
			g.maxWords = n
		}
	}
}

// Lookup returns the canonical form and entity type of an exact phrase,
// after lower-casing and whitespace normalization.
func (g *Gazetteer) Lookup(phrase string) (string, domain.EntityType, bool) {
	return g.trie.lookup(phrase)
}

// Candidates returns the canonical phrases of one entity type, for use
// as a fuzzy matching vocabulary. Callers must not mutate the slice.
func (g *Gazetteer) Candidates(entity domain.EntityType) []string {
	return g.candidates[entity]
}

// IsPriceModifier reports whether a token signals price sensitivity
// without naming a figure ("cheap", "clearance", "designer").
func (g *Gazetteer) IsPriceModifier(token string) bool {
	return g.priceModifier[normalizePhrase(token)]
}

// MaxPhraseWords is the longest entity phrase in the tables, measured
// in words. The n-gram scanner never needs windows wider than this.
func (g *Gazetteer) MaxPhraseWords() int {
	return g.maxWords
}

// Size reports how many distinct phrases the trie holds.
func (g *Gazetteer) Size() int {
	return g.trie.size
}
