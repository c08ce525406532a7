// Package fuzzy provides typo-tolerant matching against entity
// vocabularies using Levenshtein edit distance.
package fuzzy

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// DefaultMaxDistance is the edit budget for fuzzy matches.
	DefaultMaxDistance = 2

	// DefaultMinLength is the query length below which the edit budget
	// shrinks to one. Very short strings produce too many false hits.
	DefaultMinLength = 4

	distanceCacheSize = 50000
)

// Matcher finds the closest vocabulary entry within an edit budget.
// Distance computations are memoized in a bounded LRU, so repeated
// queries against the same vocabularies stay cheap. Safe for
// concurrent use.
type Matcher struct {
	maxDistance int
	minLength   int
	cache       *lru.Cache[string, int]
}

// NewMatcher builds a matcher with the given edit budget. A
// maxDistance below one falls back to DefaultMaxDistance.
func NewMatcher(maxDistance int) *Matcher {
	if maxDistance < 1 {
		maxDistance = DefaultMaxDistance
	}
	cache, _ := lru.New[string, int](distanceCacheSize)
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   DefaultMinLength,
		cache:       cache,
	}
}

// Match returns the candidate closest to query within the edit budget.
// Queries shorter than three runes match only exactly; queries shorter
// than the minimum length get an edit budget of one. Exact matches
// short-circuit with distance zero.
func (m *Matcher) Match(query string, candidates []string) (string, int, bool) {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return "", 0, false
	}

	maxDist := m.maxDistance
	runes := len([]rune(query))
	if runes < m.minLength && maxDist > 1 {
		maxDist = 1
	}
	if runes < 3 {
		for _, c := range candidates {
			if strings.ToLower(c) == query {
				return c, 0, true
			}
		}
		return "", 0, false
	}

	best := ""
	bestDist := maxDist + 1
	for _, c := range candidates {
		lower := strings.ToLower(c)
		if lower == query {
			return c, 0, true
		}
		if lenDiff(query, lower) > maxDist {
			continue
		}
		d := m.distance(query, lower)
		if d <= maxDist && d < bestDist {
			bestDist = d
			best = c
		}
	}
	if best == "" {
		return "", 0, false
	}
	return best, bestDist, true
}

// MatchPhrase matches a multi-word query, additionally comparing the
// space-stripped forms so "offwhite" still finds "off white".
func (m *Matcher) MatchPhrase(query string, candidates []string) (string, int, bool) {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return "", 0, false
	}
	compact := strings.ReplaceAll(query, " ", "")

	best := ""
	bestDist := m.maxDistance + 1
	for _, c := range candidates {
		lower := strings.ToLower(c)
		if lower == query {
			return c, 0, true
		}
		pairs := [2][2]string{
			{query, lower},
			{compact, strings.ReplaceAll(lower, " ", "")},
		}
		for _, p := range pairs {
			if lenDiff(p[0], p[1]) > m.maxDistance {
				continue
			}
			d := m.distance(p[0], p[1])
			if d <= m.maxDistance && d < bestDist {
				bestDist = d
				best = c
			}
		}
	}
	if best == "" {
		return "", 0, false
	}
	return best, bestDist, true
}

func (m *Matcher) distance(a, b string) int {
	key := a + "\x00" + b
	if d, ok := m.cache.Get(key); ok {
		return d
	}
	d := Levenshtein(a, b)
	m.cache.Add(key, d)
	return d
}

// Levenshtein computes the edit distance between two strings using the
// two-row dynamic programming form.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ca := range ra {
		curr[0] = i + 1
		for j, cb := range rb {
			cost := 0
			if ca != cb {
				cost = 1
			}
			ins := prev[j+1] + 1
			del := curr[j] + 1
			sub := prev[j] + cost
			curr[j+1] = min3(ins, del, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func lenDiff(a, b string) int {
	d := len([]rune(a)) - len([]rune(b))
	if d < 0 {
		return -d
	}
	return d
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
