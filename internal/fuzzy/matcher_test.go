package fuzzy

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"nike", "nikee", 1},
		{"gucci", "guci", 1},
		{"adidas", "adidas", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"micheal", "michael", 2},
	}

	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMatchFindsClosestCandidate(t *testing.T) {
	m := NewMatcher(2)
	candidates := []string{"nike", "adidas", "puma", "reebok"}

	match, dist, ok := m.Match("nikee", candidates)
	if !ok || match != "nike" || dist != 1 {
		t.Errorf("Match(nikee) = (%q, %d, %v), want (nike, 1, true)", match, dist, ok)
	}

	match, dist, ok = m.Match("addidas", candidates)
	if !ok || match != "adidas" || dist != 1 {
		t.Errorf("Match(addidas) = (%q, %d, %v), want (adidas, 1, true)", match, dist, ok)
	}
}

func TestMatchExactShortCircuits(t *testing.T) {
	m := NewMatcher(2)

	match, dist, ok := m.Match("PUMA", []string{"nike", "puma"})
	if !ok || match != "puma" || dist != 0 {
		t.Errorf("exact match = (%q, %d, %v), want (puma, 0, true)", match, dist, ok)
	}
}

func TestMatchRejectsBeyondBudget(t *testing.T) {
	m := NewMatcher(2)

	if _, _, ok := m.Match("xyzzy", []string{"nike", "adidas"}); ok {
		t.Error("matched a candidate beyond the edit budget")
	}
}

func TestShortQueriesMatchExactOnly(t *testing.T) {
	m := NewMatcher(2)
	candidates := []string{"lv", "mk", "nike"}

	// Two runes: exact only, never corrected.
	if match, _, ok := m.Match("lv", candidates); !ok || match != "lv" {
		t.Errorf("Match(lv) = (%q, %v), want exact hit", match, ok)
	}
	if _, _, ok := m.Match("lx", candidates); ok {
		t.Error("two-rune query was fuzzy-corrected")
	}

	// Three runes: budget clamps to one edit.
	if _, _, ok := m.Match("nke", []string{"nike"}); !ok {
		t.Error("three-rune query within one edit did not match")
	}
	if _, _, ok := m.Match("nae", []string{"nike"}); ok {
		t.Error("three-rune query matched with two edits")
	}
}

func TestMatchPhrase(t *testing.T) {
	m := NewMatcher(2)
	candidates := []string{"louis vuitton", "michael kors", "off white"}

	match, _, ok := m.MatchPhrase("louis vitton", candidates)
	if !ok || match != "louis vuitton" {
		t.Errorf("MatchPhrase(louis vitton) = (%q, %v), want louis vuitton", match, ok)
	}

	// Space variants are compared compact as well.
	match, _, ok = m.MatchPhrase("offwhite", candidates)
	if !ok || match != "off white" {
		t.Errorf("MatchPhrase(offwhite) = (%q, %v), want off white", match, ok)
	}

	match, dist, ok := m.MatchPhrase("michael kors", candidates)
	if !ok || match != "michael kors" || dist != 0 {
		t.Errorf("exact phrase = (%q, %d, %v), want (michael kors, 0, true)", match, dist, ok)
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	m := NewMatcher(2)

	if _, _, ok := m.Match("", []string{"nike"}); ok {
		t.Error("empty query matched")
	}
	if _, _, ok := m.Match("nike", nil); ok {
		t.Error("empty vocabulary matched")
	}
}

func TestMatchDeterministic(t *testing.T) {
	m := NewMatcher(2)
	candidates := []string{"prada", "gucci", "dior", "fendi"}

	first, dist1, _ := m.Match("guci", candidates)
	for i := 0; i < 10; i++ {
		got, dist, _ := m.Match("guci", candidates)
		if got != first || dist != dist1 {
			t.Fatalf("run %d: Match(guci) = (%q, %d), first run gave (%q, %d)", i, got, dist, first, dist1)
		}
	}
}
