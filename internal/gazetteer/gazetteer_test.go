package gazetteer

import (
	"testing"

	"github.com/fynda/backend/internal/domain"
)

func TestLookupExactEntities(t *testing.T) {
	g := New()

	tests := []struct {
		phrase    string
		canonical string
		entity    domain.EntityType
	}{
		{"nike", "nike", domain.EntityBrand},
		{"Louis Vuitton", "louis vuitton", domain.EntityBrand},
		{"sneakers", "sneakers", domain.EntityCategory},
		{"red", "red", domain.EntityColor},
		{"leather", "leather", domain.EntityMaterial},
		{"slim fit", "slim fit", domain.EntityStyle},
		{"wedding guest", "wedding guest", domain.EntityOccasion},
	}

	for _, tt := range tests {
		canonical, entity, ok := g.Lookup(tt.phrase)
		if !ok {
			t.Errorf("Lookup(%q): not found", tt.phrase)
			continue
		}
		if canonical != tt.canonical || entity != tt.entity {
			t.Errorf("Lookup(%q) = (%q, %q), want (%q, %q)",
				tt.phrase, canonical, entity, tt.canonical, tt.entity)
		}
	}
}

func TestLookupResolvesAliases(t *testing.T) {
	g := New()

	tests := []struct {
		phrase    string
		canonical string
	}{
		{"lv", "louis vuitton"},
		{"ysl", "saint laurent"},
		{"tee", "t-shirt"},
		{"trainers", "sneakers"},
		{"grey", "gray"},
		{"womens", "women"},
		{"ladies", "women"},
	}

	for _, tt := range tests {
		canonical, _, ok := g.Lookup(tt.phrase)
		if !ok {
			t.Fatalf("Lookup(%q): not found", tt.phrase)
		}
		if canonical != tt.canonical {
			t.Errorf("Lookup(%q) = %q, want %q", tt.phrase, canonical, tt.canonical)
		}
	}
}

func TestLookupNormalizesWhitespaceAndCase(t *testing.T) {
	g := New()

	canonical, entity, ok := g.Lookup("  New   BALANCE ")
	if !ok {
		t.Fatal("Lookup with ragged whitespace: not found")
	}
	if canonical != "new balance" || entity != domain.EntityBrand {
		t.Errorf("got (%q, %q), want (new balance, brand)", canonical, entity)
	}
}

func TestLookupUnknownPhrase(t *testing.T) {
	g := New()

	if _, _, ok := g.Lookup("quantum flux capacitor"); ok {
		t.Error("Lookup of unknown phrase reported a match")
	}
	if _, _, ok := g.Lookup(""); ok {
		t.Error("Lookup of empty phrase reported a match")
	}
}

func TestAmbiguousTermsClaimedByPriority(t *testing.T) {
	g := New()

	// "denim" could be read as a fabric, a wash color, or shorthand for
	// jeans; the tables list it once, under materials.
	_, entity, ok := g.Lookup("denim")
	if !ok {
		t.Fatal("Lookup(denim): not found")
	}
	if entity != domain.EntityMaterial {
		t.Errorf("denim claimed by %q, want material", entity)
	}
}

func TestCandidatesAreCanonical(t *testing.T) {
	g := New()

	for _, c := range g.Candidates(domain.EntityBrand) {
		if c == "lv" || c == "rayban" {
			t.Errorf("alias %q leaked into brand candidates", c)
		}
	}
	if len(g.Candidates(domain.EntityColor)) == 0 {
		t.Error("no color candidates")
	}
}

func TestPriceModifiers(t *testing.T) {
	g := New()

	if !g.IsPriceModifier("cheap") {
		t.Error("cheap not recognized as price modifier")
	}
	if !g.IsPriceModifier("Clearance") {
		t.Error("price modifier lookup should be case insensitive")
	}
	if g.IsPriceModifier("sneakers") {
		t.Error("sneakers wrongly flagged as price modifier")
	}
}

func TestMaxPhraseWords(t *testing.T) {
	g := New()

	// "anti social social club" is four words.
	if got := g.MaxPhraseWords(); got < 4 {
		t.Errorf("MaxPhraseWords() = %d, want at least 4", got)
	}
}
