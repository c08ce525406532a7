package gazetteer

import (
	"strings"

	"github.com/fynda/backend/internal/domain"
)

type trieNode struct {
	children  map[rune]*trieNode
	terminal  bool
	canonical string
	entity    domain.EntityType
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// trie stores normalized entity phrases for exact lookup. Phrases are
// lower-cased and whitespace-collapsed before insertion, so callers must
// normalize the same way before lookup.
type trie struct {
	root *trieNode
	size int
}

func newTrie() *trie {
	return &trie{root: newTrieNode()}
}

// insert adds a phrase mapping to its canonical form and entity type.
// An existing phrase is not overwritten; the first registration wins,
// which lets higher priority entity types claim ambiguous terms.
func (t *trie) insert(phrase, canonical string, entity domain.EntityType) {
	phrase = normalizePhrase(phrase)
	if phrase == "" {
		return
	}
	node := t.root
	for _, r := range phrase {
		child, ok := node.children[r]
		if !ok {
			child = newTrieNode()
			node.children[r] = child
		}
		node = child
	}
	if node.terminal {
		return
	}
	node.terminal = true
	node.canonical = canonical
	node.entity = entity
	t.size++
}

// lookup returns the canonical form and entity type of an exact phrase.
func (t *trie) lookup(phrase string) (string, domain.EntityType, bool) {
	phrase = normalizePhrase(phrase)
	node := t.root
	for _, r := range phrase {
		child, ok := node.children[r]
		if !ok {
			return "", "", false
		}
		node = child
	}
	if !node.terminal {
		return "", "", false
	}
	return node.canonical, node.entity, true
}

// normalizePhrase lower-cases and collapses runs of whitespace to a
// single space.
func normalizePhrase(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
