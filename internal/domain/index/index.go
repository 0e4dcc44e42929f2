// Package index implements the inverted keyword index over catalog entities.
// The index is derived state: it is rebuilt wholesale from the entity set and
// published by pointer swap, so readers never observe a half-built index.
package index

import (
	"github.com/sigmagloves/sgmatch/internal/domain/text"
	"github.com/sigmagloves/sgmatch/internal/ports"
)

// Index maps a normalized keyword or token to the IDs of the entities that
// declare it. Each phrase is indexed twice: once as the full normalized
// phrase and once per constituent token, so both a phrase match and a
// partial-token match are discoverable.
type Index struct {
	keys map[string][]string // normalized key -> entity IDs, insertion order
}

// Build constructs a fresh index from the entity set. Entities whose
// keywords all normalize to empty are simply absent from the index; they can
// still match through the scorer's substring/subsequence signals.
func Build(entities []ports.Entity) *Index {
	idx := &Index{keys: make(map[string][]string)}

	// seen dedups (key, id) pairs: one entity often declares overlapping
	// phrases ("دستکش جوشکاری" and "جوشکاری") that share tokens.
	type keyID struct {
		key string
		id  string
	}
	seen := make(map[keyID]bool)

	insert := func(key, id string) {
		if key == "" {
			return
		}
		k := keyID{key, id}
		if seen[k] {
			return
		}
		seen[k] = true
		idx.keys[key] = append(idx.keys[key], id)
	}

	for _, e := range entities {
		for _, kw := range e.Keywords {
			phrase := text.Normalize(kw)
			if phrase == "" {
				continue
			}
			insert(phrase, e.ID)
			for _, tok := range text.Tokens(phrase) {
				insert(tok, e.ID)
			}
		}
	}

	return idx
}

// Lookup returns the entity IDs owning the exact normalized key.
// The returned slice is shared; callers must not mutate it.
func (idx *Index) Lookup(key string) []string {
	return idx.keys[text.Normalize(key)]
}

// Candidates returns the union of entity IDs reachable from the query's
// tokens and from the full normalized query phrase, preserving first-seen
// order for determinism.
func (idx *Index) Candidates(tokens []string, fullQuery string) []string {
	seen := make(map[string]bool)
	var ids []string

	add := func(key string) {
		for _, id := range idx.keys[key] {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	add(text.Normalize(fullQuery))
	for _, tok := range tokens {
		add(tok)
	}
	return ids
}

// Len returns the number of distinct index keys.
func (idx *Index) Len() int {
	return len(idx.keys)
}
