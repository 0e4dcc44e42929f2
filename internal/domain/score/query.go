// Package score computes the multi-signal similarity between a query and a
// catalog entity. The four base signals (phrase containment, token overlap,
// subsequence similarity, edit-distance fuzzy match) are engine-intrinsic;
// their weights and any boost rules are per-matcher configuration.
package score

import "github.com/sigmagloves/sgmatch/internal/domain/text"

// Query is the pre-computed canonical form of one user input. Built once per
// call and shared across all candidate evaluations.
type Query struct {
	Raw        string
	Normalized string
	Tokens     []string
	TokenSet   map[string]bool

	// Hints holds structured context (hazard=cut, env=oily) consumed by
	// boost rules, never by the base signals.
	Hints map[string]string
}

// NewQuery canonicalizes raw input into a Query.
func NewQuery(raw string, hints map[string]string) Query {
	return Query{
		Raw:        raw,
		Normalized: text.Normalize(raw),
		Tokens:     text.Tokens(raw),
		TokenSet:   text.TokenSet(raw),
		Hints:      hints,
	}
}

// Empty reports whether nothing usable survived normalization.
func (q Query) Empty() bool {
	return q.Normalized == ""
}

// Hint returns the named hint value, "" when absent.
func (q Query) Hint(key string) string {
	if q.Hints == nil {
		return ""
	}
	return q.Hints[key]
}
