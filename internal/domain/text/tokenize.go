package text

import (
	"strings"
	"unicode/utf8"
)

// minTokenRunes is the shortest token worth indexing or matching.
// Single characters (Persian particles, stray Latin letters) carry no signal.
const minTokenRunes = 2

// Tokens normalizes the input and splits it into scoring tokens.
// Tokens shorter than two runes are dropped. Returns nil when nothing remains.
func Tokens(s string) []string {
	normalized := Normalize(s)
	if normalized == "" {
		return nil
	}

	var tokens []string
	for _, tok := range strings.Split(normalized, " ") {
		if utf8.RuneCountInString(tok) >= minTokenRunes {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// TokenSet returns the unique tokens of s as a membership set.
func TokenSet(s string) map[string]bool {
	tokens := Tokens(s)
	if tokens == nil {
		return nil
	}
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
