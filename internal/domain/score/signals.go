package score

import (
	"strings"
	"unicode/utf8"
)

const (
	// partialTokenScore is the credit for a token found as a substring of a
	// query token (or vice versa). Tolerates inflected and compound forms:
	// "جوشکار" inside "جوشکاری", "weld" inside "welder".
	partialTokenScore = 0.85

	// minPartialRunes is the shortest token allowed to substring-match.
	// Two-rune fragments collide constantly in Persian.
	minPartialRunes = 3

	// fuzzyThreshold is the minimum Levenshtein similarity for a fuzzy hit.
	fuzzyThreshold = 0.75

	// lcsCharLimit switches subsequence similarity from character-level to
	// token-level DP to bound cost on long surfaces.
	lcsCharLimit = 300
)

// tokenOverlap scores how many of the keyword's tokens appear among the query
// tokens, normalized by the keyword's token count. Exact token hits count 1.0,
// substring hits (either direction, >= 3 runes) count partialTokenScore.
// Returns the ratio in [0,1] and the number of exact hits.
func tokenOverlap(q Query, kwTokens []string) (ratio float64, exact int) {
	if len(kwTokens) == 0 {
		return 0, 0
	}
	var sum float64
	for _, kt := range kwTokens {
		if q.TokenSet[kt] {
			sum += 1.0
			exact++
			continue
		}
		if utf8.RuneCountInString(kt) < minPartialRunes {
			continue
		}
		for _, qt := range q.Tokens {
			if utf8.RuneCountInString(qt) < minPartialRunes {
				continue
			}
			if strings.Contains(qt, kt) || strings.Contains(kt, qt) {
				sum += partialTokenScore
				break
			}
		}
	}
	return sum / float64(len(kwTokens)), exact
}

// subsequenceSimilarity is the LCS length between a and b normalized by the
// longer side. Character-level below lcsCharLimit runes, token-level above.
func subsequenceSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) <= lcsCharLimit && len(rb) <= lcsCharLimit {
		longer := len(ra)
		if len(rb) > longer {
			longer = len(rb)
		}
		return float64(lcsRunes(ra, rb)) / float64(longer)
	}

	ta, tb := strings.Fields(a), strings.Fields(b)
	longer := len(ta)
	if len(tb) > longer {
		longer = len(tb)
	}
	if longer == 0 {
		return 0
	}
	return float64(lcsTokens(ta, tb)) / float64(longer)
}

// lcsRunes computes the longest-common-subsequence length with a two-row DP.
func lcsRunes(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func lcsTokens(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// levenshtein computes the edit distance between two strings at rune level.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			m := prev[j-1] + cost // substitute
			if d := prev[j] + 1; d < m { // delete
				m = d
			}
			if d := cur[j-1] + 1; d < m { // insert
				m = d
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// fuzzySimilarity converts edit distance to a [0,1] similarity.
func fuzzySimilarity(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longer := la
	if lb > longer {
		longer = lb
	}
	if longer == 0 {
		return 0
	}
	return 1.0 - float64(levenshtein(a, b))/float64(longer)
}
