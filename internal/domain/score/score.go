package score

import (
	"fmt"
	"strings"

	"github.com/sigmagloves/sgmatch/internal/domain/text"
	"github.com/sigmagloves/sgmatch/internal/ports"
)

// Weights is the per-matcher signal weighting. The four weights should sum to
// roughly 1.0; the final score is clamped to [0,1] regardless.
type Weights struct {
	Phrase       float64 // contiguous keyword-in-query containment
	TokenOverlap float64 // keyword token coverage ratio
	Subsequence  float64 // LCS similarity against the entity surface
	Fuzzy        float64 // edit-distance rescue for single-token keywords
}

// DefaultWeights is a balanced configuration used when a matcher does not
// override it.
var DefaultWeights = Weights{
	Phrase:       0.45,
	TokenOverlap: 0.30,
	Subsequence:  0.15,
	Fuzzy:        0.10,
}

// MatchState exposes the evaluated base signals to boost rules.
type MatchState struct {
	Phrase      float64
	Overlap     float64
	Subsequence float64
	Fuzzy       float64

	// MatchedKeywords counts distinct keywords with strong evidence
	// (phrase containment or full exact token coverage).
	MatchedKeywords int

	// BestKeyword is the keyword behind the strongest signal, "" when the
	// entity only matched through the subsequence surface.
	BestKeyword string
}

// Score evaluates the query against one entity: base signals in fixed order,
// weighted sum, then the matcher's boost rules, clamped to [0,1].
// The reasons list records each contributing signal for explainability.
func Score(q Query, e ports.Entity, w Weights, rules []BoostRule) (float64, []string) {
	if q.Empty() {
		return 0, nil
	}

	var st MatchState
	var reasons []string

	// Signal 1: phrase containment. Any keyword occurring contiguously in
	// the query is the strongest evidence and saturates the signal.
	for _, kw := range e.Keywords {
		if kw == "" || !strings.Contains(q.Normalized, kw) {
			continue
		}
		if st.Phrase == 0 {
			st.Phrase = 1.0
			st.BestKeyword = kw
			reasons = append(reasons, "phrase:"+kw)
		}
		st.MatchedKeywords++
	}

	// Signal 2: token overlap, best keyword wins.
	var bestExact, bestTotal int
	for _, kw := range e.Keywords {
		kwTokens := text.Tokens(kw)
		ratio, exact := tokenOverlap(q, kwTokens)
		if ratio > st.Overlap {
			st.Overlap = ratio
			bestExact, bestTotal = exact, len(kwTokens)
			if st.BestKeyword == "" {
				st.BestKeyword = kw
			}
		}
		// Full exact coverage counts as an independent keyword match even
		// without contiguity, unless phrase containment already counted it.
		if exact == len(kwTokens) && len(kwTokens) > 0 && !strings.Contains(q.Normalized, kw) {
			st.MatchedKeywords++
		}
	}
	if st.Overlap > 0 {
		reasons = append(reasons, fmt.Sprintf("tokens:%d/%d", bestExact, bestTotal))
	}

	// Signal 3: subsequence similarity against the whole entity surface.
	// This is the only signal available to entities with no usable keywords.
	st.Subsequence = subsequenceSimilarity(q.Normalized, entitySurface(e))
	if st.Subsequence >= 0.3 {
		reasons = append(reasons, fmt.Sprintf("lcs:%.2f", st.Subsequence))
	}

	// Signal 4: fuzzy edit distance, single-token keywords only, and only
	// when the keyword found no exact or substring evidence at all.
	if st.Phrase == 0 {
		var fuzzyKw, fuzzyTok string
		for _, kw := range e.Keywords {
			if strings.ContainsRune(kw, ' ') || kw == "" {
				continue
			}
			if q.TokenSet[kw] || strings.Contains(q.Normalized, kw) {
				continue
			}
			for _, qt := range q.Tokens {
				if sim := fuzzySimilarity(kw, qt); sim >= fuzzyThreshold && sim > st.Fuzzy {
					st.Fuzzy = sim
					fuzzyKw, fuzzyTok = kw, qt
				}
			}
		}
		if st.Fuzzy > 0 {
			if st.BestKeyword == "" {
				st.BestKeyword = fuzzyKw
			}
			reasons = append(reasons, "fuzzy:"+fuzzyKw+"~"+fuzzyTok)
		}
	}

	total := w.Phrase*st.Phrase +
		w.TokenOverlap*st.Overlap +
		w.Subsequence*st.Subsequence +
		w.Fuzzy*st.Fuzzy

	for _, rule := range rules {
		delta := rule.Apply(q, e, st)
		if delta == 0 {
			continue
		}
		total += delta
		reasons = append(reasons, fmt.Sprintf("%s:%+.2f", rule.Name, delta))
	}

	return clamp01(total), reasons
}

// entitySurface joins the entity's display names and keywords into one
// normalized string for subsequence comparison.
func entitySurface(e ports.Entity) string {
	var parts []string
	if fa := e.Names["fa"]; fa != "" {
		parts = append(parts, text.Normalize(fa))
	}
	if en := e.Names["en"]; en != "" {
		parts = append(parts, text.Normalize(en))
	}
	parts = append(parts, e.Keywords...)
	return strings.Join(parts, " ")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
