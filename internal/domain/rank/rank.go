// Package rank orders scored candidates and applies the per-matcher
// threshold and fallback policy.
package rank

import (
	"sort"

	"github.com/sigmagloves/sgmatch/internal/ports"
)

// FallbackPolicy decides what happens when no candidate clears MinScore.
// The original matchers disagreed on this (some always answered, some
// reported no confident match), so the choice is explicit per matcher.
type FallbackPolicy int

const (
	// FallbackNone returns an empty list when nothing clears the bar.
	FallbackNone FallbackPolicy = iota

	// FallbackTop returns the unfiltered top candidates anyway, keeping
	// the interaction flowing at low confidence.
	FallbackTop
)

// Rank sorts candidates by score descending with a deterministic lexicographic
// ID tie-break, applies minScore, then the fallback policy, and truncates to
// topN (default 5).
func Rank(candidates []ports.ScoredResult, topN int, minScore float64, fallback FallbackPolicy) []ports.ScoredResult {
	if topN <= 0 {
		topN = 5
	}

	ordered := make([]ports.ScoredResult, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Score != ordered[j].Score {
			return ordered[i].Score > ordered[j].Score
		}
		return ordered[i].ID < ordered[j].ID
	})

	// Zero-score candidates never surface, regardless of policy.
	for len(ordered) > 0 && ordered[len(ordered)-1].Score <= 0 {
		ordered = ordered[:len(ordered)-1]
	}

	var kept []ports.ScoredResult
	for _, c := range ordered {
		if c.Score >= minScore {
			kept = append(kept, c)
		}
	}

	if len(kept) == 0 {
		if fallback == FallbackNone {
			return nil
		}
		kept = ordered
	}

	if len(kept) > topN {
		kept = kept[:topN]
	}
	return kept
}
