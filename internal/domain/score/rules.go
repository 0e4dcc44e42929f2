package score

import (
	"strings"
	"unicode/utf8"

	"github.com/sigmagloves/sgmatch/internal/domain/text"
	"github.com/sigmagloves/sgmatch/internal/ports"
)

// BoostRule is a named, composable post-signal adjustment. Rules return a
// score delta (positive boost or negative penalty); zero means not applicable.
// Each matcher registers its own rule set instead of hardcoding conditionals.
type BoostRule struct {
	Name  string
	Apply func(q Query, e ports.Entity, st MatchState) float64
}

// GenericKeywordPenalty dampens matches won through an extremely short
// keyword, plus the entity's own WeightHint for catalog entries flagged as
// generic ("دستکش" alone matches every glove).
func GenericKeywordPenalty(penalty float64) BoostRule {
	return BoostRule{
		Name: "generic",
		Apply: func(_ Query, e ports.Entity, st MatchState) float64 {
			var delta float64
			if st.BestKeyword != "" && utf8.RuneCountInString(st.BestKeyword) < 3 {
				delta -= penalty
			}
			if e.WeightHint > 0 && (st.Phrase > 0 || st.Overlap > 0) {
				delta -= e.WeightHint
			}
			return delta
		},
	}
}

// MultiKeywordBonus rewards entities where several distinct keywords matched
// independently: step per extra keyword, capped.
func MultiKeywordBonus(step, limit float64) BoostRule {
	return BoostRule{
		Name: "multikw",
		Apply: func(_ Query, _ ports.Entity, st MatchState) float64 {
			if st.MatchedKeywords < 2 {
				return 0
			}
			bonus := step * float64(st.MatchedKeywords-1)
			if bonus > limit {
				bonus = limit
			}
			return bonus
		},
	}
}

// HintAttrBoost boosts entities whose attrKey attribute list matches the
// query's hintKey hint. Values match on normalized equality or substring
// containment of at least three runes in either direction, so hint "oily"
// finds the tag "oil".
func HintAttrBoost(name, hintKey, attrKey string, delta float64) BoostRule {
	return BoostRule{
		Name: name,
		Apply: func(q Query, e ports.Entity, _ MatchState) float64 {
			want := text.Normalize(q.Hint(hintKey))
			if want == "" {
				return 0
			}
			for _, v := range e.Attr(attrKey) {
				if hintValueMatches(want, text.Normalize(v)) {
					return delta
				}
			}
			return 0
		},
	}
}

// CoOccurrenceBoost fires only when a hint value and an attribute value are
// both present, rewarding domain pairings like chemical hazard + nitrile
// material that neither signal justifies alone.
func CoOccurrenceBoost(name, hintKey, hintVal, attrKey, attrVal string, delta float64) BoostRule {
	wantHint := text.Normalize(hintVal)
	wantAttr := text.Normalize(attrVal)
	return BoostRule{
		Name: name,
		Apply: func(q Query, e ports.Entity, _ MatchState) float64 {
			if !hintValueMatches(wantHint, text.Normalize(q.Hint(hintKey))) {
				return 0
			}
			for _, v := range e.Attr(attrKey) {
				if hintValueMatches(wantAttr, text.Normalize(v)) {
					return delta
				}
			}
			return 0
		},
	}
}

// KeywordBreadthBonus gives a small edge to entities with a broad keyword
// vocabulary, capped. Mirrors the catalog's original length bonus
// (keyword count / divisor, capped).
func KeywordBreadthBonus(divisor, limit float64) BoostRule {
	return BoostRule{
		Name: "breadth",
		Apply: func(_ Query, e ports.Entity, st MatchState) float64 {
			if st.Phrase == 0 && st.Overlap == 0 && st.Fuzzy == 0 {
				return 0
			}
			bonus := float64(len(e.Keywords)) / divisor
			if bonus > limit {
				bonus = limit
			}
			return bonus
		},
	}
}

// SamplePhraseBoost rewards containment of one of the entity's sample
// utterances (attrKey "sample") in the query, at a lower confidence than a
// keyword phrase hit.
func SamplePhraseBoost(delta float64) BoostRule {
	return BoostRule{
		Name: "sample",
		Apply: func(q Query, e ports.Entity, _ MatchState) float64 {
			for _, s := range e.Attr("sample") {
				ns := text.Normalize(s)
				if ns != "" && strings.Contains(q.Normalized, ns) {
					return delta
				}
			}
			return 0
		},
	}
}

// hintValueMatches compares two normalized values: exact, or substring in
// either direction when both sides are at least three runes.
func hintValueMatches(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if utf8.RuneCountInString(a) < 3 || utf8.RuneCountInString(b) < 3 {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
