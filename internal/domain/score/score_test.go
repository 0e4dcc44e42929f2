package score

import (
	"testing"

	"github.com/sigmagloves/sgmatch/internal/ports"
	"github.com/stretchr/testify/assert"
)

var equalWeights = Weights{Phrase: 0.25, TokenOverlap: 0.25, Subsequence: 0.25, Fuzzy: 0.25}

func kwEntity(id string, keywords ...string) ports.Entity {
	return ports.Entity{ID: id, Keywords: keywords}
}

func TestScore_EmptyQuery(t *testing.T) {
	q := NewQuery("", nil)
	s, reasons := Score(q, kwEntity("a", "جوشکاری"), DefaultWeights, nil)
	assert.Equal(t, 0.0, s)
	assert.Nil(t, reasons)

	q2 := NewQuery(" !!! ", nil)
	s2, _ := Score(q2, kwEntity("a", "جوشکاری"), DefaultWeights, nil)
	assert.Equal(t, 0.0, s2)
}

func TestScore_PhraseContainment(t *testing.T) {
	q := NewQuery("من جوشکار هستم", nil)
	s, reasons := Score(q, kwEntity("welding", "جوشکار"), DefaultWeights, nil)

	assert.Greater(t, s, 0.5)
	assert.Contains(t, reasons, "phrase:جوشکار")
}

func TestScore_PhraseBeatsFuzzyOnly(t *testing.T) {
	// With equal weights, contiguous containment must outrank a candidate
	// that only survives through edit distance.
	q := NewQuery("welding gloves", nil)

	exact, _ := Score(q, kwEntity("a", "welding"), equalWeights, nil)
	fuzzy, reasons := Score(q, kwEntity("b", "weldxng"), equalWeights, nil)

	assert.Greater(t, exact, fuzzy)
	assert.Contains(t, reasons, "fuzzy:weldxng~welding")
}

func TestScore_TokenOverlapReason(t *testing.T) {
	q := NewQuery("دستکش برش میخوام", nil)
	_, reasons := Score(q, kwEntity("a", "دستکش ضد برش"), DefaultWeights, nil)
	assert.Contains(t, reasons, "tokens:2/3")
}

func TestScore_FuzzyRequiresNoOtherEvidence(t *testing.T) {
	// "جوش" is contained in the query, so the fuzzy path must not run.
	q := NewQuery("جوشکاری", nil)
	s, reasons := Score(q, kwEntity("a", "جوش"), DefaultWeights, nil)

	assert.Greater(t, s, 0.0)
	assert.Contains(t, reasons, "phrase:جوش")
	for _, r := range reasons {
		assert.NotContains(t, r, "fuzzy:")
	}
}

func TestScore_FuzzyBelowThresholdIgnored(t *testing.T) {
	q := NewQuery("mechanic", nil)
	_, reasons := Score(q, kwEntity("a", "welding"), DefaultWeights, nil)
	for _, r := range reasons {
		assert.NotContains(t, r, "fuzzy:")
	}
}

func TestScore_NoKeywordsFallsBackToSurface(t *testing.T) {
	// An entity with zero usable keywords still matches through LCS
	// against its display names.
	ent := ports.Entity{
		ID:    "bare",
		Names: map[string]string{"fa": "دستکش جوشکاری"},
	}
	q := NewQuery("دستکش جوشکاری", nil)
	s, reasons := Score(q, ent, DefaultWeights, nil)

	assert.InDelta(t, DefaultWeights.Subsequence, s, 1e-9)
	assert.Contains(t, reasons, "lcs:1.00")
}

func TestScore_ClampedToOne(t *testing.T) {
	heavy := Weights{Phrase: 2, TokenOverlap: 2, Subsequence: 2, Fuzzy: 2}
	q := NewQuery("جوشکاری", nil)
	s, _ := Score(q, kwEntity("a", "جوشکاری"), heavy, nil)
	assert.Equal(t, 1.0, s)
}

func TestScore_RuleDeltaApplied(t *testing.T) {
	flat := BoostRule{
		Name:  "flat",
		Apply: func(Query, ports.Entity, MatchState) float64 { return 0.10 },
	}
	q := NewQuery("جوشکاری", nil)

	base, _ := Score(q, kwEntity("a", "جوشکاری"), equalWeights, nil)
	boosted, reasons := Score(q, kwEntity("a", "جوشکاری"), equalWeights, []BoostRule{flat})

	assert.InDelta(t, base+0.10, boosted, 1e-9)
	assert.Contains(t, reasons, "flat:+0.10")
}

func TestScore_Deterministic(t *testing.T) {
	q := NewQuery("دستکش برش روغنی", nil)
	ent := kwEntity("a", "برش", "روغن", "گریپ روغن")

	s1, r1 := Score(q, ent, DefaultWeights, nil)
	s2, r2 := Score(q, ent, DefaultWeights, nil)
	assert.Equal(t, s1, s2)
	assert.Equal(t, r1, r2)
}
