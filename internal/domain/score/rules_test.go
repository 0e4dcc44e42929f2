package score

import (
	"testing"

	"github.com/sigmagloves/sgmatch/internal/ports"
	"github.com/stretchr/testify/assert"
)

func TestGenericKeywordPenalty(t *testing.T) {
	rule := GenericKeywordPenalty(0.05)
	q := NewQuery("جوش", nil)

	t.Run("short best keyword penalized", func(t *testing.T) {
		st := MatchState{Phrase: 1.0, BestKeyword: "جو"}
		assert.InDelta(t, -0.05, rule.Apply(q, ports.Entity{}, st), 1e-9)
	})

	t.Run("weight hint subtracted on any match", func(t *testing.T) {
		e := ports.Entity{WeightHint: 0.05}
		st := MatchState{Overlap: 0.5, BestKeyword: "دستکش"}
		assert.InDelta(t, -0.05, rule.Apply(q, e, st), 1e-9)
	})

	t.Run("both stack", func(t *testing.T) {
		e := ports.Entity{WeightHint: 0.05}
		st := MatchState{Phrase: 1.0, BestKeyword: "جو"}
		assert.InDelta(t, -0.10, rule.Apply(q, e, st), 1e-9)
	})

	t.Run("no evidence no hint penalty", func(t *testing.T) {
		e := ports.Entity{WeightHint: 0.05}
		assert.Equal(t, 0.0, rule.Apply(q, e, MatchState{}))
	})
}

func TestMultiKeywordBonus(t *testing.T) {
	rule := MultiKeywordBonus(0.04, 0.08)
	q := NewQuery("x", nil)

	assert.Equal(t, 0.0, rule.Apply(q, ports.Entity{}, MatchState{MatchedKeywords: 1}))
	assert.InDelta(t, 0.04, rule.Apply(q, ports.Entity{}, MatchState{MatchedKeywords: 2}), 1e-9)
	assert.InDelta(t, 0.08, rule.Apply(q, ports.Entity{}, MatchState{MatchedKeywords: 3}), 1e-9)
	// capped
	assert.InDelta(t, 0.08, rule.Apply(q, ports.Entity{}, MatchState{MatchedKeywords: 7}), 1e-9)
}

func TestHintAttrBoost(t *testing.T) {
	rule := HintAttrBoost("env", "env", "tags", 0.18)
	ent := ports.Entity{Attrs: map[string][]string{"tags": {"oil", "grip"}}}

	t.Run("exact value", func(t *testing.T) {
		q := NewQuery("دستکش", map[string]string{"env": "oil"})
		assert.InDelta(t, 0.18, rule.Apply(q, ent, MatchState{}), 1e-9)
	})

	t.Run("substring either direction", func(t *testing.T) {
		q := NewQuery("دستکش", map[string]string{"env": "oily"})
		assert.InDelta(t, 0.18, rule.Apply(q, ent, MatchState{}), 1e-9)
	})

	t.Run("missing hint", func(t *testing.T) {
		q := NewQuery("دستکش", nil)
		assert.Equal(t, 0.0, rule.Apply(q, ent, MatchState{}))
	})

	t.Run("no tag match", func(t *testing.T) {
		q := NewQuery("دستکش", map[string]string{"env": "wet"})
		assert.Equal(t, 0.0, rule.Apply(q, ent, MatchState{}))
	})
}

func TestCoOccurrenceBoost(t *testing.T) {
	rule := CoOccurrenceBoost("chem-nitrile", "hazard", "chemical", "materials", "nitrile", 0.12)
	nitrile := ports.Entity{Attrs: map[string][]string{"materials": {"nitrile"}}}
	latex := ports.Entity{Attrs: map[string][]string{"materials": {"latex"}}}

	withHazard := NewQuery("دستکش", map[string]string{"hazard": "chemical"})
	withoutHazard := NewQuery("دستکش", map[string]string{"hazard": "cut"})

	assert.InDelta(t, 0.12, rule.Apply(withHazard, nitrile, MatchState{}), 1e-9)
	assert.Equal(t, 0.0, rule.Apply(withHazard, latex, MatchState{}))
	assert.Equal(t, 0.0, rule.Apply(withoutHazard, nitrile, MatchState{}))
}

func TestKeywordBreadthBonus(t *testing.T) {
	rule := KeywordBreadthBonus(150, 0.04)
	q := NewQuery("x", nil)
	ent := ports.Entity{Keywords: make([]string, 9)}

	t.Run("requires some base signal", func(t *testing.T) {
		assert.Equal(t, 0.0, rule.Apply(q, ent, MatchState{Subsequence: 0.9}))
	})

	t.Run("scales with vocabulary", func(t *testing.T) {
		st := MatchState{Phrase: 1.0}
		assert.InDelta(t, 9.0/150.0, rule.Apply(q, ent, st), 1e-9)
	})

	t.Run("capped", func(t *testing.T) {
		big := ports.Entity{Keywords: make([]string, 50)}
		assert.InDelta(t, 0.04, rule.Apply(q, big, MatchState{Overlap: 0.5}), 1e-9)
	})
}

func TestSamplePhraseBoost(t *testing.T) {
	rule := SamplePhraseBoost(0.10)
	ent := ports.Entity{Attrs: map[string][]string{"sample": {"من جوشکار هستم"}}}

	hit := NewQuery("سلام، من جوشکار هستم و دستکش میخوام", nil)
	miss := NewQuery("دستکش برش", nil)

	assert.InDelta(t, 0.10, rule.Apply(hit, ent, MatchState{}), 1e-9)
	assert.Equal(t, 0.0, rule.Apply(miss, ent, MatchState{}))
	assert.Equal(t, 0.0, rule.Apply(hit, ports.Entity{}, MatchState{}))
}
