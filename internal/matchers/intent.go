package matchers

import (
	"github.com/sigmagloves/sgmatch/catalogs"
	"github.com/sigmagloves/sgmatch/internal/domain/rank"
	"github.com/sigmagloves/sgmatch/internal/domain/score"
	"github.com/sigmagloves/sgmatch/internal/engine"
	"github.com/sigmagloves/sgmatch/internal/ports"
)

// Intent builds the hazard/environment/preference classifier. Structured
// hints (hazard=cut, env=oily, pref=thin) boost entities tagged on that
// axis, so a query hinting two axes ranks dual-tagged entities above
// single-axis ones. This matcher reports no-confident-match explicitly
// (FallbackNone) and treats an unloaded catalog as a hard error.
func Intent(records []ports.Record) (*engine.Engine, error) {
	e := engine.New(engine.Config{
		Name: "intent",
		Weights: score.Weights{
			Phrase:       0.40,
			TokenOverlap: 0.32,
			Subsequence:  0.14,
			Fuzzy:        0.14,
		},
		Rules: []score.BoostRule{
			score.HintAttrBoost("hazard", "hazard", "tags", 0.22),
			score.HintAttrBoost("env", "env", "tags", 0.18),
			score.HintAttrBoost("pref", "pref", "tags", 0.10),
			score.MultiKeywordBonus(0.05, 0.10),
		},
		TopN:       3,
		MinScore:   0.20,
		Fallback:   rank.FallbackNone,
		StrictInit: true,
	})
	return load(e, records, catalogs.Intents)
}
