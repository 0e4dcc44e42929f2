package matchers

import (
	"github.com/sigmagloves/sgmatch/catalogs"
	"github.com/sigmagloves/sgmatch/internal/domain/rank"
	"github.com/sigmagloves/sgmatch/internal/domain/score"
	"github.com/sigmagloves/sgmatch/internal/engine"
	"github.com/sigmagloves/sgmatch/internal/ports"
)

// Product builds the product recommender. Materials and tags act as scoring
// surface through the implicit-keyword fold; hazard/env hints boost matching
// tags, and the chemical-hazard × nitrile-material pairing gets a dedicated
// co-occurrence boost (nitrile is the only stocked material rated for
// solvent work). Recommendations always surface something (FallbackTop),
// but querying before the catalog loads is a hard error.
func Product(records []ports.Record) (*engine.Engine, error) {
	e := engine.New(engine.Config{
		Name: "product",
		Weights: score.Weights{
			Phrase:       0.44,
			TokenOverlap: 0.30,
			Subsequence:  0.14,
			Fuzzy:        0.12,
		},
		Rules: []score.BoostRule{
			score.HintAttrBoost("hazard", "hazard", "tags", 0.20),
			score.HintAttrBoost("env", "env", "tags", 0.16),
			score.CoOccurrenceBoost("chem-nitrile", "hazard", "chemical", "materials", "nitrile", 0.12),
			score.MultiKeywordBonus(0.04, 0.08),
			score.GenericKeywordPenalty(0.05),
		},
		TopN:       5,
		MinScore:   0.18,
		Fallback:   rank.FallbackTop,
		StrictInit: true,
	})
	return load(e, records, catalogs.Products)
}
