package matchers

import (
	"github.com/sigmagloves/sgmatch/catalogs"
	"github.com/sigmagloves/sgmatch/internal/domain/rank"
	"github.com/sigmagloves/sgmatch/internal/domain/score"
	"github.com/sigmagloves/sgmatch/internal/engine"
	"github.com/sigmagloves/sgmatch/internal/ports"
)

// Knowledge builds the knowledge-base retriever. Articles are short and
// keyword-sparse, so the subsequence signal carries more weight than in the
// other matchers; the top three articles always come back, even at low
// confidence, to keep the conversation moving.
func Knowledge(records []ports.Record) (*engine.Engine, error) {
	e := engine.New(engine.Config{
		Name: "knowledge",
		Weights: score.Weights{
			Phrase:       0.42,
			TokenOverlap: 0.28,
			Subsequence:  0.20,
			Fuzzy:        0.10,
		},
		Rules: []score.BoostRule{
			score.MultiKeywordBonus(0.05, 0.10),
		},
		TopN:     3,
		MinScore: 0.12,
		Fallback: rank.FallbackTop,
	})
	return load(e, records, catalogs.Knowledge)
}
