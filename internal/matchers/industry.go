package matchers

import (
	"context"
	"strings"

	"github.com/sigmagloves/sgmatch/catalogs"
	"github.com/sigmagloves/sgmatch/internal/domain/rank"
	"github.com/sigmagloves/sgmatch/internal/domain/score"
	"github.com/sigmagloves/sgmatch/internal/engine"
	"github.com/sigmagloves/sgmatch/internal/ports"
)

// defaultMinLLMScore is the confidence a model pick needs to override the
// heuristic answer.
const defaultMinLLMScore = 0.28

// llmScoreFloor is applied to a validated model pick: when the model commits
// to a code, trust it at least this much.
const llmScoreFloor = 0.65

// Industry builds the industry classifier engine. Phrase evidence dominates
// (a user saying "جوشکاری" IS the industry), samples boost at lower weight,
// and a broad keyword vocabulary earns a small capped edge. The matcher
// always answers: low-confidence queries fall back to the top candidates,
// and an unloaded engine degrades to empty results.
func Industry(records []ports.Record) (*engine.Engine, error) {
	e := engine.New(engine.Config{
		Name: "industry",
		Weights: score.Weights{
			Phrase:       0.50,
			TokenOverlap: 0.28,
			Subsequence:  0.12,
			Fuzzy:        0.10,
		},
		Rules: []score.BoostRule{
			score.SamplePhraseBoost(0.10),
			score.KeywordBreadthBonus(150, 0.04),
			score.MultiKeywordBonus(0.04, 0.08),
			score.GenericKeywordPenalty(0.05),
		},
		TopN:     3,
		MinScore: 0.15,
		Fallback: rank.FallbackTop,
	})
	return load(e, records, catalogs.Industries)
}

// PickFn asks an external model to choose a catalog code for the user text.
// Wired to ollama.Client.PickCode in the CLI; nil disables the LLM path.
type PickFn func(ctx context.Context, catalog, userText string) (code string, confidence float64, reason string, err error)

// IndustryResult is the classifier's answer, in the shape the original
// backend emitted.
type IndustryResult struct {
	Code   string  `json:"code"`
	NameEn string  `json:"name_en"`
	NameFa string  `json:"name_fa"`
	Score  float64 `json:"score"`
	Source string  `json:"source"`
	Reason string  `json:"reason"`
}

// IndustryClassifier pairs the heuristic engine with an optional LLM refine
// step. The heuristic result is always computed first and stands whenever the
// model is unavailable, answers with an unknown code, or is not confident.
type IndustryClassifier struct {
	Engine *engine.Engine

	// Pick is the optional model hook; nil means heuristic only.
	Pick PickFn

	// MinLLMScore gates model overrides (default 0.28).
	MinLLMScore float64
}

// Classify maps a free-text prompt to an industry.
func (c *IndustryClassifier) Classify(ctx context.Context, prompt string) (IndustryResult, error) {
	results, err := c.Engine.Query(prompt, ports.QueryOptions{TopN: 1})
	if err != nil {
		return IndustryResult{}, err
	}

	best := IndustryResult{Source: "heuristic"}
	if len(results) > 0 {
		best = c.describe(results[0].ID, results[0].Score, "heuristic",
			strings.Join(results[0].Reasons, ", "))
	}

	if c.Pick == nil || strings.TrimSpace(prompt) == "" {
		return best, nil
	}

	code, confidence, reason, err := c.Pick(ctx, c.catalogLine(), prompt)
	if err != nil {
		// Model unavailable or unusable reply: heuristic stands.
		return best, nil
	}
	if _, known := c.Engine.Get(code); !known {
		return best, nil
	}

	llmScore := confidence
	if llmScore < llmScoreFloor {
		llmScore = llmScoreFloor
	}
	minScore := c.MinLLMScore
	if minScore <= 0 {
		minScore = defaultMinLLMScore
	}
	if confidence < minScore {
		return best, nil
	}

	return c.describe(code, llmScore, "llm", reason), nil
}

// describe expands an entity ID into the full result shape.
func (c *IndustryClassifier) describe(id string, s float64, source, reason string) IndustryResult {
	ent, _ := c.Engine.Get(id)
	return IndustryResult{
		Code:   id,
		NameEn: ent.Names["en"],
		NameFa: ent.Names["fa"],
		Score:  s,
		Source: source,
		Reason: reason,
	}
}

// catalogLine renders "code: English name" pairs for the model prompt.
func (c *IndustryClassifier) catalogLine() string {
	var parts []string
	for _, ent := range c.Engine.All() {
		parts = append(parts, ent.ID+": "+ent.Names["en"])
	}
	return strings.Join(parts, "; ")
}
