// Package ports defines the contracts shared by the engine and its adapters.
// Domain logic depends only on these types, never on concrete catalog sources.
package ports

import "context"

// Entity is a matchable catalog unit: an industry, an intent category, a
// knowledge-base article, or a product. Entities are produced by the tolerant
// record parser and are immutable once published in a snapshot.
type Entity struct {
	// ID is the stable, unique key within one catalog.
	ID string

	// Names maps language code ("fa", "en") to a display label.
	Names map[string]string

	// Keywords holds the entity's declared phrases, already normalized.
	// Order is preserved from the source record.
	Keywords []string

	// Attrs holds free-form attribute lists (tags, materials, standards,
	// sample phrases). Domain boost rules read these; the base scoring
	// signals do not.
	Attrs map[string][]string

	// WeightHint dampens the score of entities whose keywords are overly
	// generic. Zero means no damping.
	WeightHint float64
}

// Name returns the display label for lang, falling back to any other label.
func (e Entity) Name(lang string) string {
	if n, ok := e.Names[lang]; ok && n != "" {
		return n
	}
	for _, n := range e.Names {
		if n != "" {
			return n
		}
	}
	return e.ID
}

// Attr returns the named attribute list, nil if absent.
func (e Entity) Attr(key string) []string {
	if e.Attrs == nil {
		return nil
	}
	return e.Attrs[key]
}

// ScoredResult is one ranked answer from a query.
type ScoredResult struct {
	ID      string   `json:"id"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
	// Source records which path produced the result: "heuristic" or "llm".
	Source string `json:"source,omitempty"`
}

// QueryOptions controls a single query evaluation.
type QueryOptions struct {
	// TopN limits the result list (default 5 when zero).
	TopN int

	// MinScore is the confidence threshold applied before fallback.
	MinScore float64

	// Hints carries structured query context (e.g. hazard=cut, env=oily)
	// consumed by per-matcher boost rules.
	Hints map[string]string
}

// Source retrieves raw catalog records from somewhere external. A failed
// Fetch must leave the caller free to retain its prior state.
type Source interface {
	Fetch(ctx context.Context) ([]Record, error)
}
