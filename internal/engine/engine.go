// Package engine assembles the matching pipeline: catalog store, inverted
// index, scorer, and ranker behind one instance. Each domain matcher owns its
// own Engine, so the four catalogs coexist without shared state.
package engine

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sigmagloves/sgmatch/internal/domain/index"
	"github.com/sigmagloves/sgmatch/internal/domain/rank"
	"github.com/sigmagloves/sgmatch/internal/domain/score"
	"github.com/sigmagloves/sgmatch/internal/ports"
)

// smallCatalogDefault: below this entity count the scorer evaluates the whole
// catalog instead of index candidates, so substring-only entities still rank.
const smallCatalogDefault = 48

// Config is the per-matcher engine configuration.
type Config struct {
	// Name identifies the matcher in errors and debug output.
	Name string

	Weights score.Weights
	Rules   []score.BoostRule

	// TopN and MinScore are the defaults applied when QueryOptions leaves
	// them zero.
	TopN     int
	MinScore float64

	Fallback rank.FallbackPolicy

	// StrictInit makes Query fail with ErrNotReady before the first
	// successful load; otherwise an uninitialized engine answers empty.
	StrictInit bool

	// SmallCatalog overrides smallCatalogDefault when positive.
	SmallCatalog int
}

// snapshot is one immutable published catalog state. Rebuilt wholesale on
// every mutation and swapped under the lock, never patched in place.
type snapshot struct {
	entities []ports.Entity
	byID     map[string]ports.Entity
	idx      *index.Index
}

// Engine holds the current snapshot and the matcher configuration.
type Engine struct {
	cfg   Config
	debug bool

	mu   sync.RWMutex
	snap *snapshot // nil until the first successful load
}

// New creates an engine with no loaded catalog.
func New(cfg Config) *Engine {
	if cfg.Weights == (score.Weights{}) {
		cfg.Weights = score.DefaultWeights
	}
	if cfg.SmallCatalog <= 0 {
		cfg.SmallCatalog = smallCatalogDefault
	}
	return &Engine{
		cfg:   cfg,
		debug: os.Getenv("SGMATCH_DEBUG") == "1",
	}
}

// Ready reports whether a catalog has been successfully loaded.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snap != nil
}

// Init fetches records from the source and replaces the catalog wholesale.
// On fetch failure the prior snapshot (if any) is retained untouched.
func (e *Engine) Init(ctx context.Context, src ports.Source) error {
	records, err := src.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("%s: catalog load: %w", e.cfg.Name, err)
	}
	e.InitRecords(records)
	return nil
}

// InitRecords replaces the catalog from already-parsed records. Malformed
// records are skipped individually, never failing the batch. Returns the
// number of loaded and skipped records.
func (e *Engine) InitRecords(records []ports.Record) (loaded, skipped int) {
	entities := make([]ports.Entity, 0, len(records))
	byID := make(map[string]ports.Entity, len(records))
	for _, r := range records {
		ent, err := parseRecord(r)
		if err != nil {
			skipped++
			if e.debug {
				fmt.Fprintf(os.Stderr, "[debug] %s: skipping record: %v\n", e.cfg.Name, err)
			}
			continue
		}
		if _, dup := byID[ent.ID]; dup {
			skipped++
			continue
		}
		byID[ent.ID] = ent
		entities = append(entities, ent)
	}

	e.publish(entities, byID)
	return len(entities), skipped
}

// Add validates and inserts (or replaces) a single entity, rebuilding the
// index once. Records missing an id or any usable keyword are rejected.
func (e *Engine) Add(r ports.Record) error {
	ent, err := parseRecord(r)
	if err != nil {
		return err
	}
	if len(ent.Keywords) == 0 {
		return fmt.Errorf("%w: no usable keywords for %q", ErrInvalidRecord, ent.ID)
	}

	e.mu.RLock()
	snap := e.snap
	e.mu.RUnlock()

	var entities []ports.Entity
	if snap != nil {
		entities = make([]ports.Entity, 0, len(snap.entities)+1)
		for _, existing := range snap.entities {
			if existing.ID != ent.ID {
				entities = append(entities, existing)
			}
		}
	}
	entities = append(entities, ent)

	byID := make(map[string]ports.Entity, len(entities))
	for _, en := range entities {
		byID[en.ID] = en
	}
	e.publish(entities, byID)
	return nil
}

// publish builds the new index off-lock and swaps the snapshot atomically.
func (e *Engine) publish(entities []ports.Entity, byID map[string]ports.Entity) {
	next := &snapshot{
		entities: entities,
		byID:     byID,
		idx:      index.Build(entities),
	}
	e.mu.Lock()
	e.snap = next
	e.mu.Unlock()
}

// Query scores the input against the catalog and returns the ranked results.
// An empty or unparseable query yields an empty result, not an error.
func (e *Engine) Query(input string, opts ports.QueryOptions) ([]ports.ScoredResult, error) {
	start := time.Now()

	e.mu.RLock()
	snap := e.snap
	e.mu.RUnlock()

	if snap == nil {
		if e.cfg.StrictInit {
			return nil, fmt.Errorf("%s: %w", e.cfg.Name, ErrNotReady)
		}
		return nil, nil
	}

	q := score.NewQuery(input, opts.Hints)
	if q.Empty() {
		return nil, nil
	}

	candidates := e.candidates(snap, q)

	scored := make([]ports.ScoredResult, 0, len(candidates))
	for _, ent := range candidates {
		s, reasons := score.Score(q, ent, e.cfg.Weights, e.cfg.Rules)
		if s <= 0 {
			continue
		}
		scored = append(scored, ports.ScoredResult{
			ID:      ent.ID,
			Score:   s,
			Reasons: reasons,
			Source:  "heuristic",
		})
	}

	topN := opts.TopN
	if topN <= 0 {
		topN = e.cfg.TopN
	}
	minScore := opts.MinScore
	if minScore <= 0 {
		minScore = e.cfg.MinScore
	}

	results := rank.Rank(scored, topN, minScore, e.cfg.Fallback)

	if e.debug {
		fmt.Fprintf(os.Stderr, "[debug] %s: query=%q candidates=%d results=%d elapsed=%v\n",
			e.cfg.Name, input, len(candidates), len(results), time.Since(start))
	}
	return results, nil
}

// candidates selects the entities worth scoring: the whole catalog when it is
// small, otherwise everything reachable through the inverted index.
func (e *Engine) candidates(snap *snapshot, q score.Query) []ports.Entity {
	if len(snap.entities) < e.cfg.SmallCatalog {
		return snap.entities
	}
	ids := snap.idx.Candidates(q.Tokens, q.Raw)
	out := make([]ports.Entity, 0, len(ids))
	for _, id := range ids {
		if ent, ok := snap.byID[id]; ok {
			out = append(out, ent)
		}
	}
	return out
}

// Get returns the entity with the given ID from the current snapshot.
func (e *Engine) Get(id string) (ports.Entity, bool) {
	e.mu.RLock()
	snap := e.snap
	e.mu.RUnlock()
	if snap == nil {
		return ports.Entity{}, false
	}
	ent, ok := snap.byID[id]
	return ent, ok
}

// All returns the current entity set (shared slice; callers must not mutate).
func (e *Engine) All() []ports.Entity {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.snap == nil {
		return nil
	}
	return e.snap.entities
}

// Stats reports entity and index-key counts for the catalog command.
func (e *Engine) Stats() (entities, indexKeys int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.snap == nil {
		return 0, 0
	}
	return len(e.snap.entities), e.snap.idx.Len()
}
