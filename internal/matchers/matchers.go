// Package matchers configures the four domain pipelines — industry, intent,
// knowledge base, product — over the shared engine. Each matcher is its own
// engine instance with its own catalog, weights, boost rules, fallback
// policy, and init policy.
package matchers

import (
	"fmt"

	"github.com/sigmagloves/sgmatch/catalogs"
	"github.com/sigmagloves/sgmatch/internal/engine"
	"github.com/sigmagloves/sgmatch/internal/ports"
)

// load fills an engine from explicit records, or from the named embedded
// catalog when records is nil.
func load(e *engine.Engine, records []ports.Record, catalog string) (*engine.Engine, error) {
	if records == nil {
		var err error
		records, err = catalogs.Default(catalog)
		if err != nil {
			return nil, fmt.Errorf("%s matcher: %w", catalog, err)
		}
	}
	e.InitRecords(records)
	return e, nil
}
