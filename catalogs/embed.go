// Package catalogs embeds the default Sigma Gloves catalog data for
// compile-time inclusion: industries, intent categories, knowledge-base
// articles, and products. Each file is a JSON array of records.
//
// Usage:
//
//	records, err := catalogs.Default(catalogs.Industries)
package catalogs

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/sigmagloves/sgmatch/internal/ports"
)

//go:embed data/*.json
var FS embed.FS

// Catalog names, matching the embedded file basenames.
const (
	Industries = "industries"
	Intents    = "intents"
	Knowledge  = "knowledge"
	Products   = "products"
)

// Default returns the embedded records for the named catalog.
func Default(name string) ([]ports.Record, error) {
	return Load(FS, "data/"+name+".json")
}

// Load parses one catalog file from any fs.FS (embedded defaults or a
// --catalog override on disk).
func Load(fsys fs.FS, path string) ([]ports.Record, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var records []ports.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog %s is empty", path)
	}
	return records, nil
}
