package engine

import (
	"fmt"
	"strings"

	"github.com/sigmagloves/sgmatch/internal/domain/text"
	"github.com/sigmagloves/sgmatch/internal/ports"
)

// parseRecord converts a loosely shaped Record into a validated Entity.
// This is the single tolerant boundary: alternate field names (id/code,
// keywords/tags/materials/features) are folded here, and every keyword is
// normalized exactly once. Records without an identifier are rejected.
func parseRecord(r ports.Record) (ports.Entity, error) {
	id := strings.TrimSpace(r.Key())
	if id == "" {
		return ports.Entity{}, fmt.Errorf("%w: missing id/code", ErrInvalidRecord)
	}

	names := make(map[string]string)
	if r.NameFa != "" {
		names["fa"] = strings.TrimSpace(r.NameFa)
	}
	if r.NameEn != "" {
		names["en"] = strings.TrimSpace(r.NameEn)
	}
	for lang, n := range r.Names {
		if _, taken := names[lang]; !taken && n != "" {
			names[lang] = strings.TrimSpace(n)
		}
	}

	// All keyword-bearing fields fold into one normalized, deduped list.
	// Order is preserved: explicit keywords first, then domain surfaces.
	var keywords []string
	seen := make(map[string]bool)
	addKeywords := func(raw []string) {
		for _, kw := range raw {
			n := text.Normalize(kw)
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			keywords = append(keywords, n)
		}
	}
	addKeywords(r.Keywords)
	addKeywords(r.KeywordsFa)
	addKeywords(r.KeywordsEn)
	addKeywords(r.Tags)
	addKeywords(r.Materials)
	addKeywords(r.Features)

	attrs := make(map[string][]string)
	addAttr := func(key string, vals []string) {
		if len(vals) > 0 {
			attrs[key] = vals
		}
	}
	addAttr("tags", r.Tags)
	addAttr("materials", r.Materials)
	addAttr("features", r.Features)
	addAttr("standards", r.Standards)
	addAttr("links", r.Links)
	addAttr("sample", append(append([]string{}, r.SamplesFa...), r.SamplesEn...))

	return ports.Entity{
		ID:         id,
		Names:      names,
		Keywords:   keywords,
		Attrs:      attrs,
		WeightHint: r.WeightHint,
	}, nil
}
