package ports

// Record is the loosely shaped wire form of a catalog entry. The original
// catalogs were authored by hand over time, so the same concept appears under
// several field names (id vs code, keywords vs tags vs materials). All the
// alternates are accepted here once; everything past the parse boundary
// operates on Entity only.
type Record struct {
	ID   string `json:"id,omitempty"`
	Code string `json:"code,omitempty"`

	NameFa string            `json:"name_fa,omitempty"`
	NameEn string            `json:"name_en,omitempty"`
	Names  map[string]string `json:"names,omitempty"`

	Keywords   []string `json:"keywords,omitempty"`
	KeywordsFa []string `json:"keywords_fa,omitempty"`
	KeywordsEn []string `json:"keywords_en,omitempty"`

	// Sample utterances; indexed like keywords but marked as samples so
	// matchers can weight them lower.
	SamplesFa []string `json:"samples_fa,omitempty"`
	SamplesEn []string `json:"samples_en,omitempty"`

	// Domain-specific surfaces treated as implicit keywords.
	Tags      []string `json:"tags,omitempty"`
	Materials []string `json:"materials,omitempty"`
	Features  []string `json:"features,omitempty"`

	// Free metadata, carried through but never scored.
	Standards []string `json:"standards,omitempty"`
	Links     []string `json:"links,omitempty"`

	// WeightHint dampens overly generic entries.
	WeightHint float64 `json:"weight_hint,omitempty"`
}

// Key returns the record's identifier, preferring id over code.
func (r Record) Key() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Code
}
