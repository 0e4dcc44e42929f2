package engine

import (
	"errors"
	"testing"

	"github.com/sigmagloves/sgmatch/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord_MissingIdentifier(t *testing.T) {
	_, err := parseRecord(ports.Record{NameEn: "nameless"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRecord))
}

func TestParseRecord_CodeFallsBackAsID(t *testing.T) {
	ent, err := parseRecord(ports.Record{Code: "welding", KeywordsFa: []string{"جوشکاری"}})
	require.NoError(t, err)
	assert.Equal(t, "welding", ent.ID)
}

func TestParseRecord_IDWinsOverCode(t *testing.T) {
	ent, err := parseRecord(ports.Record{ID: "a", Code: "b"})
	require.NoError(t, err)
	assert.Equal(t, "a", ent.ID)
}

func TestParseRecord_KeywordFoldOrder(t *testing.T) {
	ent, err := parseRecord(ports.Record{
		ID:         "p1",
		Keywords:   []string{"burn"},
		KeywordsFa: []string{"جوشکاری"},
		KeywordsEn: []string{"Welding"},
		Tags:       []string{"heat"},
		Materials:  []string{"Leather"},
		Features:   []string{"lined"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"burn", "جوشکاری", "welding", "heat", "leather", "lined"}, ent.Keywords)
}

func TestParseRecord_KeywordsNormalizedAndDeduped(t *testing.T) {
	ent, err := parseRecord(ports.Record{
		ID:         "p1",
		KeywordsFa: []string{"جوشكاري", "جوشکاری", "  "},
		Tags:       []string{"جوشکاری"},
	})
	require.NoError(t, err)
	// Arabic yeh/kaf variants collapse to the same normalized keyword.
	assert.Equal(t, []string{"جوشکاری"}, ent.Keywords)
}

func TestParseRecord_NamesMerged(t *testing.T) {
	ent, err := parseRecord(ports.Record{
		ID:     "p1",
		NameFa: "جوشکاری",
		Names:  map[string]string{"fa": "ignored", "de": "Schweissen"},
	})
	require.NoError(t, err)
	assert.Equal(t, "جوشکاری", ent.Names["fa"])
	assert.Equal(t, "Schweissen", ent.Names["de"])
}

func TestParseRecord_SamplesBecomeAttrs(t *testing.T) {
	ent, err := parseRecord(ports.Record{
		ID:        "welding",
		SamplesFa: []string{"من جوشکار هستم"},
		SamplesEn: []string{"i am a welder"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"من جوشکار هستم", "i am a welder"}, ent.Attr("sample"))
	// samples never leak into the keyword list
	assert.Empty(t, ent.Keywords)
}

func TestParseRecord_MetadataAttrs(t *testing.T) {
	ent, err := parseRecord(ports.Record{
		ID:        "kb-en388",
		Standards: []string{"EN 388:2016"},
		Links:     []string{"https://example.com/en388"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"EN 388:2016"}, ent.Attr("standards"))
	assert.Equal(t, []string{"https://example.com/en388"}, ent.Attr("links"))
}

func TestParseRecord_WeightHintCarried(t *testing.T) {
	ent, err := parseRecord(ports.Record{ID: "general", WeightHint: 0.05})
	require.NoError(t, err)
	assert.Equal(t, 0.05, ent.WeightHint)
}
