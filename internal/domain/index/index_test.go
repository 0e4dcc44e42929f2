package index

import (
	"testing"

	"github.com/sigmagloves/sgmatch/internal/ports"
	"github.com/stretchr/testify/assert"
)

func entity(id string, keywords ...string) ports.Entity {
	return ports.Entity{ID: id, Keywords: keywords}
}

func TestBuild_PhraseAndTokenKeys(t *testing.T) {
	idx := Build([]ports.Entity{
		entity("welding", "دستکش جوشکاری"),
	})

	// Full phrase and both constituent tokens are all discoverable.
	assert.Equal(t, []string{"welding"}, idx.Lookup("دستکش جوشکاری"))
	assert.Equal(t, []string{"welding"}, idx.Lookup("دستکش"))
	assert.Equal(t, []string{"welding"}, idx.Lookup("جوشکاری"))
}

func TestBuild_SharedKeyword(t *testing.T) {
	idx := Build([]ports.Entity{
		entity("a", "oil grip"),
		entity("b", "oil"),
	})

	assert.Equal(t, []string{"a", "b"}, idx.Lookup("oil"))
	assert.Equal(t, []string{"a"}, idx.Lookup("grip"))
}

func TestBuild_DedupsOverlappingPhrases(t *testing.T) {
	// Same entity declaring overlapping phrases indexes each key once.
	idx := Build([]ports.Entity{
		entity("welding", "جوشکاری", "دستکش جوشکاری"),
	})
	assert.Equal(t, []string{"welding"}, idx.Lookup("جوشکاری"))
}

func TestLookup_NormalizesKey(t *testing.T) {
	idx := Build([]ports.Entity{entity("welding", "جوشکاری")})

	// Arabic-script lookup keys fold to the same canonical form.
	assert.Equal(t, []string{"welding"}, idx.Lookup("جوشكاري"))
	assert.Equal(t, []string{"welding"}, idx.Lookup(" جوشکاری! "))
}

func TestLookup_Miss(t *testing.T) {
	idx := Build([]ports.Entity{entity("welding", "جوشکاری")})
	assert.Nil(t, idx.Lookup("مکانیک"))
}

func TestBuild_EmptyKeywordsSkipped(t *testing.T) {
	idx := Build([]ports.Entity{entity("ghost", "  ... ", "")})
	assert.Equal(t, 0, idx.Len())
}

func TestCandidates_UnionPreservesOrder(t *testing.T) {
	idx := Build([]ports.Entity{
		entity("a", "oil grip"),
		entity("b", "oil"),
		entity("c", "heat"),
	})

	ids := idx.Candidates([]string{"oil", "heat"}, "oil heat")
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestCandidates_FullPhraseReachable(t *testing.T) {
	idx := Build([]ports.Entity{entity("a", "دستکش جوشکاری")})

	ids := idx.Candidates(nil, "دستکش جوشکاری")
	assert.Equal(t, []string{"a"}, ids)
}

func TestCandidates_NoMatch(t *testing.T) {
	idx := Build([]ports.Entity{entity("a", "oil")})
	assert.Empty(t, idx.Candidates([]string{"heat"}, "heat"))
}
