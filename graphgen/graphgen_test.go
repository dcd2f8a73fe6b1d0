package graphgen_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/graphgen"
)

func TestSparse_TooFewVertices(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := graphgen.Sparse(n, 42, 4)
		assert.ErrorIs(t, err, graphgen.ErrTooFewVertices, "n=%d", n)
	}
}

func TestSparse_Deterministic(t *testing.T) {
	first, err := graphgen.Sparse(20, 7, 5)
	require.NoError(t, err)
	second, err := graphgen.Sparse(20, 7, 5)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed must emit identical text")

	other, err := graphgen.Sparse(20, 8, 5)
	require.NoError(t, err)
	assert.NotEqual(t, first, other, "different seeds must differ")
}

func TestSparse_EmitsParsableDOT(t *testing.T) {
	text, err := graphgen.Sparse(6, 3, 3)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "digraph G {"))
	assert.Contains(t, text, "weight=")
}

func TestBuild_RingGuaranteesACycle(t *testing.T) {
	g, err := graphgen.Build(12, 99, 4)
	require.NoError(t, err)
	require.Equal(t, 12, g.VertexCount())

	// The embedded ring gives every run a feasible cycle to converge on.
	s, err := colony.New(g)
	require.NoError(t, err)
	params := colony.DefaultParameters()
	params.Ants = 16
	params.Iterations = 10

	r := s.RunSequential(params)
	assert.False(t, math.IsInf(r.BestLength, 0))
	assert.NotEmpty(t, r.BestTours)
}

func TestBuild_RingEdgesPresent(t *testing.T) {
	const n = 9
	g, err := graphgen.Build(n, 5, 1)
	require.NoError(t, err)

	// Labels v0..v8 sort as v0,v1,...,v8 for single-digit suffixes.
	for i := 0; i < n; i++ {
		from, ok := g.Index(fmt.Sprintf("v%d", i))
		require.True(t, ok)
		to, ok := g.Index(fmt.Sprintf("v%d", (i+1)%n))
		require.True(t, ok)
		w := g.Weight(from, to)
		assert.False(t, math.IsInf(w, 0), "ring edge v%d->v%d missing", i, (i+1)%n)
		assert.GreaterOrEqual(t, w, 1.0)
		assert.Less(t, w, 100.0)
	}
}

func TestSparse_RespectsOutDegreeCap(t *testing.T) {
	text, err := graphgen.Sparse(15, 11, 3)
	require.NoError(t, err)

	outDegree := make(map[string]int)
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "->") {
			continue
		}
		from := strings.TrimSpace(strings.SplitN(line, "->", 2)[0])
		outDegree[from]++
	}
	for from, degree := range outDegree {
		assert.LessOrEqual(t, degree, 3, "vertex %s exceeds the cap", from)
	}
}
