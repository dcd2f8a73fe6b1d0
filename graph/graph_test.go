// Package graph_test: direct constructor validation.
package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/antcolony/graph"
)

func TestNewGraph_Valid(t *testing.T) {
	inf := math.Inf(1)
	weights := mat.NewDense(2, 2, []float64{0, 3, inf, 0})

	g, err := graph.NewGraph([]string{"a", "b"}, weights)
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 3.0, g.Weight(0, 1))
	assert.True(t, math.IsInf(g.Weight(1, 0), 1))
}

func TestNewGraph_Errors(t *testing.T) {
	ok := mat.NewDense(2, 2, []float64{0, 1, 1, 0})

	tests := []struct {
		name    string
		labels  []string
		weights *mat.Dense
		want    error
	}{
		{"no labels", nil, ok, graph.ErrEmptyGraph},
		{"nil matrix", []string{"a", "b"}, nil, graph.ErrShapeMismatch},
		{"wrong order", []string{"a", "b", "c"}, ok, graph.ErrShapeMismatch},
		{"duplicate label", []string{"a", "a"}, ok, graph.ErrDuplicateLabel},
		{"empty label", []string{"a", ""}, ok, graph.ErrDuplicateLabel},
		{"negative weight", []string{"a", "b"}, mat.NewDense(2, 2, []float64{0, -1, 1, 0}), graph.ErrShapeMismatch},
		{"nan weight", []string{"a", "b"}, mat.NewDense(2, 2, []float64{0, math.NaN(), 1, 0}), graph.ErrShapeMismatch},
		{"nonzero diagonal", []string{"a", "b"}, mat.NewDense(2, 2, []float64{0, 1, 1, 0.5}), graph.ErrNonZeroDiagonal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graph.NewGraph(tc.labels, tc.weights)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
