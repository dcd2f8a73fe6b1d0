// SPDX-License-Identifier: MIT
// Package graph: the Graph type, direct constructor and read accessors.
//
// Contracts:
//   - A Graph is immutable after construction; accessors never mutate state.
//   - Index-based accessors (Label, Weight) require indices in [0, n);
//     out-of-range indices are programmer errors and panic via the backing
//     slice/matrix, matching the usual dense-container contract.
package graph

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Graph is an immutable weighted digraph over labelled vertices.
// The zero value is an empty graph with no vertices.
type Graph struct {
	labels  []string       // index -> label, sorted lexicographically
	index   map[string]int // label -> index, inverse of labels
	weights *mat.Dense     // n×n; +Inf marks a missing edge, diagonal is 0
}

// NewGraph builds a Graph from a label list and a dense weight matrix.
// The labels are used in the given order; callers that need the canonical
// sorted order (as ParseDOT produces) must sort beforehand.
//
// Validation:
//   - len(labels) must be > 0 and match the matrix order (square).
//   - Labels must be unique and non-empty.
//   - Every weight must be non-negative or +Inf; NaN is rejected.
//   - The diagonal must be exactly 0.
//
// Complexity: O(n²) for the validation scan; the matrix is not copied.
func NewGraph(labels []string, weights *mat.Dense) (*Graph, error) {
	n := len(labels)
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if weights == nil {
		return nil, ErrShapeMismatch
	}
	r, c := weights.Dims()
	if r != n || c != n {
		return nil, ErrShapeMismatch
	}

	index := make(map[string]int, n)

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		if labels[i] == "" {
			return nil, ErrDuplicateLabel
		}
		if _, ok := index[labels[i]]; ok {
			return nil, ErrDuplicateLabel
		}
		index[labels[i]] = i
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w = weights.At(i, j)
			if math.IsNaN(w) || w < 0 {
				return nil, ErrShapeMismatch
			}
			if i == j && w != 0 {
				return nil, ErrNonZeroDiagonal
			}
		}
	}

	return &Graph{labels: labels, index: index, weights: weights}, nil
}

// VertexCount reports the number of vertices.
func (g *Graph) VertexCount() int { return len(g.labels) }

// Label returns the label of the vertex at index i.
func (g *Graph) Label(i int) string { return g.labels[i] }

// Labels returns a copy of the label slice in index order.
func (g *Graph) Labels() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)
	return out
}

// Index returns the index of the vertex with the given label and whether
// the label is present.
func (g *Graph) Index(label string) (int, bool) {
	i, ok := g.index[label]
	return i, ok
}

// Weight returns the weight of the directed edge from -> to.
// math.Inf(1) means the edge does not exist.
func (g *Graph) Weight(from, to int) float64 { return g.weights.At(from, to) }
