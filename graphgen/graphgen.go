// SPDX-License-Identifier: MIT
// Package graphgen produces random sparse digraphs in the DOT subset
// understood by graph.ParseDOT.
//
// Every generated graph embeds the ring v0 -> v1 -> ... -> v(n-1) -> v0,
// so at least one Hamiltonian cycle always exists and an ACO run can
// converge on something. On top of the ring each vertex receives random
// extra out-edges, so that its total out-degree (ring edge included) is
// at most maxOutDegree; all weights are uniform in [1, 100).
// Generation is deterministic in the seed, including the emitted text:
// out-edges are written in ascending target order.
//
// The benchmark harness feeds the text back through the parser rather
// than building a Graph directly; that keeps the measured path identical
// to what a user of .dot files exercises.
package graphgen

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/katalvlaran/antcolony/graph"
)

// ErrTooFewVertices is returned for sizes that admit no cycle.
var ErrTooFewVertices = errors.New("graphgen: need at least two vertices")

// Weight range of generated edges.
const (
	minEdgeWeight = 1.0
	maxEdgeWeight = 100.0
)

// Sparse returns DOT text for a random digraph with the given vertex
// count. maxOutDegree caps the out-degree of each vertex; values below 1
// are treated as 1, and the cap never exceeds vertices-1.
//
// Complexity: O(n * maxOutDegree) expected.
func Sparse(vertices int, seed int64, maxOutDegree int) (string, error) {
	if vertices < 2 {
		return "", ErrTooFewVertices
	}
	if maxOutDegree < 1 {
		maxOutDegree = 1
	}
	if maxOutDegree > vertices-1 {
		maxOutDegree = vertices - 1
	}

	var (
		rng       = rand.New(rand.NewSource(seed))
		adjacency = make([]map[int]float64, vertices)
		i         int
	)
	for i = 0; i < vertices; i++ {
		adjacency[i] = make(map[int]float64, maxOutDegree)
	}

	randomWeight := func() float64 {
		return minEdgeWeight + rng.Float64()*(maxEdgeWeight-minEdgeWeight)
	}

	// Guaranteed Hamiltonian ring.
	for i = 0; i < vertices; i++ {
		adjacency[i][(i+1)%vertices] = randomWeight()
	}

	// Extra out-edges up to a per-vertex random degree.
	var (
		desired   int
		candidate int
	)
	for i = 0; i < vertices; i++ {
		desired = 1
		if maxOutDegree > 1 {
			desired += rng.Intn(maxOutDegree)
			if desired > maxOutDegree {
				desired = maxOutDegree
			}
		}
		for len(adjacency[i]) < desired {
			candidate = rng.Intn(vertices)
			if candidate == i {
				continue
			}
			if _, dup := adjacency[i][candidate]; dup {
				continue
			}
			adjacency[i][candidate] = randomWeight()
		}
	}

	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	for i = 0; i < vertices; i++ {
		fmt.Fprintf(&sb, "  v%d;\n", i)
	}
	var (
		from    int
		targets []int
	)
	for from = 0; from < vertices; from++ {
		targets = targets[:0]
		for to := range adjacency[from] {
			targets = append(targets, to)
		}
		sort.Ints(targets)
		for _, to := range targets {
			fmt.Fprintf(&sb, "  v%d -> v%d [weight=%.6f];\n", from, to, adjacency[from][to])
		}
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}

// Build generates DOT text with Sparse and parses it into a Graph.
func Build(vertices int, seed int64, maxOutDegree int) (*graph.Graph, error) {
	text, err := Sparse(vertices, seed, maxOutDegree)
	if err != nil {
		return nil, err
	}
	return graph.ParseDOT(strings.NewReader(text))
}
