// SPDX-License-Identifier: MIT
// Package colony: the Solver handle.

package colony

import "github.com/katalvlaran/antcolony/graph"

// Solver runs ant colony optimization over one immutable graph.
// A Solver holds no mutable state between runs and is safe to use from
// multiple goroutines; each run owns its pheromone field.
type Solver struct {
	g *graph.Graph
}

// New returns a Solver bound to g. The graph is borrowed read-only for
// the lifetime of the solver.
func New(g *graph.Graph) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return &Solver{g: g}, nil
}

// Graph exposes the bound graph (read-only by construction).
func (s *Solver) Graph() *graph.Graph { return s.g }
