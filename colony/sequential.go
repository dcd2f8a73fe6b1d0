// SPDX-License-Identifier: MIT
// Package colony: single-threaded reference runner.

package colony

import (
	"time"

	"gonum.org/v1/gonum/mat"
)

// RunSequential executes the full iteration loop on the calling
// goroutine: construct p.Ants tours, deposit into a fresh delta matrix,
// track the best tours, then evaporate and fold the delta into the
// pheromone field. Two calls with equal (graph, Parameters) return
// identical BestLength and BestLabels.
//
// Complexity: O(Iterations * (Ants*n² + n²)).
func (s *Solver) RunSequential(p Parameters) Result {
	n := s.g.VertexCount()
	if n == 0 {
		return emptyResult()
	}

	var (
		tau   = newPheromone(n)
		best  = newBestSet(s.g)
		rng   = rngFromSeed(p.Seed)
		start = time.Now()
	)

	var (
		iteration, ant int
		delta          *mat.Dense
		path           antPath
	)
	for iteration = 0; iteration < p.Iterations; iteration++ {
		delta = mat.NewDense(n, n, nil)
		for ant = 0; ant < p.Ants; ant++ {
			path = s.constructTour(rng, p, tau)
			if len(path.path) == 0 {
				continue
			}
			deposit(path, p.Q, delta)
			best.add(path)
		}
		evaporate(tau, delta, p.Evaporation)
	}

	return best.result(time.Since(start))
}
