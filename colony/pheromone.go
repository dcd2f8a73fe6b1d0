// SPDX-License-Identifier: MIT
// Package colony: pheromone field lifecycle.
//
// The field tau is an n×n dense matrix owned by the running goroutine of
// a runner. During an iteration's construction phase it is read-only and
// shared by reference with all workers; deposits go into separate delta
// matrices and are folded into tau exactly once per iteration, after the
// join barrier. Evaporation is applied in the same pass, then every entry
// is clamped to pheromoneFloor so no edge ever becomes unselectable.

package colony

import "gonum.org/v1/gonum/mat"

// newPheromone allocates the field with every entry at initialPheromone.
func newPheromone(n int) *mat.Dense {
	tau := mat.NewDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			tau.Set(i, j, initialPheromone)
		}
	}
	return tau
}

// deposit adds q/length pheromone to every edge of a successful tour.
// Dead ends never reach this function.
func deposit(p antPath, q float64, delta *mat.Dense) {
	if len(p.path) < 2 {
		return
	}
	amount := q / p.length

	var i, u, v int
	for i = 0; i+1 < len(p.path); i++ {
		u = p.path[i]
		v = p.path[i+1]
		delta.Set(u, v, delta.At(u, v)+amount)
	}
}

// evaporate applies one iteration's update to tau:
//
//	tau <- (1-evaporation)*tau + delta, clamped to pheromoneFloor.
//
// The clamp runs in the same O(n²) pass as the decay, so the field is
// never observable in an unclamped state.
func evaporate(tau, delta *mat.Dense, evaporation float64) {
	n, _ := tau.Dims()
	keep := 1.0 - evaporation

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = keep*tau.At(i, j) + delta.At(i, j)
			if v < pheromoneFloor {
				v = pheromoneFloor
			}
			tau.Set(i, j, v)
		}
	}
}
