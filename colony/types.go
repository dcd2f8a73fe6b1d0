// SPDX-License-Identifier: MIT
// Package colony: parameters, result surface and sentinel errors.

package colony

import (
	"errors"
	"math"
	"time"
)

// ErrNilGraph is returned by New when the graph is nil.
var ErrNilGraph = errors.New("colony: nil graph")

// Tuning constants shared by both runners.
const (
	// initialPheromone is the uniform value of every pheromone entry at the
	// start of a run.
	initialPheromone = 1.0

	// pheromoneFloor is the clamp applied after every update so that no
	// edge ever loses all pheromone and the selection weights stay positive.
	pheromoneFloor = 1e-12

	// bestTolerance bounds floating-point noise in best-length comparisons:
	// a tour improves the best only when it is shorter by more than this,
	// and ties within it are collected as equal-length alternatives.
	bestTolerance = 1e-9

	// workerSeedStride and iterationSeedStride skew each worker's RNG seed
	// so that a fixed (Parameters, worker count) pair is reproducible while
	// workers and iterations draw from different sample streams.
	workerSeedStride    = 9973
	iterationSeedStride = 7919
)

// Parameters configure one solver run. The solver trusts its inputs:
// validation of nonsensical values (negative evaporation, zero ants) is
// the caller's responsibility.
type Parameters struct {
	// Ants is the number of tours constructed per iteration.
	Ants int

	// Iterations is the number of construct/deposit/evaporate rounds.
	Iterations int

	// Alpha is the pheromone influence exponent.
	Alpha float64

	// Beta is the inverse-distance heuristic influence exponent.
	Beta float64

	// Evaporation in [0,1] is the per-iteration multiplicative decay of the
	// pheromone field.
	Evaporation float64

	// Q scales the deposit of a successful tour: each of its edges receives
	// Q divided by the tour length.
	Q float64

	// Seed drives all randomness of the run.
	Seed int64
}

// DefaultParameters returns the documented defaults:
// 64 ants, 100 iterations, alpha 1, beta 3, evaporation 0.5, Q 100, seed 42.
func DefaultParameters() Parameters {
	return Parameters{
		Ants:        64,
		Iterations:  100,
		Alpha:       1.0,
		Beta:        3.0,
		Evaporation: 0.5,
		Q:           100.0,
		Seed:        42,
	}
}

// Result is the outcome of one run.
//
// Invariants:
//   - len(BestTours) == len(BestLabels); entry i of one describes entry i
//     of the other.
//   - Every tour is canonical, closed (first==last, n+1 entries) and its
//     length equals BestLength within tolerance.
//   - BestLabels entries are unique.
type Result struct {
	// BestLength is the smallest finite tour length seen, or +Inf when no
	// ant ever completed a cycle.
	BestLength float64

	// BestTours holds the canonical forms of all distinct tours whose
	// length ties BestLength.
	BestTours [][]int

	// BestLabels renders BestTours as "A->B->C->A" strings.
	BestLabels []string

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// emptyResult is the zero outcome: no tours, infinite best length.
func emptyResult() Result {
	return Result{BestLength: math.Inf(1)}
}

// antPath is one constructed tour. An empty path with infinite length
// marks a dead end (the ant got stuck or crossed a missing edge).
type antPath struct {
	path   []int
	length float64
}
