// SPDX-License-Identifier: MIT
// Package colony: stochastic tour construction for a single ant.
//
// One ant starts at a uniformly random vertex and repeatedly samples the
// next unvisited vertex v with probability proportional to
//
//	tau[u][v]^alpha * (1/w(u,v))^beta
//
// over the candidates in ascending vertex order. Sampling is inverse-CDF:
// draw x uniform in [0, sum) and take the first candidate whose cumulative
// weight reaches x. When no candidate has positive weight the ant is a
// dead end and contributes nothing to the iteration.
//
// Complexity: O(n²) per ant (n-1 steps, O(n) candidate scan each).

package colony

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// heuristic is the classic ACO distance heuristic 1/w.
// Non-positive and infinite weights yield 0, removing the edge from the
// candidate set.
func heuristic(weight float64) float64 {
	if weight <= 0 || math.IsInf(weight, 0) {
		return 0
	}
	return 1.0 / weight
}

// constructTour walks one ant against the given pheromone snapshot.
// Returns a closed tour of n+1 vertices with its length, or a dead end
// (empty path, +Inf length). Graphs with fewer than two vertices admit no
// cycle and are always a dead end.
func (s *Solver) constructTour(rng *rand.Rand, p Parameters, tau *mat.Dense) antPath {
	n := s.g.VertexCount()
	if n < 2 {
		return antPath{length: math.Inf(1)}
	}

	var (
		current = rng.Intn(n)
		visited = make([]bool, n)
		path    = make([]int, 0, n+1)

		candidates = make([]int, 0, n)
		weights    = make([]float64, 0, n)
	)
	visited[current] = true
	path = append(path, current)

	var (
		step, next int
		w, eta     float64
		value, sum float64
	)
	for step = 1; step < n; step++ {
		candidates = candidates[:0]
		weights = weights[:0]
		sum = 0
		for next = 0; next < n; next++ {
			if visited[next] {
				continue
			}
			w = s.g.Weight(current, next)
			eta = heuristic(w)
			if eta == 0 {
				continue
			}
			value = math.Pow(tau.At(current, next), p.Alpha) * math.Pow(eta, p.Beta)
			if value <= 0 {
				continue
			}
			candidates = append(candidates, next)
			weights = append(weights, value)
			sum += value
		}
		if len(candidates) == 0 {
			return antPath{length: math.Inf(1)}
		}

		// Inverse-CDF sampling over candidate order (ascending index).
		choice := rng.Float64() * sum
		idx := 0
		cumulative := weights[0]
		for choice > cumulative && idx+1 < len(weights) {
			idx++
			cumulative += weights[idx]
		}

		current = candidates[idx]
		visited[current] = true
		path = append(path, current)
	}

	path = append(path, path[0])
	length := s.tourLength(path)
	if math.IsInf(length, 0) {
		return antPath{length: math.Inf(1)}
	}
	return antPath{path: path, length: length}
}

// tourLength sums the edge weights along a closed tour. Any missing edge
// makes the whole tour infinite.
func (s *Solver) tourLength(path []int) float64 {
	if len(path) < 2 {
		return math.Inf(1)
	}
	var (
		sum float64
		i   int
		w   float64
	)
	for i = 0; i+1 < len(path); i++ {
		w = s.g.Weight(path[i], path[i+1])
		if math.IsInf(w, 0) {
			return math.Inf(1)
		}
		sum += w
	}
	return sum
}
