// SPDX-License-Identifier: MIT
// Package colony: work-partitioned parallel runner.
//
// Per iteration the ant budget is split across `workers` goroutines:
// worker t gets ants/workers plus one more when t < ants%workers. Each
// worker owns a delta matrix and a local best list, reads the shared
// pheromone snapshot without locks, and seeds its own RNG from
// workerSeed(seed, t, iteration). The coordinating goroutine joins the
// group, folds the local bests into the global set in worker index order
// (which keeps the merged set deterministic), element-wise sums the
// deltas, and applies the single evaporate+deposit update.
//
// No goroutine outlives the call and all per-iteration buffers are
// dropped at the end of their iteration.

package colony

import (
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// workerRun is what one worker hands back to the coordinator.
type workerRun struct {
	delta *mat.Dense
	best  []antPath
}

// RunParallel executes the iteration loop with the given worker count.
// workers <= 0 returns an empty Result (BestLength +Inf, zero Elapsed)
// without starting any goroutine. Two calls with equal
// (graph, Parameters, workers) return identical BestLength and
// BestLabels; across different worker counts only best-length agreement
// is expected, not identical tours.
func (s *Solver) RunParallel(p Parameters, workers int) Result {
	if workers <= 0 {
		return emptyResult()
	}
	n := s.g.VertexCount()
	if n == 0 {
		return emptyResult()
	}

	var (
		tau   = newPheromone(n)
		best  = newBestSet(s.g)
		start = time.Now()

		base      = p.Ants / workers
		remainder = p.Ants % workers
	)

	var iteration, t int
	for iteration = 0; iteration < p.Iterations; iteration++ {
		runs := make([]workerRun, workers)

		var eg errgroup.Group
		for t = 0; t < workers; t++ {
			worker := t
			assigned := base
			if worker < remainder {
				assigned++
			}
			if assigned == 0 {
				continue
			}
			iter := iteration
			eg.Go(func() error {
				runs[worker] = s.runWorker(p, tau, assigned, worker, iter)
				return nil
			})
		}
		// Join barrier; workers never fail, they only report tours.
		_ = eg.Wait()

		merged := mat.NewDense(n, n, nil)
		for t = 0; t < workers; t++ {
			if runs[t].delta != nil {
				merged.Add(merged, runs[t].delta)
			}
			for _, candidate := range runs[t].best {
				best.add(candidate)
			}
		}
		evaporate(tau, merged, p.Evaporation)
	}

	return best.result(time.Since(start))
}

// runWorker constructs `assigned` tours against the shared pheromone
// snapshot, depositing into a private delta and keeping the worker-local
// best tours under the same improvement and equality rules as the global
// set. Local candidates stay raw; canonicalization happens once, at
// merge time.
func (s *Solver) runWorker(p Parameters, tau *mat.Dense, assigned, worker, iteration int) workerRun {
	n := s.g.VertexCount()

	var (
		rng        = rngFromSeed(workerSeed(p.Seed, worker, iteration))
		delta      = mat.NewDense(n, n, nil)
		localBest  []antPath
		bestLength = math.Inf(1)
	)

	var (
		ant  int
		path antPath
	)
	for ant = 0; ant < assigned; ant++ {
		path = s.constructTour(rng, p, tau)
		if len(path.path) == 0 {
			continue
		}
		deposit(path, p.Q, delta)

		switch {
		case path.length+bestTolerance < bestLength:
			bestLength = path.length
			localBest = localBest[:0]
			localBest = append(localBest, path)
		case math.Abs(path.length-bestLength) <= bestTolerance:
			localBest = append(localBest, path)
		}
	}

	return workerRun{delta: delta, best: localBest}
}
