// SPDX-License-Identifier: MIT
// Package bench sweeps the solvers over growing graph sizes and worker
// counts and reports average wall times.
//
// For every size the harness builds one random sparse digraph
// (graphgen.Build, seed skewed per size so sizes are independent), then
// averages cfg.Runs runs of the sequential solver and of the parallel
// solver at each configured worker count. The seed is advanced per run
// so the average is not a single sample repeated.
//
// One Measurement corresponds to one CSV row of the harness output
// (see WriteCSV).
package bench

import (
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/op/go-logging"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/graphgen"
)

// Variant names used in Measurement and the CSV output.
const (
	VariantSequential = "sequential"
	VariantParallel   = "parallel"
)

// graphSeedStride decorrelates the generated graphs of consecutive sizes.
const graphSeedStride = 9973

// Config describes one benchmark sweep.
type Config struct {
	// Sizes lists the vertex counts to sweep, in order.
	Sizes []int

	// Runs is how many runs are averaged per measurement cell.
	Runs int

	// ThreadCounts lists the parallel worker counts to measure. Empty
	// means DefaultThreadCounts().
	ThreadCounts []int

	// MaxOutDegree caps the out-degree of generated vertices.
	MaxOutDegree int

	// Params are the solver parameters; Params.Seed also seeds the graph
	// generator.
	Params colony.Parameters
}

// Measurement is one averaged cell of the sweep.
type Measurement struct {
	Vertices  int
	Variant   string
	Threads   int
	AverageMS float64
}

// DefaultConfig mirrors the harness defaults: sizes 3000..7000 step 500,
// 100 runs per cell, out-degree cap 15, default solver parameters with
// 128 ants and 150 iterations.
func DefaultConfig() Config {
	params := colony.DefaultParameters()
	params.Ants = 128
	params.Iterations = 150

	return Config{
		Sizes:        []int{3000, 3500, 4000, 4500, 5000, 5500, 6000, 6500, 7000},
		Runs:         100,
		MaxOutDegree: 15,
		Params:       params,
	}
}

// DefaultThreadCounts returns {1, 2, 4, 8*NumCPU}, deduplicated and
// sorted ascending.
func DefaultThreadCounts() []int {
	counts := []int{1, 2, 4, 8 * runtime.NumCPU()}
	sort.Ints(counts)

	out := counts[:0]
	for i, c := range counts {
		if c < 1 {
			continue
		}
		if i > 0 && len(out) > 0 && out[len(out)-1] == c {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Run executes the sweep and returns one Measurement per (size, variant,
// thread count) cell. Progress goes to log at INFO level.
func Run(cfg Config, log *logging.Logger) ([]Measurement, error) {
	if cfg.Runs < 1 {
		cfg.Runs = 1
	}
	threadCounts := cfg.ThreadCounts
	if len(threadCounts) == 0 {
		threadCounts = DefaultThreadCounts()
	}

	results := make([]Measurement, 0, len(cfg.Sizes)*(len(threadCounts)+1))
	for index, vertices := range cfg.Sizes {
		graphSeed := cfg.Params.Seed + int64(index)*graphSeedStride
		log.Infof("building graph with %d vertices", vertices)
		g, err := graphgen.Build(vertices, graphSeed, cfg.MaxOutDegree)
		if err != nil {
			return nil, fmt.Errorf("bench: graph with %d vertices: %w", vertices, err)
		}
		solver, err := colony.New(g)
		if err != nil {
			return nil, fmt.Errorf("bench: solver for %d vertices: %w", vertices, err)
		}

		log.Infof("sequential runs (%d x)", cfg.Runs)
		seqAvg := averageRuns(cfg, func(p colony.Parameters) time.Duration {
			return solver.RunSequential(p).Elapsed
		})
		log.Infof("sequential average %.4f ms", seqAvg)
		results = append(results, Measurement{
			Vertices: vertices, Variant: VariantSequential, Threads: 1, AverageMS: seqAvg,
		})

		for _, threads := range threadCounts {
			workers := threads
			log.Infof("parallel runs with %d workers (%d x)", workers, cfg.Runs)
			parAvg := averageRuns(cfg, func(p colony.Parameters) time.Duration {
				return solver.RunParallel(p, workers).Elapsed
			})
			log.Infof("parallel(%d) average %.4f ms", workers, parAvg)
			results = append(results, Measurement{
				Vertices: vertices, Variant: VariantParallel, Threads: workers, AverageMS: parAvg,
			})
		}
	}
	return results, nil
}

// averageRuns averages cfg.Runs timed runs, advancing the seed per run.
func averageRuns(cfg Config, run func(colony.Parameters) time.Duration) float64 {
	var total time.Duration
	for r := 0; r < cfg.Runs; r++ {
		p := cfg.Params
		p.Seed += int64(r)
		total += run(p)
	}
	ms := total.Seconds() * 1000
	return ms / float64(cfg.Runs)
}
