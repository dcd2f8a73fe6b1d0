// Package colony_test exercises both runners end to end: convergence on
// small instances, reproducibility under fixed seeds, sequential vs
// parallel agreement, result-set invariants and the degenerate inputs.
package colony_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/graph"
)

func newSolver(t *testing.T, dot string) *colony.Solver {
	t.Helper()
	g, err := graph.ParseDOT(strings.NewReader(dot))
	require.NoError(t, err)
	s, err := colony.New(g)
	require.NoError(t, err)
	return s
}

// requireResultInvariants checks the published Result contract: tours
// are closed Hamiltonian cycles of the right size, lengths match
// BestLength, labels are unique and aligned with the tours.
func requireResultInvariants(t *testing.T, g *graph.Graph, r colony.Result) {
	t.Helper()
	require.Equal(t, len(r.BestTours), len(r.BestLabels))

	n := g.VertexCount()
	seen := make(map[string]struct{}, len(r.BestLabels))
	for i, tour := range r.BestTours {
		require.Len(t, tour, n+1)
		require.Equal(t, tour[0], tour[n], "tour must be closed")

		visited := make([]bool, n)
		length := 0.0
		for j := 0; j < n; j++ {
			require.False(t, visited[tour[j]], "vertex visited twice")
			visited[tour[j]] = true
			length += g.Weight(tour[j], tour[j+1])
		}
		require.InDelta(t, r.BestLength, length, 1e-9)

		label := r.BestLabels[i]
		require.Equal(t, g.TourString(tour), label)
		_, dup := seen[label]
		require.False(t, dup, "duplicate label %q", label)
		seen[label] = struct{}{}
	}
}

const triangleDOT = `
	A -> B [weight=1]
	B -> A [weight=1]
	A -> C [weight=5]
	C -> A [weight=5]
	B -> C [weight=2]
	C -> B [weight=2]
`

func TestRunSequential_Triangle(t *testing.T) {
	s := newSolver(t, triangleDOT)
	params := colony.Parameters{
		Ants: 30, Iterations: 50,
		Alpha: 1.0, Beta: 5.0, Evaporation: 0.3, Q: 50.0,
		Seed: 2024,
	}

	r := s.RunSequential(params)
	require.False(t, math.IsInf(r.BestLength, 0))
	require.NotEmpty(t, r.BestTours)
	assert.InDelta(t, 8.0, r.BestLength, 1e-9)
	requireResultInvariants(t, s.Graph(), r)
}

func TestRunSequential_Reproducible(t *testing.T) {
	s := newSolver(t, triangleDOT)
	params := colony.DefaultParameters()
	params.Ants = 16
	params.Iterations = 20

	first := s.RunSequential(params)
	second := s.RunSequential(params)
	assert.Equal(t, first.BestLength, second.BestLength)
	assert.Equal(t, first.BestLabels, second.BestLabels)
	assert.Equal(t, first.BestTours, second.BestTours)
}

func TestRunParallel_AgreesWithSequential(t *testing.T) {
	s := newSolver(t, `
		A -> B [weight=4]
		B -> A [weight=4]
		A -> C [weight=1]
		C -> A [weight=1]
		B -> C [weight=3]
		C -> B [weight=3]
	`)
	params := colony.Parameters{
		Ants: 40, Iterations: 80,
		Alpha: 1.2, Beta: 5.0, Evaporation: 0.2, Q: 50.0,
		Seed: 1337,
	}

	seq := s.RunSequential(params)
	par := s.RunParallel(params, 4)

	require.False(t, math.IsInf(seq.BestLength, 0))
	require.False(t, math.IsInf(par.BestLength, 0))
	require.NotEmpty(t, seq.BestTours)
	require.NotEmpty(t, par.BestTours)
	assert.InDelta(t, seq.BestLength, par.BestLength, 1e-3)
	requireResultInvariants(t, s.Graph(), par)
}

func TestRunParallel_ReproducibleForFixedWorkerCount(t *testing.T) {
	s := newSolver(t, triangleDOT)
	params := colony.DefaultParameters()
	params.Ants = 24
	params.Iterations = 20

	for _, workers := range []int{1, 3, 8} {
		first := s.RunParallel(params, workers)
		second := s.RunParallel(params, workers)
		assert.Equal(t, first.BestLength, second.BestLength, "workers=%d", workers)
		assert.Equal(t, first.BestLabels, second.BestLabels, "workers=%d", workers)
	}
}

func TestRunParallel_ZeroWorkers(t *testing.T) {
	s := newSolver(t, triangleDOT)

	r := s.RunParallel(colony.DefaultParameters(), 0)
	assert.True(t, math.IsInf(r.BestLength, 1))
	assert.Empty(t, r.BestTours)
	assert.Empty(t, r.BestLabels)
	assert.Zero(t, r.Elapsed)
}

func TestRunParallel_MoreWorkersThanAnts(t *testing.T) {
	s := newSolver(t, triangleDOT)
	params := colony.DefaultParameters()
	params.Ants = 3
	params.Iterations = 10

	r := s.RunParallel(params, 16)
	require.False(t, math.IsInf(r.BestLength, 0))
	assert.InDelta(t, 8.0, r.BestLength, 1e-9)
	requireResultInvariants(t, s.Graph(), r)
}

// A ring digraph has exactly one Hamiltonian cycle; every seed must find
// it and the best set must collapse to a single canonical tour.
func TestRun_SingleCycleRing(t *testing.T) {
	s := newSolver(t, `
		a -> b [w=1]
		b -> c [w=2]
		c -> d [w=3]
		d -> a [w=4]
	`)
	for _, seed := range []int64{1, 7, 2024} {
		params := colony.DefaultParameters()
		params.Ants = 8
		params.Iterations = 5
		params.Seed = seed

		r := s.RunSequential(params)
		require.InDelta(t, 10.0, r.BestLength, 1e-9, "seed %d", seed)
		require.Len(t, r.BestTours, 1, "seed %d", seed)
		requireResultInvariants(t, s.Graph(), r)

		p := s.RunParallel(params, 3)
		require.InDelta(t, 10.0, p.BestLength, 1e-9, "seed %d", seed)
		require.Len(t, p.BestTours, 1, "seed %d", seed)
	}
}

// Every Hamiltonian cycle of the symmetric triangle has length 8, so the
// best set must hold both orientations collapsed into one canonical tour.
func TestRun_EqualLengthToursDeduplicate(t *testing.T) {
	s := newSolver(t, triangleDOT)
	params := colony.DefaultParameters()
	params.Ants = 32
	params.Iterations = 10

	r := s.RunSequential(params)
	require.InDelta(t, 8.0, r.BestLength, 1e-9)
	assert.Len(t, r.BestTours, 1, "rotations and reversals must collapse")
	requireResultInvariants(t, s.Graph(), r)
}

func TestRun_NoFeasibleCycle(t *testing.T) {
	s := newSolver(t, `
		a -> b [w=1]
		b -> c [w=1]
	`)
	params := colony.DefaultParameters()
	params.Ants = 8
	params.Iterations = 5

	r := s.RunSequential(params)
	assert.True(t, math.IsInf(r.BestLength, 1))
	assert.Empty(t, r.BestTours)

	p := s.RunParallel(params, 4)
	assert.True(t, math.IsInf(p.BestLength, 1))
	assert.Empty(t, p.BestTours)
}

func TestRun_SingleVertexGraph(t *testing.T) {
	s := newSolver(t, `a -> a`)
	params := colony.DefaultParameters()
	params.Ants = 4
	params.Iterations = 3

	r := s.RunSequential(params)
	assert.True(t, math.IsInf(r.BestLength, 1), "one vertex admits no cycle")
	assert.Empty(t, r.BestTours)
}

func TestNew_NilGraph(t *testing.T) {
	_, err := colony.New(nil)
	assert.ErrorIs(t, err, colony.ErrNilGraph)
}

func TestDefaultParameters(t *testing.T) {
	p := colony.DefaultParameters()
	assert.Equal(t, 64, p.Ants)
	assert.Equal(t, 100, p.Iterations)
	assert.Equal(t, 1.0, p.Alpha)
	assert.Equal(t, 3.0, p.Beta)
	assert.Equal(t, 0.5, p.Evaporation)
	assert.Equal(t, 100.0, p.Q)
	assert.Equal(t, int64(42), p.Seed)
}
