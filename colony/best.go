// SPDX-License-Identifier: MIT
// Package colony: best-tour aggregation.
//
// A bestSet tracks the shortest length seen so far and every distinct
// canonical tour that ties it. "Distinct" is decided by the canonical
// label string, so rotations and reversals of one cycle collapse into a
// single entry. A strictly better tour (shorter by more than
// bestTolerance) resets the set.

package colony

import (
	"math"
	"time"

	"github.com/katalvlaran/antcolony/graph"
)

// bestSet accumulates the best tours of a run. Not goroutine-safe; the
// parallel runner folds worker-local candidates into one bestSet on the
// coordinating goroutine only.
type bestSet struct {
	g      *graph.Graph
	length float64
	tours  [][]int
	labels []string
	seen   map[string]struct{}
}

func newBestSet(g *graph.Graph) *bestSet {
	return &bestSet{
		g:      g,
		length: math.Inf(1),
		seen:   make(map[string]struct{}),
	}
}

// add folds one successful candidate into the set, canonicalizing lazily:
// the O(n²) canonical form is computed only for tours that tie or beat
// the current best.
func (b *bestSet) add(candidate antPath) {
	if len(candidate.path) == 0 || math.IsInf(candidate.length, 0) || math.IsNaN(candidate.length) {
		return
	}

	switch {
	case len(b.tours) == 0 || candidate.length+bestTolerance < b.length:
		canonical := b.g.CanonicalizeTour(candidate.path)
		key := b.g.TourString(canonical)
		b.length = candidate.length
		b.tours = [][]int{canonical}
		b.labels = []string{key}
		b.seen = map[string]struct{}{key: {}}
	case math.Abs(candidate.length-b.length) <= bestTolerance:
		canonical := b.g.CanonicalizeTour(candidate.path)
		key := b.g.TourString(canonical)
		if _, dup := b.seen[key]; dup {
			return
		}
		b.tours = append(b.tours, canonical)
		b.labels = append(b.labels, key)
		b.seen[key] = struct{}{}
	}
}

// result freezes the set into the public Result surface.
func (b *bestSet) result(elapsed time.Duration) Result {
	return Result{
		BestLength: b.length,
		BestTours:  b.tours,
		BestLabels: b.labels,
		Elapsed:    elapsed,
	}
}
