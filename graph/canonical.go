// SPDX-License-Identifier: MIT
// Package graph: tour canonicalization.
//
// A Hamiltonian cycle has n equivalent rotations and, once reversals are
// admitted, 2n equivalent writings. CanonicalizeTour picks the writing
// whose label-joined key is lexicographically smallest, which gives every
// cycle exactly one representative. Reversals are folded in on purpose:
// the solvers only canonicalize tours that already share the same length,
// so a tour and its reverse are treated as the same shape even on a
// directed graph.
package graph

import "strings"

// CanonicalizeTour returns the canonical closed form of a tour.
// The input may be open (n entries) or closed (n+1 entries with
// first==last); the result is always closed. Inputs with at most one
// distinct vertex are returned as a plain copy.
//
// Complexity: O(n²) over the 2n candidate keys of length O(n).
func (g *Graph) CanonicalizeTour(tour []int) []int {
	if len(tour) <= 1 {
		out := make([]int, len(tour))
		copy(out, tour)
		return out
	}

	cycle := tour
	if cycle[0] == cycle[len(cycle)-1] {
		cycle = cycle[:len(cycle)-1]
	}
	n := len(cycle)
	if n == 0 {
		out := make([]int, len(tour))
		copy(out, tour)
		return out
	}

	var (
		bestKey     string
		bestShift   int
		bestReverse bool
		shift       int
		key         string
	)
	bestKey = g.rotationKey(cycle, 0, false)
	for shift = 0; shift < n; shift++ {
		key = g.rotationKey(cycle, shift, false)
		if key < bestKey {
			bestKey = key
			bestShift = shift
			bestReverse = false
		}
		key = g.rotationKey(cycle, shift, true)
		if key < bestKey {
			bestKey = key
			bestShift = shift
			bestReverse = true
		}
	}

	out := make([]int, 0, n+1)
	if !bestReverse {
		for i := 0; i < n; i++ {
			out = append(out, cycle[(bestShift+i)%n])
		}
	} else {
		idx := bestShift % n
		for i := 0; i < n; i++ {
			out = append(out, cycle[idx])
			if idx == 0 {
				idx = n - 1
			} else {
				idx--
			}
		}
	}
	out = append(out, out[0])
	return out
}

// rotationKey joins the labels of one rotation (optionally walked
// backwards) with '>' separators. Only used for ordering, never shown.
func (g *Graph) rotationKey(cycle []int, start int, reverse bool) string {
	n := len(cycle)

	var sb strings.Builder
	sb.Grow(n * 4)
	appendLabel := func(index int) {
		if sb.Len() > 0 {
			sb.WriteByte('>')
		}
		sb.WriteString(g.labels[index])
	}

	if !reverse {
		for i := 0; i < n; i++ {
			appendLabel(cycle[(start+i)%n])
		}
	} else {
		idx := start % n
		for i := 0; i < n; i++ {
			appendLabel(cycle[idx])
			if idx == 0 {
				idx = n - 1
			} else {
				idx--
			}
		}
	}
	return sb.String()
}

// TourString renders a tour as labels joined by "->", e.g. "A->B->C->A".
// This string is the de-duplication key for equal-length best tours.
func (g *Graph) TourString(tour []int) string {
	var sb strings.Builder
	for i, v := range tour {
		if i > 0 {
			sb.WriteString("->")
		}
		sb.WriteString(g.labels[v])
	}
	return sb.String()
}
