// SPDX-License-Identifier: MIT
// Package graph: sentinel error set.
// All construction paths return these sentinels; tests match them with
// errors.Is. Parsing never fails on a malformed line (such lines are
// skipped), only on an input that yields no vertices at all.

package graph

import "errors"

var (
	// ErrEmptyGraph is returned when a DOT stream contains no usable edge
	// line, i.e. no vertex label was observed.
	ErrEmptyGraph = errors.New("graph: no vertices")

	// ErrShapeMismatch is returned by NewGraph when the weight matrix is not
	// square of order len(labels), or when a weight is NaN or negative.
	ErrShapeMismatch = errors.New("graph: labels and weight matrix shape mismatch")

	// ErrDuplicateLabel is returned by NewGraph when two vertices share a
	// label. Labels must be unique because they double as map keys.
	ErrDuplicateLabel = errors.New("graph: duplicate vertex label")

	// ErrNonZeroDiagonal is returned by NewGraph when some self-loop weight
	// is not exactly 0. The solvers rely on weight[i][i]==0.
	ErrNonZeroDiagonal = errors.New("graph: diagonal entry is not zero")
)
