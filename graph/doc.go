// Package graph provides the immutable weighted digraph consumed by the
// colony solvers.
//
// A Graph is built from a Graphviz-flavoured edge list (see ParseDOT) or
// directly from a dense weight matrix (see NewGraph). After construction it
// never mutates, so it is safe to share by reference across goroutines.
//
// Representation:
//   - Vertex labels are sorted lexicographically during construction; the
//     sorted position of a label is its index. This makes indices stable for
//     a given label set regardless of edge order in the input.
//   - Weights live in a dense n×n gonum matrix. A missing edge is stored as
//     math.Inf(1); the diagonal is always 0.
//
// The package also owns tour canonicalization: CanonicalizeTour maps every
// rotation and reversal of a Hamiltonian cycle to one representative, and
// TourString renders a tour as the "A->B->C->A" string used as the
// de-duplication key by the solvers.
package graph
