// Package antcolony solves the Traveling Salesman Problem on directed
// weighted graphs with Ant Colony Optimization, sequentially or across
// worker goroutines.
//
// 🐜 What is antcolony?
//
//	A small, deterministic ACO toolkit:
//		• graph/    — immutable weighted digraph, DOT-subset reader, tour canonicalization
//		• colony/   — pheromone field, stochastic tour construction, sequential & parallel runners
//		• graphgen/ — random sparse digraphs with a guaranteed Hamiltonian ring
//		• bench/    — size × worker-count sweeps, CSV and HTML chart output
//		• cmd/      — antsolve and antbench command-line tools
//
// Quick ASCII example:
//
//	    A◄──►B
//	     ╲   │
//	      ╲  │
//	       ► C
//
//	a triangle with symmetric edges; ants converge on the cheapest cycle
//	A->B->C->A, and every rotation or reversal of it counts as the same
//	tour in the result set.
//
// Determinism is a design rule, not an accident: all randomness flows
// through seeds, and the parallel runner derives one RNG stream per
// worker and iteration so a fixed (parameters, worker count) pair always
// reproduces its run.
//
//	go get github.com/katalvlaran/antcolony
package antcolony
