// Package colony implements an Ant Colony Optimization solver for the
// Traveling Salesman Problem on a graph.Graph.
//
// Two runners share one iteration semantics:
//
//   - (*Solver).RunSequential: single goroutine, the reference behaviour.
//   - (*Solver).RunParallel: the ant budget of each iteration is split
//     across worker goroutines; every worker walks its ants against the
//     same read-only pheromone snapshot, accumulates deposits into a
//     private delta matrix and tracks its own best tours. After the join
//     barrier the deltas are summed, the best tours are merged in worker
//     index order, and the pheromone field is evaporated and updated
//     exactly once per iteration.
//
// The pheromone field never changes while ants are walking, so workers
// need no locks during construction. Per-iteration output of the parallel
// runner matches the sequential runner in the limit of the same pheromone
// field; only best-length agreement is promised across worker counts,
// never bit-identical tours.
//
// All randomness flows through seeds in Parameters: the same seed (and,
// for RunParallel, the same worker count) reproduces the same Result.
// Dead-end ants (no outgoing edge to an unvisited vertex) are dropped
// silently; a run that never finds a cycle returns BestLength=+Inf.
package colony
