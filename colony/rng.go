// SPDX-License-Identifier: MIT
// Package colony: deterministic RNG derivation.
//
// All randomness comes from math/rand sources seeded here. A *rand.Rand
// is not goroutine-safe, so every worker gets its own stream:
// the parallel runner derives one seed per (worker, iteration) with fixed
// prime strides. The same Parameters and worker count therefore replay
// the same run, while different worker counts sample differently, which
// is the documented trade-off of the partitioning scheme.

package colony

import "math/rand"

// rngFromSeed returns a deterministic generator for the given seed.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// workerSeed mixes the base seed with the worker index and iteration
// using the fixed prime strides. Kept linear (not hashed) so the stream
// layout is easy to reason about when comparing runs.
func workerSeed(base int64, worker, iteration int) int64 {
	return base + int64(worker)*workerSeedStride + int64(iteration)*iterationSeedStride
}
