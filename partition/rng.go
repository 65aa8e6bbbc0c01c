// SPDX-License-Identifier: MIT
//
// File: rng.go
// Role: Deterministic random streams for the Improve strategy.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Streams are derived up front,
//     one per restart, so results do not depend on scheduling.

package partition

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed == 0 selects defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveStreams returns n independent streams rooted at seed.
// Stream i is identical across calls with the same seed.
func deriveStreams(seed int64, n int) []*rand.Rand {
	base := rngFromSeed(seed)
	out := make([]*rand.Rand, n)
	for i := range out {
		out[i] = rand.New(rand.NewSource(deriveSeed(base.Int63(), uint64(i))))
	}
	return out
}
