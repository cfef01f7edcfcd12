// SPDX-License-Identifier: MIT
//
// File: rng.go
// Role: Deterministic random streams.
//
// The master *rand.Rand is only touched on the loop goroutine. Every candidate
// receives its own stream derived from the master, so results do not depend on
// how workers are scheduled.

package growth

import "math/rand"

// defaultSeed is used when no seed or source is configured, and for seed 0.
const defaultSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream number with the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamSeeds draws n child seeds from base, consuming one Int63 per iteration.
func streamSeeds(base *rand.Rand, n int) []int64 {
	parent := base.Int63()
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = deriveSeed(parent, uint64(i))
	}

	return seeds
}
