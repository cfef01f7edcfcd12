// SPDX-License-Identifier: MIT
// Package: sirg/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   - Seeding is explicit: WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before use.
type BuilderOption func(*builderConfig)

// WithIDOffset shifts every generated vertex ID by off. Panics on negative off.
func WithIDOffset(off int64) BuilderOption {
	if off < 0 {
		panic("builder: WithIDOffset(negative)")
	}
	return func(c *builderConfig) {
		c.offset = off
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
