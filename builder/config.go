// SPDX-License-Identifier: MIT
// Package: sirg/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - offset = 0   (vertex IDs 0..n-1)
//   - rng    = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// offset is added to every constructor-local vertex index.
	offset int64
	// rng for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a vertex ID.
func (c builderConfig) id(i int) int64 {
	return c.offset + int64(i)
}
