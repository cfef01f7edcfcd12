// SPDX-License-Identifier: MIT
// Package: sirg/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order give identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with the method name.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sirg/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to append a
// fractal extension to a loaded seed. Errors are wrapped with "Apply: %w".
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: %w", ErrGraphNil)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Vertex IDs are cfg.offset+i for index i, so several constructors can be
// composed into one graph without collisions (see WithIDOffset).
//
//	Complete(n)          K_n, n >= 1                         (impl_complete.go)
//	Path(n)              P_n, n >= 2                         (impl_path.go)
//	Cycle(n)             C_n, n >= 3                         (impl_cycle.go)
//	Star(n)              hub offset+0 and n-1 leaves          (impl_star.go)
//	Petersen()           the Petersen graph                  (impl_petersen.go)
//	BarabasiAlbert(n,m)  preferential attachment, needs rng  (impl_barabasi_albert.go)
//	Fractal(base,iters)  fractal growth rule, needs rng      (impl_fractal.go)
