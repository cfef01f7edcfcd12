// SPDX-License-Identifier: MIT
// Package: sirg/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Emits the path 0..n-1 and the closing edge (n-1, 0).
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/sirg/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			u, v := cfg.id(i), cfg.id((i+1)%n)
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}
