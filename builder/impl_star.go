// SPDX-License-Identifier: MIT
// Package: sirg/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Hub is index 0; leaves are indices 1..n-1 emitted in ascending order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/sirg/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.id(0)
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(hub, cfg.id(i)); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodStar, hub, cfg.id(i), err)
			}
		}

		return nil
	}
}
