// SPDX-License-Identifier: MIT
// Package: sirg/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Emits edges (i, i+1) for i = 0..n-2 in ascending order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/sirg/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			if _, err := g.AddEdge(cfg.id(i), cfg.id(i+1)); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, cfg.id(i), cfg.id(i+1), err)
			}
		}

		return nil
	}
}
