// SPDX-License-Identifier: MIT
// Package: sirg/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - Adds vertices offset+0..offset+n-1 in ascending order.
//   - Emits each unordered pair {i,j}, i<j, exactly once in lexicographic order.
//
// Complexity: O(n) vertices + O(n^2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sirg/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodComplete, cfg.id(i), err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(cfg.id(i), cfg.id(j)); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, cfg.id(i), cfg.id(j), err)
				}
			}
		}

		return nil
	}
}
