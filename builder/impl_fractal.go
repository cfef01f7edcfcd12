// SPDX-License-Identifier: MIT
// Package: sirg/builder
//
// impl_fractal.go - fractal growth rule Fractal(base, iterations).
//
// Each iteration appends a copy of base whose vertices are relabelled, in
// ascending base order, to k, k+1, ... where k = g.NextVertexID(). From the
// second iteration on, the copy is tied back to the existing graph:
//   - k odd:  every odd-labelled new vertex links to a uniform vertex in [k/2, k].
//   - k even: every even-labelled new vertex links to a uniform vertex in [0, k/2].
//
// Draws equal to the vertex itself are repeated. Links that already exist are skipped.
//
// Contract:
//   - base non-nil with at least one vertex (else ErrGraphNil / ErrTooFewVertices).
//   - iterations >= 1 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - g is expected to use contiguous labels 0..k-1 (e.g. start empty).
//
// Complexity: O(iterations * (|V(base)| + |E(base)|)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/sirg/core"
)

const (
	methodFractal      = "Fractal"
	minFractalIters    = 1
	minFractalBaseSize = 1
)

// Fractal returns a Constructor that grows g by the fractal composition rule.
// cfg.offset is ignored: labels continue from g.NextVertexID().
func Fractal(base *core.Graph, iterations int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if base == nil {
			return fmt.Errorf("%s: base: %w", methodFractal, ErrGraphNil)
		}
		baseIDs := base.Vertices()
		if len(baseIDs) < minFractalBaseSize {
			return fmt.Errorf("%s: |base|=%d < min=%d: %w", methodFractal, len(baseIDs), minFractalBaseSize, ErrTooFewVertices)
		}
		if iterations < minFractalIters {
			return fmt.Errorf("%s: iterations=%d < min=%d: %w", methodFractal, iterations, minFractalIters, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodFractal, ErrNeedRandSource)
		}
		baseEdges := base.Edges()

		for it := 0; it < iterations; it++ {
			k := g.NextVertexID()
			relabel := make(map[int64]int64, len(baseIDs))
			fresh := make([]int64, len(baseIDs))
			for i, v := range baseIDs {
				relabel[v] = k + int64(i)
				fresh[i] = k + int64(i)
				if err := g.AddVertex(fresh[i]); err != nil {
					return fmt.Errorf("%s: AddVertex(%d): %w", methodFractal, fresh[i], err)
				}
			}
			pairs := make([][2]int64, 0, len(baseEdges)+len(fresh))
			for _, e := range baseEdges {
				pairs = append(pairs, [2]int64{relabel[e.From], relabel[e.To]})
			}
			if k > 0 {
				lo, hi := int64(0), k/2
				wantParity := int64(0)
				if k%2 == 1 {
					lo, hi = k/2, k
					wantParity = 1
				}
				for _, n := range fresh {
					if n%2 != wantParity {
						continue
					}
					target := n
					for target == n {
						target = lo + cfg.rng.Int63n(hi-lo+1)
					}
					pairs = append(pairs, [2]int64{n, target})
				}
			}
			if _, err := g.MergeEdges(pairs); err != nil {
				return fmt.Errorf("%s: iteration %d: %w", methodFractal, it, err)
			}
		}

		return nil
	}
}
