// SPDX-License-Identifier: MIT
// Package: sirg/builder
//
// impl_barabasi_albert.go - preferential attachment BarabasiAlbert(n, m).
//
// Model:
//   - Start with m isolated vertices 0..m-1 as the first targets.
//   - Each new vertex s = m..n-1 links to the current m targets, then the
//     next m distinct targets are drawn uniformly from the multiset of edge
//     endpoints, so the chance of picking a vertex is proportional to its degree.
//
// Contract:
//   - 1 <= m < n (else ErrTooFewVertices / ErrInvalidParameter).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Result has n vertices and (n-m)*m edges and is connected.
//
// Determinism:
//   - Targets are linked in ascending order; draws follow a fixed sequence per seed.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sirg/core"
)

const (
	methodBarabasiAlbert = "BarabasiAlbert"
	minBarabasiAlbertM   = 1
)

// BarabasiAlbert returns a Constructor for a preferential-attachment graph on n
// vertices where every new vertex brings m edges.
func BarabasiAlbert(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < minBarabasiAlbertM {
			return fmt.Errorf("%s: m=%d < min=%d: %w", methodBarabasiAlbert, m, minBarabasiAlbertM, ErrTooFewVertices)
		}
		if m >= n {
			return fmt.Errorf("%s: m=%d must be < n=%d: %w", methodBarabasiAlbert, m, n, ErrInvalidParameter)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodBarabasiAlbert, ErrNeedRandSource)
		}

		targets := make([]int, m)
		for i := range targets {
			targets[i] = i
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", methodBarabasiAlbert, cfg.id(i), err)
			}
		}
		repeated := make([]int, 0, 2*n*m)
		for s := m; s < n; s++ {
			for _, t := range targets {
				if _, err := g.AddEdge(cfg.id(s), cfg.id(t)); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodBarabasiAlbert, cfg.id(s), cfg.id(t), err)
				}
			}
			repeated = append(repeated, targets...)
			for i := 0; i < m; i++ {
				repeated = append(repeated, s)
			}

			picked := make(map[int]struct{}, m)
			for len(picked) < m {
				picked[repeated[cfg.rng.Intn(len(repeated))]] = struct{}{}
			}
			targets = targets[:0]
			for t := range picked {
				targets = append(targets, t)
			}
			sort.Ints(targets)
		}

		return nil
	}
}
