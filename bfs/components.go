// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connected components, main component and component counting.
// Determinism:
//   - Each component lists its vertices ascending.
//   - Components are ordered by size descending, then by smallest vertex ascending,
//     so the main component is the largest one with ties going to the smallest ID.

package bfs

import (
	"context"
	"sort"

	"github.com/katalvlaran/sirg/core"
)

// Components returns the connected components of g, isolates included.
// A nil or empty graph has no components.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) [][]int64 {
	// Without a cancellable context the walk cannot fail.
	comps, _ := ComponentsContext(context.Background(), g)

	return comps
}

// ComponentsContext is Components with cancellation: ctx is checked by every
// underlying traversal and ctx.Err() is returned once it is done.
func ComponentsContext(ctx context.Context, g *core.Graph) ([][]int64, error) {
	if g == nil {
		return nil, nil
	}
	seen := make(map[int64]bool, g.VertexCount())
	var comps [][]int64
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, WithContext(ctx))
		if err != nil {
			return nil, err
		}
		comp := res.Order
		for _, id := range comp {
			seen[id] = true
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		comps = append(comps, comp)
	}
	sort.SliceStable(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}

		return comps[i][0] < comps[j][0]
	})

	return comps, nil
}

// MainComponent returns the vertices of the largest connected component in
// ascending order, or nil for an empty graph.
func MainComponent(g *core.Graph) []int64 {
	comps := Components(g)
	if len(comps) == 0 {
		return nil
	}

	return comps[0]
}

// ComponentCount returns the number of connected components, isolates included.
func ComponentCount(g *core.Graph) int {
	return len(Components(g))
}

// NonTrivialComponents returns the components with more than one vertex,
// in the same order as Components.
func NonTrivialComponents(g *core.Graph) [][]int64 {
	return NonTrivial(Components(g))
}

// NonTrivial filters comps down to the components with more than one vertex.
func NonTrivial(comps [][]int64) [][]int64 {
	var out [][]int64
	for _, c := range comps {
		if len(c) > 1 {
			out = append(out, c)
		}
	}

	return out
}
