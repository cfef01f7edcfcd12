// SPDX-License-Identifier: MIT
//
// File: stats.go
// Role: Scalar graph statistics usable as growth fitness functions.
//
// Contract:
//   - Every Func accepts any *core.Graph, nil included, and never panics.
//   - Functions only read the graph and may run concurrently on distinct graphs.

package stats

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/sirg/core"
)

// ErrUnknownStatistic is returned by ByName for an unregistered name.
var ErrUnknownStatistic = errors.New("stats: unknown statistic")

// Func is a scalar graph statistic.
type Func func(g *core.Graph) float64

var registry = map[string]Func{
	"nodes":        NodeCount,
	"edges":        EdgeCount,
	"density":      Density,
	"transitivity": Transitivity,
	"clustering":   AverageClustering,
	"bipartivity":  SpectralBipartivity,
}

// ByName returns the statistic registered under name.
func ByName(name string) (Func, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownStatistic)
	}

	return f, nil
}

// Names lists the registered statistic names in ascending order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// NodeCount returns |V|.
func NodeCount(g *core.Graph) float64 {
	if g == nil {
		return 0
	}

	return float64(g.VertexCount())
}

// EdgeCount returns |E|.
func EdgeCount(g *core.Graph) float64 {
	if g == nil {
		return 0
	}

	return float64(g.EdgeCount())
}

// Density returns 2|E| / (|V|(|V|-1)), or 0 below two vertices.
func Density(g *core.Graph) float64 {
	if g == nil {
		return 0
	}
	n := float64(g.VertexCount())
	if n < 2 {
		return 0
	}

	return 2 * float64(g.EdgeCount()) / (n * (n - 1))
}

// Transitivity returns the global clustering coefficient: three times the
// number of triangles over the number of connected triples. A graph without
// connected triples scores 0.
//
// Complexity: O(sum of deg^2).
func Transitivity(g *core.Graph) float64 {
	if g == nil {
		return 0
	}
	var closed, triples float64
	for _, v := range g.Vertices() {
		c, d := closedPairs(g, v)
		closed += float64(c)
		triples += float64(d*(d-1)) / 2
	}
	if triples == 0 {
		return 0
	}

	return closed / triples
}

// AverageClustering returns the mean local clustering coefficient; vertices
// of degree below two contribute 0.
func AverageClustering(g *core.Graph) float64 {
	if g == nil || g.VertexCount() == 0 {
		return 0
	}
	var sum float64
	vs := g.Vertices()
	for _, v := range vs {
		c, d := closedPairs(g, v)
		if d < 2 {
			continue
		}
		sum += float64(c) / (float64(d*(d-1)) / 2)
	}

	return sum / float64(len(vs))
}

// closedPairs returns the number of adjacent neighbor pairs of v and its degree.
func closedPairs(g *core.Graph, v int64) (int, int) {
	nbrs, err := g.NeighborIDs(v)
	if err != nil {
		return 0, 0
	}
	closed := 0
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if g.HasEdge(nbrs[i], nbrs[j]) {
				closed++
			}
		}
	}

	return closed, len(nbrs)
}
