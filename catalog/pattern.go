package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/sirg/core"
)

// Pattern is an immutable small connected graph over nodes 0..k-1.
// Node k-1 is the final distinguished node: attachment always ties it to the
// existing main component.
type Pattern struct {
	nodes int
	edges [][2]int // sorted, each with [0] < [1]
}

// newPattern copies and sorts edges. Callers guarantee 0 <= u < v < nodes.
func newPattern(nodes int, edges [][2]int) Pattern {
	cp := make([][2]int, len(edges))
	for i, e := range edges {
		if e[0] > e[1] {
			e[0], e[1] = e[1], e[0]
		}
		cp[i] = e
	}
	sort.Slice(cp, func(i, j int) bool {
		if cp[i][0] != cp[j][0] {
			return cp[i][0] < cp[j][0]
		}
		return cp[i][1] < cp[j][1]
	})

	return Pattern{nodes: nodes, edges: cp}
}

// NodeCount returns k.
func (p Pattern) NodeCount() int { return p.nodes }

// EdgeCount returns the number of pattern edges.
func (p Pattern) EdgeCount() int { return len(p.edges) }

// FinalNode returns the label of the distinguished node, k-1.
func (p Pattern) FinalNode() int { return p.nodes - 1 }

// Edges returns a copy of the edge list sorted by (u, v).
func (p Pattern) Edges() [][2]int {
	out := make([][2]int, len(p.edges))
	copy(out, p.edges)

	return out
}

// HasEdge reports whether u and v are adjacent in the pattern.
func (p Pattern) HasEdge(u, v int) bool {
	if u > v {
		u, v = v, u
	}
	for _, e := range p.edges {
		if e[0] == u && e[1] == v {
			return true
		}
	}

	return false
}

// Graph materializes the pattern as a core.Graph with vertices 0..k-1.
func (p Pattern) Graph() *core.Graph {
	// Labels are 0..k-1 and edges are distinct pairs of distinct labels, so
	// neither AddVertex nor AddEdge can fail here.
	g := core.NewGraph(core.WithName(p.Key()))
	for v := 0; v < p.nodes; v++ {
		_ = g.AddVertex(int64(v))
	}
	for _, e := range p.edges {
		_, _ = g.AddEdge(int64(e[0]), int64(e[1]))
	}

	return g
}

// Key is a stable textual identity of this exact labelled pattern,
// e.g. "3:0-1,0-2". Isomorphic patterns with different labels have different keys.
func (p Pattern) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:", p.nodes)
	for i, e := range p.edges {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d-%d", e[0], e[1])
	}

	return b.String()
}

// String implements fmt.Stringer.
func (p Pattern) String() string { return p.Key() }

// connected reports whether the pattern's nodes form one component.
func (p Pattern) connected() bool {
	return connectedEdges(p.nodes, p.edges)
}

// connectedEdges is a small union-find connectivity check for k <= 64 nodes.
func connectedEdges(nodes int, edges [][2]int) bool {
	if nodes <= 1 {
		return true
	}
	parent := make([]int, nodes)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	parts := nodes
	for _, e := range edges {
		a, b := find(e[0]), find(e[1])
		if a != b {
			parent[a] = b
			parts--
		}
	}

	return parts == 1
}
