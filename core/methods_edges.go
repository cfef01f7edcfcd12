// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle, adjacency queries and bulk edge merge.
// Determinism:
//   - Edges() sorted by (From, To); NeighborIDs() ascending.
//   - Edge IDs are "e<N>" from an atomic counter carried by Clone.
// Concurrency:
//   - Mutators take muVert then muEdgeAdj (write); queries take read locks only.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// canonical orders endpoints so that From <= To.
func canonical(u, v int64) (int64, int64) {
	if u > v {
		return v, u
	}

	return u, v
}

// AddEdge connects u and v, creating missing endpoints, and returns the new edge ID.
//
// Errors:
//   - ErrBadVertexID if either endpoint is negative.
//   - ErrLoopNotAllowed if u == v and loops are disabled.
//   - ErrMultiEdgeNotAllowed if u and v are already adjacent.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int64) (string, error) {
	if u < 0 || v < 0 {
		return "", fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrBadVertexID)
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	return g.addEdgeLocked(u, v)
}

// addEdgeLocked assumes muVert is held for writing.
func (g *Graph) addEdgeLocked(u, v int64) (string, error) {
	if u == v && !g.allowLoops {
		return "", fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	g.addVertexLocked(u)
	g.addVertexLocked(v)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, dup := g.adjacency[u][v]; dup {
		return "", fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	eid := "e" + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	from, to := canonical(u, v)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	g.adjacency[u][v] = eid
	g.adjacency[v][u] = eid

	return eid, nil
}

// MergeEdges adds every pair in pairs that is not already an edge and
// returns how many edges were added. Missing endpoints are created.
// The merge is all-or-nothing: pairs are validated before any mutation.
//
// Errors:
//   - ErrBadVertexID for a negative endpoint.
//   - ErrLoopNotAllowed for u == v when loops are disabled.
//
// Complexity: O(len(pairs)).
func (g *Graph) MergeEdges(pairs [][2]int64) (int, error) {
	for _, p := range pairs {
		if p[0] < 0 || p[1] < 0 {
			return 0, fmt.Errorf("MergeEdges(%d,%d): %w", p[0], p[1], ErrBadVertexID)
		}
		if p[0] == p[1] && !g.allowLoops {
			return 0, fmt.Errorf("MergeEdges(%d,%d): %w", p[0], p[1], ErrLoopNotAllowed)
		}
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	added := 0
	for _, p := range pairs {
		g.muEdgeAdj.RLock()
		_, exists := g.adjacency[p[0]][p[1]]
		g.muEdgeAdj.RUnlock()
		if exists {
			continue
		}
		if _, err := g.addEdgeLocked(p[0], p[1]); err != nil {
			return added, err
		}
		added++
	}

	return added, nil
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int64) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// RemoveEdge deletes the edge between u and v.
//
// Errors:
//   - ErrEdgeNotFound if u and v are not adjacent.
func (g *Graph) RemoveEdge(u, v int64) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	eid, ok := g.adjacency[u][v]
	if !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	delete(g.edges, eid)
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)

	return nil
}

// Edges returns copies of all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// NeighborIDs returns the ascending neighbor IDs of id.
//
// Errors:
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(deg log deg).
func (g *Graph) NeighborIDs(id int64) ([]int64, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", id, ErrVertexNotFound)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]int64, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// ForEachNeighbor calls fn for every neighbor of id in unspecified order while
// holding the adjacency read lock; fn must not mutate g. Unknown ids visit nothing.
// Hot loops (subgraph matching, clustering) use it to avoid per-call allocation.
func (g *Graph) ForEachNeighbor(id int64, fn func(nbr int64)) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for nbr := range g.adjacency[id] {
		fn(nbr)
	}
}
