// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex and edge IDs.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
// Kept IDs that are absent from g are ignored.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[int64]bool) *Graph {
	g.muVert.RLock()
	out := NewGraph(WithName(g.name))
	out.allowLoops = g.allowLoops
	out.maxID = g.maxID
	for id := range g.vertices {
		if keep[id] {
			out.vertices[id] = struct{}{}
			out.adjacency[id] = make(map[int64]string)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Carrying the counter forward keeps edge IDs monotonic with the source.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To}
		out.adjacency[e.From][e.To] = eid
		out.adjacency[e.To][e.From] = eid
	}
	g.muEdgeAdj.RUnlock()
	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
