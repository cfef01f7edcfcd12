// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and vertex-level queries.
// Determinism:
//   - Vertices() and Isolates() return ascending IDs.
// Concurrency:
//   - Mutators take muVert then muEdgeAdj (write); queries take read locks only.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts vertex id. Inserting an existing vertex is a no-op.
//
// Errors:
//   - ErrBadVertexID if id < 0.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id int64) error {
	if id < 0 {
		return fmt.Errorf("AddVertex(%d): %w", id, ErrBadVertexID)
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked assumes muVert is held for writing.
func (g *Graph) addVertexLocked(id int64) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	if id > g.maxID {
		g.maxID = id
	}
	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int64]string)
	}
	g.muEdgeAdj.Unlock()
}

// HasVertex reports whether vertex id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes vertex id together with all incident edges.
//
// Errors:
//   - ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id int64) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("RemoveVertex(%d): %w", id, ErrVertexNotFound)
	}
	g.muEdgeAdj.Lock()
	for nbr, eid := range g.adjacency[id] {
		delete(g.edges, eid)
		if nbr != id {
			delete(g.adjacency[nbr], id)
		}
	}
	delete(g.adjacency, id)
	g.muEdgeAdj.Unlock()
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// MaxVertexID returns the largest vertex identifier ever inserted into this
// graph (or its clone source), or -1 for a graph that never held a vertex.
func (g *Graph) MaxVertexID() int64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.maxID
}

// NextVertexID returns an identifier strictly greater than every identifier
// present in the graph. Successive fresh vertices are NextVertexID(),
// NextVertexID()+1, ... as long as they are inserted in that order.
func (g *Graph) NextVertexID() int64 {
	return g.MaxVertexID() + 1
}

// Degree returns the number of distinct neighbors of id (a loop counts once).
//
// Errors:
//   - ErrVertexNotFound if the vertex does not exist.
func (g *Graph) Degree(id int64) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}

// Isolates returns, in ascending order, the vertices that have no neighbors.
// Complexity: O(V log V).
func (g *Graph) Isolates() []int64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]int64, 0)
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Name returns the descriptive graph name.
func (g *Graph) Name() string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.name
}

// SetName replaces the descriptive graph name.
func (g *Graph) SetName(name string) {
	g.muVert.Lock()
	g.name = name
	g.muVert.Unlock()
}

// Stats returns a consistent snapshot of counts.
// Complexity: O(V).
func (g *Graph) Stats() Stats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	s := Stats{
		Name:        g.name,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		MaxVertexID: g.maxID,
	}
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 {
			s.Isolates++
		}
	}

	return s
}
