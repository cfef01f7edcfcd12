// Package core provides a thread-safe in-memory simple undirected Graph
// with non-negative int64 vertex identifiers and a minimal, composable API.
//
// The Graph G = (V,E) is what the growth engine mutates, copies and measures:
//
//   - Constant-time edge operations via nested maps:
//     adjacency[u][v] = edgeID (mirrored for v,u)
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//   - Fresh vertex identifiers via NextVertexID, always larger than any
//     identifier the graph (or the graph it was cloned from) ever held
//
// Deterministic iteration: Vertices(), Edges(), NeighborIDs() and Isolates()
// all return sorted results.
//
// Configuration Options (GraphOption):
//
//	WithLoops()
//	    Permits self-loops (u == v); otherwise AddEdge(v,v) returns ErrLoopNotAllowed.
//
//	WithName(name)
//	    Descriptive name carried by Clone and written by exporters.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int64) error            // O(1)
//	HasVertex(id int64) bool             // O(1)
//	RemoveVertex(id int64) error         // O(deg)
//
//	// Edge lifecycle
//	AddEdge(u, v int64) (string, error)  // O(1)
//	MergeEdges(pairs [][2]int64) (int, error)
//	RemoveEdge(u, v int64) error         // O(1)
//
//	// Queries
//	Vertices(), Edges(), NeighborIDs(id), Degree(id), Isolates(), Stats()
//
//	// Copies
//	Clone(), CloneEmpty(), InducedSubgraph(g, keep)
//
// Errors are package sentinels wrapped with the calling method, e.g.
//
//	_, err := g.AddEdge(3, 3)
//	errors.Is(err, core.ErrLoopNotAllowed) // true
package core
