// Package bfs provides breadth-first search over a core.Graph and the
// connectivity queries built on it.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from a start vertex and
//     returns a Result with visit Order, Depth and Parent maps.
//   - WithContext allows cancellation.
//   - Components, MainComponent, ComponentCount and NonTrivialComponents
//     partition the graph into connected components. ComponentsContext is
//     the cancellable form used by embedding counts.
//
// Determinism
//
//	Neighbors are expanded in ascending ID order, so visit order is reproducible.
//	Components are sorted by size descending, then by smallest member.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - BFS:        O(V + E) plus neighbor sorting
//   - Components: O(V log V + E)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
//	main := bfs.MainComponent(g)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ctx.Err() on cancellation.
package bfs
