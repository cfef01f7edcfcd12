package core_test

import (
	"fmt"

	"github.com/katalvlaran/sirg/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// Add edges (auto-adds vertices 0, 1, 2):
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 0)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge 1-0 exists?", g.HasEdge(1, 0))
	fmt.Println("Next fresh ID:", g.NextVertexID())

	_ = g.RemoveVertex(1)
	fmt.Println("After removing 1:", g.Vertices(), g.EdgeCount())

	// Output:
	// Vertices: [0 1 2]
	// Edge 1-0 exists? true
	// Next fresh ID: 3
	// After removing 1: [0 2] 1
}
