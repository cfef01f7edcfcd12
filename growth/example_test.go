package growth_test

import (
	"fmt"

	"github.com/katalvlaran/sirg/bfs"
	"github.com/katalvlaran/sirg/core"
	"github.com/katalvlaran/sirg/growth"
)

// ExampleConnect joins a stray edge and an isolate to the main component.
func ExampleConnect() {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(7, 8)
	_ = g.AddVertex(4)

	added, err := growth.Connect(g, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(added, bfs.ComponentCount(g))
	// Output: 2 1
}
