package growth

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sirg/bfs"
	"github.com/katalvlaran/sirg/core"
	"github.com/katalvlaran/sirg/metrics"
)

// Connect joins every component of g to the main one in place and returns the
// number of edges added, which is always components-1. Each edge runs from a
// uniformly drawn node of the (growing) main component to the smallest node of
// the component being joined. A nil rng uses the default seed.
func Connect(g *core.Graph, rng *rand.Rand) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("Connect: %w", core.ErrGraphNil)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	comps := bfs.Components(g)
	if len(comps) <= 1 {
		return 0, nil
	}
	main := append([]int64(nil), comps[0]...)
	added := 0
	for _, comp := range comps[1:] {
		from := main[rng.Intn(len(main))]
		if _, err := g.AddEdge(from, comp[0]); err != nil {
			return added, fmt.Errorf("Connect: %w", err)
		}
		added++
		main = append(main, comp...)
	}
	metrics.ConnectEdges.Add(float64(added))

	return added, nil
}
