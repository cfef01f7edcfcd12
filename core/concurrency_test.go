// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/sirg/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(id int64) {
			defer wg.Done()
			_, err := g.AddEdge(0, id)
			require.NoError(t, err)
		}(int64(i))
	}
	wg.Wait()

	nbs, err := g.NeighborIDs(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentCloneWhileReading mirrors candidate generation: many goroutines
// clone and extend a shared source graph that nobody mutates.
func TestConcurrentCloneWhileReading(t *testing.T) {
	src := core.NewGraph()
	for i := int64(0); i < 50; i++ {
		_, err := src.AddEdge(i, i+1)
		require.NoError(t, err)
	}
	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			c := src.Clone()
			next := c.NextVertexID()
			_, err := c.AddEdge(0, next)
			require.NoError(t, err)
			require.Equal(t, 52, c.VertexCount())
			_ = src.Isolates()
		}()
	}
	wg.Wait()
	require.Equal(t, 51, src.VertexCount())
	require.Equal(t, 50, src.EdgeCount())
}
