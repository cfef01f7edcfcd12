package catalog_test

import (
	"testing"

	"github.com/katalvlaran/sirg/bfs"
	"github.com/katalvlaran/sirg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countBySize returns how many patterns have each node count.
func countBySize(c *catalog.Catalog) map[int]int {
	out := make(map[int]int)
	for _, p := range c.Patterns() {
		out[p.NodeCount()]++
	}

	return out
}

func TestBuild_ChainMatchesRemovalProcedure(t *testing.T) {
	t.Parallel()
	c, err := catalog.Build(4, catalog.WithMode(catalog.EdgeRemovalChain), catalog.WithDedup(false))
	require.NoError(t, err)
	require.Equal(t, 7, c.Len())

	keys := make([]string, 0, c.Len())
	for _, p := range c.Patterns() {
		keys = append(keys, p.Key())
	}
	assert.Equal(t, []string{
		"2:0-1",
		"3:0-1,0-2",
		"3:0-1,0-2,1-2",
		"4:0-1,0-2,0-3,1-2,1-3", // diamond
		"4:0-1,0-2,0-3,1-2",     // paw
		"4:0-1,0-2,0-3",         // star
		"4:0-1,0-2,0-3,1-2,1-3,2-3",
	}, keys)
	assert.Equal(t, catalog.EdgeRemovalChain, c.Mode())
}

func TestBuild_ExhaustiveDedupCountsClasses(t *testing.T) {
	t.Parallel()
	c, err := catalog.Build(5)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2: 1, 3: 2, 4: 6, 5: 21}, countBySize(c))
	assert.True(t, c.Deduplicated())

	raw, err := catalog.Build(4, catalog.WithDedup(false))
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2: 1, 3: 4, 4: 38}, countBySize(raw))
}

func TestBuild_DefaultOptions(t *testing.T) {
	t.Parallel()
	c, err := catalog.Build(4)
	require.NoError(t, err)
	assert.Equal(t, catalog.Exhaustive, c.Mode())
	assert.True(t, c.Deduplicated())
	assert.Equal(t, map[int]int{2: 1, 3: 2, 4: 6}, countBySize(c))
}

func TestBuild_EveryPatternConnected(t *testing.T) {
	t.Parallel()
	for _, mode := range []catalog.Mode{catalog.Exhaustive, catalog.EdgeRemovalChain} {
		c, err := catalog.Build(5, catalog.WithMode(mode))
		require.NoError(t, err)
		for _, p := range c.Patterns() {
			g := p.Graph()
			assert.Equal(t, p.NodeCount(), g.VertexCount(), p.Key())
			assert.Equal(t, p.EdgeCount(), g.EdgeCount(), p.Key())
			assert.Equal(t, 1, bfs.ComponentCount(g), "%s pattern %s", mode, p.Key())
			assert.Equal(t, p.NodeCount()-1, p.FinalNode())
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()
	a, err := catalog.Build(4)
	require.NoError(t, err)
	b, err := catalog.Build(4)
	require.NoError(t, err)
	require.Equal(t, a.Len(), b.Len())
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.At(i).NodeCount(), b.At(i).NodeCount())
		assert.Equal(t, a.At(i).EdgeCount(), b.At(i).EdgeCount())
		assert.Equal(t, a.At(i).Key(), b.At(i).Key())
	}
}

func TestBuild_Bounds(t *testing.T) {
	t.Parallel()
	_, err := catalog.Build(1)
	assert.ErrorIs(t, err, catalog.ErrBadSize)
	_, err = catalog.Build(catalog.MaxExhaustiveSize + 1)
	assert.ErrorIs(t, err, catalog.ErrBadSize)
	_, err = catalog.Build(catalog.MaxChainSize+1, catalog.WithMode(catalog.EdgeRemovalChain), catalog.WithDedup(false))
	assert.ErrorIs(t, err, catalog.ErrBadSize)
	_, err = catalog.Build(catalog.MaxDedupSize+1, catalog.WithMode(catalog.EdgeRemovalChain))
	assert.ErrorIs(t, err, catalog.ErrBadSize)

	c, err := catalog.Build(catalog.MaxChainSize, catalog.WithMode(catalog.EdgeRemovalChain), catalog.WithDedup(false))
	require.NoError(t, err)
	assert.Equal(t, catalog.MaxChainSize, c.MaxSize())
}

func TestPatternAccessorsCopy(t *testing.T) {
	t.Parallel()
	c, err := catalog.Build(3, catalog.WithMode(catalog.EdgeRemovalChain))
	require.NoError(t, err)
	p := c.At(1)
	edges := p.Edges()
	edges[0] = [2]int{9, 9}
	assert.Equal(t, [2]int{0, 1}, p.Edges()[0])
	assert.True(t, p.HasEdge(2, 0))
	assert.False(t, p.HasEdge(1, 2))
	assert.Equal(t, "3:0-1,0-2", p.String())
}

func TestParseMode(t *testing.T) {
	t.Parallel()
	m, err := catalog.ParseMode("chain")
	require.NoError(t, err)
	assert.Equal(t, catalog.EdgeRemovalChain, m)
	m, err = catalog.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, catalog.Exhaustive, m)
	_, err = catalog.ParseMode("nope")
	assert.Error(t, err)
	assert.Equal(t, "exhaustive", catalog.Exhaustive.String())
}
