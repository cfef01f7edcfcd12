package growth_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sirg/bfs"
	"github.com/katalvlaran/sirg/builder"
	"github.com/katalvlaran/sirg/core"
	"github.com/katalvlaran/sirg/growth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttach_IsolateReuse(t *testing.T) {
	t.Parallel()
	pats := chain(t)
	e := mustEngine(t, nodeCount, 100, growth.WithMu(0))
	g := mustBuild(t, builder.Path(3))
	require.NoError(t, g.AddVertex(10))
	require.NoError(t, g.AddVertex(11))
	rng := rand.New(rand.NewSource(1))

	// K3: both non-final nodes land on the isolates.
	out, rep, err := e.Attach(g, pats[2], rng)
	require.NoError(t, err)
	assert.Equal(t, growth.StrategyIsolate, rep.Strategy)
	assert.Equal(t, []int64{10, 11}, rep.Mapping[:2])
	assert.Contains(t, []int64{0, 1, 2}, rep.Mapping[2])
	assert.Equal(t, 2, rep.Reused)
	assert.Zero(t, rep.Fresh)
	assert.Equal(t, 3, rep.EdgesAdded)
	assert.Equal(t, 5, out.VertexCount())
	assert.Equal(t, 1, bfs.ComponentCount(out))

	// Star: two isolates plus one fresh identifier.
	out, rep, err = e.Attach(g, pats[5], rng)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11, 12}, rep.Mapping[:3])
	assert.Equal(t, 1, rep.Fresh)
	assert.Equal(t, 6, out.VertexCount())

	assert.Equal(t, 5, g.VertexCount(), "input graph untouched")
	assert.Equal(t, 2, g.EdgeCount())
}

func TestAttach_FreshNodes(t *testing.T) {
	t.Parallel()
	pats := chain(t)
	e := mustEngine(t, nodeCount, 100, growth.WithMu(0))
	g := mustBuild(t, builder.Path(3))
	for i, p := range pats {
		out, rep, err := e.Attach(g, p, rand.New(rand.NewSource(int64(i))))
		require.NoError(t, err, p.Key())
		k := p.NodeCount()
		assert.Equal(t, 3+k-1, out.VertexCount(), p.Key())
		assert.Equal(t, k-1, rep.Fresh)
		assert.Equal(t, 2+p.EdgeCount(), out.EdgeCount(), p.Key())
		assert.Equal(t, 1, bfs.ComponentCount(out))
		for j := 0; j < k-1; j++ {
			assert.Equal(t, int64(3+j), rep.Mapping[j])
		}
	}
}

func TestAttach_InteriorIndependent(t *testing.T) {
	t.Parallel()
	pats := chain(t)
	e := mustEngine(t, nodeCount, 100, growth.WithMu(1))
	g := mustBuild(t, builder.Cycle(16))
	for seed := int64(0); seed < 10; seed++ {
		out, rep, err := e.Attach(g, pats[1], rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.Equal(t, growth.StrategyInterior, rep.Strategy)
		assert.Positive(t, rep.Attempts)
		assert.Equal(t, 16, out.VertexCount())
		sel := rep.Mapping
		for i := range sel {
			for j := i + 1; j < len(sel); j++ {
				assert.NotEqual(t, sel[i], sel[j])
				assert.False(t, g.HasEdge(sel[i], sel[j]), "selected nodes adjacent")
				assert.Empty(t, shared(t, g, sel[i], sel[j]), "selected nodes share a neighbor")
			}
		}
		for _, edge := range pats[1].Edges() {
			assert.True(t, out.HasEdge(sel[edge[0]], sel[edge[1]]))
		}
	}
}

func TestAttach_InteriorRules(t *testing.T) {
	t.Parallel()
	pats := chain(t)
	g := mustBuild(t, builder.Path(2))

	strict := mustEngine(t, nodeCount, 100, growth.WithMu(1), growth.WithMaxAttachAttempts(20))
	_, rep, err := strict.Attach(g, pats[0], rand.New(rand.NewSource(5)))
	assert.ErrorIs(t, err, growth.ErrAttachmentExhausted)
	assert.Equal(t, 20, rep.Attempts)

	_, _, err = strict.Attach(g, pats[6], rand.New(rand.NewSource(5)))
	assert.ErrorIs(t, err, growth.ErrAttachmentExhausted, "pattern larger than main component")

	loose := mustEngine(t, nodeCount, 100, growth.WithMu(1), growth.WithSelectionRule(growth.RuleNoSharedNeighbor))
	out, rep, err := loose.Attach(g, pats[0], rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{0, 1}, rep.Mapping)
	assert.Zero(t, rep.EdgesAdded, "edge already present")
	assert.Equal(t, 1, out.EdgeCount())

	_, _, err = loose.Attach(nil, pats[0], nil)
	assert.ErrorIs(t, err, growth.ErrDisconnectedInput)
}

func shared(t *testing.T, g *core.Graph, a, b int64) []int64 {
	t.Helper()
	na, err := g.NeighborIDs(a)
	require.NoError(t, err)
	nb, err := g.NeighborIDs(b)
	require.NoError(t, err)
	var out []int64
	for _, x := range na {
		for _, y := range nb {
			if x == y {
				out = append(out, x)
			}
		}
	}

	return out
}
