// Package builder_test contains functional tests for the constructors in the
// builder package, verifying topology, counts, determinism and error contracts.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sirg/bfs"
	"github.com/katalvlaran/sirg/builder"
	"github.com/katalvlaran/sirg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilders_Functional runs table-driven functional tests for each deterministic builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := int64(0); i < 5; i++ {
					assert.True(t, g.HasEdge(i, (i+1)%5))
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(2, 3))
				assert.False(t, g.HasEdge(0, 3))
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree(0)
				require.NoError(t, err)
				assert.Equal(t, 4, d)
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
		},
		{
			name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0,
		},
		{
			name: "Petersen", ctor: builder.Petersen(), wantV: 10, wantE: 15,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, v := range g.Vertices() {
					d, err := g.Degree(v)
					require.NoError(t, err)
					assert.Equal(t, 3, d, "vertex %d", v)
				}
				assert.True(t, g.HasEdge(5, 7))
			},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"BA m=0", builder.BarabasiAlbert(10, 0), builder.ErrTooFewVertices},
		{"BA m>=n", builder.BarabasiAlbert(3, 3), builder.ErrInvalidParameter},
		{"BA no rng", builder.BarabasiAlbert(10, 2), builder.ErrNeedRandSource},
		{"Fractal nil base", builder.Fractal(nil, 3), builder.ErrGraphNil},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildGraph(nil, nil, tc.ctor)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestWithIDOffsetComposes(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	require.NoError(t, builder.Apply(g, nil, builder.Path(3)))
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithIDOffset(10)}, builder.Cycle(3)))
	assert.Equal(t, []int64{0, 1, 2, 10, 11, 12}, g.Vertices())
	assert.Equal(t, 5, g.EdgeCount())
	assert.ErrorIs(t, builder.Apply(nil, nil), builder.ErrGraphNil)
	assert.Panics(t, func() { builder.WithIDOffset(-1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestBarabasiAlbert(t *testing.T) {
	t.Parallel()
	const n, m = 100, 2
	g1, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)}, builder.BarabasiAlbert(n, m))
	require.NoError(t, err)
	assert.Equal(t, n, g1.VertexCount())
	assert.Equal(t, (n-m)*m, g1.EdgeCount())
	assert.Equal(t, 1, bfs.ComponentCount(g1))

	g2, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)}, builder.BarabasiAlbert(n, m))
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges(), "same seed must give the same graph")
}

func TestFractal(t *testing.T) {
	t.Parallel()
	base, err := builder.BuildGraph(nil, nil, builder.Petersen())
	require.NoError(t, err)
	const iters = 6
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.Fractal(base, iters))
	require.NoError(t, err)
	assert.Equal(t, iters*10, g.VertexCount())
	assert.Greater(t, g.EdgeCount(), iters*15, "copies must be tied together")
	assert.Equal(t, 1, bfs.ComponentCount(g))
	assert.Empty(t, g.Isolates())

	// First iteration is a plain copy of the base.
	one, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.Fractal(base, 1))
	require.NoError(t, err)
	assert.Equal(t, base.Edges()[0].From, one.Edges()[0].From)
	assert.Equal(t, 15, one.EdgeCount())

	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.Fractal(base, 0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, builder.Fractal(base, 2))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomDeletion(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil, nil, builder.Complete(10))
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(3))

	removed, err := builder.RandomDeletion(g, 4, rng)
	require.NoError(t, err)
	assert.Equal(t, 4, removed)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 15, g.EdgeCount())

	removed, err = builder.RandomDeletion(g, builder.AutoDeletion, rng)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, removed, 3)
	assert.Less(t, removed, 6)

	_, err = builder.RandomDeletion(g, 1, nil)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.RandomDeletion(g, -5, rng)
	assert.ErrorIs(t, err, builder.ErrInvalidParameter)
	_, err = builder.RandomDeletion(nil, 1, rng)
	assert.ErrorIs(t, err, builder.ErrGraphNil)
}
