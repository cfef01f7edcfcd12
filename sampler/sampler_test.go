package sampler_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sirg/catalog"
	"github.com/katalvlaran/sirg/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patterns(t *testing.T) []catalog.Pattern {
	t.Helper()
	c, err := catalog.Build(4, catalog.WithMode(catalog.EdgeRemovalChain))
	require.NoError(t, err)
	require.Equal(t, 7, c.Len())

	return c.Patterns()
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	probs, err := sampler.Normalize([]int64{1, 0, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0, 0.75}, probs, 1e-12)

	_, err = sampler.Normalize([]int64{0, 0})
	assert.ErrorIs(t, err, sampler.ErrZeroMass)
	_, err = sampler.Normalize(nil)
	assert.ErrorIs(t, err, sampler.ErrZeroMass)
	_, err = sampler.Normalize([]int64{2, -1})
	assert.ErrorIs(t, err, sampler.ErrBadWeight)
}

func TestIntervalsCoverUnitInterval(t *testing.T) {
	t.Parallel()
	pats := patterns(t)
	counts := []int64{6, 4, 0, 7, 0, 11, 3}
	d, err := sampler.Build(pats, counts)
	require.NoError(t, err)
	ivs := d.Intervals()
	require.Len(t, ivs, 5, "zero-count patterns own no interval")
	assert.Equal(t, 5, d.Len())

	var mass float64
	for k, iv := range ivs {
		mass += iv.Width()
		assert.InDelta(t, d.Probability(iv.Index), iv.Width(), 1e-12, "interval %d", k)
		if k > 0 {
			assert.Equal(t, ivs[k-1].Lower, iv.Upper, "intervals are contiguous")
		}
	}
	assert.InDelta(t, 1.0, mass, 1e-12)
	assert.Equal(t, 1.0, ivs[0].Upper)
	assert.Equal(t, 0.0, ivs[len(ivs)-1].Lower)
	assert.Zero(t, d.Probability(2))
	assert.Zero(t, d.Probability(99))
}

func TestDrawIsDeterministicAndRespectsIntervals(t *testing.T) {
	t.Parallel()
	pats := patterns(t)
	d, err := sampler.Build(pats, []int64{1, 1, 0, 0, 0, 0, 2})
	require.NoError(t, err)

	// Layout: K2 [0.75,1), P3 [0.5,0.75), K4 [0,0.5).
	cases := []struct {
		u    float64
		want int
	}{{0.99, 0}, {0.75, 0}, {0.7499, 1}, {0.5, 1}, {0.4999, 6}, {0, 6}}
	for _, tc := range cases {
		i, err := d.DrawIndex(tc.u)
		require.NoError(t, err)
		assert.Equal(t, tc.want, i, "u=%v", tc.u)
		p, err := d.Draw(tc.u)
		require.NoError(t, err)
		assert.Equal(t, pats[tc.want].Key(), p.Key())
	}

	for _, bad := range []float64{-0.1, 1, 1.5, math.NaN()} {
		_, err := d.Draw(bad)
		assert.ErrorIs(t, err, sampler.ErrBadUniform)
	}
}

func TestDrawFrequenciesFollowCounts(t *testing.T) {
	t.Parallel()
	pats := patterns(t)
	d, err := sampler.Build(pats, []int64{1, 3, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(11))
	hits := make([]int, len(pats))
	const draws = 20000
	for i := 0; i < draws; i++ {
		idx, err := d.DrawIndex(rng.Float64())
		require.NoError(t, err)
		hits[idx]++
	}
	assert.InDelta(t, 0.25, float64(hits[0])/draws, 0.02)
	assert.InDelta(t, 0.75, float64(hits[1])/draws, 0.02)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()
	pats := patterns(t)[:2]
	_, err := sampler.New(pats, []float64{1})
	assert.ErrorIs(t, err, sampler.ErrLengthMismatch)
	_, err = sampler.New(pats, []float64{0, 0})
	assert.ErrorIs(t, err, sampler.ErrZeroMass)
	_, err = sampler.New(pats, []float64{0.5, math.NaN()})
	assert.ErrorIs(t, err, sampler.ErrBadWeight)
	_, err = sampler.New(pats, []float64{0.5, 0.2})
	assert.ErrorIs(t, err, sampler.ErrBadWeight)
	_, err = sampler.Build(pats, []int64{1})
	assert.ErrorIs(t, err, sampler.ErrLengthMismatch)
}
