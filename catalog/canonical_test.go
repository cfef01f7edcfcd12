package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalKey_IsomorphicPathsAgree(t *testing.T) {
	t.Parallel()
	// P4 under three labellings.
	a := newPattern(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	b := newPattern(4, [][2]int{{2, 0}, {0, 3}, {3, 1}})
	c := newPattern(4, [][2]int{{1, 3}, {3, 0}, {0, 2}})
	star := newPattern(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	assert.Equal(t, canonicalKey(a), canonicalKey(b))
	assert.Equal(t, canonicalKey(a), canonicalKey(c))
	assert.NotEqual(t, canonicalKey(a), canonicalKey(star))
}

func TestCanonicSet_TryAdd(t *testing.T) {
	t.Parallel()
	var set canonicSet
	defer set.Close()
	tri := newPattern(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	path := newPattern(3, [][2]int{{0, 1}, {1, 2}})
	pathRelabelled := newPattern(3, [][2]int{{0, 2}, {2, 1}})

	for _, tc := range []struct {
		p    Pattern
		want bool
	}{{tri, true}, {path, true}, {pathRelabelled, false}, {tri, false}} {
		added, err := set.TryAdd(tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.want, added, tc.p.Key())
	}

	set.Close()
	added, err := set.TryAdd(tri)
	require.NoError(t, err)
	assert.True(t, added, "closed set starts empty")
}
