package catalog

import (
	"encoding/binary"
	"sort"
)

// canonicalKey returns a byte key equal for two patterns iff they are
// isomorphic. It is the largest upper-triangle adjacency bitmask over all
// vertex orders that list vertices by non-increasing degree; degree classes
// are isomorphism invariant, so restricting the search to them is exact.
// Supports up to MaxDedupSize nodes (28 pair bits).
func canonicalKey(p Pattern) []byte {
	n := p.nodes
	adj := make([][]bool, n)
	deg := make([]int, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range p.edges {
		adj[e[0]][e[1]] = true
		adj[e[1]][e[0]] = true
		deg[e[0]]++
		deg[e[1]]++
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return deg[order[i]] > deg[order[j]] })
	// [classStart[pos], classEnd[pos]) is the degree class containing pos.
	classStart := make([]int, n)
	classEnd := make([]int, n)
	for i := 0; i < n; {
		j := i
		for j < n && deg[order[j]] == deg[order[i]] {
			j++
		}
		for k := i; k < j; k++ {
			classStart[k], classEnd[k] = i, j
		}
		i = j
	}

	perm := make([]int, n)
	used := make([]bool, n)
	var best uint32
	var walk func(pos int)
	walk = func(pos int) {
		if pos == n {
			if c := pairMask(perm, adj); c > best {
				best = c
			}
			return
		}
		for k := classStart[pos]; k < classEnd[pos]; k++ {
			v := order[k]
			if used[v] {
				continue
			}
			used[v] = true
			perm[pos] = v
			walk(pos + 1)
			used[v] = false
		}
	}
	walk(0)

	key := make([]byte, 5)
	key[0] = byte(n)
	binary.BigEndian.PutUint32(key[1:], best)

	return key
}

// pairMask encodes the adjacency of perm-ordered vertices as the upper
// triangle read row by row, first pair in the most significant bit.
func pairMask(perm []int, adj [][]bool) uint32 {
	n := len(perm)
	var code uint32
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			code <<= 1
			if adj[perm[i]][perm[j]] {
				code |= 1
			}
		}
	}

	return code
}
