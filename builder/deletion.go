// SPDX-License-Identifier: MIT
// Package: sirg/builder
//
// deletion.go - RandomDeletion: thin out an observed graph before using it as a seed.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sirg/core"
)

const methodRandomDeletion = "RandomDeletion"

// AutoDeletion asks RandomDeletion to draw the count uniformly from [round(n/2), n).
const AutoDeletion = -1

// RandomDeletion removes k uniformly chosen vertices (with their edges) from g
// and returns how many were removed. With k == AutoDeletion the count is drawn
// uniformly from [round(n/2), n). k larger than |V| removes every vertex.
//
// Errors: ErrGraphNil, ErrNeedRandSource, ErrInvalidParameter for k < -1.
//
// Complexity: O(k * (V log V + deg)).
func RandomDeletion(g *core.Graph, k int, rng *rand.Rand) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%s: %w", methodRandomDeletion, ErrGraphNil)
	}
	if rng == nil {
		return 0, fmt.Errorf("%s: %w", methodRandomDeletion, ErrNeedRandSource)
	}
	if k < AutoDeletion {
		return 0, fmt.Errorf("%s: k=%d: %w", methodRandomDeletion, k, ErrInvalidParameter)
	}
	n := g.VertexCount()
	if k == AutoDeletion {
		if n == 0 {
			return 0, nil
		}
		low := (n + 1) / 2
		if low >= n {
			k = low
		} else {
			k = low + rng.Intn(n-low)
		}
	}
	removed := 0
	for ; removed < k; removed++ {
		vs := g.Vertices()
		if len(vs) == 0 {
			break
		}
		if err := g.RemoveVertex(vs[rng.Intn(len(vs))]); err != nil {
			return removed, fmt.Errorf("%s: %w", methodRandomDeletion, err)
		}
	}

	return removed, nil
}
