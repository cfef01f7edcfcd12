// SPDX-License-Identifier: MIT
//
// File: spectral.go
// Role: Estrada spectral bipartivity from the adjacency spectrum.
//
// For eigenvalues l_j of the adjacency matrix, bipartivity is
// sum cosh(l_j) / sum exp(l_j): the share of even closed walks among all
// closed walks. It is 1 exactly for bipartite graphs. Terms are scaled by
// exp(-max l) so large spectra do not overflow.

package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sirg/core"
)

// ErrEigen is returned when the eigendecomposition does not converge.
var ErrEigen = errors.New("stats: eigendecomposition failed")

type spectrum struct {
	index  map[int64]int
	values []float64
	vecs   *mat.Dense // column j is the eigenvector of values[j]
}

func decompose(g *core.Graph, vectors bool) (*spectrum, error) {
	vs := g.Vertices()
	n := len(vs)
	sp := &spectrum{index: make(map[int64]int, n)}
	for i, v := range vs {
		sp.index[v] = i
	}
	if n == 0 {
		return sp, nil
	}
	adj := mat.NewSymDense(n, nil)
	for _, e := range g.Edges() {
		i, j := sp.index[e.From], sp.index[e.To]
		adj.SetSym(i, j, 1)
	}
	var es mat.EigenSym
	if ok := es.Factorize(adj, vectors); !ok {
		return nil, ErrEigen
	}
	sp.values = es.Values(nil)
	if vectors {
		sp.vecs = mat.NewDense(n, n, nil)
		es.VectorsTo(sp.vecs)
	}

	return sp, nil
}

// weightedRatio returns sum w_j cosh(l_j) / sum w_j exp(l_j), with w nil meaning all ones.
func (sp *spectrum) weightedRatio(w func(j int) float64) float64 {
	top := math.Inf(-1)
	for _, l := range sp.values {
		top = math.Max(top, l)
	}
	var even, all float64
	for j, l := range sp.values {
		wj := 1.0
		if w != nil {
			wj = w(j)
		}
		even += wj * (math.Exp(l-top) + math.Exp(-l-top)) / 2
		all += wj * math.Exp(l-top)
	}
	if all == 0 {
		return math.NaN()
	}

	return even / all
}

// SpectralBipartivity returns the global spectral bipartivity of g, in
// [0.5, 1] in floating point. An empty or edgeless graph scores 1; NaN
// signals a failed decomposition.
//
// Complexity: O(V^3).
func SpectralBipartivity(g *core.Graph) float64 {
	if g == nil || g.VertexCount() == 0 {
		return 1
	}
	sp, err := decompose(g, false)
	if err != nil {
		return math.NaN()
	}

	return sp.weightedRatio(nil)
}

// NodeBipartivity returns the contribution of vertex id to bipartivity: the
// share of even closed walks among closed walks starting at id.
//
// Errors: core.ErrGraphNil, core.ErrVertexNotFound, ErrEigen.
func NodeBipartivity(g *core.Graph, id int64) (float64, error) {
	if g == nil {
		return 0, fmt.Errorf("NodeBipartivity: %w", core.ErrGraphNil)
	}
	if !g.HasVertex(id) {
		return 0, fmt.Errorf("NodeBipartivity(%d): %w", id, core.ErrVertexNotFound)
	}
	sp, err := decompose(g, true)
	if err != nil {
		return 0, fmt.Errorf("NodeBipartivity(%d): %w", id, err)
	}
	row := sp.index[id]

	return sp.weightedRatio(func(j int) float64 {
		x := sp.vecs.At(row, j)
		return x * x
	}), nil
}
