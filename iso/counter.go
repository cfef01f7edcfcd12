// Package iso counts subgraph-isomorphic embeddings of catalog patterns in a
// core.Graph.
//
// An embedding is an injective map from pattern nodes to graph vertices that
// carries every pattern edge onto a graph edge. With the default induced
// semantics, pattern non-edges must also map to graph non-edges. Each distinct
// map counts once, so a pattern with a automorphisms contributes a per
// occurrence.
package iso

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/sirg/bfs"
	"github.com/katalvlaran/sirg/catalog"
	"github.com/katalvlaran/sirg/core"
)

// ErrNilGraph is returned when Count receives a nil graph.
var ErrNilGraph = errors.New("iso: graph is nil")

// Counts holds one embedding count per pattern, aligned with the pattern slice.
type Counts []int64

// Total returns the sum of all counts.
func (c Counts) Total() int64 {
	var s int64
	for _, v := range c {
		s += v
	}

	return s
}

// Counter counts embeddings. It is stateless between calls and safe for concurrent use.
type Counter struct {
	induced bool
}

// Option configures a Counter.
type Option func(*Counter)

// WithMonomorphism counts non-induced embeddings: extra graph edges between
// mapped vertices are allowed.
func WithMonomorphism() Option {
	return func(c *Counter) { c.induced = false }
}

// NewCounter returns a Counter with induced semantics unless overridden.
func NewCounter(opts ...Option) *Counter {
	c := &Counter{induced: true}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Induced reports whether the counter uses node-induced semantics.
func (c *Counter) Induced() bool { return c.induced }

// Count returns, for every pattern, the number of embeddings summed over the
// connected components of g that have more than one vertex. Counts are zero
// for patterns with no embedding. ctx is checked while labelling components
// and between root candidates.
func (c *Counter) Count(ctx context.Context, g *core.Graph, patterns []catalog.Pattern) (Counts, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	counts := make(Counts, len(patterns))
	plans := make([]plan, len(patterns))
	for i, p := range patterns {
		plans[i] = newPlan(p)
	}
	comps, err := bfs.ComponentsContext(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("iso: components: %w", err)
	}
	for _, comp := range bfs.NonTrivial(comps) {
		t := newTarget(g, comp)
		for i := range plans {
			n, err := c.countIn(ctx, t, &plans[i])
			if err != nil {
				return nil, fmt.Errorf("iso: pattern %s: %w", patterns[i].Key(), err)
			}
			counts[i] += n
		}
	}

	return counts, nil
}

// target is a dense, index-based snapshot of one component.
type target struct {
	adj [][]int // sorted neighbor indices
}

// newTarget indexes the subgraph of g induced by comp.
func newTarget(g *core.Graph, comp []int64) *target {
	index := make(map[int64]int, len(comp))
	keep := make(map[int64]bool, len(comp))
	for i, id := range comp {
		index[id] = i
		keep[id] = true
	}
	sub := core.InducedSubgraph(g, keep)
	t := &target{adj: make([][]int, len(comp))}
	for i, id := range comp {
		nbrs := make([]int, 0)
		sub.ForEachNeighbor(id, func(nbr int64) {
			if j := index[nbr]; j != i {
				nbrs = append(nbrs, j)
			}
		})
		sort.Ints(nbrs)
		t.adj[i] = nbrs
	}

	return t
}

func (t *target) hasEdge(u, v int) bool {
	nbrs := t.adj[u]
	k := sort.SearchInts(nbrs, v)

	return k < len(nbrs) && nbrs[k] == v
}

// plan is a matching order for one pattern: every node after the first has
// an earlier neighbor (anchor) whose image bounds its candidates.
type plan struct {
	k      int
	order  []int // pattern nodes in matching order
	anchor []int // position in order of an earlier neighbor, -1 for the root
	edge   [][]bool
	deg    []int
}

func newPlan(p catalog.Pattern) plan {
	k := p.NodeCount()
	pl := plan{k: k, edge: make([][]bool, k), deg: make([]int, k)}
	for i := range pl.edge {
		pl.edge[i] = make([]bool, k)
	}
	for _, e := range p.Edges() {
		pl.edge[e[0]][e[1]] = true
		pl.edge[e[1]][e[0]] = true
		pl.deg[e[0]]++
		pl.deg[e[1]]++
	}
	root := 0
	for v := 1; v < k; v++ {
		if pl.deg[v] > pl.deg[root] {
			root = v
		}
	}
	pos := make([]int, k)
	for i := range pos {
		pos[i] = -1
	}
	pl.order = append(pl.order, root)
	pl.anchor = append(pl.anchor, -1)
	pos[root] = 0
	for head := 0; head < len(pl.order); head++ {
		u := pl.order[head]
		for v := 0; v < k; v++ {
			if pl.edge[u][v] && pos[v] < 0 {
				pos[v] = len(pl.order)
				pl.order = append(pl.order, v)
				pl.anchor = append(pl.anchor, head)
			}
		}
	}

	return pl
}

// countIn counts embeddings of pl into t by backtracking.
func (c *Counter) countIn(ctx context.Context, t *target, pl *plan) (int64, error) {
	if pl.k > len(t.adj) || len(pl.order) < pl.k {
		// Pattern larger than the component, or disconnected pattern.
		return 0, nil
	}
	image := make([]int, pl.k) // image[position in order] = target vertex
	used := make([]bool, len(t.adj))
	var total int64

	var extend func(pos int)
	extend = func(pos int) {
		if pos == pl.k {
			total++
			return
		}
		pn := pl.order[pos]
		for _, cand := range t.adj[image[pl.anchor[pos]]] {
			if used[cand] || len(t.adj[cand]) < pl.deg[pn] || !c.consistent(t, pl, image, pos, cand) {
				continue
			}
			used[cand] = true
			image[pos] = cand
			extend(pos + 1)
			used[cand] = false
		}
	}

	rootDeg := pl.deg[pl.order[0]]
	for root := range t.adj {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if len(t.adj[root]) < rootDeg {
			continue
		}
		used[root] = true
		image[0] = root
		extend(1)
		used[root] = false
	}

	return total, nil
}

// consistent checks cand against every already-mapped pattern node.
func (c *Counter) consistent(t *target, pl *plan, image []int, pos, cand int) bool {
	pn := pl.order[pos]
	for q := 0; q < pos; q++ {
		want := pl.edge[pn][pl.order[q]]
		if want || c.induced {
			if t.hasEdge(cand, image[q]) != want {
				return false
			}
		}
	}

	return true
}
