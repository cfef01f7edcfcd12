// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links and visit order, together with the
// connected-component queries the growth engine relies on.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sirg/core"
)

// walker encapsulates mutable traversal state.
type walker struct {
	graph *core.Graph
	ctx   context.Context
	queue []int64
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Neighbors are expanded in ascending ID order, so Order is deterministic.
// Returns ErrGraphNil, ErrStartVertexNotFound or ctx.Err() on cancellation.
func BFS(g *core.Graph, start int64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph: g,
		ctx:   o.Ctx,
		res: &Result{
			Depth:  make(map[int64]int),
			Parent: make(map[int64]int64),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		id := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[id]
		w.res.Order = append(w.res.Order, id)
		nbrs, err := w.graph.NeighborIDs(id)
		if err != nil {
			return err
		}
		for _, nbr := range nbrs {
			if w.res.Reached(nbr) {
				continue
			}
			w.res.Depth[nbr] = depth + 1
			w.res.Parent[nbr] = id
			w.queue = append(w.queue, nbr)
		}
	}

	return nil
}
