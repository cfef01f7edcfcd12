// Package bfs provides options, results and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures a traversal.
type Option func(*Options)

// Options holds the traversal parameters.
type Options struct {
	// Ctx allows cancellation; it is checked once per dequeued vertex.
	Ctx context.Context
}

// DefaultOptions returns a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result holds the outcome of a traversal. Parent has no entry for the start vertex.
type Result struct {
	Order  []int64
	Depth  map[int64]int
	Parent map[int64]int64
}

// Reached reports whether id was visited.
func (r *Result) Reached(id int64) bool {
	_, ok := r.Depth[id]

	return ok
}

// PathTo reconstructs the start-to-dest path through the BFS tree.
func (r *Result) PathTo(dest int64) ([]int64, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := make([]int64, r.Depth[dest]+1)
	cur := dest
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
