// SPDX-License-Identifier: MIT
//
// File: catalog.go
// Role: Enumeration of the small connected patterns the growth engine samples from.
// Determinism:
//   - Patterns are ordered by node count, then by enumeration order within a
//     node count; Build is a pure function of its arguments.

package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrBadSize indicates a maxSize outside the range supported by the chosen mode.
	ErrBadSize = errors.New("catalog: bad pattern size bound")
)

// Mode selects how connected graphs on v nodes are enumerated.
type Mode int

const (
	// Exhaustive enumerates every edge subset of K_v that keeps all v nodes connected.
	Exhaustive Mode = iota
	// EdgeRemovalChain removes edges from K_v one at a time, last edge first,
	// keeping each intermediate graph that is still connected, plus K_v itself.
	EdgeRemovalChain
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Exhaustive:
		return "exhaustive"
	case EdgeRemovalChain:
		return "chain"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "exhaustive" or "chain" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "exhaustive", "":
		return Exhaustive, nil
	case "chain":
		return EdgeRemovalChain, nil
	default:
		return 0, fmt.Errorf("catalog: unknown mode %q", s)
	}
}

// Size bounds.
const (
	MinSize           = 2
	MaxExhaustiveSize = 6
	MaxChainSize      = 12
	MaxDedupSize      = 8
)

type options struct {
	mode  Mode
	dedup bool
}

// Option configures Build.
type Option func(*options)

// WithMode selects the enumeration mode (default Exhaustive).
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithDedup keeps one representative per isomorphism class when true
// (default true). With false, every enumerated graph is kept.
func WithDedup(on bool) Option {
	return func(o *options) { o.dedup = on }
}

// Catalog is the ordered, read-only pattern set produced by Build.
type Catalog struct {
	patterns []Pattern
	maxSize  int
	mode     Mode
	dedup    bool
}

// Build enumerates connected patterns with 2..maxSize nodes.
//
// Errors:
//   - ErrBadSize if maxSize < MinSize, exceeds the mode's bound, or exceeds
//     MaxDedupSize with dedup enabled.
func Build(maxSize int, opts ...Option) (*Catalog, error) {
	o := options{mode: Exhaustive, dedup: true}
	for _, opt := range opts {
		opt(&o)
	}
	if maxSize < MinSize {
		return nil, fmt.Errorf("Build: maxSize=%d < min=%d: %w", maxSize, MinSize, ErrBadSize)
	}
	limit := MaxExhaustiveSize
	if o.mode == EdgeRemovalChain {
		limit = MaxChainSize
	}
	if maxSize > limit {
		return nil, fmt.Errorf("Build: maxSize=%d > %s limit %d: %w", maxSize, o.mode, limit, ErrBadSize)
	}
	if o.dedup && maxSize > MaxDedupSize {
		return nil, fmt.Errorf("Build: maxSize=%d > dedup limit %d: %w", maxSize, MaxDedupSize, ErrBadSize)
	}

	var set canonicSet
	defer set.Close()

	cat := &Catalog{maxSize: maxSize, mode: o.mode, dedup: o.dedup}
	for v := MinSize; v <= maxSize; v++ {
		var found []Pattern
		if o.mode == EdgeRemovalChain {
			found = removalChain(v)
		} else {
			found = connectedSubsets(v)
		}
		for _, p := range found {
			if o.dedup {
				added, err := set.TryAdd(p)
				if err != nil {
					return nil, fmt.Errorf("Build: %w", err)
				}
				if !added {
					continue
				}
			}
			cat.patterns = append(cat.patterns, p)
		}
	}

	return cat, nil
}

// completeEdges lists the pairs of K_v in lexicographic order.
func completeEdges(v int) [][2]int {
	out := make([][2]int, 0, v*(v-1)/2)
	for i := 0; i < v; i++ {
		for j := i + 1; j < v; j++ {
			out = append(out, [2]int{i, j})
		}
	}

	return out
}

// removalChain implements EdgeRemovalChain for one node count.
// Once a removal disconnects the graph no later state can reconnect, so the
// chain yields exactly the connected prefix followed by K_v.
func removalChain(v int) []Pattern {
	all := completeEdges(v)
	var out []Pattern
	for cut := len(all) - 1; cut >= 1; cut-- {
		if !connectedEdges(v, all[:cut]) {
			break
		}
		out = append(out, newPattern(v, all[:cut]))
	}

	return append(out, newPattern(v, all))
}

// connectedSubsets implements Exhaustive for one node count, densest first.
func connectedSubsets(v int) []Pattern {
	all := completeEdges(v)
	var out []Pattern
	for mask := (1 << len(all)) - 1; mask > 0; mask-- {
		if popcount(mask) < v-1 {
			continue
		}
		edges := make([][2]int, 0, len(all))
		for i, e := range all {
			if mask&(1<<(len(all)-1-i)) != 0 {
				edges = append(edges, e)
			}
		}
		if connectedEdges(v, edges) {
			out = append(out, newPattern(v, edges))
		}
	}

	return out
}

func popcount(x int) int {
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}

	return n
}

// Len returns the number of patterns.
func (c *Catalog) Len() int { return len(c.patterns) }

// At returns pattern i in catalog order.
func (c *Catalog) At(i int) Pattern { return c.patterns[i] }

// Patterns returns a copy of the ordered pattern list.
func (c *Catalog) Patterns() []Pattern {
	out := make([]Pattern, len(c.patterns))
	copy(out, c.patterns)

	return out
}

// MaxSize returns the node-count bound the catalog was built with.
func (c *Catalog) MaxSize() int { return c.maxSize }

// Mode returns the enumeration mode.
func (c *Catalog) Mode() Mode { return c.mode }

// Deduplicated reports whether isomorphic duplicates were removed.
func (c *Catalog) Deduplicated() bool { return c.dedup }
