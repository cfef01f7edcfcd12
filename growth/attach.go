// SPDX-License-Identifier: MIT
//
// File: attach.go
// Role: The attachment rule: merge one drawn pattern into a copy of the graph.
//
// Strategies:
//   - Interior: every pattern node lands on an existing main-component node
//     chosen under the configured SelectionRule.
//   - Isolate: non-final pattern nodes reuse isolates, then fresh IDs; the
//     final node lands on a uniformly drawn main-component node.

package growth

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sirg/bfs"
	"github.com/katalvlaran/sirg/catalog"
	"github.com/katalvlaran/sirg/core"
	"github.com/katalvlaran/sirg/metrics"
)

// restartAfter is the number of consecutive rejected draws after which an
// interior selection starts over from scratch.
const restartAfter = 64

// Strategy is the attachment strategy used for one candidate.
type Strategy int

const (
	StrategyIsolate Strategy = iota
	StrategyInterior
)

func (s Strategy) String() string {
	if s == StrategyInterior {
		return "interior"
	}

	return "isolate"
}

// AttachReport describes one attachment.
type AttachReport struct {
	Strategy Strategy
	// Mapping[i] is the graph vertex pattern node i was identified with.
	Mapping    []int64
	Fresh      int // vertices created for this attachment
	Reused     int // isolates consumed
	Attempts   int // node draws used by an interior selection
	EdgesAdded int
}

// view caches the structure of the pre-iteration graph shared by all candidates.
type view struct {
	main     []int64
	isolates []int64
	next     int64
}

func newView(g *core.Graph) view {
	return view{main: bfs.MainComponent(g), isolates: g.Isolates(), next: g.NextVertexID()}
}

// Attach returns a deep copy of g with pattern merged in; g is not modified.
// The strategy is interior with probability mu, decided by one draw from rng.
//
// Errors:
//   - ErrDisconnectedInput if g is nil or empty.
//   - ErrAttachmentExhausted if no interior selection was found.
func (e *Engine) Attach(g *core.Graph, pattern catalog.Pattern, rng *rand.Rand) (*core.Graph, AttachReport, error) {
	if g == nil || g.VertexCount() == 0 {
		return nil, AttachReport{}, fmt.Errorf("Attach: %w", ErrDisconnectedInput)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	return e.attach(g, newView(g), pattern, rng)
}

func (e *Engine) attach(g *core.Graph, v view, pattern catalog.Pattern, rng *rand.Rand) (*core.Graph, AttachReport, error) {
	k := pattern.NodeCount()
	rep := AttachReport{Mapping: make([]int64, k)}
	u := rng.Float64()
	if e.mu == 1 || u < e.mu {
		rep.Strategy = StrategyInterior
		sel, attempts, err := e.selectInterior(g, v.main, k, rng)
		rep.Attempts = attempts
		metrics.AttachAttempts.Observe(float64(attempts))
		if err != nil {
			return nil, rep, err
		}
		copy(rep.Mapping, sel)
	} else {
		rep.Strategy = StrategyIsolate
		final := v.main[rng.Intn(len(v.main))]
		next := v.next
		slot := 0
		for _, iso := range v.isolates {
			if slot == k-1 {
				break
			}
			if iso == final {
				continue
			}
			rep.Mapping[slot] = iso
			rep.Reused++
			slot++
		}
		for ; slot < k-1; slot++ {
			rep.Mapping[slot] = next
			next++
			rep.Fresh++
		}
		rep.Mapping[k-1] = final
	}

	out := g.Clone()
	pairs := make([][2]int64, 0, pattern.EdgeCount())
	for _, edge := range pattern.Edges() {
		pairs = append(pairs, [2]int64{rep.Mapping[edge[0]], rep.Mapping[edge[1]]})
	}
	added, err := out.MergeEdges(pairs)
	if err != nil {
		return nil, rep, fmt.Errorf("Attach: %w", err)
	}
	rep.EdgesAdded = added
	metrics.CandidatesGenerated.WithLabelValues(rep.Strategy.String()).Inc()

	return out, rep, nil
}

// selectInterior draws main-component nodes until k of them satisfy e.rule.
func (e *Engine) selectInterior(g *core.Graph, main []int64, k int, rng *rand.Rand) ([]int64, int, error) {
	if len(main) < k {
		return nil, 0, fmt.Errorf("Attach: main component has %d nodes, pattern needs %d: %w",
			len(main), k, ErrAttachmentExhausted)
	}
	selected := make([]int64, 0, k)
	chosen := make(map[int64]bool, k)
	blocked := make(map[int64]bool) // neighbors of selected nodes
	rejected := 0
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		c := main[rng.Intn(len(main))]
		if e.admissible(g, c, chosen, blocked) {
			selected = append(selected, c)
			chosen[c] = true
			g.ForEachNeighbor(c, func(nbr int64) { blocked[nbr] = true })
			rejected = 0
			if len(selected) == k {
				return selected, attempt, nil
			}
			continue
		}
		rejected++
		if rejected >= restartAfter {
			selected = selected[:0]
			chosen = make(map[int64]bool, k)
			blocked = make(map[int64]bool)
			rejected = 0
		}
	}

	return nil, e.maxAttempts, fmt.Errorf("Attach: no %d-node selection after %d draws: %w",
		k, e.maxAttempts, ErrAttachmentExhausted)
}

func (e *Engine) admissible(g *core.Graph, c int64, chosen, blocked map[int64]bool) bool {
	if chosen[c] {
		return false
	}
	if e.rule == RuleIndependent && blocked[c] {
		return false
	}
	ok := true
	g.ForEachNeighbor(c, func(nbr int64) {
		if blocked[nbr] {
			ok = false
		}
	})

	return ok
}
