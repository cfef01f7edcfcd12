// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options for Engine.
//
// Contract:
//   - Options panic on nil pointers and functions (programmer error).
//   - Numeric ranges are checked by New and reported as ErrConfiguration,
//     so values read from configuration files surface as errors.

package growth

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"github.com/katalvlaran/sirg/iso"
)

// Defaults used by New.
const (
	DefaultBeta              = 100
	DefaultMu                = 0.15
	DefaultWorkers           = 1
	DefaultMaxAttachAttempts = 1000
	DefaultSnapshotEvery     = 10
)

// SelectionRule decides when a main-component node may join an interior selection.
type SelectionRule int

const (
	// RuleIndependent rejects a node adjacent to, or sharing a neighbor with,
	// any node already selected.
	RuleIndependent SelectionRule = iota
	// RuleNoSharedNeighbor only rejects a node sharing a neighbor with a
	// selected node; adjacency to a selected node is allowed.
	RuleNoSharedNeighbor
)

func (r SelectionRule) String() string {
	switch r {
	case RuleIndependent:
		return "independent"
	case RuleNoSharedNeighbor:
		return "no-shared-neighbor"
	default:
		return "unknown"
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithBeta sets the number of candidates generated per iteration.
func WithBeta(beta int) Option {
	return func(e *Engine) { e.beta = beta }
}

// WithMu sets the probability of interior attachment, in [0,1].
func WithMu(mu float64) Option {
	return func(e *Engine) { e.mu = mu }
}

// WithWorkers bounds how many candidates are built concurrently.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithMaxAttachAttempts bounds the node draws of one interior selection.
func WithMaxAttachAttempts(n int) Option {
	return func(e *Engine) { e.maxAttempts = n }
}

// WithSnapshotEvery hands the graph to the sink every n iterations; 0 disables snapshots.
func WithSnapshotEvery(n int) Option {
	return func(e *Engine) { e.snapshotEvery = n }
}

// WithMaxIterations makes Grow fail with ErrIterationLimit after n iterations; 0 means unbounded.
func WithMaxIterations(n int) Option {
	return func(e *Engine) { e.maxIterations = n }
}

// WithSelectionRule sets the interior selection rule.
func WithSelectionRule(r SelectionRule) Option {
	return func(e *Engine) { e.rule = r }
}

// WithExactCeiling toggles the headroom filter: when on, only patterns whose
// new nodes fit under the node ceiling can be drawn.
func WithExactCeiling(on bool) Option {
	return func(e *Engine) { e.exact = on }
}

// WithSeed seeds the engine's random source. Seed 0 maps to the default seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rngFromSeed(seed) }
}

// WithRand sets the engine's random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("growth: WithRand(nil)")
	}
	return func(e *Engine) { e.rng = r }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("growth: WithLogger(nil)")
	}
	return func(e *Engine) { e.logger = l }
}

// WithSink sets where intermediate graphs are saved. Panics on nil.
func WithSink(s Sink) Option {
	if s == nil {
		panic("growth: WithSink(nil)")
	}
	return func(e *Engine) { e.sink = s }
}

// WithCounter replaces the embedding counter used for the prior. Panics on nil.
func WithCounter(c *iso.Counter) Option {
	if c == nil {
		panic("growth: WithCounter(nil)")
	}
	return func(e *Engine) { e.counter = c }
}

// WithRunID fixes the identifier reported in Result and log records.
func WithRunID(id uuid.UUID) Option {
	return func(e *Engine) { e.runID = id }
}

// ParseSelectionRule accepts the names printed by SelectionRule.String.
func ParseSelectionRule(s string) (SelectionRule, error) {
	switch s {
	case "independent", "":
		return RuleIndependent, nil
	case "no-shared-neighbor":
		return RuleNoSharedNeighbor, nil
	}

	return 0, fmt.Errorf("ParseSelectionRule(%q): %w", s, ErrConfiguration)
}
