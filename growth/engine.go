// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: The growth loop: prior, candidate generation, selection, connecting.
//
// Determinism:
//   - For a fixed seed the result does not depend on WithWorkers: candidate i
//     always uses the i-th derived stream and the tie-break uses the master
//     source on the loop goroutine.
// Concurrency:
//   - One Engine runs one Grow at a time; candidates are built concurrently.

package growth

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sirg/bfs"
	"github.com/katalvlaran/sirg/catalog"
	"github.com/katalvlaran/sirg/core"
	"github.com/katalvlaran/sirg/iso"
	"github.com/katalvlaran/sirg/metrics"
	"github.com/katalvlaran/sirg/sampler"
)

// Statistic scores a candidate graph; higher is better. It is called
// concurrently on distinct graphs and must not return NaN.
type Statistic func(g *core.Graph) float64

// Engine grows a seed graph up to a node ceiling.
type Engine struct {
	patterns []catalog.Pattern
	stat     Statistic
	ceiling  int

	beta          int
	mu            float64
	workers       int
	maxAttempts   int
	snapshotEvery int
	maxIterations int
	rule          SelectionRule
	exact         bool

	rng     *rand.Rand
	logger  *slog.Logger
	sink    Sink
	counter *iso.Counter
	runID   uuid.UUID
}

// Result is the outcome of a successful Grow.
type Result struct {
	Graph        *core.Graph
	Iterations   int
	ConnectEdges int
	BestFitness  float64 // fitness of the last selected candidate, NaN with no iteration
	RunID        uuid.UUID
}

// New validates the configuration and returns an Engine.
//
// Errors: ErrConfiguration for an empty catalog, a nil statistic, a ceiling
// below 1 or an option out of range.
func New(patterns []catalog.Pattern, stat Statistic, nodeCeiling int, opts ...Option) (*Engine, error) {
	e := &Engine{
		patterns:      append([]catalog.Pattern(nil), patterns...),
		stat:          stat,
		ceiling:       nodeCeiling,
		beta:          DefaultBeta,
		mu:            DefaultMu,
		workers:       DefaultWorkers,
		maxAttempts:   DefaultMaxAttachAttempts,
		snapshotEvery: DefaultSnapshotEvery,
		rule:          RuleIndependent,
		exact:         true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rngFromSeed(defaultSeed)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.counter == nil {
		e.counter = iso.NewCounter()
	}
	if e.runID == uuid.Nil {
		e.runID = uuid.New()
	}
	if err := e.validate(); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Engine) validate() error {
	switch {
	case len(e.patterns) == 0:
		return fmt.Errorf("New: empty pattern catalog: %w", ErrConfiguration)
	case e.stat == nil:
		return fmt.Errorf("New: nil statistic: %w", ErrConfiguration)
	case e.ceiling < 1:
		return fmt.Errorf("New: node ceiling %d < 1: %w", e.ceiling, ErrConfiguration)
	case e.beta < 1:
		return fmt.Errorf("New: beta %d < 1: %w", e.beta, ErrConfiguration)
	case math.IsNaN(e.mu) || e.mu < 0 || e.mu > 1:
		return fmt.Errorf("New: mu %v outside [0,1]: %w", e.mu, ErrConfiguration)
	case e.workers < 1:
		return fmt.Errorf("New: workers %d < 1: %w", e.workers, ErrConfiguration)
	case e.maxAttempts < 1:
		return fmt.Errorf("New: max attach attempts %d < 1: %w", e.maxAttempts, ErrConfiguration)
	case e.snapshotEvery < 0:
		return fmt.Errorf("New: snapshot interval %d < 0: %w", e.snapshotEvery, ErrConfiguration)
	case e.maxIterations < 0:
		return fmt.Errorf("New: max iterations %d < 0: %w", e.maxIterations, ErrConfiguration)
	case e.rule != RuleIndependent && e.rule != RuleNoSharedNeighbor:
		return fmt.Errorf("New: selection rule %d: %w", e.rule, ErrConfiguration)
	}
	for i, p := range e.patterns {
		if p.NodeCount() < 2 {
			return fmt.Errorf("New: pattern %d has %d nodes: %w", i, p.NodeCount(), ErrConfiguration)
		}
	}

	return nil
}

// RunID returns the identifier attached to this engine's results.
func (e *Engine) RunID() uuid.UUID { return e.runID }

type candidate struct {
	graph   *core.Graph
	report  AttachReport
	fitness float64
}

// Grow copies seed and grows the copy until it holds the node ceiling, then
// joins any leftover components to the main one. seed is never modified.
//
// Errors are *GrowthError values wrapping ErrDisconnectedInput,
// ErrConfiguration, ErrAttachmentExhausted, ErrIterationLimit, ErrSink or
// ctx.Err().
func (e *Engine) Grow(ctx context.Context, seed *core.Graph) (*Result, error) {
	if err := validateSeed(seed); err != nil {
		return nil, failure(0, PhaseValidate, err)
	}
	if e.mu == 1 && seed.VertexCount() < e.ceiling {
		return nil, failure(0, PhaseValidate,
			fmt.Errorf("Grow: mu=1 never adds nodes: %w", ErrConfiguration))
	}

	log := e.logger.With("run_id", e.runID.String())
	log.Info("growth started",
		"nodes", seed.VertexCount(), "edges", seed.EdgeCount(), "ceiling", e.ceiling,
		"patterns", len(e.patterns), "beta", e.beta, "mu", e.mu, "workers", e.workers)

	g := seed.Clone()
	res := &Result{RunID: e.runID, BestFitness: math.NaN()}
	for g.VertexCount() < e.ceiling {
		if err := ctx.Err(); err != nil {
			return nil, failure(res.Iterations, PhaseGrowing, err)
		}
		if e.maxIterations > 0 && res.Iterations >= e.maxIterations {
			return nil, failure(res.Iterations, PhaseGrowing,
				fmt.Errorf("Grow: %d nodes after %d iterations: %w", g.VertexCount(), res.Iterations, ErrIterationLimit))
		}
		res.Iterations++
		iter := res.Iterations
		start := time.Now()

		dist, err := e.prior(ctx, g)
		if err != nil {
			return nil, failure(iter, PhaseGrowing, err)
		}
		cands, err := e.candidates(ctx, g, dist)
		if err != nil {
			return nil, failure(iter, PhaseCandidates, err)
		}
		best := e.choose(cands)
		g = best.graph
		res.BestFitness = best.fitness

		metrics.IterationsTotal.Inc()
		metrics.GraphNodes.Set(float64(g.VertexCount()))
		metrics.IterationDuration.Observe(float64(time.Since(start).Milliseconds()))
		log.Debug("iteration",
			"iteration", iter, "nodes", g.VertexCount(), "edges", g.EdgeCount(),
			"components", bfs.ComponentCount(g), "fitness", best.fitness,
			"strategy", best.report.Strategy.String(), "interior", countInterior(cands))

		if e.sink != nil && e.snapshotEvery > 0 && iter%e.snapshotEvery == 0 {
			if err := e.sink.Save(ctx, iter, g); err != nil {
				return nil, failure(iter, PhaseSnapshot, fmt.Errorf("%w: %w", ErrSink, err))
			}
		}
	}

	added, err := Connect(g, e.rng)
	if err != nil {
		return nil, failure(res.Iterations, PhaseConnecting, err)
	}
	res.ConnectEdges = added
	res.Graph = g
	log.Info("growth finished",
		"iterations", res.Iterations, "nodes", g.VertexCount(), "edges", g.EdgeCount(),
		"connect_edges", added)

	return res, nil
}

func validateSeed(seed *core.Graph) error {
	if seed == nil || seed.VertexCount() == 0 {
		return fmt.Errorf("Grow: empty seed: %w", ErrDisconnectedInput)
	}
	if seed.EdgeCount() == 0 {
		return fmt.Errorf("Grow: seed has no edges: %w", ErrDisconnectedInput)
	}
	if n := len(bfs.NonTrivialComponents(seed)); n > 1 {
		return fmt.Errorf("Grow: seed has %d non-trivial components: %w", n, ErrDisconnectedInput)
	}

	return nil
}

// prior counts embeddings in g and builds the sampling distribution. Under the
// exact ceiling, patterns needing more fresh nodes than the headroom get zero mass.
func (e *Engine) prior(ctx context.Context, g *core.Graph) (*sampler.Distribution, error) {
	counts, err := e.counter.Count(ctx, g, e.patterns)
	if err != nil {
		return nil, fmt.Errorf("Grow: count embeddings: %w", err)
	}
	if e.exact {
		headroom := e.ceiling - g.VertexCount()
		for i, p := range e.patterns {
			if p.NodeCount()-1 > headroom {
				counts[i] = 0
			}
		}
	}
	dist, err := sampler.Build(e.patterns, counts)
	if err != nil {
		return nil, fmt.Errorf("Grow: prior: %w: %w", ErrConfiguration, err)
	}

	return dist, nil
}

// candidates builds beta attachments of g concurrently; results are indexed
// by candidate number.
func (e *Engine) candidates(ctx context.Context, g *core.Graph, dist *sampler.Distribution) ([]candidate, error) {
	seeds := streamSeeds(e.rng, e.beta)
	v := newView(g)
	out := make([]candidate, e.beta)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(e.workers)
	for i := range seeds {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(seeds[i]))
			p, err := dist.Draw(rng.Float64())
			if err != nil {
				return err
			}
			cg, rep, err := e.attach(g, v, p, rng)
			if err != nil {
				return err
			}
			fit := e.stat(cg)
			if math.IsNaN(fit) {
				return fmt.Errorf("Grow: statistic returned NaN: %w", ErrConfiguration)
			}
			out[i] = candidate{graph: cg, report: rep, fitness: fit}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// choose groups candidates by fitness and picks uniformly within the best group.
func (e *Engine) choose(cands []candidate) candidate {
	groups := treemap.NewWith(utils.Float64Comparator)
	for i, c := range cands {
		if idx, ok := groups.Get(c.fitness); ok {
			groups.Put(c.fitness, append(idx.([]int), i))
			continue
		}
		groups.Put(c.fitness, []int{i})
	}
	_, best := groups.Max()
	idx := best.([]int)

	return cands[idx[e.rng.Intn(len(idx))]]
}

func countInterior(cands []candidate) int {
	n := 0
	for _, c := range cands {
		if c.report.Strategy == StrategyInterior {
			n++
		}
	}

	return n
}
