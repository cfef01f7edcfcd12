package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sirg/bfs"
	"github.com/katalvlaran/sirg/catalog"
	"github.com/katalvlaran/sirg/config"
	"github.com/katalvlaran/sirg/export"
	"github.com/katalvlaran/sirg/growth"
	"github.com/katalvlaran/sirg/iso"
	"github.com/katalvlaran/sirg/stats"
)

type growFlags struct {
	ceiling   int
	beta      int
	mu        float64
	workers   int
	seed      int64
	statistic string
	out       string
	snapDir   string
	store     string
	metrics   string
}

func newGrowCmd(a *app) *cobra.Command {
	f := &growFlags{}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow the configured seed graph to the node ceiling",
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyGrowFlags(cmd, f, a.cfg)
			if err := config.Validate(a.cfg); err != nil {
				return err
			}
			return a.grow(cmd.Context(), cmd)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.ceiling, "ceiling", 0, "node ceiling")
	fl.IntVar(&f.beta, "beta", 0, "candidates per iteration")
	fl.Float64Var(&f.mu, "mu", 0, "probability of interior attachment")
	fl.IntVar(&f.workers, "workers", 0, "concurrent candidate workers")
	fl.Int64Var(&f.seed, "seed", 0, "random seed")
	fl.StringVar(&f.statistic, "statistic", "", "fitness statistic: "+fmt.Sprint(stats.Names()))
	fl.StringVarP(&f.out, "out", "o", "", "output file (.net, .edges or .dot)")
	fl.StringVar(&f.snapDir, "snapshot-dir", "", "directory for progress files")
	fl.StringVar(&f.store, "store", "", "badger directory for snapshots")
	fl.StringVar(&f.metrics, "metrics-file", "", "write Prometheus metrics to this file after the run")

	return cmd
}

// applyGrowFlags copies explicitly set flags over the loaded configuration.
func applyGrowFlags(cmd *cobra.Command, f *growFlags, cfg *config.RunConfig) {
	set := cmd.Flags().Changed
	if set("ceiling") {
		cfg.Growth.NodeCeiling = f.ceiling
	}
	if set("beta") {
		cfg.Growth.Beta = f.beta
	}
	if set("mu") {
		cfg.Growth.Mu = f.mu
	}
	if set("workers") {
		cfg.Growth.Workers = f.workers
	}
	if set("seed") {
		cfg.Growth.RandomSeed = f.seed
	}
	if set("statistic") {
		cfg.Growth.Statistic = f.statistic
	}
	if set("out") {
		cfg.Output.Path = f.out
	}
	if set("snapshot-dir") {
		cfg.Snapshots.Dir = f.snapDir
	}
	if set("store") {
		cfg.Snapshots.Store = f.store
	}
	if set("metrics-file") {
		cfg.Metrics.Textfile = f.metrics
	}
}

func (a *app) grow(ctx context.Context, cmd *cobra.Command) error {
	cfg := a.cfg
	rng := rand.New(rand.NewSource(cfg.Growth.RandomSeed))
	seed, err := buildSeed(cfg.Seed, rng)
	if err != nil {
		return err
	}

	mode, _ := catalog.ParseMode(cfg.Growth.CatalogMode)
	cat, err := catalog.Build(cfg.Growth.Tau, catalog.WithMode(mode), catalog.WithDedup(cfg.Growth.Dedup))
	if err != nil {
		return err
	}
	stat, _ := stats.ByName(cfg.Growth.Statistic)
	rule, _ := growth.ParseSelectionRule(cfg.Growth.SelectionRule)

	var counterOpts []iso.Option
	if !cfg.Growth.Induced {
		counterOpts = append(counterOpts, iso.WithMonomorphism())
	}
	runID := uuid.New()
	opts := []growth.Option{
		growth.WithBeta(cfg.Growth.Beta),
		growth.WithMu(cfg.Growth.Mu),
		growth.WithWorkers(cfg.Growth.Workers),
		growth.WithMaxAttachAttempts(cfg.Growth.MaxAttachAttempts),
		growth.WithMaxIterations(cfg.Growth.MaxIterations),
		growth.WithSelectionRule(rule),
		growth.WithExactCeiling(cfg.Growth.ExactCeiling),
		growth.WithSnapshotEvery(cfg.Snapshots.Every),
		growth.WithRand(rng),
		growth.WithLogger(a.logger),
		growth.WithCounter(iso.NewCounter(counterOpts...)),
		growth.WithRunID(runID),
	}

	var sinks growth.MultiSink
	if cfg.Snapshots.Dir != "" {
		format, _ := export.ParseFormat(cfg.Snapshots.Format)
		sinks = append(sinks, export.FileSink{Dir: cfg.Snapshots.Dir, Prefix: cfg.Snapshots.Prefix, Format: format})
	}
	if cfg.Snapshots.Store != "" {
		store, err := export.OpenSnapshotStore(cfg.Snapshots.Store, export.WithStoreLogger(a.logger))
		if err != nil {
			return err
		}
		defer store.Close()
		sinks = append(sinks, store.Sink(runID))
	}
	if len(sinks) > 0 {
		opts = append(opts, growth.WithSink(sinks))
	}

	eng, err := growth.New(cat.Patterns(), growth.Statistic(stat), cfg.Growth.NodeCeiling, opts...)
	if err != nil {
		return err
	}

	res, err := eng.Grow(ctx, seed)
	if err != nil {
		return err
	}
	if cfg.Output.Path != "" {
		if err := export.WriteFile(cfg.Output.Path, res.Graph); err != nil {
			return err
		}
	}
	if cfg.Metrics.Textfile != "" {
		if err := prometheus.WriteToTextfile(cfg.Metrics.Textfile, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d iterations, %d nodes, %d edges, %d components, %s=%.6f, connect edges %d\n",
		res.RunID, res.Iterations, res.Graph.VertexCount(), res.Graph.EdgeCount(),
		bfs.ComponentCount(res.Graph), cfg.Growth.Statistic, stat(res.Graph), res.ConnectEdges)

	return nil
}
