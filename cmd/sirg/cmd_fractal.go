package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sirg/builder"
	"github.com/katalvlaran/sirg/export"
)

func newFractalCmd(a *app) *cobra.Command {
	var (
		iterations int
		out        string
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "fractal",
		Short: "Grow a graph by composing relabelled copies of the configured seed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Growth.RandomSeed
			}
			rng := rand.New(rand.NewSource(seed))
			base, err := buildSeed(a.cfg.Seed, rng)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithRand(rng)},
				builder.Fractal(base, iterations))
			if err != nil {
				return err
			}
			if out != "" {
				if err := export.WriteFile(out, g); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "fractal: %d iterations, %d nodes, %d edges\n",
				iterations, g.VertexCount(), g.EdgeCount())

			return nil
		},
	}
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 3, "number of copies")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.net, .edges or .dot)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}
