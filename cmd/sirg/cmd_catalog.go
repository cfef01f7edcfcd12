package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sirg/catalog"
)

func newCatalogCmd(a *app) *cobra.Command {
	var (
		tau   int
		mode  string
		dedup bool
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the connected patterns used as growth building blocks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("tau") {
				tau = a.cfg.Growth.Tau
			}
			if !cmd.Flags().Changed("mode") {
				mode = a.cfg.Growth.CatalogMode
			}
			if !cmd.Flags().Changed("dedup") {
				dedup = a.cfg.Growth.Dedup
			}
			m, err := catalog.ParseMode(mode)
			if err != nil {
				return err
			}
			cat, err := catalog.Build(tau, catalog.WithMode(m), catalog.WithDedup(dedup))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, p := range cat.Patterns() {
				fmt.Fprintf(out, "%3d  nodes=%d edges=%d  %s\n", i, p.NodeCount(), p.EdgeCount(), p.Key())
			}
			a.logger.Debug("catalog built", "tau", tau, "mode", m.String(), "dedup", dedup, "patterns", cat.Len())

			return nil
		},
	}
	cmd.Flags().IntVar(&tau, "tau", 4, "largest pattern size")
	cmd.Flags().StringVar(&mode, "mode", "exhaustive", "exhaustive or chain")
	cmd.Flags().BoolVar(&dedup, "dedup", true, "drop isomorphic duplicates")

	return cmd
}
