package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sirg/bfs"
	"github.com/katalvlaran/sirg/export"
	"github.com/katalvlaran/sirg/stats"
)

func newStatCmd(_ *app) *cobra.Command {
	var names []string
	cmd := &cobra.Command{
		Use:   "stat FILE",
		Short: "Print statistics of a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := export.ReadFile(args[0])
			if err != nil {
				return err
			}
			if len(names) == 0 {
				names = stats.Names()
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "components\t%d\n", bfs.ComponentCount(g))
			for _, name := range names {
				f, err := stats.ByName(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%.6f\n", name, f(g))
			}

			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&names, "statistic", "s", nil, "statistics to print (default all)")

	return cmd
}
