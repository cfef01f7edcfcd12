package main

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sirg/builder"
	"github.com/katalvlaran/sirg/config"
	"github.com/katalvlaran/sirg/core"
	"github.com/katalvlaran/sirg/export"
)

// buildSeed constructs the starting graph described by conf and applies the
// optional random deletion.
func buildSeed(conf config.SeedConf, rng *rand.Rand) (*core.Graph, error) {
	var (
		g   *core.Graph
		err error
	)
	bopts := []builder.BuilderOption{builder.WithRand(rng)}
	switch conf.Kind {
	case "file":
		g, err = export.ReadFile(conf.File)
	case "barabasi-albert":
		g, err = builder.BuildGraph(nil, bopts, builder.BarabasiAlbert(conf.Nodes, conf.M))
	case "path":
		g, err = builder.BuildGraph(nil, bopts, builder.Path(conf.Nodes))
	case "cycle":
		g, err = builder.BuildGraph(nil, bopts, builder.Cycle(conf.Nodes))
	case "complete":
		g, err = builder.BuildGraph(nil, bopts, builder.Complete(conf.Nodes))
	case "star":
		g, err = builder.BuildGraph(nil, bopts, builder.Star(conf.Nodes))
	case "petersen":
		g, err = builder.BuildGraph(nil, bopts, builder.Petersen())
	default:
		return nil, fmt.Errorf("seed kind %q", conf.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("build seed: %w", err)
	}
	if conf.Delete != 0 {
		if _, err := builder.RandomDeletion(g, conf.Delete, rng); err != nil {
			return nil, fmt.Errorf("build seed: %w", err)
		}
	}

	return g, nil
}
