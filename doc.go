// Package sirg grows graphs whose structure is induced by their own
// substructure: every step draws a small connected pattern with probability
// proportional to how often it already embeds in the graph, attaches it, and
// keeps whichever of many such candidates scores best on a chosen statistic.
//
// Packages, leaves first:
//
//	core/     - thread-safe undirected simple graph with int64 vertex IDs
//	bfs/      - breadth-first traversal, connected and main components
//	builder/  - seed constructors (path, cycle, star, complete, Petersen,
//	            Barabási-Albert, fractal) and random vertex deletion
//	catalog/  - connected patterns up to a node bound, deduplicated by isomorphism
//	iso/      - induced (or non-induced) embedding counts per pattern
//	sampler/  - cumulative distribution over patterns and interval draws
//	growth/   - attachment rule, candidate generation, selection, connecting
//	stats/    - fitness statistics: transitivity, clustering, bipartivity, ...
//	export/   - Pajek, edge-list and DOT files; progress sinks; badger snapshots
//	config/   - YAML run configuration
//	metrics/  - Prometheus collectors
//	cmd/sirg  - command-line front end
//
// A minimal run:
//
//	seed, _ := builder.BuildGraph(nil, nil, builder.Path(2))
//	cat, _ := catalog.Build(4)
//	eng, _ := growth.New(cat.Patterns(), stats.Transitivity, 50, growth.WithMu(0))
//	res, err := eng.Grow(ctx, seed)
package sirg
