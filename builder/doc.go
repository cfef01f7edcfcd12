// Package builder provides deterministic, composable constructors for the
// seed graphs the growth engine starts from.
//
// Components:
//
//   - BuildGraph(gopts, bopts, cons...) creates a core.Graph and applies
//     constructors in order; Apply runs constructors on an existing graph.
//   - Topologies: Complete, Path, Cycle, Star, Petersen.
//   - Stochastic: BarabasiAlbert (preferential attachment) and Fractal
//     (relabelled copies of a base graph tied back by a parity rule).
//     Both need WithSeed or WithRand.
//   - RandomDeletion thins an observed graph by removing random vertices.
//
// Options panic on meaningless values (WithRand(nil), negative WithIDOffset);
// constructors return sentinel errors wrapped with the method name:
//
//	_, err := builder.BuildGraph(nil, nil, builder.Cycle(2))
//	errors.Is(err, builder.ErrTooFewVertices) // true
package builder
