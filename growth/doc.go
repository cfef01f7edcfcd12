// Package growth implements structurally induced random graph growth.
//
// Each iteration counts how often every catalog pattern embeds in the current
// graph, turns the counts into a prior, and builds beta candidates by drawing a
// pattern and attaching it to a copy of the graph. The candidate with the
// highest fitness survives; ties are broken uniformly. Once the node ceiling is
// reached, Connect joins the remaining components to the main one.
//
//	cat, _ := catalog.Build(4)
//	eng, err := growth.New(cat.Patterns(), stats.Transitivity, 200,
//		growth.WithSeed(7), growth.WithWorkers(4))
//	res, err := eng.Grow(ctx, seed)
package growth
