// Package catalog enumerates the small connected graphs ("patterns") that the
// growth engine counts inside the current graph and attaches to it.
//
// Build(maxSize) returns patterns with 2..maxSize nodes. Two enumeration modes:
//
//	Exhaustive        every connected spanning edge subset of K_v (default)
//	EdgeRemovalChain  K_v with edges removed one at a time while connected
//
// With dedup (default on) only one representative per isomorphism class is
// kept, so the default catalog is the set of non-isomorphic connected graphs:
// 1, 2, 6, 21, 112 patterns for v = 2..6. Canonical forms are tracked in an
// in-memory badger store.
//
// Patterns are immutable; node k-1 is the final distinguished node.
package catalog
