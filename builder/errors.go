// SPDX-License-Identifier: MIT
// Package: sirg/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with "%s: ...: %w" using the method name.
//   - Validation order: sizes, then ranges, then rng presence, then construction.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidParameter indicates a parameter outside its domain (e.g. m >= n).
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrGraphNil indicates a nil target or base graph.
var ErrGraphNil = errors.New("builder: graph is nil")

// ErrConstructFailed indicates the topology could not be emitted (core rejected
// an insertion or a nil constructor was supplied).
var ErrConstructFailed = errors.New("builder: construction failed")
