// SPDX-License-Identifier: MIT
// Package: sirg/builder
//
// impl_petersen.go - the Petersen graph (10 vertices, 15 edges, 3-regular).
//
// Layout: outer 5-cycle 0..4, spokes i-(i+5), inner pentagram (5+i)-(5+(i+2)%5).
// Edge emission follows that order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sirg/core"
)

const (
	methodPetersen = "Petersen"
	petersenRing   = 5
)

// Petersen returns a Constructor that builds the Petersen graph.
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		pairs := make([][2]int, 0, 3*petersenRing)
		for i := 0; i < petersenRing; i++ {
			pairs = append(pairs, [2]int{i, (i + 1) % petersenRing})
		}
		for i := 0; i < petersenRing; i++ {
			pairs = append(pairs, [2]int{i, i + petersenRing})
		}
		for i := 0; i < petersenRing; i++ {
			pairs = append(pairs, [2]int{i + petersenRing, (i+2)%petersenRing + petersenRing})
		}
		for _, p := range pairs {
			u, v := cfg.id(p[0]), cfg.id(p[1])
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPetersen, u, v, err)
			}
		}

		return nil
	}
}
