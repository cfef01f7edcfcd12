package core_test

import (
	"testing"

	"github.com/katalvlaran/sirg/core"
)

// BenchmarkClone measures a deep copy of a 1000-vertex ring, the hot path of
// candidate generation.
func BenchmarkClone(b *testing.B) {
	g := core.NewGraph()
	const n = 1000
	for i := int64(0); i < n; i++ {
		_, _ = g.AddEdge(i, (i+1)%n)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
