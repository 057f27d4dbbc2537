package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/genonet/prim_kruskal"
)

// BenchmarkKruskal measures a complete graph over 400 samples (79 800 edges).
func BenchmarkKruskal(b *testing.B) {
	ids, rows := randomGraph(b, 400, 50, 42)
	g := buildGraph(b, ids, rows)
	b.ResetTimer() // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures the dense O(V²) cross-check on the same graph.
func BenchmarkPrim(b *testing.B) {
	ids, rows := randomGraph(b, 400, 50, 42)
	g := buildGraph(b, ids, rows)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, ids[0])
	}
}
