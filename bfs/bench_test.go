package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/metroroute/bfs"
)

// BenchmarkMinTransfers_Chain measures a worst-case end-to-end query on a
// single line of N stops.
func BenchmarkMinTransfers_Chain(b *testing.B) {
	const N = 10000
	n := buildChain(b, N)
	target := fmt.Sprintf("S%d", N-1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.MinTransfers(n, "S0", target)
	}
}

// BenchmarkWalk_Chain measures a full traversal of the same chain.
func BenchmarkWalk_Chain(b *testing.B) {
	n := buildChain(b, 10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(n, "S0")
	}
}
