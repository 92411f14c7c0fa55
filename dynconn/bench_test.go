// SPDX-License-Identifier: MIT

package dynconn_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/connectivity/dynconn"
	"github.com/katalvlaran/connectivity/monoid"
)

func benchGraph(b *testing.B, n int) *dynconn.Graph[monoid.SumCount, int64] {
	b.Helper()
	g, err := dynconn.New[monoid.SumCount, int64](n, monoid.SumAdd{})
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkLinkCutPath measures a bridge cut and relink in the middle of a
// long path.
func BenchmarkLinkCutPath(b *testing.B) {
	const n = 1 << 14
	g := benchGraph(b, n)
	for i := 0; i+1 < n; i++ {
		_, _ = g.Link(i, i+1)
	}
	rng := rand.New(rand.NewSource(42))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := rng.Intn(n - 1)
		_, _ = g.Cut(v, v+1)
		_, _ = g.Link(v, v+1)
	}
}

// BenchmarkChurn mixes random links, cuts and queries on a sparse graph.
func BenchmarkChurn(b *testing.B) {
	const n = 1 << 12
	g := benchGraph(b, n)
	rng := rand.New(rand.NewSource(42))
	edges := make([][2]int, 0, 2*n)
	for len(edges) < 2*n {
		e := [2]int{rng.Intn(n), rng.Intn(n)}
		_, _ = g.Link(e[0], e[1])
		edges = append(edges, e)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := rng.Intn(len(edges))
		e := edges[j]
		_, _ = g.Cut(e[0], e[1])
		e = [2]int{rng.Intn(n), rng.Intn(n)}
		_, _ = g.Link(e[0], e[1])
		edges[j] = e
		_, _ = g.Same(rng.Intn(n), rng.Intn(n))
	}
}

// BenchmarkQueryComponent measures aggregate reads on one large component.
func BenchmarkQueryComponent(b *testing.B) {
	const n = 1 << 14
	g := benchGraph(b, n)
	for i := 1; i < n; i++ {
		_, _ = g.Link(i/2, i)
	}
	rng := rand.New(rand.NewSource(42))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.QueryComponent(rng.Intn(n))
	}
}
