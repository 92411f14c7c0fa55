// SPDX-License-Identifier: MIT

// Package oracle is a slow but obviously correct model of a dynamic graph
// with per-component aggregates. It keeps the edge multiset and rebuilds a
// disjoint-set forest (path compression, union by rank) whenever a query
// follows a mutation. Tests and the stress command compare dynconn against it.
package oracle

import (
	"sort"

	"github.com/katalvlaran/connectivity/monoid"
)

// Graph is the reference model. Not safe for concurrent use.
type Graph[T, F any] struct {
	op     monoid.Op[T, F]
	values []T
	edges  map[[2]int]int

	parent []int
	rank   []int
	dirty  bool
}

// New returns a model of len(values) isolated vertices.
func New[T, F any](values []T, op monoid.Op[T, F]) *Graph[T, F] {
	n := len(values)
	g := &Graph[T, F]{
		op:     op,
		values: append([]T(nil), values...),
		edges:  make(map[[2]int]int),
		parent: make([]int, n),
		rank:   make([]int, n),
		dirty:  true,
	}

	return g
}

func key(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

// Len returns the vertex count.
func (g *Graph[T, F]) Len() int { return len(g.values) }

// Link adds one copy of (a, b) and reports whether it merged two components.
func (g *Graph[T, F]) Link(a, b int) bool {
	merged := !g.Same(a, b)
	g.edges[key(a, b)]++
	g.dirty = true

	return merged
}

// Cut removes one copy of (a, b). present reports whether a copy existed;
// split reports whether a and b are disconnected afterwards.
func (g *Graph[T, F]) Cut(a, b int) (present, split bool) {
	k := key(a, b)
	c := g.edges[k]
	if c == 0 {
		return false, false
	}
	if c == 1 {
		delete(g.edges, k)
	} else {
		g.edges[k] = c - 1
	}
	g.dirty = true

	return true, !g.Same(a, b)
}

// HasEdge reports whether a copy of (a, b) is present.
func (g *Graph[T, F]) HasEdge(a, b int) bool { return g.edges[key(a, b)] > 0 }

// EdgeCount returns the number of edge copies.
func (g *Graph[T, F]) EdgeCount() int {
	total := 0
	for _, c := range g.edges {
		total += c
	}

	return total
}

// Same reports whether a and b share a component.
func (g *Graph[T, F]) Same(a, b int) bool {
	g.rebuild()

	return g.find(a) == g.find(b)
}

// Component returns a's component in ascending order.
func (g *Graph[T, F]) Component(a int) []int {
	g.rebuild()
	r := g.find(a)
	var out []int
	for v := range g.values {
		if g.find(v) == r {
			out = append(out, v)
		}
	}
	sort.Ints(out)

	return out
}

// Size returns the size of a's component.
func (g *Graph[T, F]) Size(a int) int { return len(g.Component(a)) }

// Components returns the number of components.
func (g *Graph[T, F]) Components() int {
	g.rebuild()
	count := 0
	for v := range g.values {
		if g.find(v) == v {
			count++
		}
	}

	return count
}

// Get returns the value of a.
func (g *Graph[T, F]) Get(a int) T { return g.values[a] }

// Set replaces the value of a.
func (g *Graph[T, F]) Set(a int, x T) { g.values[a] = x }

// Update applies fn to every value in a's component.
func (g *Graph[T, F]) Update(a int, fn F) {
	for _, v := range g.Component(a) {
		g.values[v] = g.op.Apply(fn, g.values[v])
	}
}

// Query folds the values of a's component.
func (g *Graph[T, F]) Query(a int) T {
	acc := g.op.Identity()
	for _, v := range g.Component(a) {
		acc = g.op.Combine(acc, g.values[v])
	}

	return acc
}

func (g *Graph[T, F]) rebuild() {
	if !g.dirty {
		return
	}
	for v := range g.parent {
		g.parent[v] = v
		g.rank[v] = 0
	}
	for e := range g.edges {
		g.union(e[0], e[1])
	}
	g.dirty = false
}

func (g *Graph[T, F]) find(u int) int {
	for g.parent[u] != u {
		g.parent[u] = g.parent[g.parent[u]]
		u = g.parent[u]
	}

	return u
}

func (g *Graph[T, F]) union(u, v int) {
	ru, rv := g.find(u), g.find(v)
	if ru == rv {
		return
	}
	switch {
	case g.rank[ru] < g.rank[rv]:
		g.parent[ru] = rv
	case g.rank[ru] > g.rank[rv]:
		g.parent[rv] = ru
	default:
		g.parent[rv] = ru
		g.rank[ru]++
	}
}
