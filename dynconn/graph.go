// SPDX-License-Identifier: MIT

package dynconn

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/connectivity/edgestore"
	"github.com/katalvlaran/connectivity/monoid"
)

// Graph is a fully dynamic undirected graph over the vertices 0..N-1 with a
// per-component monoid aggregate. The vertex count is fixed at construction.
//
// Without WithLocking a Graph must not be used from several goroutines at
// once; even the query methods restructure internal trees.
type Graph[T, F any] struct {
	mu     sync.Mutex
	locked bool
	m      *manager[T, F]
}

// New creates a Graph of n isolated vertices, each holding op.Identity().
func New[T, F any](n int, op monoid.Op[T, F], opts ...Option) (*Graph[T, F], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: vertex count %d < 0", ErrPreconditionViolated, n)
	}
	if op == nil {
		return nil, fmt.Errorf("%w: nil monoid", ErrPreconditionViolated)
	}
	values := make([]T, n)
	for i := range values {
		values[i] = op.Identity()
	}

	return build(values, op, opts), nil
}

// NewFromValues creates a Graph with one isolated vertex per element of
// values. The slice is copied.
func NewFromValues[T, F any](values []T, op monoid.Op[T, F], opts ...Option) (*Graph[T, F], error) {
	if op == nil {
		return nil, fmt.Errorf("%w: nil monoid", ErrPreconditionViolated)
	}

	return build(append([]T(nil), values...), op, opts), nil
}

func build[T, F any](values []T, op monoid.Op[T, F], opts []Option) *Graph[T, F] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[T, F]{locked: o.Locking, m: newManager(values, op, o)}
}

func (g *Graph[T, F]) lock() {
	if g.locked {
		g.mu.Lock()
	}
}

func (g *Graph[T, F]) unlock() {
	if g.locked {
		g.mu.Unlock()
	}
}

func (g *Graph[T, F]) check(vs ...int) error {
	for _, v := range vs {
		if v < 0 || v >= g.m.n {
			return fmt.Errorf("%w: %d (n=%d)", ErrInvalidVertex, v, g.m.n)
		}
	}

	return nil
}

// Len returns the vertex count N.
func (g *Graph[T, F]) Len() int { return g.m.n }

// Link inserts the undirected edge (a, b) and reports whether it merged two
// components. Parallel edges and self loops are kept and report false.
func (g *Graph[T, F]) Link(a, b int) (bool, error) {
	if err := g.check(a, b); err != nil {
		return false, err
	}
	g.lock()
	defer g.unlock()

	return g.m.link(a, b), nil
}

// Cut removes one copy of edge (a, b).
//
// Returns CutMissing when no copy exists, CutBridge when a and b end up in
// different components, and CutReplaced when they stay connected.
func (g *Graph[T, F]) Cut(a, b int) (CutResult, error) {
	if err := g.check(a, b); err != nil {
		return CutMissing, err
	}
	g.lock()
	defer g.unlock()

	return g.m.cut(a, b), nil
}

// Same reports whether a and b are in one component.
func (g *Graph[T, F]) Same(a, b int) (bool, error) {
	if err := g.check(a, b); err != nil {
		return false, err
	}
	g.lock()
	defer g.unlock()

	return g.m.connected(a, b), nil
}

// Size returns the number of vertices in a's component.
func (g *Graph[T, F]) Size(a int) (int, error) {
	if err := g.check(a); err != nil {
		return 0, err
	}
	g.lock()
	defer g.unlock()
	lv := g.m.levels[0]

	return lv.forest.Size(lv.node[a]), nil
}

// Components returns the current number of connected components.
func (g *Graph[T, F]) Components() int {
	g.lock()
	defer g.unlock()

	return g.m.components
}

// EdgeCount returns the number of edge copies present, counting parallel
// edges and self loops individually.
func (g *Graph[T, F]) EdgeCount() int {
	g.lock()
	defer g.unlock()

	return g.m.edges
}

// Levels returns how many levels the graph has used so far. It never exceeds
// max(1, bits.Len(N)).
func (g *Graph[T, F]) Levels() int {
	g.lock()
	defer g.unlock()

	return len(g.m.levels)
}

// HasEdge reports whether at least one copy of (a, b) is present.
func (g *Graph[T, F]) HasEdge(a, b int) (bool, error) {
	if err := g.check(a, b); err != nil {
		return false, err
	}
	g.lock()
	defer g.unlock()

	return g.m.hasEdge(a, b), nil
}

// EdgeLevel reports the HDT level of edge (a, b) and whether it is a
// spanning-forest edge. ok is false when the edge is absent.
func (g *Graph[T, F]) EdgeLevel(a, b int) (lvl int, tree bool, ok bool, err error) {
	if err = g.check(a, b); err != nil {
		return 0, false, false, err
	}
	g.lock()
	defer g.unlock()
	lvl, tree, ok = g.m.edgeLevel(a, b)

	return lvl, tree, ok, nil
}

// Get returns the value stored at vertex a.
func (g *Graph[T, F]) Get(a int) (T, error) {
	if err := g.check(a); err != nil {
		var zero T
		return zero, err
	}
	g.lock()
	defer g.unlock()
	lv := g.m.levels[0]

	return lv.forest.Get(lv.node[a]), nil
}

// Set replaces the value stored at vertex a.
func (g *Graph[T, F]) Set(a int, x T) error {
	if err := g.check(a); err != nil {
		return err
	}
	g.lock()
	defer g.unlock()
	lv := g.m.levels[0]
	lv.forest.Set(lv.node[a], x)

	return nil
}

// UpdateComponent applies fn to every vertex value in a's component.
func (g *Graph[T, F]) UpdateComponent(a int, fn F) error {
	if err := g.check(a); err != nil {
		return err
	}
	g.lock()
	defer g.unlock()
	lv := g.m.levels[0]
	lv.forest.Apply(lv.node[a], fn)

	return nil
}

// QueryComponent returns the monoid aggregate over a's component.
func (g *Graph[T, F]) QueryComponent(a int) (T, error) {
	if err := g.check(a); err != nil {
		var zero T
		return zero, err
	}
	g.lock()
	defer g.unlock()
	lv := g.m.levels[0]

	return lv.forest.Aggregate(lv.node[a]), nil
}

// Component returns the vertices of a's component in ascending order.
func (g *Graph[T, F]) Component(a int) ([]int, error) {
	if err := g.check(a); err != nil {
		return nil, err
	}
	g.lock()
	defer g.unlock()
	lv := g.m.levels[0]
	out := lv.forest.Members(lv.node[a])
	sort.Ints(out)

	return out, nil
}

// Edges returns every edge copy as [a, b] pairs with a <= b, sorted.
func (g *Graph[T, F]) Edges() [][2]int {
	g.lock()
	defer g.unlock()
	var out [][2]int
	for k := range g.m.levels {
		for _, st := range []*edgestore.Store{g.m.tree, g.m.surplus} {
			for a := 0; a < g.m.n; a++ {
				for _, b := range st.Neighbors(k, a) {
					if a <= b {
						out = append(out, [2]int{a, b})
					}
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}
