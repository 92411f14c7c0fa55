// SPDX-License-Identifier: MIT

package toptree

import "github.com/katalvlaran/connectivity/monoid"

// NodeID addresses a node inside a Forest arena.
type NodeID int32

// Nil is the absent node. It is never returned by Alloc.
const Nil NodeID = 0

// Mark is a set of per-node flags aggregated over subtrees.
type Mark uint8

const (
	// MarkSurplus flags a vertex that owns non-tree edges at the forest's level.
	MarkSurplus Mark = 1 << iota
	// MarkTree flags a vertex that owns tree edges of exactly the forest's level.
	MarkTree
)

const (
	panicLinkConnected  = "toptree: Link of nodes in the same tree"
	panicReleaseLinked  = "toptree: Release of a node that is still linked"
	panicReleaseUnknown = "toptree: Release of an unknown node"
)

type node[T, F any] struct {
	ch    [2]NodeID // heavy children
	par   NodeID    // heavy parent; Nil for the root of a heavy splay tree
	lch   [2]NodeID // light-tree children (only heavy roots live in light trees)
	lpar  NodeID    // light-tree parent, or the owner when this node is the light root
	light NodeID    // root of the light tree of paths hanging off this node

	vertex int32
	size   int32 // vertices in the heavy subtree including hanging paths
	lsize  int32 // vertices in the light subtree

	own   Mark
	mask  Mark
	lmask Mark

	flip   bool
	hasLz  bool
	hasLlz bool

	val  T
	agg  T
	lagg T
	lz   F // pending for heavy children and the light tree
	llz  F // pending for light children and this node's heavy part
}

// Forest is an arena of nodes forming a forest of rooted trees.
type Forest[T, F any] struct {
	op     monoid.Op[T, F]
	valued bool

	nodes []node[T, F]
	free  []NodeID
	live  int

	chain []NodeID // scratch for pushChain
}

// Option configures a Forest at construction.
type Option func(*config)

type config struct {
	capacity   int
	structural bool
}

// WithCapacity preallocates room for n nodes.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Structural disables value aggregation. Get still returns stored values,
// but Aggregate returns the identity and Apply is a no-op. Forests that only
// answer connectivity, size and mark queries use it to skip monoid work.
func Structural() Option {
	return func(c *config) { c.structural = true }
}

// New creates an empty forest aggregating with op.
func New[T, F any](op monoid.Op[T, F], opts ...Option) *Forest[T, F] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	f := &Forest[T, F]{
		op:     op,
		valued: !cfg.structural,
		nodes:  make([]node[T, F], 1, cfg.capacity+1),
	}
	f.nodes[Nil].val = op.Identity()
	f.nodes[Nil].agg = op.Identity()
	f.nodes[Nil].lagg = op.Identity()

	return f
}

// Alloc creates a singleton tree for vertex holding value val.
func (f *Forest[T, F]) Alloc(vertex int, val T) NodeID {
	var id NodeID
	if k := len(f.free); k > 0 {
		id = f.free[k-1]
		f.free = f.free[:k-1]
	} else {
		f.nodes = append(f.nodes, node[T, F]{})
		id = NodeID(len(f.nodes) - 1)
	}
	agg := val
	if !f.valued {
		agg = f.op.Identity()
	}
	f.nodes[id] = node[T, F]{
		vertex: int32(vertex),
		size:   1,
		val:    val,
		agg:    agg,
		lagg:   f.op.Identity(),
	}
	f.live++

	return id
}

// Release returns a singleton node to the free list.
func (f *Forest[T, F]) Release(id NodeID) {
	if id <= Nil || int(id) >= len(f.nodes) {
		panic(panicReleaseUnknown)
	}
	nd := &f.nodes[id]
	if nd.par != Nil || nd.lpar != Nil || nd.ch[0] != Nil || nd.ch[1] != Nil || nd.light != Nil {
		panic(panicReleaseLinked)
	}
	*nd = node[T, F]{}
	f.free = append(f.free, id)
	f.live--
}

// Vertex reports the vertex id a node was allocated for.
func (f *Forest[T, F]) Vertex(id NodeID) int { return int(f.nodes[id].vertex) }

// Len reports the number of live nodes.
func (f *Forest[T, F]) Len() int { return f.live }

// Cap reports the number of node slots ever allocated, live or free.
func (f *Forest[T, F]) Cap() int { return len(f.nodes) - 1 }
