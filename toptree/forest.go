// SPDX-License-Identifier: MIT

package toptree

// Expose makes v the top of its component's representation. It is exported
// for callers that want to pay the restructuring cost up front; every other
// operation exposes on its own.
func (f *Forest[T, F]) Expose(v NodeID) { f.expose(v) }

// Evert makes v the root of its tree.
func (f *Forest[T, F]) Evert(v NodeID) {
	f.expose(v)
	f.reverse(v)
}

// Link adds the tree edge (p, c). The trees of p and c must be distinct;
// callers check with Connected first. Panics otherwise.
func (f *Forest[T, F]) Link(p, c NodeID) {
	f.Evert(c)
	f.expose(p)
	cn := &f.nodes[c]
	if p == c || cn.par != Nil || cn.lpar != Nil {
		panic(panicLinkConnected)
	}
	f.lightAttach(p, c)
	f.pull(p)
}

// Cut removes the tree edge (u, v). It reports false, leaving the forest
// unchanged in shape, when u and v are not adjacent.
func (f *Forest[T, F]) Cut(u, v NodeID) bool {
	if u == v {
		return false
	}
	f.Evert(u)
	f.expose(v)
	if f.nodes[v].ch[0] != u {
		return false
	}
	f.push(u)
	if f.nodes[u].ch[1] != Nil {
		return false
	}
	f.nodes[v].ch[0] = Nil
	f.nodes[u].par = Nil
	f.pull(v)

	return true
}

// Root returns the root node of v's tree.
func (f *Forest[T, F]) Root(v NodeID) NodeID {
	f.expose(v)
	r := v
	for {
		f.push(r)
		l := f.nodes[r].ch[0]
		if l == Nil {
			break
		}
		r = l
	}
	f.splay(r)

	return r
}

// Connected reports whether u and v belong to the same tree.
func (f *Forest[T, F]) Connected(u, v NodeID) bool {
	if u == v {
		return true
	}

	return f.Root(u) == f.Root(v)
}

// Size returns the number of vertices in v's tree.
func (f *Forest[T, F]) Size(v NodeID) int {
	f.expose(v)

	return int(f.nodes[v].size)
}

// Get returns v's own value.
func (f *Forest[T, F]) Get(v NodeID) T {
	f.expose(v)

	return f.nodes[v].val
}

// Set replaces v's own value.
func (f *Forest[T, F]) Set(v NodeID, x T) {
	f.expose(v)
	f.nodes[v].val = x
	f.pull(v)
}

// Apply applies update fn to the value of every vertex in v's tree.
func (f *Forest[T, F]) Apply(v NodeID, fn F) {
	f.expose(v)
	f.applyHeavy(v, fn)
}

// Aggregate folds the values of every vertex in v's tree.
func (f *Forest[T, F]) Aggregate(v NodeID) T {
	f.expose(v)

	return f.nodes[v].agg
}

// SetMark sets or clears mark m on v.
func (f *Forest[T, F]) SetMark(v NodeID, m Mark, on bool) {
	nd := &f.nodes[v]
	if (nd.own&m != 0) == on {
		return
	}
	f.expose(v)
	nd = &f.nodes[v]
	if on {
		nd.own |= m
	} else {
		nd.own &^= m
	}
	f.pull(v)
}

// HasMark reports whether v itself carries mark m.
func (f *Forest[T, F]) HasMark(v NodeID, m Mark) bool {
	return f.nodes[v].own&m != 0
}
