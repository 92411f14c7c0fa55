// SPDX-License-Identifier: MIT

package toptree

// This file holds the structural kernel: aggregate maintenance, tag pushing,
// rotations in both tree kinds, and expose. Callers must push every ancestor
// of a node (pushChain) before splaying it.

func (f *Forest[T, F]) pull(x NodeID) {
	nd := &f.nodes[x]
	l, r, lt := &f.nodes[nd.ch[0]], &f.nodes[nd.ch[1]], &f.nodes[nd.light]
	nd.size = 1 + l.size + r.size + lt.lsize
	nd.mask = nd.own | l.mask | r.mask | lt.lmask
	if f.valued {
		nd.agg = f.op.Combine(f.op.Combine(l.agg, nd.val), f.op.Combine(lt.lagg, r.agg))
	}
}

// pullLight requires x to carry no pending light tag.
func (f *Forest[T, F]) pullLight(x NodeID) {
	nd := &f.nodes[x]
	a, b := &f.nodes[nd.lch[0]], &f.nodes[nd.lch[1]]
	nd.lsize = a.lsize + nd.size + b.lsize
	nd.lmask = a.lmask | nd.mask | b.lmask
	if f.valued {
		nd.lagg = f.op.Combine(f.op.Combine(a.lagg, nd.agg), b.lagg)
	}
}

func (f *Forest[T, F]) applyHeavy(x NodeID, fn F) {
	if x == Nil || !f.valued {
		return
	}
	nd := &f.nodes[x]
	nd.val = f.op.Apply(fn, nd.val)
	nd.agg = f.op.Apply(fn, nd.agg)
	if nd.hasLz {
		nd.lz = f.op.Compose(fn, nd.lz)
	} else {
		nd.lz, nd.hasLz = fn, true
	}
}

func (f *Forest[T, F]) applyLight(x NodeID, fn F) {
	if x == Nil || !f.valued {
		return
	}
	nd := &f.nodes[x]
	nd.lagg = f.op.Apply(fn, nd.lagg)
	if nd.hasLlz {
		nd.llz = f.op.Compose(fn, nd.llz)
	} else {
		nd.llz, nd.hasLlz = fn, true
	}
}

func (f *Forest[T, F]) reverse(x NodeID) {
	if x == Nil {
		return
	}
	nd := &f.nodes[x]
	nd.ch[0], nd.ch[1] = nd.ch[1], nd.ch[0]
	nd.flip = !nd.flip
}

func (f *Forest[T, F]) push(x NodeID) {
	nd := &f.nodes[x]
	var zero F
	if nd.hasLlz {
		fn := nd.llz
		nd.llz, nd.hasLlz = zero, false
		f.applyHeavy(x, fn)
		f.applyLight(nd.lch[0], fn)
		f.applyLight(nd.lch[1], fn)
	}
	if nd.flip {
		nd.flip = false
		f.reverse(nd.ch[0])
		f.reverse(nd.ch[1])
	}
	if nd.hasLz {
		fn := nd.lz
		nd.lz, nd.hasLz = zero, false
		f.applyHeavy(nd.ch[0], fn)
		f.applyHeavy(nd.ch[1], fn)
		f.applyLight(nd.light, fn)
	}
}

// pushChain pushes tags on every ancestor of x, top-down, through both link kinds.
func (f *Forest[T, F]) pushChain(x NodeID) {
	f.chain = f.chain[:0]
	for cur := x; cur != Nil; {
		f.chain = append(f.chain, cur)
		if p := f.nodes[cur].par; p != Nil {
			cur = p
		} else {
			cur = f.nodes[cur].lpar
		}
	}
	for i := len(f.chain) - 1; i >= 0; i-- {
		f.push(f.chain[i])
	}
}

// ---------- heavy splay trees ----------

func (f *Forest[T, F]) rotate(x NodeID) {
	xn := &f.nodes[x]
	p := xn.par
	pn := &f.nodes[p]
	g := pn.par
	d := 0
	if pn.ch[1] == x {
		d = 1
	}
	b := xn.ch[d^1]
	pn.ch[d] = b
	if b != Nil {
		f.nodes[b].par = p
	}
	xn.ch[d^1] = p
	pn.par = x
	xn.par = g
	if g != Nil {
		gn := &f.nodes[g]
		if gn.ch[0] == p {
			gn.ch[0] = x
		} else {
			gn.ch[1] = x
		}
	}
	f.pull(p)
	f.pull(x)
}

// splay brings x to the root of its heavy tree. If the previous root sat in a
// light tree, x takes over its slot there.
func (f *Forest[T, F]) splay(x NodeID) {
	r := x
	for f.nodes[r].par != Nil {
		r = f.nodes[r].par
	}
	if r == x {
		return
	}
	for f.nodes[x].par != Nil {
		p := f.nodes[x].par
		if g := f.nodes[p].par; g != Nil {
			if (f.nodes[g].ch[0] == p) == (f.nodes[p].ch[0] == x) {
				f.rotate(p)
			} else {
				f.rotate(x)
			}
		}
		f.rotate(x)
	}
	f.transplant(r, x)
}

// transplant moves r's light-tree slot to x. Both summarize the same vertex set.
func (f *Forest[T, F]) transplant(r, x NodeID) {
	rn, xn := &f.nodes[r], &f.nodes[x]
	if rn.lpar == Nil {
		return
	}
	xn.lch, xn.lpar = rn.lch, rn.lpar
	for _, c := range xn.lch {
		if c != Nil {
			f.nodes[c].lpar = x
		}
	}
	lp := &f.nodes[xn.lpar]
	switch r {
	case lp.light:
		lp.light = x
	case lp.lch[0]:
		lp.lch[0] = x
	default:
		lp.lch[1] = x
	}
	rn.lch = [2]NodeID{}
	rn.lpar = Nil
	f.pullLight(x)
}

// ---------- light splay trees ----------

func (f *Forest[T, F]) isLightRoot(x NodeID) bool {
	lp := f.nodes[x].lpar

	return lp == Nil || f.nodes[lp].light == x
}

func (f *Forest[T, F]) rotateLight(x NodeID) {
	xn := &f.nodes[x]
	p := xn.lpar
	pRoot := f.isLightRoot(p)
	pn := &f.nodes[p]
	g := pn.lpar
	d := 0
	if pn.lch[1] == x {
		d = 1
	}
	b := xn.lch[d^1]
	pn.lch[d] = b
	if b != Nil {
		f.nodes[b].lpar = p
	}
	xn.lch[d^1] = p
	pn.lpar = x
	xn.lpar = g
	if g != Nil {
		gn := &f.nodes[g]
		switch {
		case pRoot:
			gn.light = x
		case gn.lch[0] == p:
			gn.lch[0] = x
		default:
			gn.lch[1] = x
		}
	}
	f.pullLight(p)
	f.pullLight(x)
}

func (f *Forest[T, F]) splayLight(x NodeID) {
	for !f.isLightRoot(x) {
		p := f.nodes[x].lpar
		if !f.isLightRoot(p) {
			g := f.nodes[p].lpar
			if (f.nodes[g].lch[0] == p) == (f.nodes[p].lch[0] == x) {
				f.rotateLight(p)
			} else {
				f.rotateLight(x)
			}
		}
		f.rotateLight(x)
	}
}

// lightAttach hangs heavy root c (not in any light tree) under w.
func (f *Forest[T, F]) lightAttach(w, c NodeID) {
	wn, cn := &f.nodes[w], &f.nodes[c]
	cn.lch = [2]NodeID{wn.light, Nil}
	if wn.light != Nil {
		f.nodes[wn.light].lpar = c
	}
	cn.lpar = w
	wn.light = c
	f.pullLight(c)
}

// lightDetachRoot removes x, the pushed root of w's light tree.
func (f *Forest[T, F]) lightDetachRoot(w, x NodeID) {
	xn := &f.nodes[x]
	a, b := xn.lch[0], xn.lch[1]
	xn.lch = [2]NodeID{}
	xn.lpar = Nil
	if a != Nil {
		f.nodes[a].lpar = Nil
	}
	if b != Nil {
		f.nodes[b].lpar = Nil
	}
	root := f.joinLight(a, b)
	f.nodes[w].light = root
	if root != Nil {
		f.nodes[root].lpar = w
	}
}

// joinLight merges two detached light trees.
func (f *Forest[T, F]) joinLight(a, b NodeID) NodeID {
	if a == Nil {
		return b
	}
	if b == Nil {
		return a
	}
	m := a
	f.push(m)
	for f.nodes[m].lch[1] != Nil {
		m = f.nodes[m].lch[1]
		f.push(m)
	}
	f.splayLight(m)
	f.nodes[m].lch[1] = b
	f.nodes[b].lpar = m
	f.pullLight(m)

	return m
}

// ---------- expose ----------

// expose makes x the top of its component: x becomes the heavy root of the
// path from the tree root to x, that heavy tree hangs nowhere, and x has no
// heavy descendants below it on the path. Afterwards x's aggregates cover the
// whole component.
func (f *Forest[T, F]) expose(x NodeID) {
	f.pushChain(x)
	f.splay(x)
	f.detachLower(x)
	for cur := x; f.nodes[cur].lpar != Nil; {
		f.splayLight(cur)
		w := f.nodes[cur].lpar
		f.splay(w)
		f.lightDetachRoot(w, cur)
		f.detachLower(w)
		f.nodes[w].ch[1] = cur
		f.nodes[cur].par = w
		f.pull(w)
		if f.nodes[w].lpar != Nil {
			f.pullLight(w)
		}
		cur = w
	}
	f.splay(x)
}

// detachLower turns the lower part of x's path into a light child of x.
func (f *Forest[T, F]) detachLower(x NodeID) {
	if c := f.nodes[x].ch[1]; c != Nil {
		f.nodes[x].ch[1] = Nil
		f.nodes[c].par = Nil
		f.lightAttach(x, c)
		f.pull(x)
		if f.nodes[x].lpar != Nil {
			f.pullLight(x)
		}
	}
}
