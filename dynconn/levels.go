// SPDX-License-Identifier: MIT

package dynconn

import (
	"math/bits"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/connectivity/edgestore"
	"github.com/katalvlaran/connectivity/monoid"
	"github.com/katalvlaran/connectivity/toptree"
)

// level is one spanning forest F_k plus the node handle of every vertex that
// currently takes part in it. Level 0 holds all vertices for the lifetime of
// the manager; higher levels allocate on demand and recycle nodes of vertices
// that become isolated there.
type level[T, F any] struct {
	forest *toptree.Forest[T, F]
	node   []toptree.NodeID
}

// manager owns the HDT state. It validates nothing: Graph checks ids.
type manager[T, F any] struct {
	n      int
	op     monoid.Op[T, F]
	levels []*level[T, F]

	surplus *edgestore.Store // non-tree edges by level
	tree    *edgestore.Store // tree edges by exact level
	treeLvl map[uint64]int   // tree edge -> its level

	maxLevels  int
	components int
	edges      int

	hooks  Hooks
	logger *log.Logger
}

func newManager[T, F any](values []T, op monoid.Op[T, F], o Options) *manager[T, F] {
	n := len(values)
	m := &manager[T, F]{
		n:          n,
		op:         op,
		surplus:    edgestore.New(),
		tree:       edgestore.New(),
		treeLvl:    make(map[uint64]int),
		maxLevels:  max(1, bits.Len(uint(n))),
		components: n,
		hooks:      o.Hooks,
		logger:     o.Logger,
	}
	base := &level[T, F]{
		forest: toptree.New(op, toptree.WithCapacity(n)),
		node:   make([]toptree.NodeID, n),
	}
	for v, x := range values {
		base.node[v] = base.forest.Alloc(v, x)
	}
	m.levels = append(m.levels, base)

	return m
}

// edgeKey packs an unordered vertex pair.
func edgeKey(a, b int) uint64 {
	if a > b {
		a, b = b, a
	}

	return uint64(uint32(a))<<32 | uint64(uint32(b))
}

// at returns level k, creating it (and every level below it) on first use.
func (m *manager[T, F]) at(k int) *level[T, F] {
	for len(m.levels) <= k {
		if len(m.levels) >= m.maxLevels {
			panic(panicLevelBound)
		}
		idx := len(m.levels)
		m.levels = append(m.levels, &level[T, F]{
			forest: toptree.New(m.op, toptree.Structural()),
			node:   make([]toptree.NodeID, m.n),
		})
		if m.logger != nil {
			m.logger.Debug("level created", "level", idx, "vertices", m.n)
		}
		if m.hooks.OnLevelCreated != nil {
			m.hooks.OnLevelCreated(idx)
		}
	}

	return m.levels[k]
}

// ensure returns v's node at level k, allocating a singleton if v does not
// take part in that level yet.
func (m *manager[T, F]) ensure(k, v int) toptree.NodeID {
	lv := m.at(k)
	if id := lv.node[v]; id != toptree.Nil {
		return id
	}
	id := lv.forest.Alloc(v, m.op.Identity())
	lv.node[v] = id

	return id
}

// refresh recomputes v's marks at level k from the edge stores and, above
// level 0, recycles v's node once it carries nothing there.
func (m *manager[T, F]) refresh(k, v int) {
	lv := m.levels[k]
	id := lv.node[v]
	if id == toptree.Nil {
		return
	}
	hasSurplus := !m.surplus.Empty(k, v)
	hasTree := !m.tree.Empty(k, v)
	lv.forest.SetMark(id, toptree.MarkSurplus, hasSurplus)
	lv.forest.SetMark(id, toptree.MarkTree, hasTree)
	if k == 0 || hasSurplus || hasTree || lv.forest.Size(id) > 1 {
		return
	}
	lv.forest.Release(id)
	lv.node[v] = toptree.Nil
}

func (m *manager[T, F]) connected(a, b int) bool {
	lv := m.levels[0]

	return lv.forest.Connected(lv.node[a], lv.node[b])
}

// link inserts edge (a, b) at level 0 and reports whether it joined two
// components.
func (m *manager[T, F]) link(a, b int) bool {
	m.edges++
	if m.connected(a, b) {
		m.surplus.Insert(0, a, b)
		m.refresh(0, a)
		m.refresh(0, b)

		return false
	}
	lv := m.levels[0]
	lv.forest.Link(lv.node[a], lv.node[b])
	m.tree.Insert(0, a, b)
	m.treeLvl[edgeKey(a, b)] = 0
	m.refresh(0, a)
	m.refresh(0, b)
	m.components--

	return true
}

// cut removes one copy of edge (a, b). A surplus copy is only removed when
// no tree copy exists, so parallel edges never force a replacement search.
func (m *manager[T, F]) cut(a, b int) CutResult {
	key := edgeKey(a, b)
	l, isTree := m.treeLvl[key]
	if !isTree {
		for k := range m.levels {
			if m.surplus.Erase(k, a, b) {
				m.refresh(k, a)
				m.refresh(k, b)
				m.edges--

				return CutReplaced
			}
		}

		return CutMissing
	}

	delete(m.treeLvl, key)
	m.tree.Erase(l, a, b)
	m.edges--
	for k := 0; k <= l; k++ {
		lv := m.levels[k]
		if !lv.forest.Cut(lv.node[a], lv.node[b]) {
			panic(panicForestDesync)
		}
	}
	for k := 0; k <= l; k++ {
		m.refresh(k, a)
		m.refresh(k, b)
	}

	res := CutBridge
	for k := l; k >= 0; k-- {
		found := m.replace(a, b, k)
		if m.hooks.OnReplace != nil {
			m.hooks.OnReplace(k, found)
		}
		if found {
			res = CutReplaced

			break
		}
	}
	// replace may have allocated singletons for a or b
	for k := 1; k <= l; k++ {
		m.refresh(k, a)
		m.refresh(k, b)
	}
	if res == CutBridge {
		m.components++
	}
	if m.logger != nil {
		m.logger.Debug("tree edge cut", "a", a, "b", b, "level", l, "result", res, "components", m.components)
	}

	return res
}

// replace searches level k for an edge reconnecting the trees of a and b in
// F_k, which the caller has just separated. The smaller tree pays for the
// search by moving its level-k edges up one level.
func (m *manager[T, F]) replace(a, b, k int) bool {
	lv := m.levels[k]
	small := m.ensure(k, a)
	if nb := m.ensure(k, b); lv.forest.Size(nb) < lv.forest.Size(small) {
		small = nb
	}

	// Tree edges first, so the small side is whole at k+1 before surplus
	// edges move there.
	for _, u := range lv.forest.Marked(small, toptree.MarkTree) {
		for {
			w, ok := m.tree.EraseAny(k, u)
			if !ok {
				break
			}
			m.tree.Insert(k+1, u, w)
			m.treeLvl[edgeKey(u, w)] = k + 1
			up := m.at(k + 1)
			up.forest.Link(m.ensure(k+1, u), m.ensure(k+1, w))
			m.refresh(k+1, u)
			m.refresh(k+1, w)
			m.refresh(k, w)
			m.promoted(k+1, true)
		}
		m.refresh(k, u)
	}

	for _, u := range lv.forest.Marked(small, toptree.MarkSurplus) {
		for {
			w, ok := m.surplus.EraseAny(k, u)
			if !ok {
				break
			}
			if lv.forest.Connected(m.ensure(k, u), m.ensure(k, w)) {
				m.surplus.Insert(k+1, u, w)
				m.ensure(k+1, u)
				m.ensure(k+1, w)
				m.refresh(k+1, u)
				m.refresh(k+1, w)
				m.refresh(k, w)
				m.promoted(k+1, false)

				continue
			}

			m.tree.Insert(k, u, w)
			m.treeLvl[edgeKey(u, w)] = k
			for j := 0; j <= k; j++ {
				m.levels[j].forest.Link(m.ensure(j, u), m.ensure(j, w))
			}
			m.refresh(k, u)
			m.refresh(k, w)
			if m.logger != nil {
				m.logger.Debug("replacement found", "u", u, "w", w, "level", k)
			}

			return true
		}
		m.refresh(k, u)
	}

	return false
}

func (m *manager[T, F]) promoted(k int, tree bool) {
	if m.hooks.OnPromote != nil {
		m.hooks.OnPromote(k, tree)
	}
}

// hasEdge reports whether at least one copy of (a, b) is present.
func (m *manager[T, F]) hasEdge(a, b int) bool {
	if _, ok := m.treeLvl[edgeKey(a, b)]; ok {
		return true
	}
	for k := range m.levels {
		if m.surplus.Contains(k, a, b) {
			return true
		}
	}

	return false
}

// edgeLevel reports the level of edge (a, b): the tree level when a tree copy
// exists, otherwise the lowest level holding a surplus copy.
func (m *manager[T, F]) edgeLevel(a, b int) (lvl int, tree bool, ok bool) {
	if l, ok := m.treeLvl[edgeKey(a, b)]; ok {
		return l, true, true
	}
	for k := range m.levels {
		if m.surplus.Contains(k, a, b) {
			return k, false, true
		}
	}

	return 0, false, false
}
