// SPDX-License-Identifier: MIT

// Package edgestore keeps undirected edge multisets split by level, indexed
// from both endpoints.
//
// dynconn uses one Store for surplus (non-tree) edges and a second one for
// tree edges keyed by their exact level. Each level is a google/btree of
// (from, to, multiplicity) entries, so the neighbors of a vertex form one
// contiguous range and an arbitrary neighbor is found in O(log E).
//
// Self loops (a, a) are stored with multiplicity 2 per copy, one for each
// endpoint, and come back once from EraseAny.
package edgestore

import (
	"math"

	"github.com/google/btree"
)

// degree is the btree node degree; 32 keeps nodes within a few cache lines.
const degree = 32

type entry struct {
	from, to int32
	n        uint32
}

func lessEntry(a, b entry) bool {
	if a.from != b.from {
		return a.from < b.from
	}

	return a.to < b.to
}

// Store is a per-level undirected edge multiset. The zero value is not
// usable; call New.
type Store struct {
	levels []*btree.BTreeG[entry]
	edges  int
}

// New returns an empty Store.
func New() *Store { return &Store{} }

func (s *Store) level(k int) *btree.BTreeG[entry] {
	for len(s.levels) <= k {
		s.levels = append(s.levels, btree.NewG[entry](degree, lessEntry))
	}

	return s.levels[k]
}

// Insert records one copy of edge (a, b) at level k.
func (s *Store) Insert(k, a, b int) {
	t := s.level(k)
	bump(t, a, b)
	bump(t, b, a)
	s.edges++
}

// Erase removes one copy of (a, b) at level k and reports whether one existed.
func (s *Store) Erase(k, a, b int) bool {
	if k >= len(s.levels) {
		return false
	}
	t := s.levels[k]
	if _, ok := t.Get(entry{from: int32(a), to: int32(b)}); !ok {
		return false
	}
	drop(t, a, b)
	drop(t, b, a)
	s.edges--

	return true
}

// EraseAny removes one arbitrary edge incident to a at level k and returns
// its other endpoint.
func (s *Store) EraseAny(k, a int) (int, bool) {
	e, ok := s.first(k, a)
	if !ok {
		return 0, false
	}
	b := int(e.to)
	drop(s.levels[k], a, b)
	drop(s.levels[k], b, a)
	s.edges--

	return b, true
}

// Empty reports whether a has no edges at level k.
func (s *Store) Empty(k, a int) bool {
	_, ok := s.first(k, a)

	return !ok
}

// Contains reports whether at least one copy of (a, b) is stored at level k.
func (s *Store) Contains(k, a, b int) bool {
	if k >= len(s.levels) {
		return false
	}
	_, ok := s.levels[k].Get(entry{from: int32(a), to: int32(b)})

	return ok
}

// Neighbors lists the other endpoint of every edge incident to a at level k,
// repeated per copy, in ascending order.
func (s *Store) Neighbors(k, a int) []int {
	if k >= len(s.levels) {
		return nil
	}
	var out []int
	s.levels[k].AscendGreaterOrEqual(entry{from: int32(a), to: math.MinInt32}, func(e entry) bool {
		if e.from != int32(a) {
			return false
		}
		copies := int(e.n)
		if e.to == e.from {
			copies /= 2
		}
		for i := 0; i < copies; i++ {
			out = append(out, int(e.to))
		}

		return true
	})

	return out
}

// Len reports the number of stored edge copies over all levels.
func (s *Store) Len() int { return s.edges }

// Levels reports how many levels have been touched.
func (s *Store) Levels() int { return len(s.levels) }

func (s *Store) first(k, a int) (entry, bool) {
	if k >= len(s.levels) {
		return entry{}, false
	}
	var found entry
	var ok bool
	s.levels[k].AscendGreaterOrEqual(entry{from: int32(a), to: math.MinInt32}, func(e entry) bool {
		found, ok = e, e.from == int32(a)

		return false
	})

	return found, ok
}

func bump(t *btree.BTreeG[entry], a, b int) {
	key := entry{from: int32(a), to: int32(b)}
	if e, ok := t.Get(key); ok {
		key.n = e.n
	}
	key.n++
	t.ReplaceOrInsert(key)
}

func drop(t *btree.BTreeG[entry], a, b int) {
	key := entry{from: int32(a), to: int32(b)}
	e, ok := t.Get(key)
	if !ok {
		return
	}
	if e.n <= 1 {
		t.Delete(key)

		return
	}
	e.n--
	t.ReplaceOrInsert(e)
}
