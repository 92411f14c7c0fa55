// SPDX-License-Identifier: MIT

// Package connectivity is the root of a fully dynamic graph connectivity
// toolkit: insert and delete undirected edges in any order and keep asking
// which vertices are connected, how big their component is and what a
// monoid aggregate over its vertex values says.
//
// What is in the box?
//
//	monoid/    - the Op[T, F] contract plus SumAdd, MinAdd, MaxAdd, XorApply
//	toptree/   - arena-backed top tree (link-cut tree with virtual subtrees):
//	             link, cut, connectivity, component size, aggregate, lazy
//	             component updates and mark-guided search
//	edgestore/ - per-level undirected edge multisets on google/btree
//	dynconn/   - Graph[T, F]: Holm–de Lichtenberg–Thorup levels on top of
//	             toptree and edgestore
//	workload/  - deterministic operation scripts, a text format, a replayer
//	             and a cross-check against a union-find oracle
//	cmd/dynconn - replay, stress and bench from the command line
//
// Quick start:
//
//	var op monoid.SumAdd
//	g, _ := dynconn.New[monoid.SumCount, int64](5, op)
//	g.Link(0, 1)
//	g.Link(1, 2)
//	g.UpdateComponent(0, 10)   // every vertex of {0,1,2} gains 10
//	sum, _ := g.QueryComponent(2) // {Sum: 30, Count: 3}
//	r, _ := g.Cut(1, 2)        // dynconn.CutBridge
//
// Guarantees:
//
//   - Link and Cut run in O(log² N) amortized time; queries in O(log N).
//   - Levels never exceed bits.Len(N); upper-level nodes are recycled.
//   - Optional mutex (WithLocking), charmbracelet/log debug records
//     (WithLogger) and hooks (WithHooks) that internal/telemetry turns into
//     prometheus counters.
package connectivity
