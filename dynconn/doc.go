// SPDX-License-Identifier: MIT

// Package dynconn maintains the connected components of an undirected graph
// under interleaved edge insertions and deletions, together with a monoid
// aggregate over the vertex values of every component.
//
// What:
//
//   - Graph[T, F] answers Same, Size, Components and QueryComponent, and
//     accepts Link, Cut, Set and UpdateComponent, all in amortized
//     polylogarithmic time.
//   - Values and updates are described by a monoid.Op[T, F]; see package monoid.
//
// How (Holm–de Lichtenberg–Thorup):
//
//   - Every edge carries a level that only grows. Tree edges of level k are
//     linked in the spanning forests F_0..F_k, so F_0 ⊇ F_1 ⊇ … and F_0
//     spans the whole graph. Every tree of F_k has at most N/2^k vertices,
//     which bounds the number of levels by bits.Len(N).
//   - Non-tree ("surplus") edges live in a per-level edgestore.Store.
//   - Cutting a tree edge of level l removes it from F_0..F_l and searches for
//     a replacement from level l down to 0. At each level the smaller side
//     pays: its level-k tree edges move to k+1, then its level-k surplus edges
//     are drained, either moving to k+1 (both ends on the small side) or
//     reconnecting the two sides.
//   - Only F_0 aggregates values; higher forests are structural.
//
// Options:
//
//   - WithLocking(): serialize every call on one mutex.
//   - WithLogger(l): debug logging of level creation and replacement outcomes.
//   - WithHooks(h): callbacks for level creation, promotions and searches.
//
// Complexity (N vertices):
//
//   - Link, Cut: O(log² N) amortized.
//   - Same, Size, Get, Set, UpdateComponent, QueryComponent: O(log N) amortized.
//   - Component: O(size of the component · log).
//   - Memory: O(N + E) plus O(1) per (vertex, level) participation; nodes of
//     vertices that leave a level are recycled.
//
// Errors:
//
//   - ErrInvalidVertex: vertex id outside [0, N).
//   - ErrPreconditionViolated: negative N or nil monoid at construction.
//
// Self loops and parallel edges are accepted; they never become tree edges.
package dynconn
