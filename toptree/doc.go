// SPDX-License-Identifier: MIT

// Package toptree implements a dynamic forest over an arena of nodes, with
// whole-component aggregation and lazy component updates.
//
// What:
//
//   - Every tree of the forest is represented by preferred paths kept in splay
//     trees ("heavy" links ch/par). The paths hanging off a path node are kept
//     in a second splay tree per node ("light" links lch/lpar, rooted at light).
//   - Each node caches agg (its heavy subtree plus everything hanging off it)
//     and lagg (its light-tree subtree), so after Expose(v) the node v
//     summarizes the whole component.
//   - Lazy tags travel along both link kinds: a heavy tag reaches heavy
//     children and the light tree, a light tag reaches light children and the
//     node's own heavy part. A flip bit reverses a path for Evert.
//   - Marks are small bit sets per node with subtree OR-masks; Marked lists all
//     vertices of a component carrying a mark without visiting unmarked
//     subtrees. dynconn uses MarkSurplus and MarkTree to find the vertices that
//     still own edges of a given level.
//
// Nodes live in a slice and are addressed by NodeID; NodeID 0 is the nil
// sentinel. Released nodes go to a free list and are reused by Alloc.
//
// Complexity:
//
//   - Expose, Link, Cut, Evert, Connected, Size, Get, Set, Apply, Aggregate,
//     SetMark: O(log n) amortized.
//   - Marked: O((k+1)·log n) amortized for k reported vertices.
//   - Members: O(size of the component).
//
// All splay and traversal loops are iterative.
//
// A Forest is not safe for concurrent use; even read operations restructure
// the trees.
//
// Contract violations (linking two nodes of one tree, releasing a node that is
// still attached) panic with a "toptree:" message.
package toptree
