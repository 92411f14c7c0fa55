// SPDX-License-Identifier: MIT
// Package: connectivity/workload
//
// Package workload produces deterministic operation scripts for dynconn:
// topology fixtures (path, cycle, star, complete, grid, random sparse),
// random churn, teardown and query mixes, plus a line-oriented text format
// and a replayer.
//
// What:
//
//   - Script: vertex count N and an ordered list of Op (link, cut, same,
//     size, set, get, add, sum, count).
//   - Build(n, opts, cons...): one orchestrator applying Constructors in order.
//   - Parse/Format: the text form used by `dynconn replay`.
//   - Run: replays a Script on a dynconn.Graph over monoid.SumAdd.
//   - Verify: replays a Script on dynconn and on the union-find oracle and
//     reports the first disagreement.
//
// Determinism:
//
//   - Same n, options, seed and constructor order ⇒ identical scripts.
//   - Stochastic constructors require an RNG (WithSeed or WithRand).
//
// Errors:
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrVertexRange, ErrConstructFailed: construction-time validation.
//   - ErrSyntax: malformed script text (wrapped with the line number).
//   - ErrMismatch: Verify found dynconn and the oracle disagreeing.
package workload
