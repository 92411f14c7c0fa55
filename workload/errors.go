// SPDX-License-Identifier: MIT
// Package: connectivity/workload
//
// errors.go: sentinel errors for the workload package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w and the method tag
//     ("Path: n=1 < min=2: ...").

package workload

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("workload: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("workload: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG.
var ErrNeedRandSource = errors.New("workload: rng is required")

// ErrVertexRange indicates a constructor that would touch a vertex >= N.
var ErrVertexRange = errors.New("workload: vertex outside script range")

// ErrConstructFailed indicates a nil constructor or an otherwise unusable
// composition.
var ErrConstructFailed = errors.New("workload: construction failed")

// ErrSyntax indicates malformed script text.
var ErrSyntax = errors.New("workload: syntax error")

// ErrMismatch indicates that dynconn and the reference model disagreed.
var ErrMismatch = errors.New("workload: result mismatch")
