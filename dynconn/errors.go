// SPDX-License-Identifier: MIT

package dynconn

import "errors"

var (
	// ErrInvalidVertex indicates a vertex id outside [0, N).
	ErrInvalidVertex = errors.New("dynconn: invalid vertex")

	// ErrPreconditionViolated indicates a constructor argument that cannot
	// describe a graph (negative vertex count, nil monoid).
	ErrPreconditionViolated = errors.New("dynconn: precondition violated")
)

// Internal invariant violations. These are bugs, not user errors.
const (
	panicForestDesync = "dynconn: tree edge missing from a forest it was linked in"
	panicLevelBound   = "dynconn: level count exceeds bits.Len(N)"
)
