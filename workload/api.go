// SPDX-License-Identifier: MIT
// Package: connectivity/workload
//
// api.go: the Build orchestrator and the Constructor contract.
//
// Contract:
//   - One orchestrator: Build(n, opts, cons...). Creates the Script, resolves
//     config, runs cons in order.
//   - Constructors validate their parameters first and return sentinel errors
//     wrapped with their method tag; they never panic.
//   - Same inputs, options, seed and order ⇒ identical Script.

package workload

import "fmt"

// Constructor appends operations to s using the resolved config.
type Constructor func(s *Script, cfg config) error

// Build creates a Script over n vertices and applies cons in order. The
// first constructor error is wrapped as "Build: %w" and returned.
func Build(n int, opts []Option, cons ...Constructor) (*Script, error) {
	if n < 0 {
		return nil, fmt.Errorf("Build: n=%d < 0: %w", n, ErrTooFewVertices)
	}
	s := &Script{N: n}
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return s, nil
}

// checkSize validates a size parameter against its minimum and the script
// range. method tags the error.
func checkSize(s *Script, method string, n, least int) error {
	if n < least {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, least, ErrTooFewVertices)
	}
	if n > s.N {
		return fmt.Errorf("%s: n=%d > N=%d: %w", method, n, s.N, ErrVertexRange)
	}

	return nil
}
