// SPDX-License-Identifier: MIT
// Package: connectivity/workload
//
// churn.go: stochastic operation mixes over the whole script range.
//
// Churn and Teardown only cut edges the script linked earlier, so every cut
// hits an existing edge; Queries never mutate.

package workload

import "fmt"

const (
	methodChurn    = "Churn"
	methodTeardown = "Teardown"
	methodQueries  = "Queries"

	percent = 100
)

// Churn appends steps random operations: a link with probability
// linkPercent/100, otherwise a cut of a random live edge (or a link when
// nothing is live). About one step in eight is additionally followed by a
// same query.
func Churn(steps, linkPercent int) Constructor {
	return func(s *Script, cfg config) error {
		if steps < 0 {
			return fmt.Errorf("%s: steps=%d < 0: %w", methodChurn, steps, ErrTooFewVertices)
		}
		if linkPercent < 0 || linkPercent > percent {
			return fmt.Errorf("%s: linkPercent=%d not in [0,100]: %w", methodChurn, linkPercent, ErrInvalidProbability)
		}
		if s.N < 1 {
			return fmt.Errorf("%s: N=%d < min=1: %w", methodChurn, s.N, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodChurn, ErrNeedRandSource)
		}
		rng := cfg.rng
		for i := 0; i < steps; i++ {
			if len(s.live) == 0 || rng.Intn(percent) < linkPercent {
				s.link(rng.Intn(s.N), rng.Intn(s.N))
			} else {
				s.cutLive(rng.Intn(len(s.live)))
			}
			if rng.Intn(8) == 0 {
				s.Ops = append(s.Ops, Op{Kind: Same, A: rng.Intn(s.N), B: rng.Intn(s.N)})
			}
		}

		return nil
	}
}

// Teardown cuts every live edge in random order.
func Teardown() Constructor {
	return func(s *Script, cfg config) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodTeardown, ErrNeedRandSource)
		}
		for len(s.live) > 0 {
			s.cutLive(cfg.rng.Intn(len(s.live)))
		}

		return nil
	}
}

// Queries appends k random read or value operations (same, size, get, sum,
// count, set, add).
func Queries(k int) Constructor {
	return func(s *Script, cfg config) error {
		if k < 0 {
			return fmt.Errorf("%s: k=%d < 0: %w", methodQueries, k, ErrTooFewVertices)
		}
		if s.N < 1 {
			return fmt.Errorf("%s: N=%d < min=1: %w", methodQueries, s.N, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodQueries, ErrNeedRandSource)
		}
		rng := cfg.rng
		kinds := [...]Kind{Same, Size, Get, Sum, Count, Set, Add}
		for i := 0; i < k; i++ {
			op := Op{Kind: kinds[rng.Intn(len(kinds))], A: rng.Intn(s.N)}
			switch op.Kind {
			case Same:
				op.B = rng.Intn(s.N)
			case Set:
				op.X = rng.Int63n(1000)
			case Add:
				op.X = rng.Int63n(21) - 10
			case Count:
				op.A = 0
			}
			s.Ops = append(s.Ops, op)
		}

		return nil
	}
}
