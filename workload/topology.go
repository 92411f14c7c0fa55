// SPDX-License-Identifier: MIT
// Package: connectivity/workload
//
// topology.go: fixture constructors linking classic shapes over the
// vertices 0..n-1 of the script.
//
// Edge order is stable: ascending by first endpoint, then second.

package workload

import "fmt"

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minPathVertices   = 1
	minCycleVertices  = 3
	minStarVertices   = 2
	minGridDimension  = 1
	minSparseVertices = 1
)

// Path links 0-1-…-(n-1).
func Path(n int) Constructor {
	return func(s *Script, _ config) error {
		if err := checkSize(s, methodPath, n, minPathVertices); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			s.link(i, i+1)
		}

		return nil
	}
}

// Cycle links a path over n vertices and closes it with (n-1, 0).
func Cycle(n int) Constructor {
	return func(s *Script, _ config) error {
		if err := checkSize(s, methodCycle, n, minCycleVertices); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			s.link(i, i+1)
		}
		s.link(n-1, 0)

		return nil
	}
}

// Star links vertex 0 to each of 1..n-1.
func Star(n int) Constructor {
	return func(s *Script, _ config) error {
		if err := checkSize(s, methodStar, n, minStarVertices); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			s.link(0, i)
		}

		return nil
	}
}

// Complete links every unordered pair of 0..n-1.
func Complete(n int) Constructor {
	return func(s *Script, _ config) error {
		if err := checkSize(s, methodComplete, n, minPathVertices); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.link(i, j)
			}
		}

		return nil
	}
}

// Grid links a rows×cols lattice; vertex (r, c) is r*cols + c.
func Grid(rows, cols int) Constructor {
	return func(s *Script, _ config) error {
		if rows < minGridDimension || cols < minGridDimension {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDimension, ErrTooFewVertices)
		}
		if rows*cols > s.N {
			return fmt.Errorf("%s: rows*cols=%d > N=%d: %w", methodGrid, rows*cols, s.N, ErrVertexRange)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					s.link(v, v+1)
				}
				if r+1 < rows {
					s.link(v, v+cols)
				}
			}
		}

		return nil
	}
}

// RandomSparse links each unordered pair of 0..n-1 independently with
// probability p. An RNG is required when 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(s *Script, cfg config) error {
		if err := checkSize(s, methodRandomSparse, n, minSparseVertices); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					s.link(i, j)
				}
			}
		}

		return nil
	}
}
