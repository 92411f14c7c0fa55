// SPDX-License-Identifier: MIT

package monoid

import "math"

// Op is the aggregation capability consumed by toptree.Forest and dynconn.Graph.
// T is the per-vertex value, F the lazy update applied to whole components.
type Op[T, F any] interface {
	// Identity returns the neutral element of Combine.
	Identity() T
	// Combine merges two aggregates. Must be associative and commutative.
	Combine(a, b T) T
	// Apply maps update f over every element summarized by x.
	Apply(f F, x T) T
	// Compose returns the update equivalent to applying older first, then newer.
	Compose(newer, older F) F
}

// SumCount is the value type of SumAdd: a sum together with the number of
// elements it covers.
type SumCount struct {
	Sum   int64
	Count int64
}

// SumAdd aggregates int64 sums; updates add a constant to every element.
type SumAdd struct{}

var _ Op[SumCount, int64] = SumAdd{}

// Of wraps a single vertex value.
func (SumAdd) Of(x int64) SumCount { return SumCount{Sum: x, Count: 1} }

func (SumAdd) Identity() SumCount { return SumCount{} }

func (SumAdd) Combine(a, b SumCount) SumCount {
	return SumCount{Sum: a.Sum + b.Sum, Count: a.Count + b.Count}
}

func (SumAdd) Apply(f int64, x SumCount) SumCount {
	return SumCount{Sum: x.Sum + f*x.Count, Count: x.Count}
}

func (SumAdd) Compose(newer, older int64) int64 { return newer + older }

// MinAdd aggregates the minimum; updates add a constant to every element.
// The identity is math.MaxInt64 and is never shifted by Apply.
type MinAdd struct{}

var _ Op[int64, int64] = MinAdd{}

func (MinAdd) Identity() int64 { return math.MaxInt64 }

func (MinAdd) Combine(a, b int64) int64 { return min(a, b) }

func (MinAdd) Apply(f int64, x int64) int64 {
	if x == math.MaxInt64 {
		return x
	}

	return x + f
}

func (MinAdd) Compose(newer, older int64) int64 { return newer + older }

// MaxAdd aggregates the maximum; updates add a constant to every element.
// The identity is math.MinInt64 and is never shifted by Apply.
type MaxAdd struct{}

var _ Op[int64, int64] = MaxAdd{}

func (MaxAdd) Identity() int64 { return math.MinInt64 }

func (MaxAdd) Combine(a, b int64) int64 { return max(a, b) }

func (MaxAdd) Apply(f int64, x int64) int64 {
	if x == math.MinInt64 {
		return x
	}

	return x + f
}

func (MaxAdd) Compose(newer, older int64) int64 { return newer + older }

// XorParity is the value type of XorApply: the xor of a set of elements and
// whether that set has odd cardinality.
type XorParity struct {
	X   uint64
	Odd bool
}

// XorApply aggregates the xor of all elements; updates xor a mask into every
// element, which flips the aggregate only when the element count is odd.
type XorApply struct{}

var _ Op[XorParity, uint64] = XorApply{}

// Of wraps a single vertex value.
func (XorApply) Of(x uint64) XorParity { return XorParity{X: x, Odd: true} }

func (XorApply) Identity() XorParity { return XorParity{} }

func (XorApply) Combine(a, b XorParity) XorParity {
	return XorParity{X: a.X ^ b.X, Odd: a.Odd != b.Odd}
}

func (XorApply) Apply(f uint64, x XorParity) XorParity {
	if x.Odd {
		x.X ^= f
	}

	return x
}

func (XorApply) Compose(newer, older uint64) uint64 { return newer ^ older }
