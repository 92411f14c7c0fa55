// SPDX-License-Identifier: MIT

package monoid_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/connectivity/monoid"
	"github.com/stretchr/testify/assert"
)

// checkLaws samples random values and updates and verifies the homomorphism
// and composition laws the forest relies on.
func checkLaws[T, F any](t *testing.T, op monoid.Op[T, F], val func(*rand.Rand) T, upd func(*rand.Rand) F) {
	t.Helper()
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		a, b, c := val(r), val(r), val(r)
		f, g := upd(r), upd(r)

		assert.Equal(t, a, op.Combine(a, op.Identity()), "identity")
		assert.Equal(t, op.Combine(a, b), op.Combine(b, a), "commutative")
		assert.Equal(t, op.Combine(op.Combine(a, b), c), op.Combine(a, op.Combine(b, c)), "associative")
		assert.Equal(t, op.Combine(op.Apply(f, a), op.Apply(f, b)), op.Apply(f, op.Combine(a, b)), "homomorphism")
		assert.Equal(t, op.Identity(), op.Apply(f, op.Identity()), "identity fixed")
		assert.Equal(t, op.Apply(f, op.Apply(g, a)), op.Apply(op.Compose(f, g), a), "compose order")
	}
}

func TestSumAdd_Laws(t *testing.T) {
	op := monoid.SumAdd{}
	checkLaws[monoid.SumCount, int64](t, op,
		func(r *rand.Rand) monoid.SumCount { return op.Of(r.Int63n(1000) - 500) },
		func(r *rand.Rand) int64 { return r.Int63n(20) - 10 },
	)
}

func TestMinAdd_Laws(t *testing.T) {
	checkLaws[int64, int64](t, monoid.MinAdd{},
		func(r *rand.Rand) int64 { return r.Int63n(1000) - 500 },
		func(r *rand.Rand) int64 { return r.Int63n(20) - 10 },
	)
}

func TestMaxAdd_Laws(t *testing.T) {
	checkLaws[int64, int64](t, monoid.MaxAdd{},
		func(r *rand.Rand) int64 { return r.Int63n(1000) - 500 },
		func(r *rand.Rand) int64 { return r.Int63n(20) - 10 },
	)
}

func TestXorApply_Laws(t *testing.T) {
	op := monoid.XorApply{}
	checkLaws[monoid.XorParity, uint64](t, op,
		func(r *rand.Rand) monoid.XorParity { return op.Of(r.Uint64()) },
		func(r *rand.Rand) uint64 { return r.Uint64() },
	)
}

func TestSumAdd_ApplyScalesWithCount(t *testing.T) {
	op := monoid.SumAdd{}
	agg := op.Combine(op.Combine(op.Of(1), op.Of(2)), op.Of(3))
	assert.Equal(t, monoid.SumCount{Sum: 6, Count: 3}, agg)
	assert.Equal(t, monoid.SumCount{Sum: 36, Count: 3}, op.Apply(10, agg))
}

func TestMinAdd_IdentityNotShifted(t *testing.T) {
	op := monoid.MinAdd{}
	assert.Equal(t, int64(math.MaxInt64), op.Apply(-5, op.Identity()))
	assert.Equal(t, int64(-2), op.Apply(-5, 3))
}

func TestXorApply_EvenCountUnchanged(t *testing.T) {
	op := monoid.XorApply{}
	agg := op.Combine(op.Of(0b1010), op.Of(0b0110))
	assert.Equal(t, agg, op.Apply(0xff, agg))
	odd := op.Combine(agg, op.Of(1))
	assert.Equal(t, uint64(0b1101)^0xff, op.Apply(0xff, odd).X)
}
