// SPDX-License-Identifier: MIT

package oracle_test

import (
	"testing"

	"github.com/katalvlaran/connectivity/internal/oracle"
	"github.com/katalvlaran/connectivity/monoid"
	"github.com/stretchr/testify/assert"
)

func TestOracle_LinkCutParallel(t *testing.T) {
	var op monoid.SumAdd
	g := oracle.New[monoid.SumCount, int64](make([]monoid.SumCount, 4), op)
	assert.Equal(t, 4, g.Components())
	assert.True(t, g.Link(0, 1))
	assert.False(t, g.Link(1, 0), "parallel edge")
	assert.True(t, g.Link(2, 3))
	assert.Equal(t, 2, g.Components())
	assert.Equal(t, 3, g.EdgeCount())

	present, split := g.Cut(0, 1)
	assert.True(t, present)
	assert.False(t, split, "one parallel copy remains")

	present, split = g.Cut(0, 1)
	assert.True(t, present)
	assert.True(t, split)

	present, _ = g.Cut(0, 1)
	assert.False(t, present)
	assert.Equal(t, 3, g.Components())
}

func TestOracle_Aggregates(t *testing.T) {
	var op monoid.SumAdd
	g := oracle.New[monoid.SumCount, int64]([]monoid.SumCount{op.Of(1), op.Of(2), op.Of(3)}, op)
	g.Link(0, 2)
	assert.Equal(t, []int{0, 2}, g.Component(2))
	assert.Equal(t, monoid.SumCount{Sum: 4, Count: 2}, g.Query(0))

	g.Update(0, 10)
	assert.Equal(t, monoid.SumCount{Sum: 24, Count: 2}, g.Query(2))
	assert.Equal(t, op.Of(2), g.Get(1))

	g.Set(1, op.Of(-5))
	assert.Equal(t, monoid.SumCount{Sum: -5, Count: 1}, g.Query(1))
	assert.Equal(t, 2, g.Size(0))
}
