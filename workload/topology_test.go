// SPDX-License-Identifier: MIT

package workload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/connectivity/workload"
)

func countKind(s *workload.Script, k workload.Kind) int {
	n := 0
	for _, op := range s.Ops {
		if op.Kind == k {
			n++
		}
	}

	return n
}

func TestBuild_Topologies(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		con   workload.Constructor
		links int
	}{
		{"path", 6, workload.Path(6), 5},
		{"cycle", 6, workload.Cycle(6), 6},
		{"star", 6, workload.Star(6), 5},
		{"complete", 6, workload.Complete(6), 15},
		{"grid", 12, workload.Grid(3, 4), 17},
		{"sparse p=1", 5, workload.RandomSparse(5, 1), 10},
		{"sparse p=0", 5, workload.RandomSparse(5, 0), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := workload.Build(tc.n, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.links, countKind(s, workload.Link))
			assert.Equal(t, tc.links, s.Len())
		})
	}
}

func TestBuild_Validation(t *testing.T) {
	_, err := workload.Build(2, nil, workload.Cycle(2))
	assert.ErrorIs(t, err, workload.ErrTooFewVertices)

	_, err = workload.Build(4, nil, workload.Path(5))
	assert.ErrorIs(t, err, workload.ErrVertexRange)

	_, err = workload.Build(4, nil, workload.Grid(0, 3))
	assert.ErrorIs(t, err, workload.ErrTooFewVertices)

	_, err = workload.Build(4, nil, workload.Grid(2, 3))
	assert.ErrorIs(t, err, workload.ErrVertexRange)

	_, err = workload.Build(4, nil, workload.RandomSparse(4, 1.5))
	assert.ErrorIs(t, err, workload.ErrInvalidProbability)

	_, err = workload.Build(4, nil, workload.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, workload.ErrNeedRandSource)

	_, err = workload.Build(4, nil, workload.Churn(10, 50))
	assert.ErrorIs(t, err, workload.ErrNeedRandSource)

	_, err = workload.Build(4, []workload.Option{workload.WithSeed(1)}, workload.Churn(10, 101))
	assert.ErrorIs(t, err, workload.ErrInvalidProbability)

	_, err = workload.Build(4, nil, nil)
	assert.ErrorIs(t, err, workload.ErrConstructFailed)

	_, err = workload.Build(-1, nil)
	assert.ErrorIs(t, err, workload.ErrTooFewVertices)

	assert.Panics(t, func() { workload.WithRand(nil) })
}

func TestBuild_SeedIsDeterministic(t *testing.T) {
	build := func(seed int64) *workload.Script {
		s, err := workload.Build(30, []workload.Option{workload.WithSeed(seed)},
			workload.RandomSparse(30, 0.1),
			workload.Churn(200, 60),
			workload.Queries(50),
			workload.Teardown(),
		)
		require.NoError(t, err)

		return s
	}
	a, b := build(9), build(9)
	assert.Equal(t, a.Ops, b.Ops)
	assert.NotEqual(t, a.Ops, build(10).Ops)
}

func TestTeardown_CutsEveryLinkedEdge(t *testing.T) {
	s, err := workload.Build(8, []workload.Option{workload.WithSeed(3)},
		workload.Complete(8),
		workload.Teardown(),
	)
	require.NoError(t, err)
	assert.Equal(t, 28, countKind(s, workload.Link))
	assert.Equal(t, 28, countKind(s, workload.Cut))
}
