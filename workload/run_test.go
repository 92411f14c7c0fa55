// SPDX-License-Identifier: MIT

package workload_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/connectivity/dynconn"
	"github.com/katalvlaran/connectivity/workload"
)

func TestRun_PathScript(t *testing.T) {
	s, err := workload.Parse(strings.NewReader(pathScript))
	require.NoError(t, err)

	var lines []string
	st, err := workload.Run(context.Background(), s, func(_ int, r workload.Result) {
		lines = append(lines, r.String())
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"link 0 1 -> true",
		"link 1 2 -> true",
		"link 2 3 -> true",
		"link 3 4 -> true",
		"count -> 1",
		"cut 2 3 -> bridge",
		"same 0 4 -> false",
		"link 0 4 -> true",
		"link 2 4 -> false",
		"count -> 1",
		"same 0 3 -> true",
		"set 3 10",
		"add 0 5",
		"sum 3 -> 35 (n=5)",
		"get 3 -> 15 (n=1)",
		"size 1 -> 5",
	}, lines)
	assert.Equal(t, 1, st.Components)
	assert.Equal(t, 5, st.Edges)
	assert.Equal(t, 6, st.Links)
	assert.Equal(t, 5, st.Merges)
	assert.Equal(t, 1, st.Bridges)
	assert.Equal(t, 7, st.Queries)
}

func TestVerify_ChurnAgainstOracle(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		s, err := workload.Build(40, []workload.Option{workload.WithSeed(seed)},
			workload.RandomSparse(40, 0.05),
			workload.Churn(1500, 55),
			workload.Queries(300),
			workload.Churn(1500, 40),
			workload.Teardown(),
		)
		require.NoError(t, err)
		st, err := workload.Verify(context.Background(), s)
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, 40, st.Components)
		assert.Zero(t, st.Edges)
		assert.Zero(t, st.Missing)
	}
}

func TestVerify_WithLockingAndHooks(t *testing.T) {
	s, err := workload.Build(16, []workload.Option{workload.WithSeed(5)},
		workload.Complete(16),
		workload.Teardown(),
	)
	require.NoError(t, err)
	searches := 0
	st, err := workload.Verify(context.Background(), s,
		dynconn.WithLocking(),
		dynconn.WithHooks(dynconn.Hooks{OnReplace: func(int, bool) { searches++ }}),
	)
	require.NoError(t, err)
	assert.Equal(t, 120, st.Cuts)
	assert.Equal(t, 15, st.Bridges)
	// Every bridge is a tree edge, and each tree-edge cut searches at least once.
	assert.GreaterOrEqual(t, searches, st.Bridges)
	assert.LessOrEqual(t, st.Levels, 5)
}

func TestRun_ContextCanceled(t *testing.T) {
	s, err := workload.Build(4, nil, workload.Path(4))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = workload.Run(ctx, s, nil)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = workload.Verify(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
}
