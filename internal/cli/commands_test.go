// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/connectivity/internal/telemetry"
	"github.com/katalvlaran/connectivity/workload"
)

const triangleScript = `n 3
link 0 1
link 1 2
link 0 2
cut 0 1   # replaced by the other two edges
same 0 1
sum 2
`

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	// An explicit empty config keeps files in . or $HOME out of the way.
	cfgPath := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0o600))

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestReplay_PrintsResults(t *testing.T) {
	out, err := execute(t, triangleScript, "replay", "--metrics=false")
	require.NoError(t, err)
	assert.Contains(t, out, "link 0 2 -> false\n")
	assert.Contains(t, out, "cut 0 1 -> replaced\n")
	assert.Contains(t, out, "same 0 1 -> true\n")
	assert.Contains(t, out, "sum 2 -> 0 (n=3)\n")
	assert.Contains(t, out, "operations")
}

func TestReplay_YAMLReport(t *testing.T) {
	out, err := execute(t, triangleScript, "replay", "-q", "--format", "yaml")
	require.NoError(t, err)

	var r Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "replay", r.Command)
	assert.Equal(t, 3, r.Vertices)
	assert.Equal(t, 6, r.Stats.Ops)
	assert.Equal(t, 1, r.Stats.Replacements)
	assert.Equal(t, 1, r.Stats.Components)
	assert.Equal(t, 6.0, telemetry.Total(r.Metrics, "dynconn_ops_total"))
}

func TestReplay_FileArgumentAndErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "triangle.txt")
	require.NoError(t, os.WriteFile(good, []byte(triangleScript), 0o600))
	out, err := execute(t, "", "replay", good)
	require.NoError(t, err)
	assert.Contains(t, out, "cut 0 1 -> replaced")

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("n 2\nlink 0 5\n"), 0o600))
	_, err = execute(t, "", "replay", bad)
	assert.ErrorIs(t, err, workload.ErrVertexRange)

	_, err = execute(t, "link 0 1\n", "replay", "-")
	assert.ErrorIs(t, err, workload.ErrSyntax)

	_, err = execute(t, "", "replay", filepath.Join(dir, "absent.txt"))
	assert.Error(t, err)
}

func TestStress_VerifiesRounds(t *testing.T) {
	out, err := execute(t, "", "stress",
		"--vertices", "40", "--steps", "400", "--rounds", "2", "--seed", "11", "--format", "yaml")
	require.NoError(t, err)

	var r Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "stress", r.Command)
	assert.Equal(t, int64(11), r.Seed)
	assert.Equal(t, 40, r.Stats.Components, "teardown isolates every vertex")
	assert.Zero(t, r.Stats.Edges)
	assert.Zero(t, r.Stats.Missing)
	assert.Positive(t, r.Stats.Bridges)
}

func TestStress_InvalidConfig(t *testing.T) {
	_, err := execute(t, "", "stress", "--link-percent", "150")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestBench_AllWorkloads(t *testing.T) {
	out, err := execute(t, "", "bench", "--vertices", "25", "--steps", "200", "--format", "yaml", "--locking")
	require.NoError(t, err)

	var rows []BenchRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 6)
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
		assert.Positive(t, r.Ops, r.Name)
	}
	assert.Equal(t, []string{"path", "cycle", "star", "grid", "complete", "churn"}, names)
	assert.Equal(t, 25, rows[3].Components, "grid 5x5 torn down")
}

func TestBench_Table(t *testing.T) {
	out, err := execute(t, "", "bench", "--vertices", "9", "--steps", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "WORKLOAD")
	assert.Contains(t, out, "complete")
}

func TestVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dynconn v1.2.3")
	assert.Contains(t, out, "commit: abc123")
	assert.Contains(t, out, "go: go")
}
