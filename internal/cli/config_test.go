// SPDX-License-Identifier: MIT

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dynconn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "vertices: 64\nformat: yaml\nmetrics: false\n")
	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Vertices)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.False(t, cfg.Metrics)
	assert.Equal(t, DefaultSeed, cfg.Seed)
	assert.Equal(t, DefaultSteps, cfg.Steps)
	assert.Equal(t, DefaultLinkPercent, cfg.LinkPercent)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "vertices: 64\n")
	t.Setenv("DYNCONN_VERTICES", "77")
	t.Setenv("DYNCONN_LINK_PERCENT", "30")
	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.Vertices)
	assert.Equal(t, 30, cfg.LinkPercent)
}

func TestLoadConfig_ChangedFlagsWin(t *testing.T) {
	path := writeConfig(t, "vertices: 64\nsteps: 10\n")
	t.Setenv("DYNCONN_STEPS", "20")
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().Int("vertices", DefaultVertices, "")
	cmd.Flags().Int("steps", DefaultSteps, "")
	require.NoError(t, cmd.Flags().Set("steps", "5"))

	cfg, err := LoadConfig(path, cmd)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Vertices, "unchanged flag does not shadow the file")
	assert.Equal(t, 5, cfg.Steps)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"format":       "format: xml\n",
		"vertices":     "vertices: 0\n",
		"link_percent": "link_percent: 101\n",
		"rounds":       "rounds: 0\n",
		"steps":        "steps: -1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body), nil)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}
