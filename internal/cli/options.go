// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/connectivity/dynconn"
	"github.com/katalvlaran/connectivity/internal/telemetry"
)

// addGraphFlags registers flags shared by every command that builds graphs.
func addGraphFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("locking", false, "guard the graph with a mutex")
	cmd.Flags().String("format", DefaultFormat, "report format: table or yaml")
	cmd.Flags().Bool("metrics", true, "collect and report prometheus counters")
}

// graphOptions returns dynconn options for cfg plus the metrics sink, which
// is nil when metrics are disabled.
func (c *CLI) graphOptions(cfg *Config) ([]dynconn.Option, *telemetry.Metrics) {
	var opts []dynconn.Option
	if cfg.Locking {
		opts = append(opts, dynconn.WithLocking())
	}
	if l := c.graphLogger(); l != nil {
		opts = append(opts, dynconn.WithLogger(l))
	}
	var m *telemetry.Metrics
	if cfg.Metrics {
		m = telemetry.New()
		opts = append(opts, dynconn.WithHooks(m.Hooks()))
	}

	return opts, m
}

func snapshot(m *telemetry.Metrics) ([]telemetry.Sample, error) {
	if m == nil {
		return nil, nil
	}

	return m.Snapshot()
}
