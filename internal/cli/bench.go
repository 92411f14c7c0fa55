// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/connectivity/workload"
)

// maxCompleteVertices caps the complete-graph fixture, which is quadratic.
const maxCompleteVertices = 256

type benchCase struct {
	name string
	n    int
	cons []workload.Constructor
}

func benchCases(cfg *Config) []benchCase {
	n := cfg.Vertices
	side := max(1, int(math.Sqrt(float64(n))))
	kn := min(n, maxCompleteVertices)

	return []benchCase{
		{"path", n, []workload.Constructor{workload.Path(n), workload.Teardown()}},
		{"cycle", n, []workload.Constructor{workload.Cycle(max(n, 3)), workload.Teardown()}},
		{"star", n, []workload.Constructor{workload.Star(max(n, 2)), workload.Teardown()}},
		{"grid", side * side, []workload.Constructor{workload.Grid(side, side), workload.Teardown()}},
		{"complete", kn, []workload.Constructor{workload.Complete(kn), workload.Teardown()}},
		{"churn", n, []workload.Constructor{workload.Churn(cfg.Steps, cfg.LinkPercent), workload.Queries(cfg.Steps / 4)}},
	}
}

func (c *CLI) benchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time fixture workloads (build then random teardown, and churn)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			var rows []BenchRow
			for _, bc := range benchCases(cfg) {
				s, err := workload.Build(max(bc.n, 3), []workload.Option{workload.WithSeed(cfg.Seed)}, bc.cons...)
				if err != nil {
					return fmt.Errorf("bench %s: %w", bc.name, err)
				}
				opts, _ := c.graphOptions(cfg)
				start := time.Now()
				st, err := workload.Run(cmd.Context(), s, nil, opts...)
				if err != nil {
					return fmt.Errorf("bench %s: %w", bc.name, err)
				}
				elapsed := time.Since(start)
				rate := 0.0
				if elapsed > 0 {
					rate = float64(st.Ops) / elapsed.Seconds()
				}
				c.Logger.Debug("workload timed", "name", bc.name, "ops", st.Ops, "elapsed", elapsed)
				rows = append(rows, BenchRow{
					Name:       bc.name,
					Vertices:   s.N,
					Ops:        st.Ops,
					Duration:   elapsed,
					OpsPerSec:  rate,
					Levels:     st.Levels,
					Components: st.Components,
				})
			}

			return writeBench(cmd.OutOrStdout(), cfg.Format, rows)
		},
	}
	cmd.Flags().Int64("seed", DefaultSeed, "seed for random teardown order and churn")
	cmd.Flags().Int("vertices", DefaultVertices, "vertex count")
	cmd.Flags().Int("steps", DefaultSteps, "churn steps")
	cmd.Flags().Int("link-percent", DefaultLinkPercent, "link share of churn, in percent")
	addGraphFlags(cmd)

	return cmd
}
