// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/connectivity/workload"
)

// stressScript is the generated workload of one stress round: a sparse
// random base, a link-heavy churn phase, queries, a cut-heavy churn phase
// and a full teardown.
func stressScript(cfg *Config, seed int64) (*workload.Script, error) {
	p := min(1.0, 2.0/float64(cfg.Vertices))

	return workload.Build(cfg.Vertices, []workload.Option{workload.WithSeed(seed)},
		workload.RandomSparse(cfg.Vertices, p),
		workload.Churn(cfg.Steps, cfg.LinkPercent),
		workload.Queries(cfg.Steps/10),
		workload.Churn(cfg.Steps, 100-cfg.LinkPercent),
		workload.Teardown(),
	)
}

func (c *CLI) stressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Cross-check random churn against a union-find oracle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			opts, metrics := c.graphOptions(cfg)
			p := newProgress(c.Logger)

			var total workload.Stats
			for round := 0; round < cfg.Rounds; round++ {
				seed := cfg.Seed + int64(round)
				s, err := stressScript(cfg, seed)
				if err != nil {
					return err
				}
				st, err := workload.Verify(cmd.Context(), s, opts...)
				if err != nil {
					return fmt.Errorf("stress round %d (seed %d): %w", round, seed, err)
				}
				c.Logger.Info("round verified", "round", round, "seed", seed, "ops", st.Ops, "levels", st.Levels)
				accumulate(&total, st)
			}
			p.done(fmt.Sprintf("verified %s ops in %d rounds", comma(total.Ops), cfg.Rounds))

			samples, err := snapshot(metrics)
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), cfg.Format, Report{
				Command:  "stress",
				Seed:     cfg.Seed,
				Vertices: cfg.Vertices,
				Duration: p.elapsed(),
				Stats:    total,
				Metrics:  samples,
			})
		},
	}
	cmd.Flags().Int64("seed", DefaultSeed, "seed of the first round; round i uses seed+i")
	cmd.Flags().Int("vertices", DefaultVertices, "vertex count")
	cmd.Flags().Int("steps", DefaultSteps, "churn steps per phase")
	cmd.Flags().Int("link-percent", DefaultLinkPercent, "link share of the first churn phase, in percent")
	cmd.Flags().Int("rounds", DefaultRounds, "number of independent rounds")
	addGraphFlags(cmd)

	return cmd
}

// accumulate adds the counters of st to total; the final-state fields keep
// the last round's values.
func accumulate(total *workload.Stats, st workload.Stats) {
	total.Ops += st.Ops
	total.Links += st.Links
	total.Merges += st.Merges
	total.Cuts += st.Cuts
	total.Bridges += st.Bridges
	total.Replacements += st.Replacements
	total.Missing += st.Missing
	total.Queries += st.Queries
	total.Components = st.Components
	total.Edges = st.Edges
	total.Levels = max(total.Levels, st.Levels)
}
