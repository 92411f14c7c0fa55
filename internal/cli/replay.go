// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/connectivity/workload"
)

func (c *CLI) replayCommand() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "Replay an operation script and print every result",
		Long: `Replay reads a script (a file, or stdin when the argument is "-" or absent)
and runs it against a fresh graph whose vertices all start at 0.

  n 5          declare the vertex count
  link 0 1     cut 0 1     same 0 1     size 0
  set 3 10     get 3       add 0 5      sum 0      count`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			s, err := readScript(cmd.InOrStdin(), src)
			if err != nil {
				return err
			}
			c.Logger.Debug("script parsed", "source", src, "vertices", s.N, "ops", s.Len())

			out := cmd.OutOrStdout()
			opts, metrics := c.graphOptions(cfg)
			obs := func(step int, r workload.Result) {
				if metrics != nil {
					metrics.Observe(step, r)
				}
				if !quiet {
					fmt.Fprintln(out, r.String())
				}
			}

			p := newProgress(c.Logger)
			st, err := workload.Run(cmd.Context(), s, obs, opts...)
			if err != nil {
				return fmt.Errorf("replay %s: %w", src, err)
			}
			p.done(fmt.Sprintf("replayed %s ops", comma(st.Ops)))

			samples, err := snapshot(metrics)
			if err != nil {
				return err
			}

			return writeReport(out, cfg.Format, Report{
				Command:  "replay",
				Vertices: s.N,
				Duration: p.elapsed(),
				Stats:    st,
				Metrics:  samples,
			})
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the summary")
	addGraphFlags(cmd)

	return cmd
}

func readScript(stdin io.Reader, src string) (*workload.Script, error) {
	if src == "-" {
		return workload.Parse(stdin)
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	s, err := workload.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	return s, nil
}
