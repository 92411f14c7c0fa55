// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/connectivity/internal/telemetry"
	"github.com/katalvlaran/connectivity/workload"
)

// Report summarizes one replay or stress run.
type Report struct {
	Command  string             `yaml:"command"`
	Seed     int64              `yaml:"seed,omitempty"`
	Vertices int                `yaml:"vertices"`
	Duration time.Duration      `yaml:"duration"`
	Stats    workload.Stats     `yaml:"stats"`
	Metrics  []telemetry.Sample `yaml:"metrics,omitempty"`
}

// BenchRow is one timed workload.
type BenchRow struct {
	Name       string        `yaml:"name"`
	Vertices   int           `yaml:"vertices"`
	Ops        int           `yaml:"ops"`
	Duration   time.Duration `yaml:"duration"`
	OpsPerSec  float64       `yaml:"ops_per_sec"`
	Levels     int           `yaml:"levels"`
	Components int           `yaml:"components"`
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func newTable(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)

	return tbl
}

func comma(n int) string { return humanize.Comma(int64(n)) }

// writeReport renders r in format.
func writeReport(w io.Writer, format string, r Report) error {
	if format == FormatYAML {
		return writeYAML(w, r)
	}

	tbl := newTable(w)
	tbl.SetTitle(fmt.Sprintf("%s: %s vertices", r.Command, comma(r.Vertices)))
	tbl.AppendHeader(table.Row{"metric", "value"})
	st := r.Stats
	tbl.AppendRows([]table.Row{
		{"operations", comma(st.Ops)},
		{"links", comma(st.Links)},
		{"merging links", comma(st.Merges)},
		{"cuts", comma(st.Cuts)},
		{"bridges", comma(st.Bridges)},
		{"replaced", comma(st.Replacements)},
		{"missing", comma(st.Missing)},
		{"queries", comma(st.Queries)},
		{"components", comma(st.Components)},
		{"edges", comma(st.Edges)},
		{"levels", st.Levels},
		{"duration", r.Duration.Round(time.Microsecond)},
	})
	if r.Seed != 0 {
		tbl.AppendRow(table.Row{"seed", r.Seed})
	}
	if len(r.Metrics) > 0 {
		tbl.AppendSeparator()
		for _, s := range r.Metrics {
			tbl.AppendRow(table.Row{s.Name, humanize.Ftoa(s.Value)})
		}
	}
	tbl.Render()

	return nil
}

// writeBench renders bench rows in format.
func writeBench(w io.Writer, format string, rows []BenchRow) error {
	if format == FormatYAML {
		return writeYAML(w, rows)
	}

	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"workload", "vertices", "ops", "time", "ops/s", "levels", "components"})
	total := 0
	for _, r := range rows {
		tbl.AppendRow(table.Row{
			r.Name,
			comma(r.Vertices),
			comma(r.Ops),
			r.Duration.Round(time.Microsecond),
			humanize.Comma(int64(r.OpsPerSec)),
			r.Levels,
			comma(r.Components),
		})
		total += r.Ops
	}
	tbl.AppendFooter(table.Row{"total", "", comma(total)})
	tbl.Render()

	return nil
}
