// SPDX-License-Identifier: MIT

// Package cli implements the dynconn command-line interface.
//
// # Commands
//
//   - replay: run a script file (or stdin) and print every result
//   - stress: generate random churn and cross-check against the oracle
//   - bench: time fixture workloads
//   - version: print build information
//
// # Configuration
//
// Settings come from flags, DYNCONN_* environment variables, a .dynconn.yaml
// in the working or home directory (or --config), then defaults.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// turns on dynconn's own debug records.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "dynconn"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Fully dynamic connectivity with component aggregates",
		Long:         `dynconn replays, stress-tests and benchmarks a Holm–de Lichtenberg–Thorup dynamic connectivity structure with per-component monoid aggregates.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(versionTemplate())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default .dynconn.yaml in . or $HOME)")

	root.AddCommand(c.replayCommand())
	root.AddCommand(c.stressCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// loadConfig resolves configuration for cmd, binding its flags.
func (c *CLI) loadConfig(cmd *cobra.Command) (*Config, error) {
	cfg, err := LoadConfig(c.configPath, cmd)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("config loaded", "seed", cfg.Seed, "vertices", cfg.Vertices, "format", cfg.Format)

	return cfg, nil
}
