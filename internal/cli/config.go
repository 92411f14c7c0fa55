// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName      = ".dynconn"
	configType      = "yaml"
	envPrefix       = "DYNCONN"
	envKeySeparator = "_"
)

// Defaults.
const (
	DefaultSeed        int64 = 1
	DefaultVertices          = 1000
	DefaultSteps             = 20000
	DefaultLinkPercent       = 55
	DefaultRounds            = 1
	DefaultFormat            = FormatTable
)

// Output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the resolved CLI configuration.
type Config struct {
	Seed        int64  `mapstructure:"seed"`
	Vertices    int    `mapstructure:"vertices"`
	Steps       int    `mapstructure:"steps"`
	LinkPercent int    `mapstructure:"link_percent"`
	Rounds      int    `mapstructure:"rounds"`
	Locking     bool   `mapstructure:"locking"`
	Format      string `mapstructure:"format"`
	Metrics     bool   `mapstructure:"metrics"`
}

// Validate checks value domains.
func (c *Config) Validate() error {
	switch {
	case c.Vertices < 1:
		return fmt.Errorf("%w: vertices=%d < 1", ErrInvalidConfig, c.Vertices)
	case c.Steps < 0:
		return fmt.Errorf("%w: steps=%d < 0", ErrInvalidConfig, c.Steps)
	case c.LinkPercent < 0 || c.LinkPercent > 100:
		return fmt.Errorf("%w: link_percent=%d not in [0,100]", ErrInvalidConfig, c.LinkPercent)
	case c.Rounds < 1:
		return fmt.Errorf("%w: rounds=%d < 1", ErrInvalidConfig, c.Rounds)
	case c.Format != FormatTable && c.Format != FormatYAML:
		return fmt.Errorf("%w: format=%q (want %s or %s)", ErrInvalidConfig, c.Format, FormatTable, FormatYAML)
	}

	return nil
}

// flagKeys maps config keys to the flag names that may override them.
var flagKeys = map[string]string{
	"seed":         "seed",
	"vertices":     "vertices",
	"steps":        "steps",
	"link_percent": "link-percent",
	"rounds":       "rounds",
	"locking":      "locking",
	"format":       "format",
	"metrics":      "metrics",
}

// LoadConfig loads configuration from flags of cmd (when changed), env vars,
// the config file and defaults, in that order of precedence. If configPath
// is empty the file is searched in the working directory and $HOME; a
// missing file is not an error.
func LoadConfig(configPath string, cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if cmd != nil {
		for key, name := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("seed", DefaultSeed)
	v.SetDefault("vertices", DefaultVertices)
	v.SetDefault("steps", DefaultSteps)
	v.SetDefault("link_percent", DefaultLinkPercent)
	v.SetDefault("rounds", DefaultRounds)
	v.SetDefault("locking", false)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("metrics", true)
}
