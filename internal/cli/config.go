// Package cli: config.go implements the "guessing-game config" command.
//
// The config command prints the effective configuration after defaults,
// the config file and the environment have been merged. It is the quickest
// way to check which file was picked up and which range a game will use.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/guessing-game/internal/config"
)

// NewConfigCommand creates the "config" cobra command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration a game would use.

Settings are merged from built-in defaults, a config file (--config, or
.guessing-game.{yaml,yml,jsonc,json} in the working directory) and the
GUESSING_GAME_LOG_LEVEL environment variable.

Examples:
  guessing-game config
  guessing-game config --json
  guessing-game config --config ./kids.yaml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			if err := config.Check(cfg); err != nil {
				return err
			}
			printConfig(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
}

// printConfig outputs cfg in text or JSON format, depending on the global
// --json flag.
func printConfig(w io.Writer, cfg *config.Config) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(cfg, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}
	printConfigText(w, cfg)
}

// printConfigText outputs cfg as aligned key/value rows:
//
//	SOURCE     defaults
//	RANGE      1-100
//	SECRET     1-99
//	SEED       random
//	REVEAL     false
//	LOG LEVEL  info
func printConfigText(w io.Writer, cfg *config.Config) {
	source := cfg.Source
	if source == "" {
		source = "defaults"
	}

	rows := [][2]string{
		{"SOURCE", source},
		{"RANGE", cfg.Bounds().String()},
		{"SECRET", fmt.Sprintf("%d-%d", cfg.Min, cfg.Max-1)},
		{"SEED", FormatSeed(cfg.Seed)},
		{"REVEAL", strconv.FormatBool(cfg.RevealSecret)},
		{"LOG LEVEL", cfg.LogLevel},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-10s %s\n", row[0], row[1])
	}
}

// FormatSeed renders a seed for display. Returns "random" for zero.
//
// Example:
//
//	0  → "random"
//	42 → "42"
func FormatSeed(seed uint64) string {
	if seed == 0 {
		return "random"
	}
	return strconv.FormatUint(seed, 10)
}
