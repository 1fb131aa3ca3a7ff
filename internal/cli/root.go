// Package cli implements the cobra-based CLI commands for guessing-game.
//
// Each subcommand (play, config) is defined in its own file within this
// package. This file defines the root command that serves as the parent for
// all subcommands and handles global flags. Running the root command without
// a subcommand plays a game, so `guessing-game` alone behaves like the
// classic program.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/guessing-game/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput switches game events and command output to JSON.
	jsonOutput bool

	// verbose enables debug logging on stderr.
	verbose bool

	// configPath points at an explicit config file. When empty, the
	// working directory is searched for .guessing-game.{yaml,yml,jsonc,json}.
	configPath string
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	rootFlags := &playFlags{}

	rootCmd := &cobra.Command{
		Use:   "guessing-game",
		Short: "Guess the secret number",
		Long: `guessing-game draws a secret number and asks you to guess it.

After each guess you are told whether it was too small or too big.
Input that is not a number, or a number outside the range, is ignored
and you are asked again. The game ends when you find the secret.`,

		Args: cobra.NoArgs,

		// We format errors ourselves (text or JSON based on --json flag).
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, rootFlags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output events in JSON format (one object per line)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a config file (.yaml, .yml, .json, .jsonc)")

	// The root command plays too, so it accepts the same game flags.
	bindPlayFlags(rootCmd, rootFlags)

	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	printError(rootCmd.ErrOrStderr(), err)
	os.Exit(int(ExitCodeOf(err)))
}

// ExitCodeOf maps an error returned by a command to a process exit code.
// CLIError types carry their own exit codes; other errors default to 1.
func ExitCodeOf(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag. Errors always go to
// stderr, even in JSON mode, because stdout carries the game transcript.
func printError(w io.Writer, err error) {
	message := err.Error()
	var underlying error
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		message = cliErr.Message
		underlying = cliErr.Err
	}

	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.Marshal(errObj)
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
