// Package model defines the domain types and value objects for the
// guessing-game CLI.
//
// This package contains pure data structures with no external dependencies.
// It holds the three-way comparison Outcome, the per-game Result summary,
// and the exit codes (ExitCode) plus a custom error type (CLIError) that
// carries an exit code for proper OS process exit handling.
package model
