// Package model defines the domain types for the guessing-game CLI.
//
// These types are shared between the game loop, the feedback renderers and
// the cli package. Nothing here outlives a single process invocation:
// a Result is produced when a game ends and is only ever printed.
package model

import "fmt"

// Outcome is the three-way result of comparing an accepted guess with the
// secret value. It is consumed immediately by the game loop to select the
// feedback text and decide whether the loop continues.
type Outcome string

const (
	// OutcomeLess indicates the guess is smaller than the secret.
	OutcomeLess Outcome = "less"

	// OutcomeGreater indicates the guess is larger than the secret.
	OutcomeGreater Outcome = "greater"

	// OutcomeEqual indicates the guess matches the secret. This is the only
	// outcome that terminates the game.
	OutcomeEqual Outcome = "equal"
)

// String returns the string representation of Outcome.
// This method satisfies the fmt.Stringer interface.
func (o Outcome) String() string {
	return string(o)
}

// IsTerminal reports whether the outcome ends the game.
func (o Outcome) IsTerminal() bool {
	return o == OutcomeEqual
}

// Compare returns the Outcome of comparing guess against secret.
func Compare(guess, secret int) Outcome {
	switch {
	case guess < secret:
		return OutcomeLess
	case guess > secret:
		return OutcomeGreater
	default:
		return OutcomeEqual
	}
}

// Result summarizes a finished game. It is returned by the game loop once
// the player guesses the secret and is rendered by the feedback package.
type Result struct {
	// SessionID uniquely identifies the game run in logs and JSON output.
	SessionID string `json:"sessionId"`

	// Secret is the value the player had to find.
	Secret int `json:"secret"`

	// Attempts counts accepted (in-range) guesses, including the winning one.
	Attempts int `json:"attempts"`

	// Rejected counts inputs that failed parsing or range validation.
	// Rejected inputs never reach the comparator.
	Rejected int `json:"rejected"`

	// Guesses lists accepted guesses in the order they were made.
	Guesses []int `json:"guesses"`
}

// ExitCode defines standard CLI exit codes. These codes allow scripts to
// programmatically determine how a game ended.
type ExitCode int

const (
	// ExitSuccess indicates the game finished with a win.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigInvalid indicates the configuration file or flags could not
	// be loaded or failed validation.
	ExitConfigInvalid ExitCode = 2

	// ExitInputFailed indicates reading from standard input failed or the
	// stream was closed before the secret was guessed. This is the only
	// unrecoverable condition during play.
	ExitInputFailed ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
