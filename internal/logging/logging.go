// Package logging configures the zerolog logger used by the CLI.
//
// Logs go to stderr so they never interleave with the game transcript on
// stdout. By default the logger is silent; --verbose or a debug/trace level
// turns it on.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls Setup.
type Options struct {
	// Out is where log lines are written (normally os.Stderr).
	Out io.Writer

	// Level is a zerolog level name. Empty means "info".
	Level string

	// Verbose enables output at debug level regardless of Level.
	Verbose bool

	// JSON writes raw JSON lines instead of the console format.
	JSON bool
}

// Setup builds a logger from opts, installs it as the zerolog/log global
// and returns it.
//
// Output is disabled unless Verbose is set or Level is debug or trace: a
// terminal game has no use for info-level chatter on stderr.
func Setup(opts Options) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if opts.Verbose && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	if level > zerolog.DebugLevel {
		level = zerolog.Disabled
	}

	var w io.Writer = opts.Out
	if w == nil {
		w = io.Discard
	}
	if !opts.JSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}
