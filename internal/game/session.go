package game

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shinji-kodama/guessing-game/internal/feedback"
	"github.com/shinji-kodama/guessing-game/internal/guess"
	"github.com/shinji-kodama/guessing-game/internal/model"
)

// Options configures a Session. The zero value is usable: it plays with
// the default 1-100 bounds, discards diagnostics and logs nothing.
type Options struct {
	// SessionID tags the result and log lines. Generated when empty.
	SessionID string

	// Bounds is the inclusive range accepted from the player.
	// A zero value means guess.DefaultBounds().
	Bounds guess.Bounds

	// Reveal prints the secret before the first prompt.
	Reveal bool

	// Diagnostics receives the validator's out-of-range messages.
	Diagnostics io.Writer

	// Logger receives debug-level traces of rejected input.
	Logger *zerolog.Logger
}

// Session is one game: a fixed secret and the player's input stream.
type Session struct {
	id        string
	secret    int
	bounds    guess.Bounds
	reveal    bool
	input     *bufio.Reader
	validator *guess.Validator
	reporter  feedback.Reporter
	log       zerolog.Logger
}

// NewSessionID returns a fresh random identifier for a game.
func NewSessionID() string {
	return uuid.NewString()
}

// NewSession creates a Session that compares guesses read from in against
// secret and reports every event to rep. The secret never changes for the
// lifetime of the session.
func NewSession(secret int, in io.Reader, rep feedback.Reporter, opts Options) *Session {
	if opts.SessionID == "" {
		opts.SessionID = NewSessionID()
	}
	if opts.Bounds == (guess.Bounds{}) {
		opts.Bounds = guess.DefaultBounds()
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Session{
		id:        opts.SessionID,
		secret:    secret,
		bounds:    opts.Bounds,
		reveal:    opts.Reveal,
		input:     bufio.NewReader(in),
		validator: guess.NewValidator(opts.Bounds, opts.Diagnostics),
		reporter:  rep,
		log:       logger.With().Str("session", opts.SessionID).Logger(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Run plays until the player guesses the secret.
//
// Loop body:
//  1. Prompt and read one line. A read failure is fatal.
//  2. Parse the line. On failure, report and re-prompt.
//  3. Validate the range. On failure, the validator prints its diagnostic;
//     report and re-prompt.
//  4. Echo the accepted guess and compare it with the secret.
//  5. Stop on equality; otherwise report the direction and loop.
func (s *Session) Run() (*model.Result, error) {
	result := &model.Result{
		SessionID: s.id,
		Secret:    s.secret,
		Guesses:   []int{},
	}

	s.reporter.Welcome(s.bounds)
	if s.reveal {
		s.reporter.Reveal(s.secret)
	}
	s.log.Debug().Str("bounds", s.bounds.String()).Msg("session started")

	for {
		s.reporter.Prompt()

		line, err := s.readLine()
		if err != nil {
			s.log.Debug().Err(err).Int("attempts", result.Attempts).Msg("input closed")
			return nil, model.WrapCLIError(model.ExitInputFailed, "failed to read line", err)
		}

		n, err := guess.Parse(line)
		if err != nil {
			result.Rejected++
			s.log.Debug().Str("input", line).Msg("rejected: not a number")
			s.reporter.Rejected(strings.TrimSpace(line), err)
			continue
		}

		g, err := s.validator.Validate(n)
		if err != nil {
			result.Rejected++
			s.log.Debug().Int("value", n).Msg("rejected: out of range")
			s.reporter.Rejected(strings.TrimSpace(line), err)
			continue
		}

		result.Attempts++
		result.Guesses = append(result.Guesses, g.Value())
		s.reporter.Accepted(g)

		outcome := model.Compare(g.Value(), s.secret)
		s.reporter.Outcome(g, outcome)
		if outcome.IsTerminal() {
			s.log.Debug().Int("attempts", result.Attempts).Msg("secret found")
			s.reporter.Summary(result)
			return result, nil
		}
	}
}

// readLine returns the next line without its terminator. Lines of any
// length are accepted so an oversized paste is rejected as input rather
// than ending the game. End of input with nothing buffered is reported as
// io.EOF so that a closed stdin ends the game instead of spinning on empty
// reads.
func (s *Session) readLine() (string, error) {
	line, err := s.input.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
