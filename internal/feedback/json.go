package feedback

import (
	"encoding/json"
	"io"

	"github.com/shinji-kodama/guessing-game/internal/guess"
	"github.com/shinji-kodama/guessing-game/internal/model"
)

// Event names written in the "event" field of every JSON line.
const (
	EventWelcome  = "welcome"
	EventPrompt   = "prompt"
	EventReveal   = "reveal"
	EventAccepted = "accepted"
	EventOutcome  = "outcome"
	EventRejected = "rejected"
	EventSummary  = "summary"
)

// Event is the JSON shape of a single game event. Fields that do not apply
// to an event are omitted.
type Event struct {
	Event     string        `json:"event"`
	SessionID string        `json:"sessionId"`
	Bounds    *guess.Bounds `json:"bounds,omitempty"`
	Value     *int          `json:"value,omitempty"`
	Outcome   model.Outcome `json:"outcome,omitempty"`
	Input     string        `json:"input,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	Result    *model.Result `json:"result,omitempty"`
}

// JSONReporter writes newline-delimited JSON events.
type JSONReporter struct {
	enc       *json.Encoder
	sessionID string
}

// NewJSONReporter creates a JSONReporter tagging every event with sessionID.
func NewJSONReporter(out io.Writer, sessionID string) *JSONReporter {
	return &JSONReporter{enc: json.NewEncoder(out), sessionID: sessionID}
}

// emit writes e. Encoding a flat struct cannot fail, and a write error
// on stdout has nowhere better to go, so the error is dropped.
func (r *JSONReporter) emit(e Event) {
	e.SessionID = r.sessionID
	_ = r.enc.Encode(e)
}

func intPtr(v int) *int { return &v }

// Welcome emits the bounds accepted by the validator.
func (r *JSONReporter) Welcome(b guess.Bounds) {
	r.emit(Event{Event: EventWelcome, Bounds: &b})
}

// Prompt emits a prompt event.
func (r *JSONReporter) Prompt() {
	r.emit(Event{Event: EventPrompt})
}

// Reveal emits the secret.
func (r *JSONReporter) Reveal(secret int) {
	r.emit(Event{Event: EventReveal, Value: intPtr(secret)})
}

// Accepted emits the validated guess.
func (r *JSONReporter) Accepted(g guess.Guess) {
	r.emit(Event{Event: EventAccepted, Value: intPtr(g.Value())})
}

// Outcome emits the comparison result.
func (r *JSONReporter) Outcome(g guess.Guess, o model.Outcome) {
	r.emit(Event{Event: EventOutcome, Value: intPtr(g.Value()), Outcome: o})
}

// Rejected emits the raw input and the reason it was discarded.
func (r *JSONReporter) Rejected(input string, err error) {
	e := Event{Event: EventRejected, Input: input}
	if err != nil {
		e.Reason = err.Error()
	}
	r.emit(e)
}

// Summary emits the final result.
func (r *JSONReporter) Summary(res *model.Result) {
	r.emit(Event{Event: EventSummary, Result: res})
}
