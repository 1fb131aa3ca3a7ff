package guess

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// DefaultMin is the smallest value a guess may take.
	DefaultMin = 1

	// DefaultMax is the largest value a guess may take. Note that the secret
	// is drawn from the half-open range [DefaultMin, DefaultMax), so this
	// value passes validation but can never win.
	DefaultMax = 100
)

// ErrRejected is the sentinel wrapped by every validation failure.
var ErrRejected = errors.New("guess rejected")

// Bounds is an inclusive integer range.
type Bounds struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// DefaultBounds returns the [1, 100] range used when nothing is configured.
func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMin, Max: DefaultMax}
}

// Contains reports whether v lies within the inclusive range.
func (b Bounds) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

// String formats the bounds as "min-max".
func (b Bounds) String() string {
	return fmt.Sprintf("%d-%d", b.Min, b.Max)
}

// Guess is a player-supplied integer that is known to lie within Bounds.
// The zero value is never handed out by New on success.
type Guess struct {
	value int
}

// Value returns the wrapped integer unchanged.
func (g Guess) Value() int {
	return g.value
}

// RangeError reports an integer that parsed fine but lies outside Bounds.
type RangeError struct {
	Value  int
	Bounds Bounds
}

// Error implements the error interface for RangeError.
func (e *RangeError) Error() string {
	return fmt.Sprintf("guess value must be between %d and %d, obtained %d",
		e.Bounds.Min, e.Bounds.Max, e.Value)
}

// Unwrap lets errors.Is(err, ErrRejected) match range failures.
func (e *RangeError) Unwrap() error {
	return ErrRejected
}

// ParseError reports input that is not a decimal integer.
type ParseError struct {
	// Input is the raw line as typed, before trimming.
	Input string

	// Err is the strconv failure.
	Err error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("not a number: %q: %v", strings.TrimSpace(e.Input), e.Err)
}

// Unwrap returns both the strconv error and ErrRejected.
func (e *ParseError) Unwrap() []error {
	return []error{e.Err, ErrRejected}
}

// Parse trims surrounding whitespace from line and parses it as a signed
// decimal integer. Values that do not fit in 32 bits are rejected, matching
// the i32 range the game has always used.
func Parse(line string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return 0, &ParseError{Input: line, Err: err}
	}
	return int(n), nil
}

// New wraps value in a Guess if it lies within b.
// On failure it returns the zero Guess and a *RangeError.
func New(value int, b Bounds) (Guess, error) {
	if !b.Contains(value) {
		return Guess{}, &RangeError{Value: value, Bounds: b}
	}
	return Guess{value: value}, nil
}

// Validator applies New and prints a diagnostic for every rejected value.
// The game loop uses it so the player sees why an out-of-range number was
// ignored, while parse failures stay silent.
type Validator struct {
	// Bounds is the inclusive range accepted by the validator.
	Bounds Bounds

	// Out receives the diagnostic line. A nil Out discards it.
	Out io.Writer
}

// NewValidator creates a Validator for b that writes diagnostics to out.
func NewValidator(b Bounds, out io.Writer) *Validator {
	return &Validator{Bounds: b, Out: out}
}

// Validate behaves like New. When the value is rejected, the diagnostic is
// written before the error is returned.
func (v *Validator) Validate(value int) (Guess, error) {
	g, err := New(value, v.Bounds)
	if err != nil {
		if v.Out != nil {
			fmt.Fprintf(v.Out, "Guess value must be between %d and %d, obtained %d.\n",
				v.Bounds.Min, v.Bounds.Max, value)
		}
		return Guess{}, err
	}
	return g, nil
}
