package feedback

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/shinji-kodama/guessing-game/internal/guess"
	"github.com/shinji-kodama/guessing-game/internal/model"
)

// Theme holds the lipgloss styles used by TextReporter.
type Theme struct {
	Title   lipgloss.Style
	Prompt  lipgloss.Style
	Muted   lipgloss.Style
	Low     lipgloss.Style
	High    lipgloss.Style
	Win     lipgloss.Style
	Summary lipgloss.Style
}

// DefaultTheme builds the standard styles on renderer r.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Title:   r.NewStyle().Bold(true),
		Prompt:  r.NewStyle().Faint(true),
		Muted:   r.NewStyle().Faint(true),
		Low:     r.NewStyle().Foreground(lipgloss.Color("#2196F3")),
		High:    r.NewStyle().Foreground(lipgloss.Color("#FFC107")),
		Win:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		Summary: r.NewStyle().Faint(true),
	}
}

// TextReporter prints the classic line-oriented game transcript.
type TextReporter struct {
	out   io.Writer
	theme Theme
}

// NewTextReporter creates a TextReporter writing to out. The lipgloss
// renderer inspects out itself, so a bytes.Buffer or a pipe gets plain text.
func NewTextReporter(out io.Writer) *TextReporter {
	return &TextReporter{
		out:   out,
		theme: DefaultTheme(lipgloss.NewRenderer(out)),
	}
}

func (r *TextReporter) println(style lipgloss.Style, text string) {
	fmt.Fprintln(r.out, style.Render(text))
}

// Welcome prints the title line.
func (r *TextReporter) Welcome(b guess.Bounds) {
	r.println(r.theme.Title, "Guess the number!")
	r.println(r.theme.Muted, fmt.Sprintf("Pick a number between %d and %d.", b.Min, b.Max))
}

// Prompt asks for the next guess.
func (r *TextReporter) Prompt() {
	r.println(r.theme.Prompt, "Please input your guess.")
}

// Reveal prints the secret.
func (r *TextReporter) Reveal(secret int) {
	r.println(r.theme.Muted, fmt.Sprintf("The secret number is: %d", secret))
}

// Accepted echoes the validated guess.
func (r *TextReporter) Accepted(g guess.Guess) {
	fmt.Fprintf(r.out, "You guessed: %d\n", g.Value())
}

// Outcome prints "Too small!", "Too big!" or "You win!".
func (r *TextReporter) Outcome(_ guess.Guess, o model.Outcome) {
	switch o {
	case model.OutcomeLess:
		r.println(r.theme.Low, "Too small!")
	case model.OutcomeGreater:
		r.println(r.theme.High, "Too big!")
	case model.OutcomeEqual:
		r.println(r.theme.Win, "You win!")
	}
}

// Rejected prints nothing. Parse failures re-prompt silently and range
// failures already got their diagnostic from guess.Validator.
func (r *TextReporter) Rejected(string, error) {}

// Summary prints the attempt count.
func (r *TextReporter) Summary(res *model.Result) {
	noun := "guesses"
	if res.Attempts == 1 {
		noun = "guess"
	}
	r.println(r.theme.Summary, fmt.Sprintf("Found %d in %d %s.", res.Secret, res.Attempts, noun))
}
