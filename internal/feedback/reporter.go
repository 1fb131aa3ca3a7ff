// Package feedback renders game events for the player.
//
// Two renderers exist, mirroring the CLI's global --json flag:
//   - TextReporter writes human-readable lines styled with lipgloss. The
//     renderer is bound to the output writer, so colors appear only when
//     that writer is a terminal.
//   - JSONReporter writes one JSON object per event (NDJSON) so that a
//     script can drive the game through a pipe.
package feedback

import (
	"github.com/shinji-kodama/guessing-game/internal/guess"
	"github.com/shinji-kodama/guessing-game/internal/model"
)

// Reporter receives every user-visible event of a game, in order.
// Implementations write to their own output and must not block on input.
type Reporter interface {
	// Welcome is emitted once before the first prompt.
	Welcome(b guess.Bounds)

	// Prompt is emitted before each read from the input stream.
	Prompt()

	// Reveal shows the secret. It is only called in reveal/debug mode.
	Reveal(secret int)

	// Accepted echoes a guess that passed validation.
	Accepted(g guess.Guess)

	// Outcome reports the comparison result for an accepted guess.
	Outcome(g guess.Guess, o model.Outcome)

	// Rejected reports input that failed parsing or range validation.
	Rejected(input string, err error)

	// Summary is emitted once after the winning guess.
	Summary(r *model.Result)
}
