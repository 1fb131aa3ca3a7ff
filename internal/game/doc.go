// Package game runs the read-parse-validate-compare loop of a single game.
//
// A Session has two states:
//
//	awaiting guess --(outcome == equal)--> terminated
//
// Parse failures and range failures keep the session in "awaiting guess";
// they are reported and the player is prompted again. The only fatal
// condition is a failed read from the input stream (including end of
// input), which ends the session with a model.CLIError carrying
// model.ExitInputFailed.
//
// The session is single-threaded and blocks only on reading one line.
package game
