// Package guess turns raw player input into a validated Guess.
//
// Validation happens in two steps:
//
//	line  --Parse-->  int  --New/Validator-->  Guess
//
// Parse rejects anything that is not a signed decimal integer (surrounding
// whitespace is ignored). New rejects integers outside the inclusive Bounds,
// which default to [1, 100]. Both failures wrap ErrRejected so callers can
// treat them identically and simply re-prompt.
package guess
