// Package secret draws the value the player has to guess.
//
// The draw uses a HALF-OPEN range:
//
//	secret ∈ [bounds.Min, bounds.Max)
//
// while guess validation accepts the closed range [Min, Max]. With the
// default 1-100 bounds the player may type 100, but 100 is never the secret.
// The game has always behaved this way and the asymmetry is kept as is.
//
// The random source is injected through the Source interface so tests and
// the --seed flag can pin the secret.
package secret
