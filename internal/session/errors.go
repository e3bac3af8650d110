package session

import "errors"

// Interaction errors are purely local and non-fatal: they never change
// state and always leave the session ready for the next event.
var (
	// ErrOutOfRange rejects interactions beyond the interaction range.
	ErrOutOfRange = errors.New("session: target cell out of interaction range")

	// ErrEmptyCell rejects interactions on cells with no collectible token.
	ErrEmptyCell = errors.New("session: no collectible token at target cell")

	// ErrValueMismatch rejects merges onto a token of a different value.
	ErrValueMismatch = errors.New("session: held token does not match target value")
)
