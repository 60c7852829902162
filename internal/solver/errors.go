package solver

import "errors"

// These describe programming errors in a caller or a technique, not
// puzzle-level failures — a well-formed board never trips them. Malformed
// puzzle input is rejected earlier, by internal/puzzle, before a Board is
// ever constructed.
var (
	// ErrBadDimensions is returned by callers that validate clue slices
	// themselves before handing them to NewBoard.
	ErrBadDimensions = errors.New("solver: clue slice must have length Dimension")
	// ErrBadSnapshot is returned by callers that validate a snapshot
	// string's length themselves before handing it to Board.Restore.
	ErrBadSnapshot = errors.New("solver: snapshot has the wrong length")
)
