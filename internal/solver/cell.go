package solver

// Cell is one position on the board: its current state, whether it was a
// puzzle-supplied hint, the hint's shape constraints if any, and the
// reference-solution state when a board was built with one for validation.
type Cell struct {
	Row, Col     int
	State        CellState
	IsHint       bool
	Shape        HintShape
	Reference    CellState
	HasReference bool
}
