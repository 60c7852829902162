package solver

// DetectZeroClue implements T1.1: every EMPTY cell in a line whose clue is
// zero must be sea.
func DetectZeroClue(b *Board) []Deduction {
	var out []Deduction
	seen := map[Coordinate]bool{}
	for r := 0; r < Dimension; r++ {
		if b.RowClue(r) != 0 {
			continue
		}
		for c := 0; c < Dimension; c++ {
			if b.stateAt(r, c) == Empty {
				out = appendUnique(out, seen, r, c, Sea, "T1.1", 1, 1)
			}
		}
	}
	for c := 0; c < Dimension; c++ {
		if b.ColClue(c) != 0 {
			continue
		}
		for r := 0; r < Dimension; r++ {
			if b.stateAt(r, c) == Empty {
				out = appendUnique(out, seen, r, c, Sea, "T1.1", 1, 1)
			}
		}
	}
	return out
}

// DetectSatisfiedClue implements T1.2: once a line's ship count equals its
// clue, every remaining EMPTY cell in that line is sea.
func DetectSatisfiedClue(b *Board) []Deduction {
	var out []Deduction
	seen := map[Coordinate]bool{}
	for r := 0; r < Dimension; r++ {
		if b.RowShipCount(r) != b.RowClue(r) {
			continue
		}
		for c := 0; c < Dimension; c++ {
			if b.stateAt(r, c) == Empty {
				out = appendUnique(out, seen, r, c, Sea, "T1.2", 1, 1)
			}
		}
	}
	for c := 0; c < Dimension; c++ {
		if b.ColShipCount(c) != b.ColClue(c) {
			continue
		}
		for r := 0; r < Dimension; r++ {
			if b.stateAt(r, c) == Empty {
				out = appendUnique(out, seen, r, c, Sea, "T1.2", 1, 1)
			}
		}
	}
	return out
}

// DetectDiagonalWater implements T1.3: every EMPTY cell diagonally adjacent
// to a confirmed ship cell must be sea, per the no-touch invariant.
func DetectDiagonalWater(b *Board) []Deduction {
	var out []Deduction
	seen := map[Coordinate]bool{}
	for r := 0; r < Dimension; r++ {
		for c := 0; c < Dimension; c++ {
			if b.stateAt(r, c) != Ship {
				continue
			}
			for _, d := range diagonal {
				nr, nc := r+d.Row, c+d.Col
				if b.WithinBounds(nr, nc) && b.stateAt(nr, nc) == Empty {
					out = appendUnique(out, seen, nr, nc, Sea, "T1.3", 1, 1)
				}
			}
		}
	}
	return out
}

// DetectHintShape implements T1.4: a hint ship cell's shape map pins the
// state of its orthogonal neighbors directly.
func DetectHintShape(b *Board) []Deduction {
	var out []Deduction
	seen := map[Coordinate]bool{}
	for r := 0; r < Dimension; r++ {
		for c := 0; c < Dimension; c++ {
			cell := b.cellAt(r, c)
			if !cell.IsHint || cell.State != Ship || cell.Shape.IsZero() {
				continue
			}
			for dir := 0; dir < 4; dir++ {
				expected, ok := cell.Shape.expected(dir)
				if !ok {
					continue
				}
				o := orthogonal[dir]
				nr, nc := r+o.Row, c+o.Col
				if b.WithinBounds(nr, nc) && b.stateAt(nr, nc) == Empty {
					out = appendUnique(out, seen, nr, nc, expected, "T1.4", 1, 1)
				}
			}
		}
	}
	return out
}
