package solver

// DetectGapTooSmall implements T4.1: a maximal EMPTY run bounded by
// sea/edge on both ends that is shorter than the smallest remaining ship
// size cannot hold any ship at all, so every cell in it is sea.
func DetectGapTooSmall(b *Board) []Deduction {
	smallest, ok := minRemainingShipLength(b.RemainingFleet())
	if !ok {
		return nil
	}
	var out []Deduction
	seen := map[Coordinate]bool{}
	for r := 0; r < Dimension; r++ {
		for _, seg := range horizontalSegments(b, r, Empty) {
			if seg.boundedStart && seg.boundedEnd && len(seg.cells) < smallest {
				for _, coord := range seg.cells {
					out = appendUnique(out, seen, coord.Row, coord.Col, Sea, "T4.1", 4, 7)
				}
			}
		}
	}
	for c := 0; c < Dimension; c++ {
		for _, seg := range verticalSegments(b, c, Empty) {
			if seg.boundedStart && seg.boundedEnd && len(seg.cells) < smallest {
				for _, coord := range seg.cells {
					out = appendUnique(out, seen, coord.Row, coord.Col, Sea, "T4.1", 4, 7)
				}
			}
		}
	}
	return out
}

// DetectFleetExhaustion implements T4.2: once every ship of size k has been
// placed, a partial ship run of length k-1 cannot extend further — its
// EMPTY end neighbors must be sea.
func DetectFleetExhaustion(b *Board) []Deduction {
	remaining := b.RemainingFleet()
	var out []Deduction
	seen := map[Coordinate]bool{}
	for size, left := range remaining {
		if left > 0 || size < 2 {
			continue
		}
		target := size - 1
		for r := 0; r < Dimension; r++ {
			for _, seg := range horizontalSegments(b, r, Ship) {
				if len(seg.cells) != target {
					continue
				}
				first, last := seg.cells[0], seg.cells[len(seg.cells)-1]
				if b.StateAt(first.Row, first.Col-1) == Empty {
					out = appendUnique(out, seen, first.Row, first.Col-1, Sea, "T4.2", 4, 7)
				}
				if b.StateAt(last.Row, last.Col+1) == Empty {
					out = appendUnique(out, seen, last.Row, last.Col+1, Sea, "T4.2", 4, 7)
				}
			}
		}
		for c := 0; c < Dimension; c++ {
			for _, seg := range verticalSegments(b, c, Ship) {
				if len(seg.cells) != target {
					continue
				}
				first, last := seg.cells[0], seg.cells[len(seg.cells)-1]
				if b.StateAt(first.Row-1, first.Col) == Empty {
					out = appendUnique(out, seen, first.Row-1, first.Col, Sea, "T4.2", 4, 7)
				}
				if b.StateAt(last.Row+1, last.Col) == Empty {
					out = appendUnique(out, seen, last.Row+1, last.Col, Sea, "T4.2", 4, 7)
				}
			}
		}
	}
	return out
}

// DetectCapAtMax implements T4.3: a ship run whose length already equals
// the largest remaining ship size cannot extend — both its EMPTY end
// neighbors, if any, must be sea.
func DetectCapAtMax(b *Board) []Deduction {
	max, ok := maxRemainingShipLength(b.RemainingFleet())
	if !ok {
		return nil
	}
	var out []Deduction
	seen := map[Coordinate]bool{}
	for r := 0; r < Dimension; r++ {
		for _, seg := range horizontalSegments(b, r, Ship) {
			if len(seg.cells) != max {
				continue
			}
			first, last := seg.cells[0], seg.cells[len(seg.cells)-1]
			if b.StateAt(first.Row, first.Col-1) == Empty {
				out = appendUnique(out, seen, first.Row, first.Col-1, Sea, "T4.3", 4, 8)
			}
			if b.StateAt(last.Row, last.Col+1) == Empty {
				out = appendUnique(out, seen, last.Row, last.Col+1, Sea, "T4.3", 4, 8)
			}
		}
	}
	for c := 0; c < Dimension; c++ {
		for _, seg := range verticalSegments(b, c, Ship) {
			if len(seg.cells) != max {
				continue
			}
			first, last := seg.cells[0], seg.cells[len(seg.cells)-1]
			if b.StateAt(first.Row-1, first.Col) == Empty {
				out = appendUnique(out, seen, first.Row-1, first.Col, Sea, "T4.3", 4, 8)
			}
			if b.StateAt(last.Row+1, last.Col) == Empty {
				out = appendUnique(out, seen, last.Row+1, last.Col, Sea, "T4.3", 4, 8)
			}
		}
	}
	return out
}

// DetectPreventLongJoin implements T4.4: an EMPTY cell that would, if made
// ship, join adjacent ship runs into one longer than the largest remaining
// ship size must be sea.
func DetectPreventLongJoin(b *Board) []Deduction {
	max, ok := maxRemainingShipLength(b.RemainingFleet())
	if !ok {
		return nil
	}
	var out []Deduction
	seen := map[Coordinate]bool{}
	for r := 0; r < Dimension; r++ {
		for c := 0; c < Dimension; c++ {
			if b.stateAt(r, c) != Empty {
				continue
			}
			west := runLength(b, r, c, 0, -1)
			east := runLength(b, r, c, 0, 1)
			north := runLength(b, r, c, -1, 0)
			south := runLength(b, r, c, 1, 0)
			if west+east+1 > max || north+south+1 > max {
				out = appendUnique(out, seen, r, c, Sea, "T4.4", 4, 8)
			}
		}
	}
	return out
}

// runLength counts consecutive ship cells starting one step from (r, c) in
// direction (dr, dc).
func runLength(b *Board, r, c, dr, dc int) int {
	n := 0
	rr, cc := r+dr, c+dc
	for b.StateAt(rr, cc) == Ship {
		n++
		rr += dr
		cc += dc
	}
	return n
}
