package solver

// lineSegment is a maximal contiguous run of cells sharing a state, along a
// single row or column, together with whether each end is bounded by
// sea/edge (as opposed to an adjacent cell of a different state that isn't
// sea — e.g. a ship run touching an empty cell is not yet boundary-complete).
type lineSegment struct {
	cells        []Coordinate
	boundedStart bool
	boundedEnd   bool
}

// horizontalSegments finds every maximal run of cells in row r whose state
// equals want.
func horizontalSegments(b *Board, r int, want CellState) []lineSegment {
	var segs []lineSegment
	c := 0
	for c < Dimension {
		if b.stateAt(r, c) != want {
			c++
			continue
		}
		start := c
		for c < Dimension && b.stateAt(r, c) == want {
			c++
		}
		end := c - 1
		cells := make([]Coordinate, 0, end-start+1)
		for cc := start; cc <= end; cc++ {
			cells = append(cells, Coordinate{r, cc})
		}
		segs = append(segs, lineSegment{
			cells:        cells,
			boundedStart: start == 0 || b.StateAt(r, start-1) == Sea,
			boundedEnd:   end == Dimension-1 || b.StateAt(r, end+1) == Sea,
		})
	}
	return segs
}

// verticalSegments finds every maximal run of cells in column c whose state
// equals want.
func verticalSegments(b *Board, c int, want CellState) []lineSegment {
	var segs []lineSegment
	r := 0
	for r < Dimension {
		if b.stateAt(r, c) != want {
			r++
			continue
		}
		start := r
		for r < Dimension && b.stateAt(r, c) == want {
			r++
		}
		end := r - 1
		cells := make([]Coordinate, 0, end-start+1)
		for rr := start; rr <= end; rr++ {
			cells = append(cells, Coordinate{rr, c})
		}
		segs = append(segs, lineSegment{
			cells:        cells,
			boundedStart: start == 0 || b.StateAt(start-1, c) == Sea,
			boundedEnd:   end == Dimension-1 || b.StateAt(end+1, c) == Sea,
		})
	}
	return segs
}

// maxRemainingShipLength returns the largest ship size the fleet still has
// at least one of, and false if none remain.
func maxRemainingShipLength(remaining map[int]int) (int, bool) {
	max, found := 0, false
	for size, n := range remaining {
		if n > 0 && size > max {
			max, found = size, true
		}
	}
	return max, found
}

// minRemainingShipLength returns the smallest ship size the fleet still has
// at least one of, and false if none remain.
func minRemainingShipLength(remaining map[int]int) (int, bool) {
	min, found := 0, false
	for size, n := range remaining {
		if n > 0 && (!found || size < min) {
			min, found = size, true
		}
	}
	return min, found
}

func appendUnique(out []Deduction, seen map[Coordinate]bool, r, c int, v CellState, technique string, tier, difficulty int) []Deduction {
	coord := Coordinate{r, c}
	if seen[coord] {
		return out
	}
	seen[coord] = true
	return append(out, newDeduction(r, c, v, technique, tier, difficulty))
}
