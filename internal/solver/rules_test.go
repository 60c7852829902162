package solver

import "testing"

func TestDetectZeroClue(t *testing.T) {
	rows, cols := allZeroClues()
	b := NewBoard(rows, cols)
	out := DetectZeroClue(b)
	if len(out) != Dimension*Dimension {
		t.Fatalf("DetectZeroClue() returned %d deductions, want %d", len(out), Dimension*Dimension)
	}
	for _, d := range out {
		if d.Value != Sea {
			t.Errorf("DetectZeroClue() proposed %v at (%d,%d), want Sea", d.Value, d.Row, d.Col)
		}
	}
}

func TestDetectSatisfiedClue(t *testing.T) {
	rows, cols := allZeroClues()
	rows[0] = 1
	b := NewBoard(rows, cols)
	b.place(0, 0, Ship)

	out := DetectSatisfiedClue(b)
	if len(out) == 0 {
		t.Fatal("expected DetectSatisfiedClue to propose sea for the rest of row 0")
	}
	for _, d := range out {
		if d.Row == 0 && d.Col != 0 && d.Value != Sea {
			t.Errorf("row 0 cell (%d,%d) should be proposed Sea, got %v", d.Row, d.Col, d.Value)
		}
	}
}

func TestDetectDiagonalWater(t *testing.T) {
	rows, cols := allZeroClues()
	rows[5] = 1
	b := NewBoard(rows, cols)
	b.place(5, 5, Ship)

	out := DetectDiagonalWater(b)
	want := []Coordinate{{4, 4}, {4, 6}, {6, 4}, {6, 6}}
	got := map[Coordinate]bool{}
	for _, d := range out {
		if d.Value != Sea {
			t.Errorf("DetectDiagonalWater proposed non-Sea at (%d,%d)", d.Row, d.Col)
		}
		got[Coordinate{d.Row, d.Col}] = true
	}
	for _, w := range want {
		if !got[w] {
			t.Errorf("DetectDiagonalWater missing diagonal neighbor %v", w)
		}
	}
}

func TestDetectExactFit(t *testing.T) {
	rows, cols := allZeroClues()
	rows[0] = 3
	b := NewBoard(rows, cols)
	for c := 3; c < Dimension; c++ {
		b.place(0, c, Sea)
	}
	// Row 0 now has exactly 3 empty cells (0,1,2) and needs 3 ships.
	out := DetectExactFit(b)
	if len(out) != 3 {
		t.Fatalf("DetectExactFit() returned %d deductions, want 3", len(out))
	}
	for _, d := range out {
		if d.Value != Ship {
			t.Errorf("DetectExactFit proposed %v, want Ship", d.Value)
		}
	}
}

func TestDetectOverflowPrevention(t *testing.T) {
	rows, cols := allZeroClues()
	rows[0] = 1
	b := NewBoard(rows, cols)
	b.place(0, 0, Ship)

	out := DetectOverflowPrevention(b)
	if len(out) == 0 {
		t.Fatal("expected overflow prevention to mark the rest of row 0 as sea")
	}
}

func TestDetectForcedExtension(t *testing.T) {
	rows, cols := allZeroClues()
	rows[0] = 2
	b := NewBoard(rows, cols)
	b.place(0, 5, Ship)
	for c := 0; c < Dimension; c++ {
		if c != 4 && c != 5 {
			b.place(0, c, Sea)
		}
	}
	b.place(1, 5, Sea)
	// (0,5) is a ship with no ship neighbor and a single empty neighbor at
	// (0,4); its other three sides are sea or edge.
	out := DetectForcedExtension(b)
	found := false
	for _, d := range out {
		if d.Row == 0 && d.Col == 4 && d.Value == Ship {
			found = true
		}
	}
	if !found {
		t.Error("DetectForcedExtension should extend the ship into (0,4)")
	}
}

func TestDetectThreeBlockedSides(t *testing.T) {
	rows, cols := allZeroClues()
	rows[5] = 2
	b := NewBoard(rows, cols)
	b.place(5, 5, Ship)
	b.place(4, 5, Sea)
	b.place(5, 4, Sea)
	b.place(6, 5, Sea)
	// (5,6) left as Empty, the only open side.
	out := DetectThreeBlockedSides(b)
	found := false
	for _, d := range out {
		if d.Row == 5 && d.Col == 6 && d.Value == Ship {
			found = true
		}
	}
	if !found {
		t.Error("DetectThreeBlockedSides should extend into (5,6)")
	}
}

func TestDetectOverlap(t *testing.T) {
	rows, cols := allZeroClues()
	rows[0] = 3
	b := NewBoard(rows, cols)
	for c := 5; c < Dimension; c++ {
		b.place(0, c, Sea)
	}
	// Row 0's single empty segment is cols 0-4 (length 5); 3 ships are still
	// needed, so only the segment's middle cell (index 2) is common to
	// every placement of the remaining ships.
	out := DetectOverlap(b)
	found := false
	for _, d := range out {
		if d.Row == 0 && d.Col == 2 {
			if d.Value != Ship {
				t.Errorf("DetectOverlap proposed %v at (0,2), want Ship", d.Value)
			}
			if d.Tier != 3 || d.Difficulty != 6 {
				t.Errorf("DetectOverlap tier/difficulty = %d/%d, want 3/6", d.Tier, d.Difficulty)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("DetectOverlap should mark (0,2) ship, got %v", out)
	}
}

func TestDetectFleetExhaustion(t *testing.T) {
	rows, cols := allZeroClues()
	b := NewBoard(rows, cols)
	b.place(0, 0, Ship)
	b.place(0, 1, Ship)
	b.place(0, 2, Ship)
	b.place(0, 3, Ship)
	b.place(0, 4, Sea)
	// The only size-4 ship is now placed and complete, exhausting it.
	b.place(5, 0, Ship)
	b.place(5, 1, Ship)
	b.place(5, 2, Ship)
	// (5,3) stays Empty: this length-3 partial run can't extend to 4.
	out := DetectFleetExhaustion(b)
	found := false
	for _, d := range out {
		if d.Row == 5 && d.Col == 3 {
			if d.Value != Sea {
				t.Errorf("DetectFleetExhaustion proposed %v at (5,3), want Sea", d.Value)
			}
			if d.Tier != 4 || d.Difficulty != 7 {
				t.Errorf("DetectFleetExhaustion tier/difficulty = %d/%d, want 4/7", d.Tier, d.Difficulty)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("DetectFleetExhaustion should mark (5,3) sea, got %v", out)
	}
}

func TestDetectCapAtMax(t *testing.T) {
	rows, cols := allZeroClues()
	b := NewBoard(rows, cols)
	b.place(0, 0, Ship)
	b.place(0, 1, Ship)
	b.place(0, 2, Ship)
	b.place(0, 3, Ship)
	// (0,4) stays Empty: this run already spans the fleet's max length (4)
	// and cannot extend further.
	out := DetectCapAtMax(b)
	found := false
	for _, d := range out {
		if d.Row == 0 && d.Col == 4 {
			if d.Value != Sea {
				t.Errorf("DetectCapAtMax proposed %v at (0,4), want Sea", d.Value)
			}
			if d.Tier != 4 || d.Difficulty != 8 {
				t.Errorf("DetectCapAtMax tier/difficulty = %d/%d, want 4/8", d.Tier, d.Difficulty)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("DetectCapAtMax should mark (0,4) sea, got %v", out)
	}
}

func TestDetectPreventLongJoin(t *testing.T) {
	rows, cols := allZeroClues()
	b := NewBoard(rows, cols)
	b.place(0, 0, Ship)
	b.place(0, 1, Ship)
	b.place(0, 3, Ship)
	b.place(0, 4, Ship)
	// (0,2) stays Empty: filling it would join two length-2 runs into one
	// of length 5, beyond the fleet's max length (4).
	out := DetectPreventLongJoin(b)
	found := false
	for _, d := range out {
		if d.Row == 0 && d.Col == 2 {
			if d.Value != Sea {
				t.Errorf("DetectPreventLongJoin proposed %v at (0,2), want Sea", d.Value)
			}
			if d.Tier != 4 || d.Difficulty != 8 {
				t.Errorf("DetectPreventLongJoin tier/difficulty = %d/%d, want 4/8", d.Tier, d.Difficulty)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("DetectPreventLongJoin should mark (0,2) sea, got %v", out)
	}
}

func TestDetectNakedWater(t *testing.T) {
	rows, cols := allZeroClues()
	rows[0] = 0
	cols[0] = 1
	b := NewBoard(rows, cols)
	// Row 0's clue is zero, so trial-placing a ship anywhere in it forces a
	// contradiction once the propagator checks the row's ship count.
	out := DetectNakedWater(b)
	found := false
	for _, d := range out {
		if d.Row == 0 && d.Col == 0 {
			if d.Value != Sea {
				t.Errorf("DetectNakedWater proposed %v at (0,0), want Sea", d.Value)
			}
			if d.Tier != 5 || d.Difficulty != 9 {
				t.Errorf("DetectNakedWater tier/difficulty = %d/%d, want 5/9", d.Tier, d.Difficulty)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("DetectNakedWater should mark (0,0) sea, got %v", out)
	}
	if b.stateAt(0, 0) != Empty {
		t.Error("DetectNakedWater should leave the board unmutated after its trial/rollback")
	}
}

func TestDetectNakedShip(t *testing.T) {
	rows, cols := allZeroClues()
	rows[0] = Dimension
	b := NewBoard(rows, cols)
	// Row 0 needs a ship in every cell, so trial-placing sea anywhere in it
	// forces a contradiction (too few empties left to satisfy the clue).
	out := DetectNakedShip(b)
	found := false
	for _, d := range out {
		if d.Row == 0 && d.Col == 0 {
			if d.Value != Ship {
				t.Errorf("DetectNakedShip proposed %v at (0,0), want Ship", d.Value)
			}
			if d.Tier != 5 || d.Difficulty != 9 {
				t.Errorf("DetectNakedShip tier/difficulty = %d/%d, want 5/9", d.Tier, d.Difficulty)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("DetectNakedShip should mark (0,0) ship, got %v", out)
	}
	if b.stateAt(0, 0) != Empty {
		t.Error("DetectNakedShip should leave the board unmutated after its trial/rollback")
	}
}

func TestDetectGapTooSmall(t *testing.T) {
	rows, cols := allZeroClues()
	b := NewBoard(rows, cols)
	// Exhaust all four size-1 submarines, leaving 2 as the smallest
	// remaining ship size.
	for _, col := range []int{0, 3, 6, 9} {
		b.place(0, col, Ship)
		for _, d := range orthogonal {
			r, c := 0+d.Row, col+d.Col
			if b.WithinBounds(r, c) && b.stateAt(r, c) == Empty {
				b.place(r, c, Sea)
			}
		}
	}
	// A bounded length-1 gap elsewhere on the board cannot fit a size-2 ship.
	b.place(5, 1, Sea)
	// (5,0) remains Empty, bounded by the edge and by (5,1) = Sea.

	out := DetectGapTooSmall(b)
	found := false
	for _, d := range out {
		if d.Row == 5 && d.Col == 0 && d.Value == Sea {
			found = true
		}
	}
	if !found {
		t.Errorf("DetectGapTooSmall should mark (5,0) sea, got %v", out)
	}
}
