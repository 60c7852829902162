package solver

import "testing"

func TestPropagator_TestShipContradictsHintedSea(t *testing.T) {
	rows, cols := allZeroClues()
	rows[0], rows[1] = 1, 1
	cols[1] = 2
	b := NewBoard(rows, cols)
	// A ship hint at (0,1) whose shape pins its south neighbor (1,1) to sea.
	b.SetHint(0, 1, Ship, HintShape{}.WithExpectation(South, Sea))
	p := newPropagator(b)
	if !p.testShip(1, 1) {
		t.Error("trial-placing a ship on a hinted sea cell should contradict")
	}
}

func TestPropagator_TestShipOverflowsClue(t *testing.T) {
	rows, cols := allZeroClues()
	rows[0] = 1
	b := NewBoard(rows, cols)
	b.place(0, 0, Ship)
	snap := b.Snapshot()
	p := newPropagator(b)
	// Row 0's clue is already met; placing a second ship overflows it.
	contradiction := p.testShip(0, 5)
	b.Restore(snap)
	if !contradiction {
		t.Error("a second ship in a satisfied row should contradict")
	}
}

func TestPropagator_TestWaterForcesShipElsewhere(t *testing.T) {
	rows, cols := allZeroClues()
	rows[0] = 1
	b := NewBoard(rows, cols)
	for c := 1; c < Dimension; c++ {
		b.place(0, c, Sea)
	}
	// Only (0,0) remains empty and the clue still needs one ship: forcing
	// it to sea would leave the row unable to meet its clue.
	snap := b.Snapshot()
	p := newPropagator(b)
	contradiction := p.testWater(0, 0)
	b.Restore(snap)
	if !contradiction {
		t.Error("forcing the last empty cell of a not-yet-satisfied row to sea should contradict")
	}
}

func TestPropagator_DiagonalTouchContradicts(t *testing.T) {
	rows, cols := allZeroClues()
	rows[0], rows[1] = 1, 1
	b := NewBoard(rows, cols)
	b.place(0, 0, Ship)
	for c := 1; c < Dimension; c++ {
		b.place(0, c, Sea)
	}
	snap := b.Snapshot()
	p := newPropagator(b)
	contradiction := p.testShip(1, 1)
	b.Restore(snap)
	if !contradiction {
		t.Error("a ship diagonally touching an existing ship should contradict")
	}
}
