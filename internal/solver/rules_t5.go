package solver

// DetectNakedWater implements T5.1: trial-place a ship at every EMPTY cell;
// if propagation finds a contradiction, the cell must be sea.
func DetectNakedWater(b *Board) []Deduction {
	var out []Deduction
	for r := 0; r < Dimension; r++ {
		for c := 0; c < Dimension; c++ {
			if b.stateAt(r, c) != Empty {
				continue
			}
			snapshot := b.Snapshot()
			contradiction := newPropagator(b).testShip(r, c)
			b.Restore(snapshot)
			if contradiction {
				out = append(out, newDeduction(r, c, Sea, "T5.1", 5, 9))
			}
		}
	}
	return out
}

// DetectNakedShip implements T5.2: trial-place sea at every EMPTY cell; if
// propagation finds a contradiction, the cell must be ship.
func DetectNakedShip(b *Board) []Deduction {
	var out []Deduction
	for r := 0; r < Dimension; r++ {
		for c := 0; c < Dimension; c++ {
			if b.stateAt(r, c) != Empty {
				continue
			}
			snapshot := b.Snapshot()
			contradiction := newPropagator(b).testWater(r, c)
			b.Restore(snapshot)
			if contradiction {
				out = append(out, newDeduction(r, c, Ship, "T5.2", 5, 9))
			}
		}
	}
	return out
}
