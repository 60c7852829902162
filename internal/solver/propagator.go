package solver

import "bimaru-solver/pkg/constants"

const (
	axisRow = 0
	axisCol = 1
)

// lineRef identifies a row or column for the propagator's worklist.
type lineRef struct {
	axis int
	idx  int
}

func (lr lineRef) cell(i int) (int, int) {
	if lr.axis == axisRow {
		return lr.idx, i
	}
	return i, lr.idx
}

// propagator is the incremental constraint engine behind the T5 rules,
// implementing spec.md §4.3. It mutates its board directly; callers must
// snapshot before constructing one and restore after, so the trial it runs
// leaves no durable trace.
type propagator struct {
	board           *Board
	shipsRow        [Dimension]int
	emptiesRow      [Dimension]int
	shipsCol        [Dimension]int
	emptiesCol      [Dimension]int
	hintConstraints map[Coordinate]CellState
}

func newPropagator(b *Board) *propagator {
	p := &propagator{board: b, hintConstraints: map[Coordinate]CellState{}}
	for r := 0; r < Dimension; r++ {
		for c := 0; c < Dimension; c++ {
			switch b.stateAt(r, c) {
			case Ship:
				p.shipsRow[r]++
				p.shipsCol[c]++
			case Empty:
				p.emptiesRow[r]++
				p.emptiesCol[c]++
			}
		}
	}
	for r := 0; r < Dimension; r++ {
		for c := 0; c < Dimension; c++ {
			cell := b.cellAt(r, c)
			if !cell.IsHint || cell.State != Ship || cell.Shape.IsZero() {
				continue
			}
			for dir := 0; dir < 4; dir++ {
				v, ok := cell.Shape.expected(dir)
				if !ok {
					continue
				}
				o := orthogonal[dir]
				n := Coordinate{r + o.Row, c + o.Col}
				if b.WithinBounds(n.Row, n.Col) {
					p.hintConstraints[n] = v
				}
			}
		}
	}
	return p
}

// testShip trials placing a ship at (r, c) and propagates its consequences.
// It returns true if the trial leads to a contradiction.
func (p *propagator) testShip(r, c int) bool {
	if v, ok := p.hintConstraints[Coordinate{r, c}]; ok && v == Sea {
		return true
	}
	p.board.place(r, c, Ship)
	p.shipsRow[r]++
	p.emptiesRow[r]--
	p.shipsCol[c]++
	p.emptiesCol[c]--
	queue := []lineRef{{axisRow, r}, {axisCol, c}}
	if p.emitDiagonalSea(r, c, &queue) {
		return true
	}
	return p.drain(queue)
}

// testWater trials placing sea at (r, c) and propagates its consequences.
func (p *propagator) testWater(r, c int) bool {
	if v, ok := p.hintConstraints[Coordinate{r, c}]; ok && v == Ship {
		return true
	}
	p.board.place(r, c, Sea)
	p.emptiesRow[r]--
	p.emptiesCol[c]--
	queue := []lineRef{{axisRow, r}, {axisCol, c}}
	return p.drain(queue)
}

func (p *propagator) emitDiagonalSea(r, c int, queue *[]lineRef) bool {
	for _, d := range diagonal {
		nr, nc := r+d.Row, c+d.Col
		if !p.board.WithinBounds(nr, nc) {
			continue
		}
		switch p.board.stateAt(nr, nc) {
		case Ship:
			return true
		case Empty:
			if v, ok := p.hintConstraints[Coordinate{nr, nc}]; ok && v == Ship {
				return true
			}
			p.board.place(nr, nc, Sea)
			p.emptiesRow[nr]--
			p.emptiesCol[nc]--
			*queue = append(*queue, lineRef{axisRow, nr}, lineRef{axisCol, nc})
		}
	}
	return false
}

func (p *propagator) drain(queue []lineRef) bool {
	pops := 0
	for len(queue) > 0 && pops < constants.MaxPropagatorPops {
		lr := queue[0]
		queue = queue[1:]
		pops++
		if p.processLine(lr, &queue) {
			return true
		}
	}
	return !p.board.FleetConsistent()
}

func (p *propagator) processLine(lr lineRef, queue *[]lineRef) bool {
	var ships, empties, clue int
	if lr.axis == axisRow {
		ships, empties, clue = p.shipsRow[lr.idx], p.emptiesRow[lr.idx], p.board.RowClue(lr.idx)
	} else {
		ships, empties, clue = p.shipsCol[lr.idx], p.emptiesCol[lr.idx], p.board.ColClue(lr.idx)
	}
	if ships > clue || ships+empties < clue {
		return true
	}
	switch {
	case ships == clue && empties > 0:
		return p.fillLine(lr, Sea, queue)
	case clue-ships == empties && empties > 0:
		return p.fillLine(lr, Ship, queue)
	}
	return false
}

func (p *propagator) fillLine(lr lineRef, value CellState, queue *[]lineRef) bool {
	for i := 0; i < Dimension; i++ {
		r, c := lr.cell(i)
		if p.board.stateAt(r, c) != Empty {
			continue
		}
		if pinned, ok := p.hintConstraints[Coordinate{r, c}]; ok && pinned != value {
			return true
		}
		p.board.place(r, c, value)
		p.emptiesRow[r]--
		p.emptiesCol[c]--
		if value == Ship {
			p.shipsRow[r]++
			p.shipsCol[c]++
			if p.emitDiagonalSea(r, c, queue) {
				return true
			}
		}
		*queue = append(*queue, lineRef{axisRow, r}, lineRef{axisCol, c})
	}
	return false
}
