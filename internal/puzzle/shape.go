package puzzle

import (
	"strings"

	"bimaru-solver/internal/solver"
)

// HintShape builds a solver.HintShape for a hint cell. When a reference
// solution is present it derives the shape directly from the solution's
// neighbors, exactly as original_source/puzzle_io.py does when given one;
// otherwise it falls back to the shape token table below.
func HintShape(row, col int, token string, state solver.CellState, solution *[10][10]int) solver.HintShape {
	if solution != nil {
		return shapeFromSolution(row, col, state, solution)
	}
	return shapeFromToken(token)
}

func shapeFromSolution(row, col int, state solver.CellState, solution *[10][10]int) solver.HintShape {
	if state != solver.Ship {
		return solver.HintShape{}
	}
	var shape solver.HintShape
	dirs := []struct {
		dir    int
		dr, dc int
	}{
		{solver.North, -1, 0},
		{solver.South, 1, 0},
		{solver.West, 0, -1},
		{solver.East, 0, 1},
	}
	for _, d := range dirs {
		r, c := row+d.dr, col+d.dc
		shape = shape.WithExpectation(d.dir, solutionStateAt(solution, r, c))
	}
	return shape
}

func solutionStateAt(solution *[10][10]int, r, c int) solver.CellState {
	if r < 0 || r >= 10 || c < 0 || c >= 10 {
		return solver.Sea
	}
	switch solution[r][c] {
	case 2:
		return solver.Ship
	default:
		return solver.Sea
	}
}

// shapeFromToken implements the full shape-token table from spec.md §6 /
// original_source/puzzle_io.py's _shape_to_hint_map. An unrecognized token
// (including the deliberately ambiguous middle variants' absence) yields a
// shape with no constraints.
func shapeFromToken(token string) solver.HintShape {
	var shape solver.HintShape
	set := func(dir int, v solver.CellState) { shape = shape.WithExpectation(dir, v) }

	switch strings.ToLower(strings.TrimSpace(token)) {
	case "sub", "single":
		set(solver.North, solver.Sea)
		set(solver.South, solver.Sea)
		set(solver.West, solver.Sea)
		set(solver.East, solver.Sea)
	case "top", "bow", "up":
		set(solver.North, solver.Sea)
		set(solver.South, solver.Ship)
		set(solver.West, solver.Sea)
		set(solver.East, solver.Sea)
	case "bot", "bottom", "down":
		set(solver.North, solver.Ship)
		set(solver.South, solver.Sea)
		set(solver.West, solver.Sea)
		set(solver.East, solver.Sea)
	case "left":
		set(solver.North, solver.Sea)
		set(solver.South, solver.Sea)
		set(solver.West, solver.Sea)
		set(solver.East, solver.Ship)
	case "right":
		set(solver.North, solver.Sea)
		set(solver.South, solver.Sea)
		set(solver.West, solver.Ship)
		set(solver.East, solver.Sea)
	case "mid_h", "middle_h", "horizontal_mid":
		set(solver.North, solver.Sea)
		set(solver.South, solver.Sea)
		set(solver.West, solver.Ship)
		set(solver.East, solver.Ship)
	case "mid_v", "middle_v", "vertical_mid":
		set(solver.North, solver.Ship)
		set(solver.South, solver.Ship)
		set(solver.West, solver.Sea)
		set(solver.East, solver.Sea)
	default:
		// No shape map: the hint pins only its own state, per spec.md §6.
	}
	return shape
}
