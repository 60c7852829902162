// Package puzzle translates the wire-format puzzle JSON (internal/core) into
// an internal/solver.Board, and translates a solver.Result back into JSON.
// It owns every puzzle-level validation error; internal/solver assumes a
// well-formed board and never sees malformed input.
package puzzle

import (
	"encoding/json"
	"fmt"
	"strings"

	"bimaru-solver/internal/core"
	"bimaru-solver/internal/solver"
)

// Build parses a puzzle document into a ready-to-solve board.
func Build(p *core.Puzzle) (*solver.Board, error) {
	b := solver.NewBoard(p.Clues.Rows[:], p.Clues.Cols[:])

	hasSolution := p.Solution != nil
	if hasSolution {
		for r := 0; r < 10; r++ {
			for c := 0; c < 10; c++ {
				state, err := parseIntState(p.Solution[r][c])
				if err != nil {
					return nil, fmt.Errorf("puzzle: solution[%d][%d]: %w", r, c, err)
				}
				b.SetReference(r, c, state)
			}
		}
	}

	for i, h := range p.InitialHints {
		if !b.WithinBounds(h.Row, h.Col) {
			return nil, fmt.Errorf("puzzle: initial_hints[%d]: coordinate (%d,%d) out of bounds", i, h.Row, h.Col)
		}
		state, err := parseHintValue(h.Value)
		if err != nil {
			return nil, fmt.Errorf("puzzle: initial_hints[%d]: %w", i, err)
		}
		shape := HintShape(h.Row, h.Col, h.Shape, state, p.Solution)
		b.SetHint(h.Row, h.Col, state, shape)
	}

	return b, nil
}

func parseIntState(v int) (solver.CellState, error) {
	switch v {
	case 0:
		return solver.Empty, nil
	case 1:
		return solver.Sea, nil
	case 2:
		return solver.Ship, nil
	default:
		return solver.Empty, fmt.Errorf("unrecognized solution value %d", v)
	}
}

// parseHintValue accepts a hint's "val" field in either form the puzzle
// format allows: a bare integer (0/1/2) or a string token, mirroring
// original_source/puzzle_io.py's _parse_cell_state.
func parseHintValue(raw json.RawMessage) (solver.CellState, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return parseIntState(n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseTokenState(s)
	}
	return solver.Empty, fmt.Errorf("unrecognized cell value %s", raw)
}

// parseTokenState accepts the string tokens a hint's "val" field may carry.
func parseTokenState(raw string) (solver.CellState, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "empty", "unknown":
		return solver.Empty, nil
	case "sea", "water":
		return solver.Sea, nil
	case "ship":
		return solver.Ship, nil
	default:
		return solver.Empty, fmt.Errorf("unrecognized cell value token %q", raw)
	}
}
