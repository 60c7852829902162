// Package generator produces random, fleet-consistent reference solutions
// via backtracking placement, used only to build fixtures with a known
// answer — for cmd/generate and for tests. It is never imported by
// internal/solver: spec.md's Non-goals exclude backtracking search from the
// solving core, and this package's full-board search goes well beyond the
// core's one-ply speculative lookahead.
package generator

import "bimaru-solver/pkg/constants"

// Solution is a fully-determined 10x10 grid: 1 marks sea, 2 marks ship.
// A generated solution never contains an undetermined (0) cell.
type Solution [10][10]int

// Generate returns a random fleet-consistent solution for the given seed.
// The same seed always yields the same solution.
func Generate(seed int64) Solution {
	rng := newRNG(seed)
	for attempt := 0; ; attempt++ {
		var sol Solution
		for r := 0; r < 10; r++ {
			for c := 0; c < 10; c++ {
				sol[r][c] = 1
			}
		}
		if placeFleet(&sol, append([]int(nil), constants.Fleet...), rng) {
			return sol
		}
		rng = newRNG(seed + int64(attempt) + 1)
	}
}

func placeFleet(sol *Solution, sizes []int, rng *rng) bool {
	return placeFrom(sol, sizes, 0, rng)
}

func placeFrom(sol *Solution, sizes []int, i int, rng *rng) bool {
	if i == len(sizes) {
		return true
	}
	size := sizes[i]
	candidates := candidatePlacements(sol, size)
	rng.shufflePlacements(candidates)
	for _, p := range candidates {
		p.apply(sol, 2)
		if placeFrom(sol, sizes, i+1, rng) {
			return true
		}
		p.apply(sol, 1)
	}
	return false
}

// placement is a contiguous straight run of cells a ship of some length
// would occupy.
type placement struct {
	cells [][2]int
}

func (p placement) apply(sol *Solution, value int) {
	for _, cell := range p.cells {
		sol[cell[0]][cell[1]] = value
	}
}

func candidatePlacements(sol *Solution, size int) []placement {
	var out []placement
	for r := 0; r < 10; r++ {
		for c := 0; c <= 10-size; c++ {
			if p, ok := tryPlacement(sol, r, c, 0, 1, size); ok {
				out = append(out, p)
			}
		}
	}
	if size > 1 {
		for r := 0; r <= 10-size; r++ {
			for c := 0; c < 10; c++ {
				if p, ok := tryPlacement(sol, r, c, 1, 0, size); ok {
					out = append(out, p)
				}
			}
		}
	}
	return out
}

func tryPlacement(sol *Solution, r, c, dr, dc, size int) (placement, bool) {
	cells := make([][2]int, 0, size)
	for i := 0; i < size; i++ {
		cells = append(cells, [2]int{r + i*dr, c + i*dc})
	}
	member := map[[2]int]bool{}
	for _, cell := range cells {
		if sol[cell[0]][cell[1]] != 1 {
			return placement{}, false
		}
		member[cell] = true
	}
	for _, cell := range cells {
		for ndr := -1; ndr <= 1; ndr++ {
			for ndc := -1; ndc <= 1; ndc++ {
				if ndr == 0 && ndc == 0 {
					continue
				}
				nr, nc := cell[0]+ndr, cell[1]+ndc
				if nr < 0 || nr >= 10 || nc < 0 || nc >= 10 {
					continue
				}
				n := [2]int{nr, nc}
				if member[n] {
					continue
				}
				if sol[nr][nc] == 2 {
					return placement{}, false
				}
			}
		}
	}
	return placement{cells: cells}, true
}

// DeriveClues computes the row and column ship-count clues for a solution.
func DeriveClues(sol Solution) (rows, cols [10]int) {
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			if sol[r][c] == 2 {
				rows[r]++
				cols[c]++
			}
		}
	}
	return rows, cols
}

// Hint is a chosen initial hint cell, before shape derivation.
type Hint struct {
	Row, Col int
	Ship     bool
}

// CarveHints picks n random cells from the solution to reveal as initial
// hints. The shape map is left to the puzzle parser to derive from the
// reference solution when one is present, per spec.md §6's behavior for a
// puzzle submitted together with its own solution.
func CarveHints(sol Solution, n int, seed int64) []Hint {
	rng := newRNG(seed + 97)
	positions := make([]int, 100)
	for i := range positions {
		positions[i] = i
	}
	rng.shuffleInts(positions)
	if n > len(positions) {
		n = len(positions)
	}
	hints := make([]Hint, 0, n)
	for _, pos := range positions[:n] {
		r, c := pos/10, pos%10
		hints = append(hints, Hint{Row: r, Col: c, Ship: sol[r][c] == 2})
	}
	return hints
}
