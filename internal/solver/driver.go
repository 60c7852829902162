package solver

import "bimaru-solver/pkg/constants"

// appliedKey identifies a single applied assignment, used to recognize a
// technique re-proposing something already on the board.
type appliedKey struct {
	Row, Col int
	Value    CellState
}

// Driver runs the tiered algorithm from spec.md §4.4 over a board: at each
// outer iteration it tries tiers 1-5 in order, applies the first rule in
// registration order that yields a new, post-filter non-empty batch, and
// restarts at tier 1 whenever it makes progress.
type Driver struct {
	board              *Board
	registry           *Registry
	applied            map[appliedKey]bool
	trail              []Deduction
	tierUsage          map[int]int
	t3PlusRemaining    []int
	lastT3PlusRemaining int
}

// NewDriver builds a driver over b using the standard registry.
func NewDriver(b *Board) *Driver {
	return NewDriverWithRegistry(b, NewRegistry())
}

// NewDriverWithRegistry builds a driver over b using a caller-supplied
// registry — used by tests that enable only a single technique.
func NewDriverWithRegistry(b *Board, r *Registry) *Driver {
	return &Driver{
		board:               b,
		registry:            r,
		applied:             map[appliedKey]bool{},
		tierUsage:           map[int]int{},
		lastT3PlusRemaining: -1,
	}
}

// Solve runs the driver to quiescence and returns the result, per spec.md
// §4.4's termination conditions: solved, stuck, or inconsistent.
func (d *Driver) Solve() Result {
	inconsistent := false
	for iterations := 0; iterations < constants.MaxDriverIterations && !d.board.IsSolved(); iterations++ {
		progress := d.runOneIteration(&inconsistent)
		if inconsistent || !progress {
			break
		}
	}
	return d.buildResult(inconsistent)
}

func (d *Driver) runOneIteration(inconsistent *bool) bool {
	for tier := 1; tier <= 5; tier++ {
		for _, t := range d.registry.Tier(tier) {
			if !t.Enabled {
				continue
			}
			fresh := d.freshDeductions(t.Detect(d.board))
			if len(fresh) == 0 {
				continue
			}
			filtered := filterDiagonalConflicts(fresh, d.board)
			if len(filtered) == 0 {
				continue
			}
			d.apply(filtered, tier)
			if !d.board.ConsistencyCheck() {
				*inconsistent = true
			}
			return true
		}
	}
	return false
}

// freshDeductions drops proposals the driver has already applied and
// collapses duplicate coordinates within the same batch, keeping the first.
func (d *Driver) freshDeductions(raw []Deduction) []Deduction {
	if len(raw) == 0 {
		return nil
	}
	seen := map[Coordinate]bool{}
	out := make([]Deduction, 0, len(raw))
	for _, dd := range raw {
		coord := Coordinate{dd.Row, dd.Col}
		if seen[coord] {
			continue
		}
		if d.applied[appliedKey{dd.Row, dd.Col, dd.Value}] {
			continue
		}
		seen[coord] = true
		out = append(out, dd)
	}
	return out
}

// filterDiagonalConflicts implements spec.md §4.5: a SHIP proposal that
// would touch diagonally another SHIP proposal in the same batch, or an
// existing board ship, is dropped. SEA proposals are always kept.
func filterDiagonalConflicts(batch []Deduction, b *Board) []Deduction {
	var shipCoords []Coordinate
	for _, dd := range batch {
		if dd.Value == Ship {
			shipCoords = append(shipCoords, Coordinate{dd.Row, dd.Col})
		}
	}
	if len(shipCoords) == 0 {
		return batch
	}
	conflict := map[Coordinate]bool{}
	for i := range shipCoords {
		for j := i + 1; j < len(shipCoords); j++ {
			if isDiagonal(shipCoords[i], shipCoords[j]) {
				conflict[shipCoords[i]] = true
				conflict[shipCoords[j]] = true
			}
		}
	}
	for _, coord := range shipCoords {
		for _, d := range diagonal {
			nr, nc := coord.Row+d.Row, coord.Col+d.Col
			if b.WithinBounds(nr, nc) && b.stateAt(nr, nc) == Ship {
				conflict[coord] = true
			}
		}
	}
	out := make([]Deduction, 0, len(batch))
	for _, dd := range batch {
		if dd.Value == Ship && conflict[Coordinate{dd.Row, dd.Col}] {
			continue
		}
		out = append(out, dd)
	}
	return out
}

func (d *Driver) apply(batch []Deduction, tier int) {
	for _, dd := range batch {
		d.board.place(dd.Row, dd.Col, dd.Value)
		d.applied[appliedKey{dd.Row, dd.Col, dd.Value}] = true
		d.trail = append(d.trail, dd)
	}
	d.tierUsage[tier] += len(batch)
	if tier >= 3 {
		d.recordT3PlusMoment()
	}
}

// recordT3PlusMoment tracks the board's remaining-empty count each time a
// tier 3+ deduction lands, feeding the difficulty score's diminishing
// returns formula (original_source/solver.py:_compute_score).
func (d *Driver) recordT3PlusMoment() {
	remaining := d.board.CountEmpty()
	if d.lastT3PlusRemaining == -1 || remaining < d.lastT3PlusRemaining {
		d.t3PlusRemaining = append(d.t3PlusRemaining, remaining)
		d.lastT3PlusRemaining = remaining
	}
}

func (d *Driver) buildResult(inconsistent bool) Result {
	solved := !inconsistent && d.board.IsSolved() && d.board.CluesSatisfied() && d.board.Invariants()
	valid := solved
	if d.board.HasReference() {
		valid = solved && d.board.MatchesReference()
	}
	return Result{
		Solved:          solved,
		Stuck:           !solved,
		Valid:           valid,
		TechniquesUsed:  append([]Deduction(nil), d.trail...),
		DifficultyScore: computeDifficultyScore(d.t3PlusRemaining),
		MaxTierRequired: maxTierUsed(d.tierUsage),
		TierUsage:       copyTierUsage(d.tierUsage),
	}
}

func maxTierUsed(usage map[int]int) int {
	max := 0
	for tier, n := range usage {
		if n > 0 && tier > max {
			max = tier
		}
	}
	return max
}

func copyTierUsage(usage map[int]int) map[int]int {
	out := make(map[int]int, len(usage))
	for k, v := range usage {
		out[k] = v
	}
	return out
}
