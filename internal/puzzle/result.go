package puzzle

import (
	"bimaru-solver/internal/core"
	"bimaru-solver/internal/solver"
)

var cellStateTokens = map[solver.CellState]string{
	solver.Empty: "empty",
	solver.Sea:   "sea",
	solver.Ship:  "ship",
}

// ToCoreResult converts a solver.Result into its JSON-facing shape.
func ToCoreResult(r solver.Result) core.Result {
	deductions := make([]core.Deduction, 0, len(r.TechniquesUsed))
	for _, d := range r.TechniquesUsed {
		deductions = append(deductions, core.Deduction{
			Row:        d.Row,
			Col:        d.Col,
			Value:      cellStateTokens[d.Value],
			Technique:  d.Technique,
			Tier:       d.Tier,
			Difficulty: d.Difficulty,
		})
	}
	return core.Result{
		Solved:          r.Solved,
		Stuck:           r.Stuck,
		Valid:           r.Valid,
		TechniquesUsed:  deductions,
		DifficultyScore: r.DifficultyScore,
		MaxTierRequired: r.MaxTierRequired,
	}
}
