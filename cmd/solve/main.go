package main

import (
	"encoding/json"
	"fmt"
	"os"

	"bimaru-solver/internal/core"
	"bimaru-solver/internal/puzzle"
	"bimaru-solver/internal/solver"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: solve <puzzle.json>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Failed to read %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	var p core.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		fmt.Printf("Failed to parse puzzle: %v\n", err)
		os.Exit(1)
	}

	board, err := puzzle.Build(&p)
	if err != nil {
		fmt.Printf("Invalid puzzle: %v\n", err)
		os.Exit(1)
	}

	result := solver.NewDriver(board).Solve()

	fmt.Printf("Solved: %v\n", result.Solved)
	fmt.Printf("Valid: %v\n", result.Valid)
	fmt.Printf("Stuck: %v\n", result.Stuck)
	fmt.Printf("Difficulty score: %.1f\n", result.DifficultyScore)
	fmt.Printf("Max tier required: %d\n", result.MaxTierRequired)
	fmt.Printf("Techniques used: %d\n", len(result.TechniquesUsed))
	for _, d := range result.TechniquesUsed {
		fmt.Printf("  (%d,%d) -> %s via %s (tier %d)\n", d.Row, d.Col, d.Value, d.Technique, d.Tier)
	}
}
