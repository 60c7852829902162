package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"bimaru-solver/internal/core"
	"bimaru-solver/internal/generator"
)

func main() {
	seed := flag.Int64("seed", 1, "Seed for the reference solution")
	hints := flag.Int("hints", 10, "Number of initial hint cells to reveal")
	output := flag.String("o", "", "Output file path (default: stdout)")
	flag.Parse()

	solution := generator.Generate(*seed)
	rowClues, colClues := generator.DeriveClues(solution)
	chosen := generator.CarveHints(solution, *hints, *seed)

	puzzle := core.Puzzle{
		Clues:        core.Clues{Rows: rowClues, Cols: colClues},
		InitialHints: make([]core.Hint, 0, len(chosen)),
		Solution:     solutionToInts(solution),
	}
	for _, h := range chosen {
		value := json.RawMessage(`"sea"`)
		if h.Ship {
			value = json.RawMessage(`"ship"`)
		}
		puzzle.InitialHints = append(puzzle.InitialHints, core.Hint{Row: h.Row, Col: h.Col, Value: value})
	}

	data, err := json.MarshalIndent(puzzle, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal puzzle: %v\n", err)
		os.Exit(1)
	}

	if *output == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *output, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *output)
}

func solutionToInts(sol generator.Solution) *[10][10]int {
	var out [10][10]int
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			out[r][c] = sol[r][c]
		}
	}
	return &out
}
