//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"bimaru-solver/internal/core"
	"bimaru-solver/internal/puzzle"
	"bimaru-solver/internal/solver"
)

// toJSValue converts a Go value to a JavaScript value via JSON.
func toJSValue(v interface{}) js.Value {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return js.ValueOf(nil)
	}
	return js.Global().Get("JSON").Call("parse", string(jsonBytes))
}

// solvePuzzle parses a puzzle JSON string, runs it to quiescence, and
// returns the result as a JS object.
// Input: puzzle JSON string
// Output: { solved, stuck, valid, techniques_used, difficulty_score, max_tier_required } | { error }
func solvePuzzle(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return toJSValue(map[string]string{"error": "missing puzzle argument"})
	}

	var p core.Puzzle
	if err := json.Unmarshal([]byte(args[0].String()), &p); err != nil {
		return toJSValue(map[string]string{"error": err.Error()})
	}

	board, err := puzzle.Build(&p)
	if err != nil {
		return toJSValue(map[string]string{"error": err.Error()})
	}

	result := solver.NewDriver(board).Solve()
	return toJSValue(puzzle.ToCoreResult(result))
}

func getVersion(this js.Value, args []js.Value) interface{} {
	return js.ValueOf("1.0")
}

func main() {
	exports := map[string]interface{}{
		"solvePuzzle": js.FuncOf(solvePuzzle),
		"getVersion":  js.FuncOf(getVersion),
	}

	js.Global().Set("BimaruWasm", js.ValueOf(exports))
	js.Global().Call("dispatchEvent", js.Global().Get("CustomEvent").New("wasmReady"))

	select {}
}
