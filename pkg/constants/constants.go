// Package constants centralizes the fixed dimensions, fleet composition,
// and tuning caps shared by the solver, puzzle parser, and transport layers.
package constants

// Dimension is the side length of every board this module understands.
// spec.md's Non-goals exclude boards of any other size.
const Dimension = 10

// TotalCells is Dimension squared, the length of a board snapshot string.
const TotalCells = Dimension * Dimension

// Fleet is the fixed multiset of ship lengths every puzzle must place.
// A fresh copy should be taken per board; callers must not mutate this slice.
var Fleet = []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}

// MaxShipLength is the longest ship in Fleet.
const MaxShipLength = 4

// MaxDriverIterations caps the tiered driver's outer restart loop.
const MaxDriverIterations = 1000

// MaxPropagatorPops caps the incremental propagator's worklist drain,
// guaranteed to be at least 200 per spec.md's description of the algorithm.
const MaxPropagatorPops = 400

// DefaultPort is used by cmd/server when PORT is unset.
const DefaultPort = "8080"
