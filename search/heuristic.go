package search

import (
	"strings"

	"snakepilot/game"
)

// Heuristic estimates the remaining cost between two cells.
type Heuristic func(a, b game.Point) float64

func manhattanHeuristic(a, b game.Point) float64 {
	return float64(game.Manhattan(a, b))
}

func euclideanHeuristic(a, b game.Point) float64 {
	return game.Euclidean(a, b)
}

// HeuristicByName resolves a heuristic by name.
//
// "manhattan" is admissible and consistent for 4-connected unit-cost grids;
// "euclidean" is admissible but less informed and tends to expand more
// nodes. Unknown names fall back to manhattan rather than failing, since
// heuristic selection is a non-critical configuration choice.
func HeuristicByName(name string) Heuristic {
	switch strings.ToLower(name) {
	case "euclidean":
		return euclideanHeuristic
	default:
		return manhattanHeuristic
	}
}
