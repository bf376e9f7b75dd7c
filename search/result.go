// Package search implements the pathfinding and space-analysis primitives
// behind the agents: breadth-first and A* shortest paths over an obstacle
// grid, path replay against the snake body, and flood-fill reachability.
//
// All functions are pure: working sets are allocated per call and never
// escape, so concurrent callers on independent states need no locking.
package search

import "snakepilot/game"

// Result carries the outcome of one search invocation.
//
// Path is ordered start-first and is nil when no path exists. Visited and
// Frontier hold the full exploration record so callers can inspect (or
// render) what the search actually looked at. PathCost counts edges, so a
// degenerate start==goal search has cost 0 and a one-cell path.
type Result struct {
	Path          []game.Point
	Visited       map[game.Point]struct{}
	Frontier      map[game.Point]struct{}
	NodesExpanded int
	PathCost      int
	Found         bool
}

// CellSet builds an obstacle set from a slice of cells.
func CellSet(cells []game.Point) map[game.Point]struct{} {
	set := make(map[game.Point]struct{}, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return set
}

// appendPath copies path and appends next, so queued paths never share
// backing arrays.
func appendPath(path []game.Point, next game.Point) []game.Point {
	out := make([]game.Point, len(path), len(path)+1)
	copy(out, path)
	return append(out, next)
}
