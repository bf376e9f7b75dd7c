package search

import "snakepilot/game"

type bfsNode struct {
	cell game.Point
	path []game.Point
}

// BFS runs breadth-first search from start to goal over the obstacle grid.
//
// Expansion follows the fixed neighbor order, and cells are deduplicated at
// enqueue time, so the first time goal is dequeued its path is optimal in
// edge count. If goal is unreachable (including goal inside obstacles) the
// result has Found=false with the accumulated Visited/Frontier sets intact.
func BFS(start, goal game.Point, obstacles map[game.Point]struct{}, width, height int) Result {
	queue := []bfsNode{{cell: start, path: []game.Point{start}}}
	visited := map[game.Point]struct{}{start: {}}
	frontier := make(map[game.Point]struct{})
	nodesExpanded := 0

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		nodesExpanded++

		if node.cell == goal {
			return Result{
				Path:          node.path,
				Visited:       visited,
				Frontier:      frontier,
				NodesExpanded: nodesExpanded,
				PathCost:      len(node.path) - 1,
				Found:         true,
			}
		}

		for _, n := range game.Neighbors(node.cell, width, height) {
			if _, seen := visited[n]; seen {
				continue
			}
			if _, blocked := obstacles[n]; blocked {
				continue
			}
			visited[n] = struct{}{}
			frontier[n] = struct{}{}
			queue = append(queue, bfsNode{cell: n, path: appendPath(node.path, n)})
		}

		delete(frontier, node.cell)
	}

	return Result{
		Visited:       visited,
		Frontier:      frontier,
		NodesExpanded: nodesExpanded,
	}
}
