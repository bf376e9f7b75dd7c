package search

import "snakepilot/game"

type fillNode struct {
	cell  game.Point
	depth int
}

// CountReachable flood-fills from start and returns the number of reachable
// free cells, start included.
//
// maxDepth bounds the fill in hops for per-tick cost control; cells first
// discovered at the boundary depth are counted but not expanded. maxDepth <= 0
// means unbounded, which is the exact form used by the safety gate: on an
// empty WxH grid it returns W*H.
func CountReachable(start game.Point, obstacles map[game.Point]struct{}, width, height int, maxDepth int) int {
	visited := map[game.Point]struct{}{start: {}}
	queue := []fillNode{{cell: start}}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if maxDepth > 0 && node.depth >= maxDepth {
			continue
		}

		for _, n := range game.Neighbors(node.cell, width, height) {
			if _, seen := visited[n]; seen {
				continue
			}
			if _, blocked := obstacles[n]; blocked {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, fillNode{cell: n, depth: node.depth + 1})
		}
	}

	return len(visited)
}
