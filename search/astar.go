package search

import (
	"container/heap"

	"snakepilot/game"
)

type astarItem struct {
	f       float64
	counter int
	cell    game.Point
	path    []game.Point
	g       int
}

// astarQueue orders items by f score, breaking ties by insertion counter so
// repeated searches over identical input expand nodes in the same order.
type astarQueue []*astarItem

func (q astarQueue) Len() int { return len(q) }

func (q astarQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].counter < q[j].counter
}

func (q astarQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *astarQueue) Push(x any) { *q = append(*q, x.(*astarItem)) }

func (q *astarQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// AStar runs A* from start to goal with uniform step cost 1.
//
// A cell is finalized the first time it is popped; later, costlier
// discoveries are skipped rather than reopened, which is sound because both
// supported heuristics are consistent. The insertion counter makes path
// selection deterministic across runs with identical input.
func AStar(start, goal game.Point, obstacles map[game.Point]struct{}, width, height int, heuristicName string) Result {
	h := HeuristicByName(heuristicName)

	counter := 0
	open := astarQueue{{
		f:    h(start, goal),
		cell: start,
		path: []game.Point{start},
	}}
	heap.Init(&open)

	visited := make(map[game.Point]struct{})
	frontier := map[game.Point]struct{}{start: {}}
	gScores := map[game.Point]int{start: 0}
	nodesExpanded := 0

	for open.Len() > 0 {
		item := heap.Pop(&open).(*astarItem)

		if _, done := visited[item.cell]; done {
			continue
		}
		visited[item.cell] = struct{}{}
		nodesExpanded++
		delete(frontier, item.cell)

		if item.cell == goal {
			return Result{
				Path:          item.path,
				Visited:       visited,
				Frontier:      frontier,
				NodesExpanded: nodesExpanded,
				PathCost:      item.g,
				Found:         true,
			}
		}

		for _, n := range game.Neighbors(item.cell, width, height) {
			if _, done := visited[n]; done {
				continue
			}
			if _, blocked := obstacles[n]; blocked {
				continue
			}

			g := item.g + 1
			if best, ok := gScores[n]; ok && g >= best {
				continue
			}
			gScores[n] = g

			counter++
			heap.Push(&open, &astarItem{
				f:       float64(g) + h(n, goal),
				counter: counter,
				cell:    n,
				path:    appendPath(item.path, n),
				g:       g,
			})
			frontier[n] = struct{}{}
		}
	}

	return Result{
		Visited:       visited,
		Frontier:      frontier,
		NodesExpanded: nodesExpanded,
	}
}
