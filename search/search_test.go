package search

import (
	"testing"

	"snakepilot/game"
)

const (
	gridW = 20
	gridH = 20
)

func noObstacles() map[game.Point]struct{} {
	return map[game.Point]struct{}{}
}

// horizontalWall blocks every cell in the given row.
func horizontalWall(y, width int) map[game.Point]struct{} {
	wall := make(map[game.Point]struct{}, width)
	for x := 0; x < width; x++ {
		wall[game.Point{X: x, Y: y}] = struct{}{}
	}
	return wall
}

func checkPathEndpoints(t *testing.T, res Result, start, goal game.Point) {
	t.Helper()
	if !res.Found {
		t.Fatalf("expected path from %v to %v, got Found=false", start, goal)
	}
	if res.Path[0] != start {
		t.Errorf("path starts at %v, want %v", res.Path[0], start)
	}
	if res.Path[len(res.Path)-1] != goal {
		t.Errorf("path ends at %v, want %v", res.Path[len(res.Path)-1], goal)
	}
}

func checkPathContiguous(t *testing.T, path []game.Point) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		if game.Manhattan(path[i-1], path[i]) != 1 {
			t.Fatalf("path cells %v and %v are not adjacent", path[i-1], path[i])
		}
	}
}

func TestBFSFindsPath(t *testing.T) {
	start := game.Point{X: 0, Y: 0}
	goal := game.Point{X: 5, Y: 5}

	res := BFS(start, goal, noObstacles(), gridW, gridH)

	checkPathEndpoints(t, res, start, goal)
	checkPathContiguous(t, res.Path)
	if res.PathCost != 10 {
		t.Errorf("PathCost = %d, want 10", res.PathCost)
	}
}

func TestAStarOptimalPath(t *testing.T) {
	start := game.Point{X: 0, Y: 0}
	goal := game.Point{X: 5, Y: 5}

	res := AStar(start, goal, noObstacles(), gridW, gridH, "manhattan")

	checkPathEndpoints(t, res, start, goal)
	checkPathContiguous(t, res.Path)
	// Manhattan distance 10, inclusive path of 11 cells.
	if len(res.Path) != 11 {
		t.Errorf("path length = %d, want 11", len(res.Path))
	}
	if res.PathCost != 10 {
		t.Errorf("PathCost = %d, want 10", res.PathCost)
	}
}

func TestWallSeparatesStartFromGoal(t *testing.T) {
	start := game.Point{X: 0, Y: 0}
	goal := game.Point{X: 5, Y: 5}
	wall := horizontalWall(4, gridW)

	bfs := BFS(start, goal, wall, gridW, gridH)
	astar := AStar(start, goal, wall, gridW, gridH, "manhattan")

	for name, res := range map[string]Result{"bfs": bfs, "astar": astar} {
		if res.Found {
			t.Errorf("%s: found a path through a solid wall", name)
		}
		if len(res.Path) != 0 {
			t.Errorf("%s: Path has %d cells, want none", name, len(res.Path))
		}
		if len(res.Visited) == 0 {
			t.Errorf("%s: Visited is empty, want the explored region", name)
		}
		if res.PathCost != 0 {
			t.Errorf("%s: PathCost = %d, want 0", name, res.PathCost)
		}
	}
}

func TestAStarExpandsFewerNodesThanBFS(t *testing.T) {
	start := game.Point{X: 0, Y: 0}
	goal := game.Point{X: 10, Y: 10}

	bfs := BFS(start, goal, noObstacles(), gridW, gridH)
	astar := AStar(start, goal, noObstacles(), gridW, gridH, "manhattan")

	if astar.NodesExpanded >= bfs.NodesExpanded {
		t.Errorf("A* expanded %d nodes, BFS %d; want A* strictly fewer", astar.NodesExpanded, bfs.NodesExpanded)
	}
}

func TestSearchDeterminism(t *testing.T) {
	start := game.Point{X: 2, Y: 3}
	goal := game.Point{X: 15, Y: 12}
	obstacles := horizontalWall(7, gridW)
	delete(obstacles, game.Point{X: 9, Y: 7})

	first := AStar(start, goal, obstacles, gridW, gridH, "manhattan")
	for i := 0; i < 5; i++ {
		again := AStar(start, goal, obstacles, gridW, gridH, "manhattan")
		if again.NodesExpanded != first.NodesExpanded {
			t.Fatalf("run %d: NodesExpanded = %d, want %d", i, again.NodesExpanded, first.NodesExpanded)
		}
		if len(again.Path) != len(first.Path) {
			t.Fatalf("run %d: path length = %d, want %d", i, len(again.Path), len(first.Path))
		}
		for j := range first.Path {
			if again.Path[j] != first.Path[j] {
				t.Fatalf("run %d: path[%d] = %v, want %v", i, j, again.Path[j], first.Path[j])
			}
		}
		if len(again.Visited) != len(first.Visited) {
			t.Fatalf("run %d: visited size = %d, want %d", i, len(again.Visited), len(first.Visited))
		}
		for c := range first.Visited {
			if _, ok := again.Visited[c]; !ok {
				t.Fatalf("run %d: visited set missing %v", i, c)
			}
		}
	}
}

func TestStartEqualsGoal(t *testing.T) {
	p := game.Point{X: 5, Y: 5}

	for name, res := range map[string]Result{
		"bfs":   BFS(p, p, noObstacles(), gridW, gridH),
		"astar": AStar(p, p, noObstacles(), gridW, gridH, "manhattan"),
	} {
		if !res.Found {
			t.Errorf("%s: Found = false for start == goal", name)
		}
		if len(res.Path) != 1 || res.Path[0] != p {
			t.Errorf("%s: Path = %v, want [%v]", name, res.Path, p)
		}
		if res.PathCost != 0 {
			t.Errorf("%s: PathCost = %d, want 0", name, res.PathCost)
		}
	}
}

func TestAdjacentCells(t *testing.T) {
	start := game.Point{X: 5, Y: 5}
	goal := game.Point{X: 5, Y: 6}

	res := AStar(start, goal, noObstacles(), gridW, gridH, "manhattan")

	checkPathEndpoints(t, res, start, goal)
	if len(res.Path) != 2 {
		t.Errorf("path length = %d, want 2", len(res.Path))
	}
	if res.PathCost != 1 {
		t.Errorf("PathCost = %d, want 1", res.PathCost)
	}
}

func TestGoalInObstaclesIsUnreachable(t *testing.T) {
	start := game.Point{X: 0, Y: 0}
	goal := game.Point{X: 5, Y: 5}
	obstacles := map[game.Point]struct{}{goal: {}}

	for name, res := range map[string]Result{
		"bfs":   BFS(start, goal, obstacles, gridW, gridH),
		"astar": AStar(start, goal, obstacles, gridW, gridH, "manhattan"),
	} {
		if res.Found {
			t.Errorf("%s: found a path to a blocked goal", name)
		}
	}
}

func TestEuclideanHeuristicStillOptimal(t *testing.T) {
	start := game.Point{X: 0, Y: 0}
	goal := game.Point{X: 6, Y: 2}

	res := AStar(start, goal, noObstacles(), gridW, gridH, "euclidean")

	checkPathEndpoints(t, res, start, goal)
	if res.PathCost != 8 {
		t.Errorf("PathCost = %d, want 8", res.PathCost)
	}
}

func TestHeuristicByNameFallsBack(t *testing.T) {
	a := game.Point{X: 1, Y: 2}
	b := game.Point{X: 4, Y: 6}

	h := HeuristicByName("no-such-heuristic")
	if got, want := h(a, b), float64(game.Manhattan(a, b)); got != want {
		t.Errorf("fallback heuristic = %v, want manhattan %v", got, want)
	}
}
