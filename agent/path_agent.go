package agent

import (
	"log"

	"snakepilot/game"
	"snakepilot/rules"
	"snakepilot/search"
)

// PathAgent is the primary decision engine: plan a path to the food,
// validate it against the snake's own future body, and fall back through
// progressively more defensive tiers when planning fails.
//
// Tier order per tick: survival strategy (when active) -> cached/replanned
// path -> tail chase -> any safe move -> hold previous direction.
type PathAgent struct {
	cfg Config

	// plan is the owned remaining path, head-first at plan time, replaced
	// wholesale on replan and never aliased by callers. One cell is
	// consumed per tick.
	plan []game.Point

	// lastResult keeps the most recent search outcome for inspection by
	// tooling (visited/frontier overlays, node counts).
	lastResult *search.Result
}

func NewPathAgent(cfg Config) *PathAgent {
	return &PathAgent{cfg: cfg.withDefaults()}
}

// LastResult returns the most recent planning result, or nil before the
// first plan.
func (a *PathAgent) LastResult() *search.Result {
	return a.lastResult
}

// Decide picks the next direction for the snake.
func (a *PathAgent) Decide(state *game.GameState) game.Direction {
	if state.SurvivalMode {
		return a.surviveMove(state)
	}

	// A plan reduced to a single cell is exhausted: the head already sits
	// on it, so nothing is left to follow.
	if a.cfg.DynamicReplanning || len(a.plan) <= 1 {
		a.replan(state)
	}

	if len(a.plan) > 1 {
		head := state.Head()
		next := a.plan[1]
		if rules.IsSafe(state, next) {
			a.plan = a.plan[1:]
			return game.DirectionTo(head, next)
		}
		// The cached plan went stale under us; drop it so the next tick
		// replans instead of retrying the same blocked cell.
		a.plan = nil
	}

	return a.tailChase(state)
}

// surviveMove is the stricter strategy for large snakes: only chase the
// food when it is reachable, eating it leaves the tail reachable, and the
// first step of the plan passes the flood-fill safety gate. Anything less
// falls back to tail chasing.
func (a *PathAgent) surviveMove(state *game.GameState) game.Direction {
	if a.foodReachableSafely(state) {
		a.replan(state)
		if len(a.plan) > 1 {
			head := state.Head()
			next := a.plan[1]
			if a.passesSafetyGate(state, next) {
				a.plan = a.plan[1:]
				return game.DirectionTo(head, next)
			}
		}
	}

	return a.tailChase(state)
}

// foodReachableSafely runs the two-stage lookahead: a path to the food must
// exist, and from the post-eat position (food as new head, body grown by
// one) a path back to the resulting tail must also exist.
func (a *PathAgent) foodReachableSafely(state *game.GameState) bool {
	head := state.Head()
	obstacles := search.CellSet(state.Body[1:])

	var res search.Result
	if a.cfg.Algorithm == "bfs" {
		res = search.BFS(head, state.Food, obstacles, state.Width, state.Height)
	} else {
		res = search.AStar(head, state.Food, obstacles, state.Width, state.Height, a.cfg.Heuristic)
	}
	if !res.Found {
		return false
	}

	// Simulate eating: the snake grows, food becomes the head.
	grown := make([]game.Point, 0, len(state.Body)+1)
	grown = append(grown, state.Food)
	grown = append(grown, state.Body...)

	simTail := grown[len(grown)-1]
	simObstacles := search.CellSet(grown[1 : len(grown)-1])

	tailRes := search.AStar(state.Food, simTail, simObstacles, state.Width, state.Height, "manhattan")
	return tailRes.Found
}

// passesSafetyGate simulates the candidate move and requires the reachable
// free space from the new head to cover the body length plus the configured
// margin.
func (a *PathAgent) passesSafetyGate(state *game.GameState, next game.Point) bool {
	simBody := make([]game.Point, 0, len(state.Body))
	simBody = append(simBody, next)
	simBody = append(simBody, state.Body[:len(state.Body)-1]...)

	reachable := search.CountReachable(next, search.CellSet(simBody[1:]), state.Width, state.Height, 0)
	required := len(state.Body) + a.cfg.SafetyMargin

	if reachable < required {
		log.Printf("path agent: safety gate rejected %v (reachable=%d required=%d)", next, reachable, required)
		return false
	}
	return true
}

// replan searches head->food and installs the path as the new plan if its
// replay is self-safe; otherwise the plan is cleared and the fallback tiers
// take over.
func (a *PathAgent) replan(state *game.GameState) {
	head := state.Head()
	obstacles := search.CellSet(state.Body[1:])

	var res search.Result
	if a.cfg.Algorithm == "bfs" {
		res = search.BFS(head, state.Food, obstacles, state.Width, state.Height)
	} else {
		res = search.AStar(head, state.Food, obstacles, state.Width, state.Height, a.cfg.Heuristic)
	}
	a.lastResult = &res

	if !res.Found {
		a.plan = nil
		return
	}

	if !search.PathIsSelfSafe(state.Body, res.Path) {
		log.Printf("path agent: %s path of length %d would self-collide, using fallback", a.cfg.Algorithm, len(res.Path))
		a.plan = nil
		return
	}

	a.plan = res.Path
}

// tailChase paths toward the snake's own tail to buy time. The tail cell
// itself is excluded from the obstacles since it vacates on every
// non-growth move.
func (a *PathAgent) tailChase(state *game.GameState) game.Direction {
	head := state.Head()
	tail := state.Tail()

	var interior []game.Point
	if len(state.Body) > 2 {
		interior = state.Body[1 : len(state.Body)-1]
	}

	res := search.AStar(head, tail, search.CellSet(interior), state.Width, state.Height, "manhattan")
	if res.Found && len(res.Path) > 1 {
		log.Printf("path agent: tail chase (path length %d)", len(res.Path))
		return game.DirectionTo(head, res.Path[1])
	}

	return a.anySafeMove(state)
}

// anySafeMove greedily picks the safe neighbor with the most reachable free
// space, ties broken by the fixed neighbor order. Maximizing space here
// avoids funnel traps better than an arbitrary choice. With no safe
// neighbor at all the previous direction is held; the episode ends on the
// next forced move and the agent does not pretend otherwise.
func (a *PathAgent) anySafeMove(state *game.GameState) game.Direction {
	head := state.Head()
	safe := rules.SafeNeighbors(state, head)

	if len(safe) == 0 {
		log.Printf("path agent: no safe moves available")
		return state.Dir
	}

	obstacles := search.CellSet(state.Body)
	best := safe[0]
	bestCount := -1
	for _, n := range safe {
		count := search.CountReachable(n, obstacles, state.Width, state.Height, 0)
		if count > bestCount {
			best = n
			bestCount = count
		}
	}

	log.Printf("path agent: safe move fallback to %v (reachable=%d)", best, bestCount)
	return game.DirectionTo(head, best)
}
