package agent

import (
	"log"
	"math"

	"snakepilot/game"
	"snakepilot/rules"
	"snakepilot/search"
)

const (
	// plyPenalty is subtracted per minimizing ply. It models attrition
	// rather than a real opponent, discouraging deep exploration of
	// strictly losing lines.
	plyPenalty = 5

	// terminalScore dominates every other evaluation feature.
	terminalScore = -10000

	// evalFillDepth bounds the flood fill inside the evaluation function
	// to keep per-node cost flat.
	evalFillDepth = 8
)

// AlphaBetaAgent runs fixed-depth minimax with alpha-beta pruning over
// simulated futures. The maximizing layer is the snake; the minimizing
// layer models loss of space as an opponent by charging a fixed penalty
// per ply.
type AlphaBetaAgent struct {
	maxDepth int

	// NodesEvaluated counts minimax calls in the most recent Decide, for
	// pruning assertions and the evaluation harness.
	NodesEvaluated int
}

func NewAlphaBetaAgent(maxDepth int) *AlphaBetaAgent {
	if maxDepth <= 0 {
		maxDepth = 4
	}
	return &AlphaBetaAgent{maxDepth: maxDepth}
}

// abState is the minimal simulated future: body, static food, terminal flag.
// Grid bounds come from the live snapshot, which minimax never mutates.
type abState struct {
	body []game.Point
	food game.Point
	over bool
}

// Decide evaluates each safe root move with minimax and picks the highest
// scoring one, keeping the first on ties (root moves are expanded in the
// fixed neighbor order).
func (a *AlphaBetaAgent) Decide(state *game.GameState) game.Direction {
	head := state.Head()
	a.NodesEvaluated = 0

	root := abState{body: state.Body, food: state.Food}

	best := state.Dir
	bestValue := math.Inf(-1)
	found := false

	for _, n := range rules.SafeNeighbors(state, head) {
		child := a.simulateMove(root, n, state)
		value := a.minimax(child, state, a.maxDepth-1, math.Inf(-1), math.Inf(1), false)
		if value > bestValue {
			bestValue = value
			best = game.DirectionTo(head, n)
			found = true
		}
	}

	if !found {
		return state.Dir
	}

	log.Printf("alphabeta: best=%.1f nodes=%d", bestValue, a.NodesEvaluated)
	return best
}

func (a *AlphaBetaAgent) minimax(s abState, state *game.GameState, depth int, alpha, beta float64, maximizing bool) float64 {
	a.NodesEvaluated++

	if depth == 0 || s.over {
		return a.evaluate(s, state)
	}

	head := s.body[0]

	if maximizing {
		maxEval := math.Inf(-1)
		expanded := false
		for _, n := range game.Neighbors(head, state.Width, state.Height) {
			if !safeInState(s, n) {
				continue
			}
			child := a.simulateMove(s, n, state)
			value := a.minimax(child, state, depth-1, alpha, beta, false)
			expanded = true
			if value > maxEval {
				maxEval = value
			}
			if value > alpha {
				alpha = value
			}
			if beta <= alpha {
				break
			}
		}
		if !expanded {
			return a.evaluate(s, state)
		}
		return maxEval
	}

	minEval := math.Inf(1)
	expanded := false
	for _, n := range game.Neighbors(head, state.Width, state.Height) {
		if !safeInState(s, n) {
			continue
		}
		child := a.simulateMove(s, n, state)
		value := a.minimax(child, state, depth-1, alpha, beta, true) - plyPenalty
		expanded = true
		if value < minEval {
			minEval = value
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break
		}
	}
	if !expanded {
		return a.evaluate(s, state)
	}
	return minEval
}

// evaluate scores a simulated state: closer food, more reachable space,
// a distant tail, centrality, and raw length are all rewarded with fixed
// weights. A collided state scores terminalScore regardless of features.
func (a *AlphaBetaAgent) evaluate(s abState, state *game.GameState) float64 {
	if s.over {
		return terminalScore
	}

	head := s.body[0]

	foodScore := -10 * game.Manhattan(head, s.food)

	space := search.CountReachable(head, search.CellSet(s.body[1:]), state.Width, state.Height, evalFillDepth)
	spaceScore := 15 * space

	tailScore := 0
	if len(s.body) > 1 {
		tailScore = 5 * game.Manhattan(head, s.body[len(s.body)-1])
	}

	center := game.Point{X: state.Width / 2, Y: state.Height / 2}
	centerScore := -2 * game.Manhattan(head, center)

	lengthScore := 20 * len(s.body)

	return float64(foodScore + spaceScore + tailScore + centerScore + lengthScore)
}

// simulateMove applies one head move to a simulated state: front insert,
// tail pop unless the food cell is entered, terminal when the new head
// leaves the grid or lands on the pre-move body. The food cell stays fixed
// through the lookahead; respawning is outside the evaluation model.
func (a *AlphaBetaAgent) simulateMove(s abState, next game.Point, state *game.GameState) abState {
	var newBody []game.Point
	if next == s.food {
		newBody = make([]game.Point, 0, len(s.body)+1)
		newBody = append(newBody, next)
		newBody = append(newBody, s.body...)
	} else {
		newBody = make([]game.Point, 0, len(s.body))
		newBody = append(newBody, next)
		newBody = append(newBody, s.body[:len(s.body)-1]...)
	}

	over := !game.InBounds(next, state.Width, state.Height)
	if !over {
		for _, c := range s.body {
			if c == next {
				over = true
				break
			}
		}
	}

	return abState{body: newBody, food: s.food, over: over}
}

func safeInState(s abState, p game.Point) bool {
	for _, c := range s.body[1:] {
		if c == p {
			return false
		}
	}
	return true
}
