package agent

import (
	"snakepilot/game"
	"snakepilot/rules"
	"snakepilot/search"
)

// BFSAgent replans with breadth-first search on every tick. It has no
// survival tiers and no flood-fill gating; it exists as the uninformed
// baseline for the evaluation harness.
type BFSAgent struct {
	plan []game.Point
}

func NewBFSAgent() *BFSAgent {
	return &BFSAgent{}
}

// Decide replans to the food and follows the first step, falling back to a
// tail chase and then to the first safe neighbor.
func (a *BFSAgent) Decide(state *game.GameState) game.Direction {
	head := state.Head()

	res := search.BFS(head, state.Food, search.CellSet(state.Body[1:]), state.Width, state.Height)
	if res.Found {
		a.plan = res.Path
	} else {
		a.plan = nil
	}

	if len(a.plan) > 1 {
		next := a.plan[1]
		a.plan = a.plan[1:]
		return game.DirectionTo(head, next)
	}

	return a.tailChase(state)
}

func (a *BFSAgent) tailChase(state *game.GameState) game.Direction {
	head := state.Head()
	tail := state.Tail()

	var interior []game.Point
	if len(state.Body) > 2 {
		interior = state.Body[1 : len(state.Body)-1]
	}

	res := search.BFS(head, tail, search.CellSet(interior), state.Width, state.Height)
	if res.Found && len(res.Path) > 1 {
		return game.DirectionTo(head, res.Path[1])
	}

	// First safe neighbor, in expansion order.
	for _, n := range rules.SafeNeighbors(state, head) {
		return game.DirectionTo(head, n)
	}

	return state.Dir
}
