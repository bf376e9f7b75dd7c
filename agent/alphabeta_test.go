package agent

import (
	"testing"

	"snakepilot/game"
)

func TestAlphaBetaGreedyMovesTowardFood(t *testing.T) {
	// Depth 1 reduces the search to the one-step evaluation: every move
	// keeps the full board reachable, so the food term decides and Right is
	// the only neighbor that closes the distance.
	state := openState(7, 7, []game.Point{{X: 3, Y: 3}}, game.Point{X: 5, Y: 3})
	ag := NewAlphaBetaAgent(1)

	if got := ag.Decide(state); got != game.Right {
		t.Errorf("Decide = %v, want Right toward the food", got)
	}
	if ag.NodesEvaluated != 4 {
		t.Errorf("NodesEvaluated = %d, want 4 (one leaf per root move)", ag.NodesEvaluated)
	}
}

func TestAlphaBetaSingleSafeMove(t *testing.T) {
	// Head in the corner with the neck covering the only other in-bounds
	// neighbor: Down is forced whatever the search says about it.
	state := openState(5, 5, []game.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, game.Point{X: 4, Y: 4})
	ag := NewAlphaBetaAgent(4)

	if got := ag.Decide(state); got != game.Down {
		t.Errorf("Decide = %v, want the forced move Down", got)
	}
}

func TestAlphaBetaHoldsWhenBoxedIn(t *testing.T) {
	state := openState(5, 5, []game.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, game.Point{X: 4, Y: 4})
	state.Dir = game.Up
	ag := NewAlphaBetaAgent(4)

	if got := ag.Decide(state); got != game.Up {
		t.Errorf("Decide = %v, want the held previous direction Up", got)
	}
	if ag.NodesEvaluated != 0 {
		t.Errorf("NodesEvaluated = %d, want 0 with no root moves", ag.NodesEvaluated)
	}
}

func TestAlphaBetaPrunes(t *testing.T) {
	// Single-cell snake in the middle of an 11x11 grid: four moves at every
	// level of a depth-4 tree, for 4*(1+4+16+64) = 340 minimax calls
	// without pruning. Alpha-beta must visit strictly fewer.
	state := openState(11, 11, []game.Point{{X: 5, Y: 5}}, game.Point{X: 8, Y: 5})
	ag := NewAlphaBetaAgent(4)

	got := ag.Decide(state)
	if got.IsZero() {
		t.Fatalf("Decide returned the zero direction")
	}
	if ag.NodesEvaluated == 0 {
		t.Fatal("NodesEvaluated = 0, want a searched tree")
	}
	if ag.NodesEvaluated >= 340 {
		t.Errorf("NodesEvaluated = %d, want fewer than the unpruned 340", ag.NodesEvaluated)
	}
}
