// Package rules holds the pure game-rules engine: safety predicates, the
// per-tick state transition, and food placement.
//
// Agents use the same predicates the engine uses, so a move the policy
// considers safe is safe under the real transition as well.
package rules

import (
	"math/rand"

	"snakepilot/game"
)

// DefaultSurvivalScore is the score at which SurvivalMode latches on.
const DefaultSurvivalScore = 50

// IsSafe reports whether p can be entered on the next tick: in bounds and
// not on the body interior. The head cell itself is excluded since it
// vacates as the snake advances.
func IsSafe(state *game.GameState, p game.Point) bool {
	if !game.InBounds(p, state.Width, state.Height) {
		return false
	}
	for _, c := range state.Body[1:] {
		if c == p {
			return false
		}
	}
	return true
}

// SafeNeighbors returns the safe neighbors of p in the fixed expansion
// order (up, down, left, right).
func SafeNeighbors(state *game.GameState, p game.Point) []game.Point {
	out := make([]game.Point, 0, 4)
	for _, n := range game.Neighbors(p, state.Width, state.Height) {
		if IsSafe(state, n) {
			out = append(out, n)
		}
	}
	return out
}

// SetDirection applies a direction change, rejecting 180-degree reversals
// and the zero direction. The reversal guard holds even for a single-cell
// body, where turning back is physically harmless but still refused.
func SetDirection(state *game.GameState, d game.Direction) {
	if d.IsZero() {
		return
	}
	if d == state.Dir.Opposite() {
		return
	}
	state.Dir = d
}

// Advance applies one tick of the transition: move the head along the
// current direction, detect wall/self collision, grow on food or pop the
// tail otherwise. Returns false once the game is over.
//
// The rng drives food respawning only, so callers can choose true
// randomness for play or a fixed seed for reproducible episodes.
func Advance(state *game.GameState, rng *rand.Rand) bool {
	if state.GameOver {
		return false
	}

	head := state.Head()
	newHead := game.Point{X: head.X + state.Dir.DX, Y: head.Y + state.Dir.DY}

	if !game.InBounds(newHead, state.Width, state.Height) {
		state.GameOver = true
		return false
	}
	for _, c := range state.Body {
		if c == newHead {
			state.GameOver = true
			return false
		}
	}

	// Head insert before the food check so growth keeps the tail in place.
	state.Body = append([]game.Point{newHead}, state.Body...)

	if newHead == state.Food {
		state.Score++
		SpawnFood(state, rng)
	} else {
		state.Body = state.Body[:len(state.Body)-1]
	}

	threshold := state.SurvivalScore
	if threshold <= 0 {
		threshold = DefaultSurvivalScore
	}
	if state.Score >= threshold {
		state.SurvivalMode = true
	}

	state.Moves++
	return true
}

// IsTerminal reports whether the game is over or the snake has no safe
// move left (the next forced move ends the episode).
func IsTerminal(state *game.GameState) bool {
	if state.GameOver {
		return true
	}
	return len(SafeNeighbors(state, state.Head())) == 0
}

// NewGame builds a fresh state with a single-cell body at the grid center,
// heading right, and food already placed.
func NewGame(width, height int, rng *rand.Rand) *game.GameState {
	return NewGameWithLength(width, height, 1, rng)
}

// NewGameWithLength builds a fresh state with the body extending left from
// the grid center, heading right so the first move leads away from it.
// Length is clamped to the cells available left of center so the body never
// extends off-grid.
func NewGameWithLength(width, height, length int, rng *rand.Rand) *game.GameState {
	if length < 1 {
		length = 1
	}
	if maxLength := width/2 + 1; length > maxLength {
		length = maxLength
	}
	body := make([]game.Point, length)
	for i := range body {
		body[i] = game.Point{X: width/2 - i, Y: height / 2}
	}
	state := &game.GameState{
		Width:  width,
		Height: height,
		Body:   body,
		Dir:    game.Right,
	}
	SpawnFood(state, rng)
	return state
}
