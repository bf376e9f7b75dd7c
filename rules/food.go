package rules

import (
	"math/rand"

	"snakepilot/game"
)

// SpawnFood places food uniformly over the free cells, never on the body.
//
// The rng parameter lets callers choose true randomness for interactive
// play or deterministic pseudo-randomness for tests and batch evaluation.
// This keeps the transition function stable and debuggable.
func SpawnFood(state *game.GameState, rng *rand.Rand) {
	occupied := make(map[game.Point]struct{}, len(state.Body))
	for _, c := range state.Body {
		occupied[c] = struct{}{}
	}

	free := make([]game.Point, 0, state.Width*state.Height-len(occupied))
	for y := 0; y < state.Height; y++ {
		for x := 0; x < state.Width; x++ {
			p := game.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		// Board is full; the snake has won and the next tick ends the game.
		return
	}

	state.Food = free[rng.Intn(len(free))]
}
