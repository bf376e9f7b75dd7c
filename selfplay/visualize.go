// visualize.go - Console visualization for debugging episodes.
package selfplay

import (
	"fmt"
	"log"
	"strings"

	"snakepilot/game"
)

// PrintBoard logs an ASCII representation of the board: 'O' head, 'o' body,
// 'F' food. Row 0 is printed first since (0,0) is the top-left cell.
func PrintBoard(state *game.GameState) {
	log.Print(BoardString(state))
}

// BoardString renders the board for logs and tests.
func BoardString(state *game.GameState) string {
	grid := make([][]byte, state.Height)
	for y := range grid {
		grid[y] = make([]byte, state.Width)
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}

	if game.InBounds(state.Food, state.Width, state.Height) {
		grid[state.Food.Y][state.Food.X] = 'F'
	}

	for i, c := range state.Body {
		if !game.InBounds(c, state.Width, state.Height) {
			continue
		}
		if i == 0 {
			grid[c.Y][c.X] = 'O'
		} else {
			grid[c.Y][c.X] = 'o'
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n=== tick %d score=%d len=%d ===\n", state.Moves, state.Score, len(state.Body))
	for y := 0; y < state.Height; y++ {
		for x := 0; x < state.Width; x++ {
			sb.WriteByte(grid[y][x])
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
