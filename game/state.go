// Package game defines the core state types for the grid snake.
//
// These types represent the minimal state needed for rules evaluation and
// agent decision making. The state is designed to be efficiently clonable
// so agents can explore simulated futures without touching the live game.
package game

// Point is a board coordinate.
// (0,0) is the top-left cell; Y grows downward.
type Point struct {
	X int
	Y int
}

// Direction is a unit step applied to the head each tick.
// Only the four cardinal directions are valid; the zero value means
// "no direction chosen yet".
type Direction struct {
	DX int
	DY int
}

var (
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{-d.DX, -d.DY}
}

// IsZero reports whether no direction has been set.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// GameState is the complete state needed for rules + decision making.
// Body is ordered head-first; consecutive cells are grid-adjacent and no
// cell appears twice (a duplicate means the episode already ended).
type GameState struct {
	Width  int
	Height int
	Body   []Point
	Food   Point
	Dir    Direction

	Score int
	Moves int

	// SurvivalScore is the score at which SurvivalMode latches on.
	// Zero means the engine default.
	SurvivalScore int

	// SurvivalMode latches on once Score reaches SurvivalScore and
	// switches the path agent to its stricter pre-move safety gating.
	SurvivalMode bool
	GameOver     bool
}

// Head returns the leading body cell.
func (s *GameState) Head() Point {
	return s.Body[0]
}

// Tail returns the last body cell.
func (s *GameState) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// Clone performs a deep copy of the game state.
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}

	out := &GameState{
		Width:         s.Width,
		Height:        s.Height,
		Food:          s.Food,
		Dir:           s.Dir,
		Score:         s.Score,
		Moves:         s.Moves,
		SurvivalScore: s.SurvivalScore,
		SurvivalMode:  s.SurvivalMode,
		GameOver:      s.GameOver,
	}

	if len(s.Body) > 0 {
		out.Body = make([]Point, len(s.Body))
		copy(out.Body, s.Body)
	}

	return out
}
