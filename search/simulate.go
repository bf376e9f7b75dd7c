package search

import "snakepilot/game"

// PathIsSelfSafe replays path against a copy of body and reports whether the
// snake can follow it without colliding with itself.
//
// Each step pushes the next path cell as the new head and pops the tail. No
// growth is assumed during the replay; this is a known conservative
// approximation inherited from the movement rules (eating mid-path shrinks
// the space the real snake leaves behind), so a passing path can still turn
// unsafe after an actual food pickup. Callers treat a false result as a hard
// rejection and a true result as "safe absent mid-path growth".
func PathIsSelfSafe(body, path []game.Point) bool {
	if len(path) < 2 {
		return true
	}

	sim := make([]game.Point, len(body))
	copy(sim, body)

	for _, next := range path[1:] {
		// Advance: shift everything back one cell, insert the new head.
		for i := len(sim) - 1; i > 0; i-- {
			sim[i] = sim[i-1]
		}
		sim[0] = next

		for _, c := range sim[1:] {
			if c == next {
				return false
			}
		}
	}

	return true
}
