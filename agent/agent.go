// Package agent implements the decision engines that pick one direction per
// tick from a read-only game snapshot.
//
// Three engines share the Agent interface: the primary path-planning agent
// with tiered fallbacks, a simpler always-replanning BFS agent, and an
// adversarial alpha-beta agent. The controller stays decoupled from the
// algorithm choice by constructing agents through New.
package agent

import "snakepilot/game"

// Agent decides the next move for the snake. Decide must not mutate the
// snapshot; engines simulate on clones or derived copies only.
type Agent interface {
	Decide(state *game.GameState) game.Direction
}

// Config carries the tunables for agent construction. Passing it explicitly
// (instead of reading ambient globals) lets tests and the evaluation harness
// run independently configured agents side by side.
type Config struct {
	// Algorithm selects the planner for the path agent: "bfs" or "astar".
	// Unknown values fall back to "astar".
	Algorithm string
	// Heuristic names the A* heuristic; unknown names fall back to manhattan.
	Heuristic string
	// DynamicReplanning replans every tick instead of following cached plans.
	DynamicReplanning bool
	// SafetyMargin is the extra free-cell buffer required by the survival
	// gate on top of the body length.
	SafetyMargin int
	// MaxDepth bounds the alpha-beta search.
	MaxDepth int
}

// DefaultConfig mirrors the interactive game defaults.
func DefaultConfig() Config {
	return Config{
		Algorithm:         "astar",
		Heuristic:         "manhattan",
		DynamicReplanning: true,
		SafetyMargin:      5,
		MaxDepth:          4,
	}
}

func (c Config) withDefaults() Config {
	if c.Algorithm == "" {
		c.Algorithm = "astar"
	}
	if c.Heuristic == "" {
		c.Heuristic = "manhattan"
	}
	if c.SafetyMargin <= 0 {
		c.SafetyMargin = 5
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = 4
	}
	return c
}

// New builds an agent by kind: "path" (default), "bfs", or "alphabeta".
// Unknown kinds fall back to the path agent, matching the policy that
// algorithm selection never fails.
func New(kind string, cfg Config) Agent {
	switch kind {
	case "bfs":
		return NewBFSAgent()
	case "alphabeta":
		return NewAlphaBetaAgent(cfg.withDefaults().MaxDepth)
	default:
		return NewPathAgent(cfg)
	}
}
