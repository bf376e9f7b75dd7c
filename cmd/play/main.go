// Command play runs a single verbose episode, printing the board every tick
// and a summary at the end. Useful for eyeballing agent behavior.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"snakepilot/agent"
	"snakepilot/rules"
	"snakepilot/selfplay"
	"snakepilot/store"
)

func main() {
	agentKind := flag.String("agent", "path", "Agent kind: path, bfs, alphabeta")
	algorithm := flag.String("algorithm", "astar", "Planner for the path agent: bfs or astar")
	heuristic := flag.String("heuristic", "manhattan", "A* heuristic: manhattan or euclidean")
	width := flag.Int("width", 20, "Grid width")
	height := flag.Int("height", 20, "Grid height")
	length := flag.Int("length", 1, "Initial snake length")
	maxMoves := flag.Int("max-moves", 1000, "Move cap")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	verbose := flag.Bool("verbose", true, "Print the board every tick")
	tracePath := flag.String("trace", "", "Optional parquet path for the per-tick trace")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	state := rules.NewGameWithLength(*width, *height, *length, rng)
	ag := agent.New(*agentKind, agent.Config{
		Algorithm:         *algorithm,
		Heuristic:         *heuristic,
		DynamicReplanning: true,
		SafetyMargin:      5,
		MaxDepth:          4,
	})

	cfg := selfplay.DefaultConfig()
	cfg.Width, cfg.Height = *width, *height

	var turns []store.TurnRow

	for !state.GameOver && state.Moves < *maxMoves {
		if *verbose {
			selfplay.PrintBoard(state)
		}
		if *tracePath != "" {
			turns = append(turns, selfplay.Snapshot(cfg.RunID, 0, state))
		}

		dir := ag.Decide(state)
		rules.SetDirection(state, dir)
		rules.Advance(state, rng)
	}

	if *verbose {
		selfplay.PrintBoard(state)
	}

	log.Printf("episode complete: score=%d moves=%d died=%v (seed %d)", state.Score, state.Moves, state.GameOver, *seed)

	if *tracePath != "" {
		turns = append(turns, selfplay.Snapshot(cfg.RunID, 0, state))
		if err := store.WriteTurnsParquet(*tracePath, turns); err != nil {
			log.Fatalf("write trace: %v", err)
		}
		log.Printf("trace written to %s", *tracePath)
	}
}
