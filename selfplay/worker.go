// Package selfplay runs headless episodes of the game under a configured
// agent and aggregates their outcomes.
//
// Every episode owns an independent agent, game state, and RNG, so episodes
// parallelize across workers without locks.
package selfplay

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"snakepilot/agent"
	"snakepilot/game"
	"snakepilot/rules"
	"snakepilot/store"
)

// Config describes one evaluation run.
type Config struct {
	RunID string

	AgentKind string // "path", "bfs", "alphabeta"
	Agent     agent.Config

	Width         int
	Height        int
	InitialLength int
	SurvivalScore int

	MaxMoves int
	Episodes int
	Workers  int
	BaseSeed int64

	// RecordTurns keeps a per-tick TurnRow trace for each episode. Off by
	// default since traces dominate output size.
	RecordTurns bool
}

// DefaultConfig mirrors the original interactive defaults: 20x20 grid,
// A* with manhattan, 1000-move cap.
func DefaultConfig() Config {
	return Config{
		RunID:         fmt.Sprintf("run_%d", time.Now().UnixNano()),
		AgentKind:     "path",
		Agent:         agent.DefaultConfig(),
		Width:         20,
		Height:        20,
		InitialLength: 1,
		MaxMoves:      1000,
		Episodes:      100,
		Workers:       1,
	}
}

// EpisodeResult is the outcome of a single episode.
type EpisodeResult struct {
	Episode  int
	Seed     int64
	Score    int
	Moves    int
	Died     bool
	TimedOut bool
	Duration time.Duration
}

// RunEpisode plays one full episode and returns its outcome plus an
// optional per-tick trace. The seed drives food placement only; the
// decision core itself is deterministic.
func RunEpisode(ctx context.Context, cfg Config, episode int, seed int64) (EpisodeResult, []store.TurnRow) {
	rng := rand.New(rand.NewSource(seed))

	state := rules.NewGameWithLength(cfg.Width, cfg.Height, cfg.InitialLength, rng)
	state.SurvivalScore = cfg.SurvivalScore

	ag := agent.New(cfg.AgentKind, cfg.Agent)

	var turns []store.TurnRow
	start := time.Now()

	for !state.GameOver && state.Moves < cfg.MaxMoves {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return result(cfg, episode, seed, state, start), turns
			default:
			}
		}

		if cfg.RecordTurns {
			turns = append(turns, turnRow(cfg, episode, state))
		}

		dir := ag.Decide(state)
		rules.SetDirection(state, dir)
		rules.Advance(state, rng)
	}

	if cfg.RecordTurns {
		// Terminal snapshot, so completed traces end in a final position.
		turns = append(turns, turnRow(cfg, episode, state))
	}

	return result(cfg, episode, seed, state, start), turns
}

func result(cfg Config, episode int, seed int64, state *game.GameState, start time.Time) EpisodeResult {
	return EpisodeResult{
		Episode:  episode,
		Seed:     seed,
		Score:    state.Score,
		Moves:    state.Moves,
		Died:     state.GameOver,
		TimedOut: state.Moves >= cfg.MaxMoves,
		Duration: time.Since(start),
	}
}

func turnRow(cfg Config, episode int, state *game.GameState) store.TurnRow {
	return Snapshot(cfg.RunID, episode, state)
}

// Snapshot flattens one game state into a parquet-ready TurnRow.
func Snapshot(runID string, episode int, state *game.GameState) store.TurnRow {
	row := store.TurnRow{
		RunID:    runID,
		Episode:  int32(episode),
		Tick:     int32(state.Moves),
		Width:    int32(state.Width),
		Height:   int32(state.Height),
		FoodX:    int32(state.Food.X),
		FoodY:    int32(state.Food.Y),
		DirDX:    int32(state.Dir.DX),
		DirDY:    int32(state.Dir.DY),
		Score:    int32(state.Score),
		Survival: state.SurvivalMode,
		GameOver: state.GameOver,
	}
	row.BodyX = make([]int32, 0, len(state.Body))
	row.BodyY = make([]int32, 0, len(state.Body))
	for _, c := range state.Body {
		row.BodyX = append(row.BodyX, int32(c.X))
		row.BodyY = append(row.BodyY, int32(c.Y))
	}
	return row
}

// Stats aggregates a batch of episode results.
type Stats struct {
	Episodes    int
	AvgScore    float64
	MaxScore    int
	MinScore    int
	StdScore    float64
	AvgMoves    float64
	DeathRate   float64
	TimeoutRate float64
	AvgDuration time.Duration
}

// Evaluate runs cfg.Episodes episodes across cfg.Workers goroutines and
// returns the parquet-ready rows plus aggregate statistics. onEpisode, when
// non-nil, is invoked from worker goroutines as each episode completes.
func Evaluate(ctx context.Context, cfg Config, onEpisode func(EpisodeResult)) ([]store.EpisodeRow, Stats) {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.BaseSeed == 0 {
		cfg.BaseSeed = time.Now().UnixNano()
	}

	jobs := make(chan int)
	resCh := make(chan EpisodeResult, cfg.Episodes)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ep := range jobs {
				seed := cfg.BaseSeed + int64(ep)*1000003
				res, _ := RunEpisode(ctx, cfg, ep, seed)
				resCh <- res
				if onEpisode != nil {
					onEpisode(res)
				}
			}
		}()
	}

dispatch:
	for ep := 0; ep < cfg.Episodes; ep++ {
		select {
		case jobs <- ep:
		case <-ctxDone(ctx):
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()
	close(resCh)

	results := make([]EpisodeResult, 0, cfg.Episodes)
	for res := range resCh {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Episode < results[j].Episode })

	rows := make([]store.EpisodeRow, 0, len(results))
	for _, res := range results {
		rows = append(rows, store.EpisodeRow{
			RunID:          cfg.RunID,
			Episode:        int32(res.Episode),
			Seed:           res.Seed,
			Agent:          cfg.AgentKind,
			Algorithm:      cfg.Agent.Algorithm,
			Heuristic:      cfg.Agent.Heuristic,
			Width:          int32(cfg.Width),
			Height:         int32(cfg.Height),
			Score:          int32(res.Score),
			Moves:          int32(res.Moves),
			Died:           res.Died,
			TimedOut:       res.TimedOut,
			DurationMicros: res.Duration.Microseconds(),
		})
	}

	return rows, Summarize(results)
}

// Summarize computes aggregate statistics over episode results.
func Summarize(results []EpisodeResult) Stats {
	stats := Stats{Episodes: len(results)}
	if len(results) == 0 {
		return stats
	}

	stats.MinScore = results[0].Score
	var scoreSum, movesSum float64
	var durSum time.Duration
	deaths, timeouts := 0, 0

	for _, r := range results {
		scoreSum += float64(r.Score)
		movesSum += float64(r.Moves)
		durSum += r.Duration
		if r.Score > stats.MaxScore {
			stats.MaxScore = r.Score
		}
		if r.Score < stats.MinScore {
			stats.MinScore = r.Score
		}
		if r.Died {
			deaths++
		}
		if r.TimedOut {
			timeouts++
		}
	}

	n := float64(len(results))
	stats.AvgScore = scoreSum / n
	stats.AvgMoves = movesSum / n
	stats.DeathRate = float64(deaths) / n
	stats.TimeoutRate = float64(timeouts) / n
	stats.AvgDuration = durSum / time.Duration(len(results))

	if len(results) > 1 {
		var sq float64
		for _, r := range results {
			d := float64(r.Score) - stats.AvgScore
			sq += d * d
		}
		stats.StdScore = math.Sqrt(sq / (n - 1))
	}

	return stats
}

func ctxDone(ctx context.Context) <-chan struct{} {
	if ctx == nil {
		return nil
	}
	return ctx.Done()
}
