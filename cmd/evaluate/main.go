// Command evaluate runs batches of headless episodes across parallel
// workers, shows a live dashboard, and writes per-episode results to
// Parquet for downstream analysis.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"snakepilot/agent"
	"snakepilot/selfplay"
	"snakepilot/store"
)

type episodeMsg selfplay.EpisodeResult

type doneMsg struct {
	stats selfplay.Stats
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	total     int
	completed int
	scoreSum  int
	maxScore  int
	deaths    int
	recent    []string
	startTime time.Time
	updates   chan tea.Msg
	done      bool
}

func initialModel(total int, updates chan tea.Msg) model {
	return model{total: total, startTime: time.Now(), updates: updates}
}

func waitForUpdate(updates chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-updates
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForUpdate(m.updates), tickCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tickMsg:
		if m.done {
			return m, nil
		}
		return m, tickCmd()
	case episodeMsg:
		m.completed++
		m.scoreSum += msg.Score
		if msg.Score > m.maxScore {
			m.maxScore = msg.Score
		}
		if msg.Died {
			m.deaths++
		}
		line := fmt.Sprintf("Episode %d: score %d, moves %d, died %v", msg.Episode, msg.Score, msg.Moves, msg.Died)
		m.recent = append([]string{line}, m.recent...)
		if len(m.recent) > 10 {
			m.recent = m.recent[:10]
		}
		return m, waitForUpdate(m.updates)
	case doneMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	duration := time.Since(m.startTime)
	avgScore := 0.0
	if m.completed > 0 {
		avgScore = float64(m.scoreSum) / float64(m.completed)
	}

	s := fmt.Sprintf("Episodes:   %d/%d\n", m.completed, m.total)
	s += fmt.Sprintf("Avg Score:  %.2f\n", avgScore)
	s += fmt.Sprintf("Max Score:  %d\n", m.maxScore)
	s += fmt.Sprintf("Deaths:     %d\n", m.deaths)
	s += fmt.Sprintf("Duration:   %s\n", duration.Round(time.Second))
	s += "\nRecent episodes:\n"
	for _, line := range m.recent {
		s += "  " + line + "\n"
	}
	s += "\nPress q to quit.\n"
	return s
}

// startEvaluation runs Evaluate in the background, forwarding per-episode
// updates while ctx lives. The returned channel closes once rows and stats
// are written, so callers must wait on it before reading them; update sends
// select against ctx so workers never stall on a quit dashboard that has
// stopped draining.
func startEvaluation(ctx context.Context, cfg selfplay.Config, updates chan<- tea.Msg, rows *[]store.EpisodeRow, stats *selfplay.Stats) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		r, s := selfplay.Evaluate(ctx, cfg, func(res selfplay.EpisodeResult) {
			select {
			case updates <- episodeMsg(res):
			case <-ctx.Done():
			}
		})
		*rows, *stats = r, s
		select {
		case updates <- doneMsg{stats: s}:
		case <-ctx.Done():
		}
	}()
	return done
}

func main() {
	episodes := flag.Int("episodes", 100, "Number of episodes to run")
	workers := flag.Int("workers", 4, "Number of parallel workers")
	agentKind := flag.String("agent", "path", "Agent kind: path, bfs, alphabeta")
	algorithm := flag.String("algorithm", "astar", "Planner for the path agent: bfs or astar")
	heuristic := flag.String("heuristic", "manhattan", "A* heuristic: manhattan or euclidean")
	width := flag.Int("width", 20, "Grid width")
	height := flag.Int("height", 20, "Grid height")
	maxMoves := flag.Int("max-moves", 1000, "Move cap per episode")
	depth := flag.Int("depth", 4, "Alpha-beta search depth")
	margin := flag.Int("margin", 5, "Survival safety margin in cells")
	seed := flag.Int64("seed", 0, "Base RNG seed (0 = time-based)")
	outDir := flag.String("out-dir", "results", "Output directory for parquet batches")
	noUI := flag.Bool("no-ui", false, "Disable the dashboard and log plain progress")
	flag.Parse()

	cfg := selfplay.DefaultConfig()
	cfg.AgentKind = *agentKind
	cfg.Agent = agent.Config{
		Algorithm:         *algorithm,
		Heuristic:         *heuristic,
		DynamicReplanning: true,
		SafetyMargin:      *margin,
		MaxDepth:          *depth,
	}
	cfg.Width = *width
	cfg.Height = *height
	cfg.MaxMoves = *maxMoves
	cfg.Episodes = *episodes
	cfg.Workers = *workers
	cfg.BaseSeed = *seed

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The decision tiers log their transitions; keep that out of the
	// dashboard's way.
	if !*noUI {
		log.SetOutput(os.Stderr)
	}

	var rows []store.EpisodeRow
	var stats selfplay.Stats

	if *noUI {
		rows, stats = selfplay.Evaluate(ctx, cfg, func(res selfplay.EpisodeResult) {
			if (res.Episode+1)%10 == 0 {
				log.Printf("completed episode %d (score=%d moves=%d)", res.Episode, res.Score, res.Moves)
			}
		})
	} else {
		updates := make(chan tea.Msg, 64)
		p := tea.NewProgram(initialModel(cfg.Episodes, updates))

		done := startEvaluation(ctx, cfg, updates, &rows, &stats)

		if _, err := p.Run(); err != nil {
			log.Fatalf("dashboard error: %v", err)
		}

		// On an early quit the run is still going: cancel it and wait for
		// the results to settle before writing them out.
		cancel()
		<-done
	}

	outPath, err := store.WriteBatchParquet(*outDir, rows)
	if err != nil {
		log.Fatalf("write results: %v", err)
	}

	log.Printf("run %s: %d episodes, agent=%s algorithm=%s heuristic=%s", cfg.RunID, stats.Episodes, cfg.AgentKind, cfg.Agent.Algorithm, cfg.Agent.Heuristic)
	log.Printf("score avg=%.2f±%.2f min=%d max=%d", stats.AvgScore, stats.StdScore, stats.MinScore, stats.MaxScore)
	log.Printf("moves avg=%.1f, deaths=%.1f%%, timeouts=%.1f%%, %.3fs/episode",
		stats.AvgMoves, stats.DeathRate*100, stats.TimeoutRate*100, stats.AvgDuration.Seconds())
	log.Printf("results written to %s", outPath)
}
