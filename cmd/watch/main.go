// Command watch serves live episodes over HTTP: a JSON snapshot endpoint
// plus a WebSocket stream of per-tick frames, so a browser frontend can
// render the game without the core knowing anything about rendering.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"snakepilot/agent"
	"snakepilot/game"
	"snakepilot/rules"
)

type framePoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Frame is one tick of the streamed game.
type Frame struct {
	Tick     int          `json:"tick"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Body     []framePoint `json:"body"`
	Food     framePoint   `json:"food"`
	Score    int          `json:"score"`
	Survival bool         `json:"survival"`
	GameOver bool         `json:"game_over"`
}

func frameOf(state *game.GameState) Frame {
	f := Frame{
		Tick:     state.Moves,
		Width:    state.Width,
		Height:   state.Height,
		Food:     framePoint{state.Food.X, state.Food.Y},
		Score:    state.Score,
		Survival: state.SurvivalMode,
		GameOver: state.GameOver,
	}
	f.Body = make([]framePoint, 0, len(state.Body))
	for _, c := range state.Body {
		f.Body = append(f.Body, framePoint{c.X, c.Y})
	}
	return f
}

// hub fans frames out to connected WebSocket clients and keeps the latest
// frame for the snapshot endpoint.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	latest  []byte
}

func newHub() *hub {
	return &hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *hub) broadcast(f Frame) {
	payload, err := json.Marshal(f)
	if err != nil {
		log.Printf("marshal frame: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = payload

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
	if h.latest != nil {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		_ = conn.WriteMessage(websocket.TextMessage, h.latest)
	}
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *hub) snapshot() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// runGames plays episodes back to back, broadcasting each tick.
func runGames(h *hub, agentKind string, cfg agent.Config, width, height int, interval time.Duration) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		state := rules.NewGame(width, height, rng)
		ag := agent.New(agentKind, cfg)

		for !state.GameOver {
			h.broadcast(frameOf(state))
			time.Sleep(interval)

			dir := ag.Decide(state)
			rules.SetDirection(state, dir)
			rules.Advance(state, rng)
		}

		h.broadcast(frameOf(state))
		log.Printf("episode finished: score=%d moves=%d", state.Score, state.Moves)
		time.Sleep(2 * time.Second)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	agentKind := flag.String("agent", "path", "Agent kind: path, bfs, alphabeta")
	algorithm := flag.String("algorithm", "astar", "Planner for the path agent: bfs or astar")
	heuristic := flag.String("heuristic", "manhattan", "A* heuristic: manhattan or euclidean")
	width := flag.Int("width", 20, "Grid width")
	height := flag.Int("height", 20, "Grid height")
	tick := flag.Duration("tick", 100*time.Millisecond, "Delay between ticks")
	flag.Parse()

	h := newHub()

	go runGames(h, *agentKind, agent.Config{
		Algorithm:         *algorithm,
		Heuristic:         *heuristic,
		DynamicReplanning: true,
		SafetyMargin:      5,
		MaxDepth:          4,
	}, *width, *height, *tick)

	mux := http.NewServeMux()

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("upgrade: %v", err)
			return
		}
		h.add(conn)

		// Drain the connection to notice closes; clients never send data
		// we care about.
		go func() {
			defer h.remove(conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
						log.Printf("read: %v", err)
					}
					return
				}
			}
		}()
	})

	mux.HandleFunc("/api/state", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", "application/json")
		payload := h.snapshot()
		if payload == nil {
			fmt.Fprint(w, "{}")
			return
		}
		w.Write(payload)
	})

	log.Printf("watch server listening on %s (agent=%s)", *addr, *agentKind)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
