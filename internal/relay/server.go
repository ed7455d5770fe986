package relay

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"AuctionAgent/internal/calculator"
	"AuctionAgent/internal/chart"
	"AuctionAgent/internal/recorder"
)

const writeWait = 10 * time.Second

// clientInfo tracks one connected publisher.
type clientInfo struct {
	Addr      string
	AgentID   string
	LastRound int
}

type ackReply struct {
	Status    string `json:"status"`
	Round     any    `json:"round"`
	Timestamp any    `json:"timestamp"`
}

type errorReply struct {
	Error string `json:"error"`
}

// snapshotHead is the part of an incoming snapshot the relay inspects.
type snapshotHead struct {
	AgentID   string          `json:"agent_id"`
	Round     json.RawMessage `json:"round"`
	Timestamp json.RawMessage `json:"timestamp"`
}

// Server receives agent snapshots over websockets and serves them to pollers.
type Server struct {
	State    *StateManager
	Recorder recorder.SnapshotRecorder
	Charts   *chart.Cache

	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  map[string]*clientInfo
}

// NewServer creates a relay. A nil recorder disables history.
func NewServer(rec recorder.SnapshotRecorder) *Server {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Server{
		State:    NewStateManager(),
		Recorder: rec,
		Charts:   chart.NewCache(),
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		clients:  make(map[string]*clientInfo),
	}
}

// WSHandler serves the snapshot ingest endpoint.
func (s *Server) WSHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// ClientCount returns the number of connected publishers.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WARN] websocket upgrade from %s: %v", r.RemoteAddr, err)
		return
	}
	id := uuid.NewString()

	s.mu.Lock()
	s.clients[id] = &clientInfo{Addr: r.RemoteAddr, AgentID: "unknown"}
	total := len(s.clients)
	s.mu.Unlock()
	log.Printf("[INFO] publisher %s connected from %s, total clients: %d", id, r.RemoteAddr, total)

	defer func() {
		conn.Close()
		s.mu.Lock()
		delete(s.clients, id)
		remaining := len(s.clients)
		s.mu.Unlock()
		log.Printf("[INFO] publisher %s disconnected, remaining clients: %d", id, remaining)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[WARN] publisher %s read: %v", id, err)
			}
			return
		}

		reply := s.handleMessage(id, data)
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("[WARN] publisher %s write: %v", id, err)
			return
		}
	}
}

// handleMessage merges one snapshot and returns the reply for the publisher.
func (s *Server) handleMessage(clientID string, data []byte) any {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		log.Printf("[WARN] invalid JSON from %s: %v", clientID, err)
		return errorReply{Error: "Invalid JSON"}
	}

	var head snapshotHead
	_ = json.Unmarshal(data, &head)
	if head.AgentID == "" {
		head.AgentID = "unknown"
	}

	s.State.Update(fields)
	round := s.State.Round()

	s.mu.Lock()
	if c, ok := s.clients[clientID]; ok {
		c.AgentID = head.AgentID
		c.LastRound = round
	}
	s.mu.Unlock()
	log.Printf("[DEBUG] snapshot from %s: round %d", head.AgentID, round)

	s.record(head.AgentID, round)

	ack := ackReply{Status: "received", Round: "N/A", Timestamp: head.Timestamp}
	if head.Round != nil {
		ack.Round = head.Round
	}
	return ack
}

func (s *Server) record(agentID string, round int) {
	st := s.State.Statistics()
	if err := s.Recorder.RecordSnapshot(&recorder.SnapshotRecord{
		ReceivedAt: time.Now(),
		AgentID:    agentID,
		Round:      round,
		Players:    s.State.PlayerCount(),
		MeanGold:   st.MeanGold,
		StdGold:    st.StdGold,
		MeanPoints: st.MeanPoints,
		StdPoints:  st.StdPoints,
		Pool:       s.State.Pool(),
	}); err != nil {
		log.Printf("[ERROR] record snapshot: %v", err)
	}
}

// RefreshCharts re-renders the distribution charts from the current state.
func (s *Server) RefreshCharts() error {
	gold, points := calculator.Columns(s.State.PlayerStates())
	return s.Charts.Refresh(gold, points)
}

// LogStatus writes a one-line summary of the relay.
func (s *Server) LogStatus() {
	log.Printf("[INFO] relay status: round %d, %d players, mean gold %.2f, mean points %.2f, %d publishers",
		s.State.Round(), s.State.PlayerCount(), s.State.MeanGold(), s.State.MeanPoints(), s.ClientCount())
}
