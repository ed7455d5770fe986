package relay

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 1000
)

type summary struct {
	Round       int     `json:"round"`
	MeanGold    float64 `json:"mean_gold"`
	MeanPoints  float64 `json:"mean_points"`
	PlayerCount int     `json:"player_count"`
	Publishers  int     `json:"publishers"`
}

type historyRow struct {
	ReceivedAt string  `json:"received_at"`
	AgentID    string  `json:"agent_id"`
	Round      int     `json:"round"`
	Players    int     `json:"players"`
	MeanGold   float64 `json:"mean_gold"`
	StdGold    float64 `json:"std_gold"`
	MeanPoints float64 `json:"mean_points"`
	StdPoints  float64 `json:"std_points"`
	Pool       int     `json:"pool"`
}

// APIHandler serves the polling endpoints for the dashboard front end.
func (s *Server) APIHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("GET /charts/{file}", s.handleChart)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return mux
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	doc, err := s.State.Document()
	if err != nil {
		http.Error(w, "encode state", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(doc)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, summary{
		Round:       s.State.Round(),
		MeanGold:    s.State.MeanGold(),
		MeanPoints:  s.State.MeanPoints(),
		PlayerCount: s.State.PlayerCount(),
		Publishers:  s.ClientCount(),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	recs, err := s.Recorder.History(limit)
	if err != nil {
		log.Printf("[ERROR] load history: %v", err)
		http.Error(w, "history unavailable", http.StatusInternalServerError)
		return
	}
	rows := make([]historyRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, historyRow{
			ReceivedAt: rec.ReceivedAt.UTC().Format(time.RFC3339),
			AgentID:    rec.AgentID,
			Round:      rec.Round,
			Players:    rec.Players,
			MeanGold:   rec.MeanGold,
			StdGold:    rec.StdGold,
			MeanPoints: rec.MeanPoints,
			StdPoints:  rec.StdPoints,
			Pool:       rec.Pool,
		})
	}
	writeJSON(w, rows)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutSuffix(r.PathValue("file"), ".png")
	if !ok || (name != "gold" && name != "points") {
		http.NotFound(w, r)
		return
	}

	img, ok := s.Charts.Get(name)
	if !ok {
		if err := s.RefreshCharts(); err != nil {
			log.Printf("[ERROR] render charts: %v", err)
			http.Error(w, "chart unavailable", http.StatusInternalServerError)
			return
		}
		img, _ = s.Charts.Get(name)
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(img)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[WARN] write response: %v", err)
	}
}
