package relay

import (
	"encoding/json"
	"sync"

	"AuctionAgent/internal/model"
)

// StateManager holds the latest merged snapshot document.
// Each update replaces top-level keys; the last writer wins.
type StateManager struct {
	mu  sync.RWMutex
	doc map[string]json.RawMessage
}

// NewStateManager creates a manager with an empty round-0 document.
func NewStateManager() *StateManager {
	return &StateManager{doc: map[string]json.RawMessage{
		"round":      json.RawMessage(`0`),
		"statistics": json.RawMessage(`{}`),
		"states":     json.RawMessage(`{}`),
	}}
}

// Update merges fields into the document.
func (s *StateManager) Update(fields map[string]json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range fields {
		s.doc[k] = v
	}
}

// Document returns the merged document as JSON.
func (s *StateManager) Document() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.doc)
}

func (s *StateManager) field(key string, dst any) bool {
	s.mu.RLock()
	raw, ok := s.doc[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// Round returns the latest round number, 0 if unknown.
func (s *StateManager) Round() int {
	var r float64
	if !s.field("round", &r) {
		return 0
	}
	return int(r)
}

// Pool returns the latest pool size, 0 if unknown.
func (s *StateManager) Pool() int {
	var p float64
	if !s.field("pool", &p) {
		return 0
	}
	return int(p)
}

// Statistics returns the latest aggregate statistics.
func (s *StateManager) Statistics() model.Statistics {
	var st model.Statistics
	s.field("statistics", &st)
	return st
}

// PlayerStates returns the latest per-agent states.
func (s *StateManager) PlayerStates() map[string]model.AgentState {
	states := make(map[string]model.AgentState)
	s.field("states", &states)
	return states
}

func (s *StateManager) PlayerCount() int   { return len(s.PlayerStates()) }
func (s *StateManager) MeanGold() float64   { return s.Statistics().MeanGold }
func (s *StateManager) MeanPoints() float64 { return s.Statistics().MeanPoints }
