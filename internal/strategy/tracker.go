package strategy

import (
	"sort"

	"AuctionAgent/internal/model"
)

const (
	aggressionKeep  = 0.8
	aggressionLearn = 0.2
	aggressionScale = 10.0
)

// Tracker holds the signals the allocator learns across rounds. It lives as long
// as the agent and is never reset mid-game.
type Tracker struct {
	// BidHistory maps an auction id to every winning bid observed for it.
	BidHistory map[string][]int
	// Aggression maps an opponent id to a smoothed overpay ratio. Unknown opponents are 1.0.
	Aggression        map[string]float64
	ConsecutiveLosses int
	Wins              int
	Tuning            model.Tuning
}

// NewTracker creates an empty tracker.
func NewTracker(tuning model.Tuning) *Tracker {
	return &Tracker{
		BidHistory: make(map[string][]int),
		Aggression: make(map[string]float64),
		Tuning:     tuning,
	}
}

// AggressionOf returns an opponent's aggression score.
func (t *Tracker) AggressionOf(agentID string) float64 {
	if v, ok := t.Aggression[agentID]; ok {
		return v
	}
	return 1.0
}

// Observe folds the settled auctions of the previous round into the tracker.
// A win anywhere in the round clears the loss streak; otherwise each lost
// auction the agent actually bid on extends it.
func (t *Tracker) Observe(agentID string, prev map[string]model.Auction) {
	won := false
	lost := 0
	for _, id := range sortedIDs(prev) {
		a := prev[id]
		winner, ok := a.Winner()
		if !ok {
			continue
		}
		t.BidHistory[id] = append(t.BidHistory[id], winner.Gold)

		if winner.AgentID == agentID {
			won = true
			t.Wins++
			continue
		}
		t.learnAggression(winner, ExpectedValue(a.Dice))
		if a.BidOf(agentID) > 0 {
			lost++
		}
	}

	if won {
		t.ConsecutiveLosses = 0
	} else {
		t.ConsecutiveLosses += lost
	}
}

func (t *Tracker) learnAggression(winner model.Bid, expected float64) {
	bidPerPoint := 1.0
	if expected > 0 {
		bidPerPoint = float64(winner.Gold) / expected
	}
	t.Aggression[winner.AgentID] = aggressionKeep*t.AggressionOf(winner.AgentID) + aggressionLearn*(bidPerPoint/aggressionScale)
}

// maxOpponentAggression returns the highest aggression among the round's other agents, at least 1.0.
func (t *Tracker) maxOpponentAggression(states map[string]model.AgentState, self string) float64 {
	highest := 1.0
	for id := range states {
		if id == self {
			continue
		}
		if a := t.AggressionOf(id); a > highest {
			highest = a
		}
	}
	return highest
}

func sortedIDs(auctions map[string]model.Auction) []string {
	ids := make([]string, 0, len(auctions))
	for id := range auctions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
