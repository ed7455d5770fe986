package model

import "fmt"

// Dice describes an auction's reward distribution: Num dice with Die faces plus a flat Bonus.
type Dice struct {
	Die   int `json:"die"`
	Num   int `json:"num"`
	Bonus int `json:"bonus"`
}

// String renders the dice in tabletop notation, e.g. "2d6+1".
func (d Dice) String() string {
	return fmt.Sprintf("%dd%d+%d", d.Num, d.Die, d.Bonus)
}

// Bid is a single gold offer on an auction.
type Bid struct {
	AgentID string `json:"a_id"`
	Gold    int    `json:"gold"`
}

// Auction is an open or settled auction. Settled auctions carry their bids
// sorted descending by gold and the rolled reward.
type Auction struct {
	Dice
	Reward int   `json:"reward,omitempty"`
	Bids   []Bid `json:"bids,omitempty"`
}

// Winner returns the winning bid of a settled auction.
func (a Auction) Winner() (Bid, bool) {
	if len(a.Bids) == 0 {
		return Bid{}, false
	}
	return a.Bids[0], true
}

// BidOf returns the gold the given agent offered on this auction, 0 if none.
func (a Auction) BidOf(agentID string) int {
	for _, b := range a.Bids {
		if b.AgentID == agentID {
			return b.Gold
		}
	}
	return 0
}

// AgentState is one agent's balance as reported by the game.
type AgentState struct {
	Gold   int `json:"gold"`
	Points int `json:"points"`
}
