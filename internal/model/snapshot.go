package model

// AuctionView describes an open auction for the dashboard.
type AuctionView struct {
	ID            string  `json:"id"`
	Die           int     `json:"die"`
	Num           int     `json:"num"`
	Bonus         int     `json:"bonus"`
	ExpectedValue float64 `json:"expected_value"`
	Description   string  `json:"description"`
}

// SettledView describes a completed auction for the dashboard.
type SettledView struct {
	ID            string  `json:"id"`
	WinningAgent  string  `json:"winning_agent"`
	WinningBid    int     `json:"winning_bid"`
	Reward        int     `json:"reward"`
	NumBids       int     `json:"num_bids"`
	ExpectedValue float64 `json:"expected_value"`
}

// BankView is the bank state reduced to the current round.
type BankView struct {
	GoldIncome   float64 `json:"gold_income"`
	InterestRate float64 `json:"interest_rate"`
	BankLimit    float64 `json:"bank_limit"`
}

// Statistics aggregates gold and points across all agents.
type Statistics struct {
	TotalAgents int     `json:"total_agents"`
	MeanGold    float64 `json:"mean_gold"`
	StdGold     float64 `json:"std_gold"`
	MeanPoints  float64 `json:"mean_points"`
	StdPoints   float64 `json:"std_points"`
	MaxGold     int     `json:"max_gold"`
	MaxPoints   int     `json:"max_points"`
}

// DecisionView is what the agent chose this round.
type DecisionView struct {
	Bids     map[string]int `json:"bids"`
	Pool     int            `json:"pool"`
	Strategy string         `json:"strategy"`
}

// GameSnapshot is the document the agent pushes to the dashboard relay every round.
type GameSnapshot struct {
	Timestamp        float64               `json:"timestamp"`
	Round            int                   `json:"round"`
	AgentID          string                `json:"agent_id"`
	States           map[string]AgentState `json:"states"`
	Statistics       Statistics            `json:"statistics"`
	CurrentAuctions  []AuctionView         `json:"current_auctions"`
	PreviousAuctions []SettledView         `json:"previous_auctions"`
	BankState        BankView              `json:"bank_state"`
	Pool             int                   `json:"pool"`
	Decision         *DecisionView         `json:"decision,omitempty"`
}
