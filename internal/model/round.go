package model

// DefaultBankLimit is used when the game omits the per-round bank limit.
const DefaultBankLimit = 10000

// BankState holds the bank schedule. The first element of each slice applies to the current round.
type BankState struct {
	GoldIncomePerRound []float64 `json:"gold_income_per_round"`
	InterestPerRound   []float64 `json:"bank_interest_per_round"`
	LimitPerRound      []float64 `json:"bank_limit_per_round"`
}

// Interest returns this round's interest rate, 0 when unknown.
func (b BankState) Interest() float64 {
	if len(b.InterestPerRound) == 0 {
		return 0
	}
	return b.InterestPerRound[0]
}

// Limit returns this round's bank limit, DefaultBankLimit when unknown.
func (b BankState) Limit() float64 {
	if len(b.LimitPerRound) == 0 {
		return DefaultBankLimit
	}
	return b.LimitPerRound[0]
}

// Income returns this round's gold income, 0 when unknown.
func (b BankState) Income() float64 {
	if len(b.GoldIncomePerRound) == 0 {
		return 0
	}
	return b.GoldIncomePerRound[0]
}

// RoundInput is everything the game reveals to an agent at the start of a round.
type RoundInput struct {
	AgentID      string                `json:"agent_id"`
	Round        int                   `json:"round"`
	States       map[string]AgentState `json:"states"`
	Auctions     map[string]Auction    `json:"auctions"`
	PrevAuctions map[string]Auction    `json:"prev_auctions"`
	Pool         int                   `json:"pool"`
	PrevPoolBuys map[string]int        `json:"prev_pool_buys"`
	Bank         BankState             `json:"bank_state"`
}

// Self returns the calling agent's own state.
func (in *RoundInput) Self() AgentState {
	return in.States[in.AgentID]
}

// Candidate is one ranked auction in a round's portfolio.
type Candidate struct {
	ID            string
	ExpectedValue float64
	WinCost       float64 // capped estimate of the gold needed to win
	ROI           float64
	Score         float64
}

// Decision is the allocator's answer for a round.
type Decision struct {
	Bids     map[string]int
	Pool     int
	Strategy string
	Ranking  []Candidate
}

// TotalBid sums all submitted bids.
func (d *Decision) TotalBid() int {
	total := 0
	for _, g := range d.Bids {
		total += g
	}
	return total
}
