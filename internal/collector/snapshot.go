package collector

import (
	"sort"
	"time"

	"AuctionAgent/internal/calculator"
	"AuctionAgent/internal/model"
	"AuctionAgent/internal/strategy"
)

// Collect turns a round's input and the agent's decision into a dashboard snapshot.
// d may be nil when the agent has not decided yet.
func Collect(in *model.RoundInput, d *model.Decision, now time.Time) *model.GameSnapshot {
	snap := &model.GameSnapshot{
		Timestamp:        float64(now.UnixNano()) / 1e9,
		Round:            in.Round,
		AgentID:          in.AgentID,
		States:           in.States,
		Statistics:       calculator.Summarize(in.States),
		CurrentAuctions:  currentAuctions(in.Auctions),
		PreviousAuctions: previousAuctions(in.PrevAuctions),
		BankState: model.BankView{
			GoldIncome:   in.Bank.Income(),
			InterestRate: in.Bank.Interest(),
			BankLimit:    in.Bank.Limit(),
		},
		Pool: in.Pool,
	}
	if snap.States == nil {
		snap.States = map[string]model.AgentState{}
	}
	if d != nil {
		snap.Decision = &model.DecisionView{Bids: d.Bids, Pool: d.Pool, Strategy: d.Strategy}
	}
	return snap
}

func currentAuctions(auctions map[string]model.Auction) []model.AuctionView {
	views := make([]model.AuctionView, 0, len(auctions))
	for _, id := range sortedKeys(auctions) {
		a := auctions[id]
		views = append(views, model.AuctionView{
			ID:            id,
			Die:           a.Die,
			Num:           a.Num,
			Bonus:         a.Bonus,
			ExpectedValue: strategy.ExpectedValue(a.Dice),
			Description:   a.Dice.String(),
		})
	}
	return views
}

func previousAuctions(auctions map[string]model.Auction) []model.SettledView {
	views := make([]model.SettledView, 0, len(auctions))
	for _, id := range sortedKeys(auctions) {
		a := auctions[id]
		v := model.SettledView{
			ID:            id,
			Reward:        a.Reward,
			NumBids:       len(a.Bids),
			ExpectedValue: strategy.ExpectedValue(a.Dice),
		}
		if w, ok := a.Winner(); ok {
			v.WinningAgent = w.AgentID
			v.WinningBid = w.Gold
		}
		views = append(views, v)
	}
	return views
}

func sortedKeys(m map[string]model.Auction) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
