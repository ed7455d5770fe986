package strategy

import (
	"math"

	"AuctionAgent/internal/calculator"
	"AuctionAgent/internal/model"
)

const (
	comparableBand    = 0.2
	lossStreakTrigger = 2
	lossStreakBase    = 1.2
	lossStreakStep    = 0.1
)

// EstimateWinCost predicts the gold needed to win auction id this round.
//
// The running mean of this id's past winning bids is the baseline. When the previous
// round had auctions with an expected value within 20% of this one, their mean winning
// bid replaces the baseline. The result is scaled by the most aggressive opponent and,
// during a loss streak longer than two, by 1.2 + 0.1 per extra loss.
func (t *Tracker) EstimateWinCost(id string, a model.Auction, in *model.RoundInput) float64 {
	expected := ExpectedValue(a.Dice)

	estimate := t.Tuning.DefaultWinCost
	if hist := t.BidHistory[id]; len(hist) > 0 {
		estimate = calculator.MeanInts(hist)
	}

	var similar []int
	for _, prevID := range sortedIDs(in.PrevAuctions) {
		prev := in.PrevAuctions[prevID]
		winner, ok := prev.Winner()
		if !ok {
			continue
		}
		if math.Abs(ExpectedValue(prev.Dice)-expected) < expected*comparableBand {
			similar = append(similar, winner.Gold)
		}
	}
	if len(similar) > 0 {
		estimate = calculator.MeanInts(similar)
	}

	estimate *= t.maxOpponentAggression(in.States, in.AgentID)

	if t.ConsecutiveLosses > lossStreakTrigger {
		estimate *= lossStreakBase + float64(t.ConsecutiveLosses-lossStreakTrigger)*lossStreakStep
	}

	if estimate < 0 {
		return 0
	}
	return estimate
}
