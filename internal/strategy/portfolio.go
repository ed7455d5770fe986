package strategy

import (
	"math"
	"sort"

	"AuctionAgent/internal/model"
)

const unaffordablePenalty = 0.1

// Rank scores every open auction and returns them best first.
// Ties keep ascending auction id order.
func (t *Tracker) Rank(in *model.RoundInput) []model.Candidate {
	gold := float64(in.Self().Gold)
	interest := in.Bank.Interest()

	ranking := make([]model.Candidate, 0, len(in.Auctions))
	for _, id := range sortedIDs(in.Auctions) {
		a := in.Auctions[id]
		expected := ExpectedValue(a.Dice)
		cost := math.Min(t.EstimateWinCost(id, a, in), gold*t.Tuning.ExposureCap)
		roi := ROI(expected, cost, interest, in.Round)

		score := roi * expected
		if cost > gold {
			score *= unaffordablePenalty
		}

		ranking = append(ranking, model.Candidate{
			ID:            id,
			ExpectedValue: expected,
			WinCost:       cost,
			ROI:           roi,
			Score:         score,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Score > ranking[j].Score })
	return ranking
}
