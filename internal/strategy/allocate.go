package strategy

import (
	"math"

	"AuctionAgent/internal/fund"
	"AuctionAgent/internal/model"
)

// Allocate spreads the budget over the top-ranked candidates according to policy.
// Each bid is min(share, win cost * overbid) rounded down; zero bids are dropped and a
// bid that no longer fits the budget is skipped without stopping the remaining targets.
func Allocate(ranking []model.Candidate, policy model.PhasePolicy, budget *fund.Budget) map[string]int {
	bids := make(map[string]int)

	n := policy.Targets
	if n > len(ranking) {
		n = len(ranking)
	}
	if n <= 0 {
		return bids
	}
	targets := ranking[:n]

	shares := evenShares(budget.Spendable, n)
	if policy.Proportional {
		shares = weightedShares(budget.Spendable, targets)
	}

	for i, c := range targets {
		amount := math.Floor(math.Min(shares[i], c.WinCost*policy.Overbid))
		if math.IsNaN(amount) || amount < 1 {
			continue
		}
		bid := int(amount)
		if !budget.TryAllocate(bid) {
			continue
		}
		bids[c.ID] = bid
	}
	return bids
}

func evenShares(total float64, n int) []float64 {
	shares := make([]float64, n)
	for i := range shares {
		shares[i] = total / float64(n)
	}
	return shares
}

// weightedShares splits total in proportion to each target's expected value.
func weightedShares(total float64, targets []model.Candidate) []float64 {
	sum := 0.0
	for _, c := range targets {
		sum += c.ExpectedValue
	}
	if sum <= 0 {
		return evenShares(total, len(targets))
	}
	shares := make([]float64, len(targets))
	for i, c := range targets {
		shares[i] = total * c.ExpectedValue / sum
	}
	return shares
}
