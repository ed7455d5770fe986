package strategy

import "AuctionAgent/internal/model"

// ExpectedValue returns the mean points of a dice reward: num*(die+1)/2 + bonus.
func ExpectedValue(d model.Dice) float64 {
	return float64(d.Num)*float64(d.Die+1)/2 + float64(d.Bonus)
}
