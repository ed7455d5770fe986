package strategy

const (
	opportunityLoss = 0.5
	pointValueBase  = 100.0
	pointValueDecay = 0.05
)

// PointValue is the gold worth of one point at the given round; points are worth more early.
func PointValue(round int) float64 {
	return pointValueBase / (1 + float64(round)*pointValueDecay)
}

// ROI returns the net return per gold of bidding bid on an auction worth expected points.
// Half of a spent bid plus the bank interest it would have earned counts as the cost.
func ROI(expected, bid, interest float64, round int) float64 {
	if bid == 0 {
		return 0
	}
	opportunity := bid * opportunityLoss * (1 + interest)
	expectedReturn := expected * PointValue(round)
	return (expectedReturn - opportunity) / bid
}
