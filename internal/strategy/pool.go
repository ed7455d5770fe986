package strategy

import "AuctionAgent/internal/model"

const (
	poolMinPoints       = 20
	poolGoldPerPoint    = 50.0
	poolEfficientPoints = 30
	poolKeepPoints      = 25
	poolMaxRedeem       = 5

	emergencyGold      = 300
	emergencyMinPoints = 15
	emergencyKeep      = 10
	emergencyMaxRedeem = 3
)

// PoolRedemption decides how many points to trade into the shared gold pool.
//
// Points are redeemed when the pool pays more than 50 gold per point and the agent
// can keep 25 points. Independently, an agent short on gold redeems up to 3 points
// keeping 10; when both apply the emergency amount wins.
func PoolRedemption(self model.AgentState, pool int, prevBuys map[string]int) int {
	spend := 0
	if pool > 0 && self.Points > poolMinPoints {
		redeemed := 0
		for _, n := range prevBuys {
			redeemed += n
		}
		goldPerPoint := float64(pool) / float64(self.Points+redeemed+1)
		if goldPerPoint > poolGoldPerPoint && self.Points > poolEfficientPoints {
			spend = min(poolMaxRedeem, self.Points-poolKeepPoints)
		}
	}

	if self.Gold < emergencyGold && self.Points > emergencyMinPoints {
		spend = min(emergencyMaxRedeem, self.Points-emergencyKeep)
	}
	return spend
}
