package strategy

import "AuctionAgent/internal/model"

// Strategy labels written to the round log.
const (
	StrategyIdle         = "idle"
	StrategyAccumulation = "point_accumulation"
	StrategyConservative = "conservative"
	StrategyMaximize     = "maximize_points"
)

const (
	accumulationPoints = 10
	conservativeGold   = 1000
)

// selectPhase picks the allocation policy for the agent's current standing.
// It is re-evaluated from scratch every round.
func selectPhase(self model.AgentState, tuning model.Tuning) (string, model.PhasePolicy) {
	switch {
	case self.Points < accumulationPoints:
		return StrategyAccumulation, tuning.Accumulation
	case self.Gold < conservativeGold:
		return StrategyConservative, tuning.Conservative
	default:
		return StrategyMaximize, tuning.Maximize
	}
}
