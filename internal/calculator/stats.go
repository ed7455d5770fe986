package calculator

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"AuctionAgent/internal/model"
)

// Mean returns the arithmetic mean of values, 0 when empty.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// MeanInts is Mean over integer samples.
func MeanInts(values []int) float64 {
	return Mean(toFloats(values))
}

// PopMeanStd returns the population mean and standard deviation, zeros when empty.
func PopMeanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	if len(values) == 1 {
		return values[0], 0
	}
	return stat.PopMeanStdDev(values, nil)
}

// Summarize computes gold and points statistics across all agents.
func Summarize(states map[string]model.AgentState) model.Statistics {
	s := model.Statistics{TotalAgents: len(states)}
	if len(states) == 0 {
		return s
	}
	gold, points := Columns(states)
	s.MeanGold, s.StdGold = PopMeanStd(gold)
	s.MeanPoints, s.StdPoints = PopMeanStd(points)
	for _, st := range states {
		if st.Gold > s.MaxGold {
			s.MaxGold = st.Gold
		}
		if st.Points > s.MaxPoints {
			s.MaxPoints = st.Points
		}
	}
	return s
}

// Columns splits agent states into gold and points samples, ordered by agent id.
func Columns(states map[string]model.AgentState) (gold, points []float64) {
	ids := make([]string, 0, len(states))
	for id := range states {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	gold = make([]float64, len(ids))
	points = make([]float64, len(ids))
	for i, id := range ids {
		gold[i] = float64(states[id].Gold)
		points[i] = float64(states[id].Points)
	}
	return gold, points
}

func toFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
