package model

// PhasePolicy configures how one game phase spreads its budget.
type PhasePolicy struct {
	Targets      int     `yaml:"targets"`
	Overbid      float64 `yaml:"overbid"`
	Proportional bool    `yaml:"proportional"` // split by expected value instead of evenly
}

// Tuning holds the allocator's tunable constants.
type Tuning struct {
	ReserveRatio   float64     `yaml:"reserve_ratio"`
	ExposureCap    float64     `yaml:"exposure_cap"`
	DefaultWinCost float64     `yaml:"default_win_cost"`
	Accumulation   PhasePolicy `yaml:"accumulation"`
	Conservative   PhasePolicy `yaml:"conservative"`
	Maximize       PhasePolicy `yaml:"maximize"`
}

// DefaultTuning returns the stock allocator constants.
func DefaultTuning() Tuning {
	return Tuning{
		ReserveRatio:   0.15,
		ExposureCap:    0.40,
		DefaultWinCost: 50,
		Accumulation:   PhasePolicy{Targets: 3, Overbid: 1.05},
		Conservative:   PhasePolicy{Targets: 2, Overbid: 1.03},
		Maximize:       PhasePolicy{Targets: 4, Overbid: 1.04, Proportional: true},
	}
}
