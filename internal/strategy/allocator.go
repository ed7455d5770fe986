package strategy

import (
	"log"

	"AuctionAgent/internal/fund"
	"AuctionAgent/internal/model"
	"AuctionAgent/internal/recorder"
)

// Allocator turns a round's observable state into bids. One instance lives for the whole
// game; calls must be serialized by the caller.
type Allocator struct {
	Tracker  *Tracker
	Tuning   model.Tuning
	Recorder recorder.RoundRecorder
	Debug    bool
}

// NewAllocator creates an allocator that logs every round to rec.
func NewAllocator(tuning model.Tuning, rec recorder.RoundRecorder) *Allocator {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Allocator{
		Tracker:  NewTracker(tuning),
		Tuning:   tuning,
		Recorder: rec,
	}
}

// Decide learns from the previous round, then picks this round's bids and pool redemption.
func (a *Allocator) Decide(in *model.RoundInput) *model.Decision {
	self := in.Self()
	a.Tracker.Observe(in.AgentID, in.PrevAuctions)

	d := &model.Decision{
		Bids:     make(map[string]int),
		Strategy: StrategyIdle,
	}

	if len(in.Auctions) > 0 {
		d.Ranking = a.Tracker.Rank(in)
		label, policy := selectPhase(self, a.Tuning)
		d.Strategy = label
		d.Bids = Allocate(d.Ranking, policy, fund.NewBudget(self.Gold, a.Tuning.ReserveRatio))
	}

	d.Pool = PoolRedemption(self, in.Pool, in.PrevPoolBuys)

	if a.Debug {
		for i, c := range d.Ranking {
			log.Printf("[DEBUG] round %d rank %d: %s ev=%.1f cost=%.1f roi=%.2f score=%.1f",
				in.Round, i+1, c.ID, c.ExpectedValue, c.WinCost, c.ROI, c.Score)
		}
	}

	if err := a.Recorder.RecordRound(roundRecord(in, self, d)); err != nil {
		log.Printf("[ERROR] record round %d: %v", in.Round, err)
	}
	return d
}

// roundRecord names the best-ranked auction that received a bid as the round's target.
func roundRecord(in *model.RoundInput, self model.AgentState, d *model.Decision) *recorder.RoundRecord {
	rec := &recorder.RoundRecord{
		Round:         in.Round,
		Gold:          self.Gold,
		Points:        self.Points,
		Strategy:      d.Strategy,
		TargetAuction: "none",
		NumBids:       len(d.Bids),
		TotalBid:      d.TotalBid(),
		PoolSpend:     d.Pool,
	}
	if len(d.Ranking) > 0 {
		rec.ExpectedValue = d.Ranking[0].ExpectedValue
	}
	for _, c := range d.Ranking {
		if bid, ok := d.Bids[c.ID]; ok {
			rec.TargetAuction = c.ID
			rec.BidAmount = bid
			break
		}
	}
	return rec
}
