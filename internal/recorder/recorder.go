package recorder

import "time"

// RoundRecord is one row of the agent's round log.
type RoundRecord struct {
	Round         int
	Gold          int
	Points        int
	Strategy      string
	TargetAuction string // "none" when nothing was bid
	BidAmount     int
	ExpectedValue float64
	NumBids       int
	TotalBid      int
	PoolSpend     int
}

// SnapshotRecord summarizes one dashboard snapshot received by the relay.
type SnapshotRecord struct {
	ReceivedAt time.Time
	AgentID    string
	Round      int
	Players    int
	MeanGold   float64
	StdGold    float64
	MeanPoints float64
	StdPoints  float64
	Pool       int
}

// RoundRecorder persists the agent's per-round decisions.
type RoundRecorder interface {
	RecordRound(rec *RoundRecord) error
}

// SnapshotRecorder persists the relay's snapshot history.
type SnapshotRecorder interface {
	RecordSnapshot(rec *SnapshotRecord) error
	History(limit int) ([]SnapshotRecord, error)
	Close() error
}
