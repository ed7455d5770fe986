package recorder

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

var roundHeader = []string{
	"Round", "Gold", "Points", "Strategy", "TargetAuction", "BidAmount",
	"ExpectedValue", "NumBids", "TotalBid", "PoolSpend",
}

// FileRecorder appends one CSV row per round to a log file created at startup.
// The file is opened and closed on every write.
type FileRecorder struct {
	Path string
}

// NewFileRecorder creates dir if needed and starts a fresh log named after startedAt.
func NewFileRecorder(dir string, startedAt time.Time) (*FileRecorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("agent_%s.csv", startedAt.Format("20060102_150405")))

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create round log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(roundHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush header: %w", err)
	}
	return &FileRecorder{Path: path}, nil
}

func (r *FileRecorder) RecordRound(rec *RoundRecord) error {
	f, err := os.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open round log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		strconv.Itoa(rec.Round),
		strconv.Itoa(rec.Gold),
		strconv.Itoa(rec.Points),
		rec.Strategy,
		rec.TargetAuction,
		strconv.Itoa(rec.BidAmount),
		strconv.FormatFloat(rec.ExpectedValue, 'f', 2, 64),
		strconv.Itoa(rec.NumBids),
		strconv.Itoa(rec.TotalBid),
		strconv.Itoa(rec.PoolSpend),
	}); err != nil {
		return fmt.Errorf("write round row: %w", err)
	}
	w.Flush()
	return w.Error()
}
