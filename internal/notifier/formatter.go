package notifier

import (
	"fmt"
	"sort"
	"strings"

	"AuctionAgent/internal/model"
)

// FormatRoundReport renders a one-line summary of a round's decision for the console.
func FormatRoundReport(round int, self model.AgentState, d *model.Decision, wins, lossStreak int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("round %d | gold %d points %d | %s", round, self.Gold, self.Points, d.Strategy))

	if len(d.Bids) == 0 {
		b.WriteString(" | no bids")
	} else {
		ids := make([]string, 0, len(d.Bids))
		for id := range d.Bids {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = fmt.Sprintf("%s=%d", id, d.Bids[id])
		}
		b.WriteString(fmt.Sprintf(" | bids %s (total %d)", strings.Join(parts, " "), d.TotalBid()))
	}

	if d.Pool > 0 {
		b.WriteString(fmt.Sprintf(" | pool %d", d.Pool))
	}
	b.WriteString(fmt.Sprintf(" | wins %d streak %d", wins, lossStreak))
	return b.String()
}
