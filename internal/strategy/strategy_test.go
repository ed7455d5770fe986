package strategy

import (
	"math"
	"testing"

	"AuctionAgent/internal/model"
)

const eps = 1e-9

func dice(num, die, bonus int) model.Auction {
	return model.Auction{Dice: model.Dice{Num: num, Die: die, Bonus: bonus}}
}

func settled(num, die int, bids ...model.Bid) model.Auction {
	a := dice(num, die, 0)
	a.Bids = bids
	return a
}

func TestExpectedValue(t *testing.T) {
	tests := []struct {
		d    model.Dice
		want float64
	}{
		{model.Dice{Num: 2, Die: 6}, 7},
		{model.Dice{Num: 1, Die: 20, Bonus: 3}, 13.5},
		{model.Dice{Num: 0, Die: 6, Bonus: 4}, 4},
		{model.Dice{}, 0},
	}
	for _, tt := range tests {
		if got := ExpectedValue(tt.d); got != tt.want {
			t.Errorf("%s: expected %.2f, got %.2f", tt.d, tt.want, got)
		}
	}
}

func TestExpectedValue_LinearInNumAndBonus(t *testing.T) {
	base := ExpectedValue(model.Dice{Num: 1, Die: 8})
	for n := 1; n <= 6; n++ {
		if got := ExpectedValue(model.Dice{Num: n, Die: 8}); math.Abs(got-float64(n)*base) > eps {
			t.Errorf("num=%d: expected %.2f, got %.2f", n, float64(n)*base, got)
		}
	}
	for b := 0; b <= 5; b++ {
		if got := ExpectedValue(model.Dice{Num: 1, Die: 8, Bonus: b}); math.Abs(got-(base+float64(b))) > eps {
			t.Errorf("bonus=%d: expected %.2f, got %.2f", b, base+float64(b), got)
		}
	}
}

func TestROI_ZeroBid(t *testing.T) {
	for _, round := range []int{0, 1, 50} {
		if got := ROI(7, 0, 0.1, round); got != 0 {
			t.Errorf("round %d: expected 0 for zero bid, got %f", round, got)
		}
	}
}

func TestROI_Formula(t *testing.T) {
	// point value at round 0 is 100, return 700, opportunity 50*0.5*1.1 = 27.5
	got := ROI(7, 50, 0.1, 0)
	want := (700 - 27.5) / 50
	if math.Abs(got-want) > eps {
		t.Errorf("expected %.4f, got %.4f", want, got)
	}
	if PointValue(20) >= PointValue(0) {
		t.Error("point value should fall as the game progresses")
	}
}

func TestTracker_AggressionNeverWinnerStaysOne(t *testing.T) {
	tr := NewTracker(model.DefaultTuning())
	for round := 0; round < 20; round++ {
		tr.Observe("me", map[string]model.Auction{
			"a": settled(2, 6, model.Bid{AgentID: "big", Gold: 300}, model.Bid{AgentID: "meek", Gold: 10}),
		})
	}
	if got := tr.AggressionOf("meek"); got != 1.0 {
		t.Errorf("expected 1.0 for an opponent who never wins, got %f", got)
	}
	if got := tr.AggressionOf("nobody"); got != 1.0 {
		t.Errorf("expected 1.0 for an unseen opponent, got %f", got)
	}
}

func TestTracker_AggressionEMA(t *testing.T) {
	tr := NewTracker(model.DefaultTuning())
	// 140 gold for 7 expected points = 20 per point, sample 2.0
	tr.Observe("me", map[string]model.Auction{
		"a": settled(2, 6, model.Bid{AgentID: "opp", Gold: 140}),
	})
	if got := tr.AggressionOf("opp"); math.Abs(got-1.2) > eps {
		t.Errorf("expected 1.2 after one win, got %f", got)
	}
	if hist := tr.BidHistory["a"]; len(hist) != 1 || hist[0] != 140 {
		t.Errorf("expected history [140], got %v", hist)
	}

	// zero expected value counts as 1 gold per point
	tr.Observe("me", map[string]model.Auction{
		"z": settled(0, 6, model.Bid{AgentID: "opp", Gold: 99}),
	})
	if got := tr.AggressionOf("opp"); math.Abs(got-(0.8*1.2+0.2*0.1)) > eps {
		t.Errorf("unexpected aggression %f", got)
	}
}

func TestTracker_ConsecutiveLosses(t *testing.T) {
	tr := NewTracker(model.DefaultTuning())
	lose := map[string]model.Auction{
		"a": settled(2, 6, model.Bid{AgentID: "opp", Gold: 90}, model.Bid{AgentID: "me", Gold: 40}),
	}
	win := map[string]model.Auction{
		"b": settled(2, 6, model.Bid{AgentID: "me", Gold: 90}, model.Bid{AgentID: "opp", Gold: 40}),
	}
	notBid := map[string]model.Auction{
		"c": settled(2, 6, model.Bid{AgentID: "opp", Gold: 90}),
	}
	zeroBid := map[string]model.Auction{
		"d": settled(2, 6, model.Bid{AgentID: "opp", Gold: 90}, model.Bid{AgentID: "me", Gold: 0}),
	}

	steps := []struct {
		name string
		prev map[string]model.Auction
		want int
	}{
		{"first loss", lose, 1},
		{"second loss", lose, 2},
		{"not bid", notBid, 2},
		{"zero bid", zeroBid, 2},
		{"third loss", lose, 3},
		{"win resets", win, 0},
		{"loss after win", lose, 1},
		{"no auctions", nil, 1},
	}
	for _, s := range steps {
		tr.Observe("me", s.prev)
		if tr.ConsecutiveLosses != s.want {
			t.Errorf("%s: expected streak %d, got %d", s.name, s.want, tr.ConsecutiveLosses)
		}
	}
	if tr.Wins != 1 {
		t.Errorf("expected 1 win, got %d", tr.Wins)
	}
}

func TestTracker_WinInMixedRoundResets(t *testing.T) {
	tr := NewTracker(model.DefaultTuning())
	tr.ConsecutiveLosses = 4
	tr.Observe("me", map[string]model.Auction{
		"a": settled(2, 6, model.Bid{AgentID: "opp", Gold: 90}, model.Bid{AgentID: "me", Gold: 40}),
		"b": settled(2, 6, model.Bid{AgentID: "me", Gold: 60}),
		"c": settled(2, 6, model.Bid{AgentID: "opp", Gold: 70}, model.Bid{AgentID: "me", Gold: 30}),
	})
	if tr.ConsecutiveLosses != 0 {
		t.Errorf("expected reset after a win, got %d", tr.ConsecutiveLosses)
	}
}

func TestEstimateWinCost(t *testing.T) {
	target := dice(2, 6, 0) // ev 7
	states := map[string]model.AgentState{"me": {Gold: 1000}, "opp": {Gold: 1000}}

	t.Run("default", func(t *testing.T) {
		tr := NewTracker(model.DefaultTuning())
		in := &model.RoundInput{AgentID: "me", States: states}
		if got := tr.EstimateWinCost("x", target, in); got != 50 {
			t.Errorf("expected default 50, got %f", got)
		}
	})

	t.Run("history mean", func(t *testing.T) {
		tr := NewTracker(model.DefaultTuning())
		tr.BidHistory["x"] = []int{40, 80, 90}
		in := &model.RoundInput{AgentID: "me", States: states}
		if got := tr.EstimateWinCost("x", target, in); got != 70 {
			t.Errorf("expected history mean 70, got %f", got)
		}
	})

	t.Run("comparable overrides history", func(t *testing.T) {
		tr := NewTracker(model.DefaultTuning())
		tr.BidHistory["x"] = []int{10}
		in := &model.RoundInput{
			AgentID: "me",
			States:  states,
			PrevAuctions: map[string]model.Auction{
				"p1": settled(2, 6, model.Bid{AgentID: "opp", Gold: 100}),
				"p2": settled(2, 6, model.Bid{AgentID: "opp", Gold: 60}),
				"p3": settled(10, 20, model.Bid{AgentID: "opp", Gold: 900}), // ev 105, not comparable
				"p4": dice(2, 6, 0),                                          // no bids
			},
		}
		if got := tr.EstimateWinCost("x", target, in); got != 80 {
			t.Errorf("expected comparable mean 80, got %f", got)
		}
	})

	t.Run("opponent aggression", func(t *testing.T) {
		tr := NewTracker(model.DefaultTuning())
		tr.Aggression["opp"] = 1.5
		tr.Aggression["me"] = 3.0 // own entry is ignored
		tr.Aggression["gone"] = 4.0
		in := &model.RoundInput{AgentID: "me", States: states}
		if got := tr.EstimateWinCost("x", target, in); math.Abs(got-75) > eps {
			t.Errorf("expected 75, got %f", got)
		}
	})

	t.Run("timid opponents floor at one", func(t *testing.T) {
		tr := NewTracker(model.DefaultTuning())
		tr.Aggression["opp"] = 0.3
		in := &model.RoundInput{AgentID: "me", States: states}
		if got := tr.EstimateWinCost("x", target, in); got != 50 {
			t.Errorf("expected 50, got %f", got)
		}
	})

	t.Run("loss streak", func(t *testing.T) {
		tests := []struct {
			streak int
			want   float64
		}{
			{2, 50},
			{3, 65},
			{5, 75},
		}
		for _, tt := range tests {
			tr := NewTracker(model.DefaultTuning())
			tr.ConsecutiveLosses = tt.streak
			in := &model.RoundInput{AgentID: "me", States: states}
			if got := tr.EstimateWinCost("x", target, in); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("streak %d: expected %.1f, got %f", tt.streak, tt.want, got)
			}
		}
	})
}

func TestRank_OrderAndExposureCap(t *testing.T) {
	tr := NewTracker(model.DefaultTuning())
	in := &model.RoundInput{
		AgentID: "me",
		States:  map[string]model.AgentState{"me": {Gold: 100, Points: 0}},
		Auctions: map[string]model.Auction{
			"small": dice(1, 4, 0),  // ev 2.5
			"big":   dice(4, 10, 2), // ev 24
			"mid":   dice(2, 6, 0),  // ev 7
		},
	}
	ranking := tr.Rank(in)
	if len(ranking) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(ranking))
	}
	order := []string{ranking[0].ID, ranking[1].ID, ranking[2].ID}
	if order[0] != "big" || order[1] != "mid" || order[2] != "small" {
		t.Errorf("unexpected order %v", order)
	}
	for _, c := range ranking {
		if c.WinCost != 40 {
			t.Errorf("%s: expected cost capped at 40%% of gold, got %f", c.ID, c.WinCost)
		}
	}
}

func TestRank_TiesKeepIDOrder(t *testing.T) {
	tr := NewTracker(model.DefaultTuning())
	in := &model.RoundInput{
		AgentID:  "me",
		States:   map[string]model.AgentState{"me": {Gold: 1000}},
		Auctions: map[string]model.Auction{"c": dice(2, 6, 0), "a": dice(2, 6, 0), "b": dice(2, 6, 0)},
	}
	ranking := tr.Rank(in)
	for i, want := range []string{"a", "b", "c"} {
		if ranking[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, ranking[i].ID)
		}
	}
}
