package fund

import "testing"

func TestNewBudget_ReserveSplit(t *testing.T) {
	b := NewBudget(1000, 0.15)
	if b.Spendable != 850 {
		t.Errorf("expected spendable 850, got %.2f", b.Spendable)
	}
	if b.Reserve != 150 {
		t.Errorf("expected reserve 150, got %.2f", b.Reserve)
	}
}

func TestTryAllocate_NeverOverflows(t *testing.T) {
	b := NewBudget(100, 0.15)
	if !b.TryAllocate(50) {
		t.Fatal("expected 50 to fit in 85")
	}
	if b.TryAllocate(40) {
		t.Error("expected 40 to be rejected with 35 remaining")
	}
	if !b.TryAllocate(35) {
		t.Error("expected exact fit of 35 to be accepted")
	}
	if b.Allocated() != 85 {
		t.Errorf("expected 85 allocated, got %d", b.Allocated())
	}
	if b.Remaining() != 0 {
		t.Errorf("expected nothing remaining, got %.2f", b.Remaining())
	}
	if b.TryAllocate(-1) {
		t.Error("negative amounts must be rejected")
	}
}

func TestNewBudget_Clamps(t *testing.T) {
	if b := NewBudget(-10, 0.15); b.Spendable != 0 {
		t.Errorf("negative gold should clamp to 0, got %.2f", b.Spendable)
	}
	if b := NewBudget(100, 2); b.Spendable != 0 || b.Reserve != 100 {
		t.Errorf("ratio above 1 should reserve everything, got %+v", b)
	}
}
