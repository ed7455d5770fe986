package fund

// Budget splits a round's gold into a spendable pool and an untouched reserve,
// and tracks how much of the spendable pool has been committed to bids.
type Budget struct {
	Gold      int
	Spendable float64
	Reserve   float64
	allocated int
}

// NewBudget holds back reserveRatio of gold and makes the rest spendable.
func NewBudget(gold int, reserveRatio float64) *Budget {
	if gold < 0 {
		gold = 0
	}
	if reserveRatio < 0 {
		reserveRatio = 0
	}
	if reserveRatio > 1 {
		reserveRatio = 1
	}
	reserve := float64(gold) * reserveRatio
	return &Budget{
		Gold:      gold,
		Spendable: float64(gold) - reserve,
		Reserve:   reserve,
	}
}

// TryAllocate commits amount if it fits in what is left of the spendable pool.
func (b *Budget) TryAllocate(amount int) bool {
	if amount < 0 {
		return false
	}
	if float64(b.allocated+amount) > b.Spendable {
		return false
	}
	b.allocated += amount
	return true
}

// Allocated returns the gold committed so far.
func (b *Budget) Allocated() int {
	return b.allocated
}

// Remaining returns the uncommitted part of the spendable pool.
func (b *Budget) Remaining() float64 {
	return b.Spendable - float64(b.allocated)
}
