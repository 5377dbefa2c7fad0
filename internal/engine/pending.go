package engine

import (
	"warehouse-fulfillment/internal/models"
)

// pendingSet holds accepted orders awaiting fulfillment, in submission
// order. It is not safe for concurrent use on its own; the engine's
// mutex guards every call.
type pendingSet struct {
	orders []models.Order
}

func (p *pendingSet) add(o models.Order) {
	p.orders = append(p.orders, o)
}

func (p *pendingSet) size() int {
	return len(p.orders)
}

// bestFulfillable returns the index of the minimum order by
// (category rank, timestamp, sequence) among those the stock check
// accepts, or -1 when none qualifies. Orders the check rejects never
// enter the comparison.
func (p *pendingSet) bestFulfillable(inStock func(item string, qty int) bool) int {
	best := -1
	for i, o := range p.orders {
		if !inStock(o.Item, o.Quantity) {
			continue
		}
		if best < 0 || orderLess(o, p.orders[best]) {
			best = i
		}
	}
	return best
}

// removeAt deletes the order at index i, keeping the submission order
// of the rest intact.
func (p *pendingSet) removeAt(i int) {
	p.orders = append(p.orders[:i], p.orders[i+1:]...)
}

// orderLess is the fulfillment priority: perishables before everything
// else, then the earliest timestamp, then the earliest submission.
// Sequence numbers are unique, so the order is total.
func orderLess(a, b models.Order) bool {
	if ra, rb := a.Category.Rank(), b.Category.Rank(); ra != rb {
		return ra < rb
	}
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.Before(b.Timestamp)
	}
	return a.Sequence < b.Sequence
}
