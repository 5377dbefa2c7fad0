package inventory

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInsufficientStock is returned by Decrement when the requested
// quantity exceeds what the ledger holds for the item.
var ErrInsufficientStock = errors.New("insufficient stock")

// Ledger is the authoritative record of on-hand stock. Quantities never
// go below zero: the only mutation is Decrement, and it refuses any
// request it cannot satisfy in full.
type Ledger struct {
	mu    sync.RWMutex
	items map[string]int
}

// NewLedger builds a ledger from the seed quantities. The seed map is
// copied; later changes to it do not affect the ledger. Negative seed
// quantities are treated as zero.
func NewLedger(seed map[string]int) *Ledger {
	items := make(map[string]int, len(seed))
	for item, qty := range seed {
		if qty < 0 {
			qty = 0
		}
		items[item] = qty
	}
	return &Ledger{items: items}
}

// Get returns the current stock for item. Unknown items report zero.
func (l *Ledger) Get(item string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items[item]
}

// Has reports whether at least qty units of item are on hand.
func (l *Ledger) Has(item string, qty int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items[item] >= qty
}

// Decrement removes qty units of item from the ledger. It either
// applies the full reduction or, when stock is short, returns
// ErrInsufficientStock and leaves the ledger unchanged.
func (l *Ledger) Decrement(item string, qty int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	have := l.items[item]
	if have < qty {
		return fmt.Errorf("%w: item %q has %d, need %d", ErrInsufficientStock, item, have, qty)
	}
	l.items[item] = have - qty
	return nil
}

// Snapshot returns a copy of every item and its quantity, taken under
// one lock acquisition so the view is consistent. Callers may mutate
// the returned map freely.
func (l *Ledger) Snapshot() map[string]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := make(map[string]int, len(l.items))
	for item, qty := range l.items {
		snapshot[item] = qty
	}
	return snapshot
}
