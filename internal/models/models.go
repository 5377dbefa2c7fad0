package models

import (
	"time"
)

// Category classifies an order's urgency for fulfillment. Perishable
// orders outrank every other category; the remaining categories share
// one rank and compete on timestamp alone.
type Category string

const (
	CategoryPerishable    Category = "perishable"
	CategoryStandard      Category = "standard"
	CategoryNonPerishable Category = "non_perishable"
)

// categoryRanks maps each recognized category to its selection rank.
// Lower rank wins.
var categoryRanks = map[Category]int{
	CategoryPerishable:    0,
	CategoryStandard:      1,
	CategoryNonPerishable: 1,
}

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	_, ok := categoryRanks[c]
	return ok
}

// Rank returns the selection rank for c. Callers must validate c first;
// unrecognized categories rank last.
func (c Category) Rank() int {
	if r, ok := categoryRanks[c]; ok {
		return r
	}
	return len(categoryRanks)
}

// Order is an accepted fulfillment request. Orders are immutable once
// accepted and leave the pending set exactly once, when fulfilled.
type Order struct {
	ID        string    `json:"id"`
	Item      string    `json:"item"`
	Quantity  int       `json:"quantity"`
	Category  Category  `json:"category"`
	Timestamp time.Time `json:"timestamp"`
	Sequence  uint64    `json:"sequence"`
}
