package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Valid(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		valid    bool
	}{
		{name: "perishable", category: CategoryPerishable, valid: true},
		{name: "standard", category: CategoryStandard, valid: true},
		{name: "non perishable", category: CategoryNonPerishable, valid: true},
		{name: "unknown", category: Category("frozen"), valid: false},
		{name: "empty", category: Category(""), valid: false},
		{name: "case sensitive", category: Category("Perishable"), valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.category.Valid())
		})
	}
}

func TestCategory_RankOrdersPerishableFirst(t *testing.T) {
	assert.Less(t, CategoryPerishable.Rank(), CategoryStandard.Rank())
	assert.Less(t, CategoryPerishable.Rank(), CategoryNonPerishable.Rank())

	// Everything that is not perishable competes at the same rank.
	assert.Equal(t, CategoryStandard.Rank(), CategoryNonPerishable.Rank())
}

func TestCategory_UnrecognizedRanksLast(t *testing.T) {
	assert.Greater(t, Category("frozen").Rank(), CategoryStandard.Rank())
}
