// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly spending limit for one expense category.
//
// Budgets reference categories by display name. Storage may hold several rows
// for the same (category, month, year); aggregation collapses them keeping the
// most recently updated one.
type Budget struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	Month        int // 1-12
	Year         int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, categoryName string, amount decimal.Decimal, month, year int) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:           uuid.New(),
		UserID:       userID,
		CategoryName: categoryName,
		Amount:       amount,
		Month:        month,
		Year:         year,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// EffectiveTimestamp returns the timestamp used to pick the winner among
// duplicate budgets for the same category and month.
func (b *Budget) EffectiveTimestamp() time.Time {
	if !b.UpdatedAt.IsZero() {
		return b.UpdatedAt
	}
	return b.CreatedAt
}
