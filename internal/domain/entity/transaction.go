// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// RecurrenceWindow is the inclusive month range over which a recurring
// template materializes one transaction per month.
type RecurrenceWindow struct {
	StartMonth valueobject.Month
	EndMonth   valueobject.Month
}

// Valid reports whether the window covers at least one month.
func (w RecurrenceWindow) Valid() bool {
	return !w.StartMonth.After(w.EndMonth)
}

// Transaction represents a financial transaction in the Expense Tracker system.
//
// Exactly one of two shapes:
//   - Recurrence != nil: a recurring template. Its Date is informational and it
//     never counts as spend; the engine materializes one concrete transaction
//     per month of the window.
//   - Recurrence == nil: a concrete transaction. If RecurringSourceID is set it
//     was materialized from that template for the calendar month of Date.
type Transaction struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Amount            decimal.Decimal // Always positive; Type carries the sign
	CategoryRef       string          // Category id string or (possibly legacy) name
	Note              string
	Date              time.Time
	Type              TransactionType
	Recurrence        *RecurrenceWindow
	RecurringSourceID *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewTransaction creates a new concrete Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	categoryRef string,
	note string,
	date time.Time,
	transactionType TransactionType,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		CategoryRef: categoryRef,
		Note:        note,
		Date:        date,
		Type:        transactionType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewRecurringTemplate creates a new recurring template Transaction.
func NewRecurringTemplate(
	userID uuid.UUID,
	amount decimal.Decimal,
	categoryRef string,
	note string,
	transactionType TransactionType,
	window RecurrenceWindow,
) *Transaction {
	t := NewTransaction(userID, amount, categoryRef, note, window.StartMonth.FirstDay(), transactionType)
	t.Recurrence = &window
	return t
}

// IsTemplate reports whether the transaction is a recurring template.
func (t *Transaction) IsTemplate() bool {
	return t.Recurrence != nil
}

// IsMaterialized reports whether the transaction was produced by expanding a
// recurring template.
func (t *Transaction) IsMaterialized() bool {
	return t.RecurringSourceID != nil
}

// MaterializedFor builds the concrete instance of a template for one month.
// The instance is dated on the first day of the month and points back to the
// template through RecurringSourceID.
func (t *Transaction) MaterializedFor(month valueobject.Month) *Transaction {
	instance := NewTransaction(t.UserID, t.Amount, t.CategoryRef, t.Note, month.FirstDay(), t.Type)
	sourceID := t.ID
	instance.RecurringSourceID = &sourceID
	return instance
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
