// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// TransactionModel represents the transactions table in the database.
// RecurrenceStart/RecurrenceEnd are both set for recurring templates and both
// null otherwise; RecurringSourceID points from a materialized instance to
// its template.
type TransactionModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryRef       string          `gorm:"type:varchar(100);not null;index"`
	Note              string          `gorm:"type:text"`
	Date              time.Time       `gorm:"type:date;not null;index"`
	Type              string          `gorm:"type:varchar(10);not null;index"`
	RecurrenceStart   *time.Time      `gorm:"type:date"`
	RecurrenceEnd     *time.Time      `gorm:"type:date"`
	RecurringSourceID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var recurrence *entity.RecurrenceWindow
	if m.RecurrenceStart != nil && m.RecurrenceEnd != nil {
		recurrence = &entity.RecurrenceWindow{
			StartMonth: valueobject.MonthOf(*m.RecurrenceStart),
			EndMonth:   valueobject.MonthOf(*m.RecurrenceEnd),
		}
	}

	return &entity.Transaction{
		ID:                m.ID,
		UserID:            m.UserID,
		Amount:            m.Amount,
		CategoryRef:       m.CategoryRef,
		Note:              m.Note,
		Date:              m.Date,
		Type:              entity.TransactionType(m.Type),
		Recurrence:        recurrence,
		RecurringSourceID: m.RecurringSourceID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var recurrenceStart, recurrenceEnd *time.Time
	if transaction.Recurrence != nil {
		start := transaction.Recurrence.StartMonth.FirstDay()
		end := transaction.Recurrence.EndMonth.FirstDay()
		recurrenceStart = &start
		recurrenceEnd = &end
	}

	return &TransactionModel{
		ID:                transaction.ID,
		UserID:            transaction.UserID,
		Amount:            transaction.Amount,
		CategoryRef:       transaction.CategoryRef,
		Note:              transaction.Note,
		Date:              transaction.Date,
		Type:              string(transaction.Type),
		RecurrenceStart:   recurrenceStart,
		RecurrenceEnd:     recurrenceEnd,
		RecurringSourceID: transaction.RecurringSourceID,
		CreatedAt:         transaction.CreatedAt,
		UpdatedAt:         transaction.UpdatedAt,
	}
}
