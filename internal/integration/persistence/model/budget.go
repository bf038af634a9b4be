// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database. No uniqueness
// constraint on (user, category, month, year): duplicates are tolerated and
// collapsed during aggregation.
type BudgetModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryName string          `gorm:"type:varchar(50);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Month        int             `gorm:"not null;index:idx_budgets_period"`
	Year         int             `gorm:"not null;index:idx_budgets_period"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:           m.ID,
		UserID:       m.UserID,
		CategoryName: m.CategoryName,
		Amount:       m.Amount,
		Month:        m.Month,
		Year:         m.Year,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:           budget.ID,
		UserID:       budget.UserID,
		CategoryName: budget.CategoryName,
		Amount:       budget.Amount,
		Month:        budget.Month,
		Year:         budget.Year,
		CreatedAt:    budget.CreatedAt,
		UpdatedAt:    budget.UpdatedAt,
	}
}
