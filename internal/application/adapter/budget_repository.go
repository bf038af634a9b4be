// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUserAndMonth retrieves all budgets for a user and one month.
	// Duplicates are returned as stored; aggregation collapses them.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month, year int) ([]*entity.Budget, error)

	// FindByUserAndYear retrieves all budgets for a user across a whole year.
	FindByUserAndYear(ctx context.Context, userID uuid.UUID, year int) ([]*entity.Budget, error)

	// FindByCategoryAndMonth retrieves the budgets stored for one category and
	// month (usually zero or one row).
	FindByCategoryAndMonth(ctx context.Context, userID uuid.UUID, categoryName string, month, year int) ([]*entity.Budget, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
