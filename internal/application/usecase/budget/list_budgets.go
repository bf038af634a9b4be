// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
	Month  int // 0 lists the whole year
	Year   int
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.Budget
}

// ListBudgetsUseCase lists stored budget rows for a month or a year.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{budgetRepo: budgetRepo}
}

// Execute retrieves the budgets.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	if input.Year <= 0 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"invalid budget year",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	if input.Month == 0 {
		budgets, err := uc.budgetRepo.FindByUserAndYear(ctx, input.UserID, input.Year)
		if err != nil {
			return nil, fmt.Errorf("failed to list budgets: %w", err)
		}
		return &ListBudgetsOutput{Budgets: budgets}, nil
	}

	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"budget month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	budgets, err := uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return &ListBudgetsOutput{Budgets: budgets}, nil
}
