// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for deleting a budget.
type DeleteBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// DeleteBudgetUseCase deletes one budget row.
type DeleteBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	summaryCache adapter.SummaryCache
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository, summaryCache adapter.SummaryCache) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{budgetRepo: budgetRepo, summaryCache: summaryCache}
}

// Execute performs the deletion.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	if budget.UserID != input.UserID {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeNotAuthorizedBudget,
			"not authorized to modify budget",
			domainerror.ErrNotAuthorizedToModifyBudget,
		)
	}

	if err := uc.budgetRepo.Delete(ctx, input.BudgetID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)
	return nil
}
