// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// SetBudgetInput represents the input for setting a budget across months.
type SetBudgetInput struct {
	UserID       uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	Months       []int // 1-12
	Year         int
}

// SetBudgetOutput represents the output of setting a budget.
type SetBudgetOutput struct {
	Created int
	Updated int
	Budgets []*entity.Budget
}

// SetBudgetUseCase writes one budget row per selected month, updating the row
// in place when one already exists for the category and month.
type SetBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	summaryCache adapter.SummaryCache
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(budgetRepo adapter.BudgetRepository, summaryCache adapter.SummaryCache) *SetBudgetUseCase {
	return &SetBudgetUseCase{budgetRepo: budgetRepo, summaryCache: summaryCache}
}

// Execute performs the budget upsert.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	output := &SetBudgetOutput{}
	for _, month := range input.Months {
		existing, err := uc.budgetRepo.FindByCategoryAndMonth(ctx, input.UserID, input.CategoryName, month, input.Year)
		if err != nil {
			return nil, fmt.Errorf("failed to look up budget for month %d: %w", month, err)
		}

		if len(existing) > 0 {
			// Update the row aggregation would pick as the winner.
			target := existing[0]
			for _, b := range existing[1:] {
				if b.EffectiveTimestamp().After(target.EffectiveTimestamp()) {
					target = b
				}
			}
			target.Amount = input.Amount
			target.UpdatedAt = time.Now().UTC()
			if err := uc.budgetRepo.Update(ctx, target); err != nil {
				return nil, fmt.Errorf("failed to update budget for month %d: %w", month, err)
			}
			output.Updated++
			output.Budgets = append(output.Budgets, target)
			continue
		}

		budget := entity.NewBudget(input.UserID, input.CategoryName, input.Amount, month, input.Year)
		if err := uc.budgetRepo.Create(ctx, budget); err != nil {
			return nil, fmt.Errorf("failed to create budget for month %d: %w", month, err)
		}
		output.Created++
		output.Budgets = append(output.Budgets, budget)
	}

	slog.Info("Set budget",
		"userID", input.UserID,
		"category", input.CategoryName,
		"months", len(input.Months),
		"created", output.Created,
		"updated", output.Updated,
	)

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)
	return output, nil
}

// invalidateSummaries drops the user's cached dashboard summaries after a
// write so the next read recomputes them. Best effort, like the cache itself.
func invalidateSummaries(ctx context.Context, cache adapter.SummaryCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID.String()); err != nil {
		slog.Debug("Failed to invalidate summary cache", "userID", userID, "error", err)
	}
}

func (uc *SetBudgetUseCase) validateInput(input SetBudgetInput) error {
	if input.CategoryName == "" {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetCategory,
			"budget category is required",
			domainerror.ErrMissingBudgetCategory,
		)
	}
	if !input.Amount.IsPositive() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be positive",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	if len(input.Months) == 0 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyBudgetMonths,
			"at least one month is required",
			domainerror.ErrEmptyBudgetMonths,
		)
	}
	for _, month := range input.Months {
		if month < 1 || month > 12 {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetMonth,
				"budget month must be between 1 and 12",
				domainerror.ErrInvalidBudgetMonth,
			)
		}
	}
	return nil
}
