// Package report contains the budget/spending aggregation engine and the
// reporting use cases built on top of it.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// GetBudgetOverviewInput represents the input for the budget overview.
type GetBudgetOverviewInput struct {
	UserID uuid.UUID
	Month  int // 1-12
	Year   int
}

// GetBudgetOverviewUseCase renders the budget-vs-spend view for a selected
// month.
type GetBudgetOverviewUseCase struct {
	loader *SnapshotLoader
}

// NewGetBudgetOverviewUseCase creates a new GetBudgetOverviewUseCase instance.
func NewGetBudgetOverviewUseCase(loader *SnapshotLoader) *GetBudgetOverviewUseCase {
	return &GetBudgetOverviewUseCase{loader: loader}
}

// Execute computes the overview for the requested month.
func (uc *GetBudgetOverviewUseCase) Execute(ctx context.Context, input GetBudgetOverviewInput) (*SummaryOutput, error) {
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	month := valueobject.NewMonth(input.Year, time.Month(input.Month))
	snapshot, err := uc.loader.LoadMonth(ctx, input.UserID, month)
	if err != nil {
		return nil, err
	}

	summary := ComputeMonth(*snapshot, month)
	return renderSummary(month.Key(), summary), nil
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidReportMonth,
		)
	}
	return validateYear(year)
}

func validateYear(year int) error {
	if year <= 0 {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportYear,
			"year must be a positive number",
			domainerror.ErrInvalidReportYear,
		)
	}
	return nil
}
