// Package report contains the budget/spending aggregation engine and the
// reporting use cases built on top of it.
package report

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// ReportMode selects the period granularity of a spending report.
type ReportMode string

const (
	ReportModeMonthly ReportMode = "monthly"
	ReportModeYearly  ReportMode = "yearly"
)

// GetSpendingReportInput represents the input for the spending report.
type GetSpendingReportInput struct {
	UserID uuid.UUID
	Mode   ReportMode
	Month  int // 1-12, monthly mode only
	Year   int
}

// GetSpendingReportUseCase renders the spending report for a selected month
// or a whole year.
type GetSpendingReportUseCase struct {
	loader *SnapshotLoader
}

// NewGetSpendingReportUseCase creates a new GetSpendingReportUseCase instance.
func NewGetSpendingReportUseCase(loader *SnapshotLoader) *GetSpendingReportUseCase {
	return &GetSpendingReportUseCase{loader: loader}
}

// Execute computes the report for the requested period.
func (uc *GetSpendingReportUseCase) Execute(ctx context.Context, input GetSpendingReportInput) (*SummaryOutput, error) {
	switch input.Mode {
	case ReportModeMonthly:
		if err := validatePeriod(input.Month, input.Year); err != nil {
			return nil, err
		}
		month := valueobject.NewMonth(input.Year, time.Month(input.Month))
		snapshot, err := uc.loader.LoadMonth(ctx, input.UserID, month)
		if err != nil {
			return nil, err
		}
		return renderSummary(month.Key(), ComputeMonth(*snapshot, month)), nil

	case ReportModeYearly:
		if err := validateYear(input.Year); err != nil {
			return nil, err
		}
		snapshot, err := uc.loader.LoadYear(ctx, input.UserID, input.Year)
		if err != nil {
			return nil, err
		}
		return renderSummary(strconv.Itoa(input.Year), ComputeYear(*snapshot, input.Year)), nil

	default:
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportMode,
			"report mode must be 'monthly' or 'yearly'",
			domainerror.ErrInvalidReportMode,
		)
	}
}
