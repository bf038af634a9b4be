// Package recurring contains the recurring-transaction materialization engine.
package recurring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// MaterializeInput represents the input for materializing a recurring template.
type MaterializeInput struct {
	UserID     uuid.UUID
	TemplateID uuid.UUID
}

// MaterializeOutput represents the output of materializing a recurring template.
type MaterializeOutput struct {
	Created int
	Skipped int
}

// MaterializeUseCase expands a recurring template into concrete monthly
// transactions. The operation is idempotent: covered months are skipped and a
// re-run after a partial failure creates only what is still missing.
type MaterializeUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewMaterializeUseCase creates a new MaterializeUseCase instance.
func NewMaterializeUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *MaterializeUseCase {
	return &MaterializeUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the materialization.
func (uc *MaterializeUseCase) Execute(ctx context.Context, input MaterializeInput) (*MaterializeOutput, error) {
	template, err := uc.transactionRepo.FindByID(ctx, input.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring template: %w", err)
	}
	if template.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}
	if !template.IsTemplate() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotARecurringTemplate,
			"transaction is not a recurring template",
			domainerror.ErrNotARecurringTemplate,
		)
	}

	plan, err := uc.planForTemplate(ctx, template)
	if err != nil {
		return nil, err
	}

	output := &MaterializeOutput{}
	for _, instance := range plan {
		if err := uc.transactionRepo.Create(ctx, instance); err != nil {
			// Partial failure is tolerated; a re-run recomputes the gap.
			slog.Warn("Failed to materialize recurring instance",
				"templateID", template.ID,
				"month", instance.Date.Format("2006-01"),
				"error", err,
			)
			output.Skipped++
			continue
		}
		output.Created++
	}

	slog.Info("Materialized recurring template",
		"templateID", template.ID,
		"created", output.Created,
		"skipped", output.Skipped,
	)
	return output, nil
}

// planForTemplate loads the coverage snapshot and computes the expansion plan.
func (uc *MaterializeUseCase) planForTemplate(ctx context.Context, template *entity.Transaction) ([]*entity.Transaction, error) {
	if template.Recurrence == nil || !template.Recurrence.Valid() {
		return nil, nil
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, template.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	registry := entity.NewCategoryRegistry(categories)

	windowStart, _ := template.Recurrence.StartMonth.Bounds()
	_, windowEnd := template.Recurrence.EndMonth.Bounds()
	existing, err := uc.transactionRepo.FindConcreteInRange(ctx, template.UserID, template.Type, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing transactions: %w", err)
	}

	return PlanExpansion(template, existing, registry), nil
}
