// Package recurring contains the recurring-transaction materialization engine.
package recurring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// RetractInput represents the input for retracting a recurring template.
type RetractInput struct {
	UserID     uuid.UUID
	TemplateID uuid.UUID
}

// RetractOutput represents the output of retracting a recurring template.
type RetractOutput struct {
	Deleted int64
}

// RetractUseCase removes every transaction that was materialized from a
// recurring template. Manually created transactions in the same months are
// never touched.
type RetractUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewRetractUseCase creates a new RetractUseCase instance.
func NewRetractUseCase(transactionRepo adapter.TransactionRepository) *RetractUseCase {
	return &RetractUseCase{transactionRepo: transactionRepo}
}

// Execute performs the retraction.
func (uc *RetractUseCase) Execute(ctx context.Context, input RetractInput) (*RetractOutput, error) {
	deleted, err := uc.transactionRepo.DeleteByRecurringSource(ctx, input.UserID, input.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("failed to retract recurring instances: %w", err)
	}

	slog.Info("Retracted recurring template",
		"templateID", input.TemplateID,
		"deleted", deleted,
	)
	return &RetractOutput{Deleted: deleted}, nil
}
