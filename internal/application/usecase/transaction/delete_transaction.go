// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/recurring"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Retracted int64
}

// DeleteTransactionUseCase deletes a transaction. Deleting a recurring
// template also retracts every instance it materialized.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	retract         *recurring.RetractUseCase
	summaryCache    adapter.SummaryCache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	retract *recurring.RetractUseCase,
	summaryCache adapter.SummaryCache,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		retract:         retract,
		summaryCache:    summaryCache,
	}
}

// Execute performs the deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	output := &DeleteTransactionOutput{}
	if transaction.IsTemplate() {
		retracted, err := uc.retract.Execute(ctx, recurring.RetractInput{
			UserID:     input.UserID,
			TemplateID: transaction.ID,
		})
		if err != nil {
			return nil, err
		}
		output.Retracted = retracted.Deleted
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)
	return output, nil
}
