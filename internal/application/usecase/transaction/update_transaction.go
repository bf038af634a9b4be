// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/recurring"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction updates.
// Nil fields are left unchanged. ClearRecurrence turns a recurring template
// back into a one-off transaction.
type UpdateTransactionInput struct {
	UserID          uuid.UUID
	TransactionID   uuid.UUID
	Amount          *decimal.Decimal
	CategoryRef     *string
	Note            *string
	Date            *time.Time
	Type            *entity.TransactionType
	Recurrence      *entity.RecurrenceWindow
	ClearRecurrence bool
}

// UpdateTransactionOutput represents the output of transaction updates.
type UpdateTransactionOutput struct {
	Transaction  *entity.Transaction
	Regenerated  bool
	Materialized int
	Retracted    int64
}

// UpdateTransactionUseCase handles transaction updates. Editing a recurring
// template retracts its materialized instances and expands the new window;
// individual instances are never patched. Clearing the recurrence retracts
// the instances and keeps the row as a one-off transaction.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	regenerate      *recurring.RegenerateUseCase
	retract         *recurring.RetractUseCase
	summaryCache    adapter.SummaryCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	regenerate *recurring.RegenerateUseCase,
	retract *recurring.RetractUseCase,
	summaryCache adapter.SummaryCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		regenerate:      regenerate,
		retract:         retract,
		summaryCache:    summaryCache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
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

	if input.ClearRecurrence {
		if input.Recurrence != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidRecurrenceWindow,
				"cannot set and clear the recurrence in the same update",
				domainerror.ErrInvalidRecurrenceWindow,
			)
		}
		if !transaction.IsTemplate() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNotARecurringTemplate,
				"transaction is not a recurring template",
				domainerror.ErrNotARecurringTemplate,
			)
		}
		// The row stays behind as a one-off transaction; its instances are
		// retracted after the update below.
		transaction.Recurrence = nil
	}

	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.CategoryRef != nil {
		transaction.CategoryRef = *input.CategoryRef
	}
	if input.Note != nil {
		transaction.Note = *input.Note
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Date != nil && !transaction.IsTemplate() {
		transaction.Date = *input.Date
	}
	if input.Recurrence != nil {
		if !input.Recurrence.Valid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidRecurrenceWindow,
				"recurrence start month must not be after end month",
				domainerror.ErrInvalidRecurrenceWindow,
			)
		}
		if !transaction.IsTemplate() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNotARecurringTemplate,
				"transaction is not a recurring template",
				domainerror.ErrNotARecurringTemplate,
			)
		}
		window := *input.Recurrence
		transaction.Recurrence = &window
		transaction.Date = window.StartMonth.FirstDay()
	}

	if err := validateFields(transaction.Amount, transaction.CategoryRef, transaction.Note, transaction.Type); err != nil {
		return nil, err
	}

	transaction.UpdatedAt = time.Now().UTC()
	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	output := &UpdateTransactionOutput{Transaction: transaction}
	switch {
	case input.ClearRecurrence:
		retracted, err := uc.retract.Execute(ctx, recurring.RetractInput{
			UserID:     input.UserID,
			TemplateID: transaction.ID,
		})
		if err != nil {
			return nil, err
		}
		output.Retracted = retracted.Deleted
	case transaction.IsTemplate():
		regenerated, err := uc.regenerate.Execute(ctx, recurring.RegenerateInput{
			UserID:     input.UserID,
			TemplateID: transaction.ID,
		})
		if err != nil {
			return nil, err
		}
		output.Regenerated = true
		output.Materialized = regenerated.Created
	}

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)
	return output, nil
}
