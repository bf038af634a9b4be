// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/recurring"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// MaxNoteLength is the maximum allowed length for transaction notes.
const MaxNoteLength = 500

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	CategoryRef string
	Note        string
	Date        time.Time
	Type        entity.TransactionType
	Recurrence  *entity.RecurrenceWindow
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction  *entity.Transaction
	Materialized int
}

// CreateTransactionUseCase handles transaction creation. Creating a recurring
// template immediately materializes its window.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	materialize     *recurring.MaterializeUseCase
	summaryCache    adapter.SummaryCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	materialize *recurring.MaterializeUseCase,
	summaryCache adapter.SummaryCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		materialize:     materialize,
		summaryCache:    summaryCache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateFields(input.Amount, input.CategoryRef, input.Note, input.Type); err != nil {
		return nil, err
	}
	if input.Recurrence != nil && !input.Recurrence.Valid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidRecurrenceWindow,
			"recurrence start month must not be after end month",
			domainerror.ErrInvalidRecurrenceWindow,
		)
	}

	var transaction *entity.Transaction
	if input.Recurrence != nil {
		transaction = entity.NewRecurringTemplate(
			input.UserID, input.Amount, input.CategoryRef, input.Note, input.Type, *input.Recurrence,
		)
	} else {
		if input.Date.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"transaction date is required",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		transaction = entity.NewTransaction(
			input.UserID, input.Amount, input.CategoryRef, input.Note, input.Date, input.Type,
		)
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	output := &CreateTransactionOutput{Transaction: transaction}
	if transaction.IsTemplate() {
		materialized, err := uc.materialize.Execute(ctx, recurring.MaterializeInput{
			UserID:     input.UserID,
			TemplateID: transaction.ID,
		})
		if err != nil {
			return nil, err
		}
		output.Materialized = materialized.Created
	}

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

// validateFields checks the fields shared by create and update.
func validateFields(amount decimal.Decimal, categoryRef, note string, transactionType entity.TransactionType) error {
	if transactionType != entity.TransactionTypeExpense && transactionType != entity.TransactionTypeIncome {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if categoryRef == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategoryRef,
			"category reference is required",
			domainerror.ErrMissingCategoryRef,
		)
	}
	if len(note) > MaxNoteLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNoteTooLong,
			fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
			domainerror.ErrNoteTooLong,
		)
	}
	return nil
}
