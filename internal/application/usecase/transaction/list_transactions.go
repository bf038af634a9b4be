// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	// DefaultPageLimit is the page size used when none is requested.
	DefaultPageLimit = 20
	// MaxPageLimit caps the requested page size.
	MaxPageLimit = 100
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Search    string
	Page      int
	Limit     int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Result *entity.TransactionListResult
}

// ListTransactionsUseCase lists transactions with filtering and pagination.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute retrieves the transactions.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Type != nil && *input.Type != entity.TransactionTypeExpense && *input.Type != entity.TransactionTypeIncome {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	result, err := uc.transactionRepo.FindByFilter(ctx,
		adapter.TransactionFilter{
			UserID:    input.UserID,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			Type:      input.Type,
			Search:    input.Search,
		},
		adapter.TransactionPagination{Page: page, Limit: limit},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &ListTransactionsOutput{Result: result}, nil
}
