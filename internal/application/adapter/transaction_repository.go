// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Search    string // Case-insensitive note match
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// FindByDateRange retrieves all non-template transactions for a user whose
	// date falls within [start, end].
	FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// FindConcreteInRange retrieves non-template transactions of one type for a
	// user within [start, end]. Used to compute recurring coverage.
	FindConcreteInRange(ctx context.Context, userID uuid.UUID, transactionType entity.TransactionType, start, end time.Time) ([]*entity.Transaction, error)

	// FindTemplates retrieves all recurring templates for a user.
	FindTemplates(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByRecurringSource removes every transaction materialized from the
	// given template. Returns the count of deleted transactions.
	DeleteByRecurringSource(ctx context.Context, userID uuid.UUID, templateID uuid.UUID) (int64, error)

	// ExistsByIDAndUser checks if a transaction exists for a given ID and user.
	ExistsByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error)
}
