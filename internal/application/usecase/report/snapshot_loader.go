// Package report contains the budget/spending aggregation engine and the
// reporting use cases built on top of it.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// SnapshotLoader fetches everything one aggregation pass needs. All reporting
// use cases share it so a month is always loaded the same way.
type SnapshotLoader struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	categoryRepo    adapter.CategoryRepository
}

// NewSnapshotLoader creates a new SnapshotLoader instance.
func NewSnapshotLoader(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *SnapshotLoader {
	return &SnapshotLoader{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
	}
}

// LoadMonth loads the snapshot for a single month.
func (l *SnapshotLoader) LoadMonth(ctx context.Context, userID uuid.UUID, month valueobject.Month) (*Snapshot, error) {
	start, end := month.Bounds()
	budgets, err := l.budgetRepo.FindByUserAndMonth(ctx, userID, int(month.Month), month.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	return l.load(ctx, userID, start, end, budgets)
}

// LoadYear loads the snapshot for a whole year.
func (l *SnapshotLoader) LoadYear(ctx context.Context, userID uuid.UUID, year int) (*Snapshot, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0).Add(-time.Millisecond)
	budgets, err := l.budgetRepo.FindByUserAndYear(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	return l.load(ctx, userID, start, end, budgets)
}

func (l *SnapshotLoader) load(ctx context.Context, userID uuid.UUID, start, end time.Time, budgets []*entity.Budget) (*Snapshot, error) {
	transactions, err := l.transactionRepo.FindByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	templates, err := l.transactionRepo.FindTemplates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring templates: %w", err)
	}
	categories, err := l.categoryRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	return &Snapshot{
		Transactions: transactions,
		Templates:    templates,
		Budgets:      budgets,
		Categories:   categories,
	}, nil
}
