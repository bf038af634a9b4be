// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	return r.db.WithContext(ctx).Create(budgetModel).Error
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByUserAndMonth retrieves all budgets for a user and one month.
func (r *budgetRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month, year int) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("category_name ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return budgetsToEntities(budgetModels), nil
}

// FindByUserAndYear retrieves all budgets for a user across a whole year.
func (r *budgetRepository) FindByUserAndYear(ctx context.Context, userID uuid.UUID, year int) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ?", userID, year).
		Order("month ASC, category_name ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return budgetsToEntities(budgetModels), nil
}

// FindByCategoryAndMonth retrieves the budgets stored for one category and month.
func (r *budgetRepository) FindByCategoryAndMonth(ctx context.Context, userID uuid.UUID, categoryName string, month, year int) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category_name = ? AND month = ? AND year = ?", userID, categoryName, month, year).
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return budgetsToEntities(budgetModels), nil
}

// Update updates an existing budget in the database.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).
		Where("id = ?", budget.ID).
		Save(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// Delete removes a budget from the database.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BudgetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

func budgetsToEntities(budgetModels []model.BudgetModel) []*entity.Budget {
	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets
}
