// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SetBudgetRequest represents the request body for setting a budget.
type SetBudgetRequest struct {
	Category string `json:"category" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
	Months   []int  `json:"months" binding:"required,min=1,dive,min=1,max=12"`
	Year     int    `json:"year" binding:"required,min=1"`
}

// BudgetResponse represents a single budget row in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetBudgetResponse represents the response for setting a budget.
type SetBudgetResponse struct {
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID.String(),
		Category:  budget.CategoryName,
		Amount:    budget.Amount.String(),
		Month:     budget.Month,
		Year:      budget.Year,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts a list of budgets to BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		responses[i] = ToBudgetResponse(budget)
	}
	return BudgetListResponse{
		Budgets: responses,
	}
}
