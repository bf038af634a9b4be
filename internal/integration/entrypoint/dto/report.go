// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-tracker/backend/internal/application/usecase/report"
)

// SummaryCategoryResponse represents one per-category row of a summary.
type SummaryCategoryResponse struct {
	Category  string `json:"category"`
	Budget    string `json:"budget"`
	Spent     string `json:"spent"`
	Remaining string `json:"remaining"`
}

// SummaryResponse represents a rendered budget/spending summary.
type SummaryResponse struct {
	Period         string                    `json:"period"`
	TotalBudget    string                    `json:"total_budget"`
	TotalSpent     string                    `json:"total_spent"`
	TotalRemaining string                    `json:"total_remaining"`
	TotalIncome    string                    `json:"total_income"`
	Categories     []SummaryCategoryResponse `json:"categories"`
}

// ToSummaryResponse converts a SummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *report.SummaryOutput) SummaryResponse {
	categories := make([]SummaryCategoryResponse, len(output.Categories))
	for i, row := range output.Categories {
		categories[i] = SummaryCategoryResponse{
			Category:  row.Category,
			Budget:    row.Budget.String(),
			Spent:     row.Spent.String(),
			Remaining: row.Remaining.String(),
		}
	}

	return SummaryResponse{
		Period:         output.Period,
		TotalBudget:    output.TotalBudget.String(),
		TotalSpent:     output.TotalSpent.String(),
		TotalRemaining: output.TotalRemaining.String(),
		TotalIncome:    output.TotalIncome.String(),
		Categories:     categories,
	}
}
