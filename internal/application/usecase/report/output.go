// Package report contains the budget/spending aggregation engine and the
// reporting use cases built on top of it.
package report

import "github.com/shopspring/decimal"

// CategoryRowOutput is one per-category line of a rendered summary.
type CategoryRowOutput struct {
	Category  string          `json:"category"`
	Budget    decimal.Decimal `json:"budget"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
}

// SummaryOutput is the rendered result shared by the dashboard, budget
// overview and spending report use cases.
type SummaryOutput struct {
	Period         string              `json:"period"` // "YYYY-MM" or "YYYY"
	TotalBudget    decimal.Decimal     `json:"total_budget"`
	TotalSpent     decimal.Decimal     `json:"total_spent"`
	TotalRemaining decimal.Decimal     `json:"total_remaining"`
	TotalIncome    decimal.Decimal     `json:"total_income"`
	Categories     []CategoryRowOutput `json:"categories"`
}

func renderSummary(period string, summary *Summary) *SummaryOutput {
	rows := make([]CategoryRowOutput, 0, len(summary.Categories))
	for _, row := range summary.Categories {
		rows = append(rows, CategoryRowOutput{
			Category:  row.Category,
			Budget:    row.Budget,
			Spent:     row.Spent,
			Remaining: row.Remaining,
		})
	}
	return &SummaryOutput{
		Period:         period,
		TotalBudget:    summary.TotalBudget,
		TotalSpent:     summary.TotalSpent,
		TotalRemaining: summary.TotalRemaining,
		TotalIncome:    summary.TotalIncome,
		Categories:     rows,
	}
}
