// Package report contains the budget/spending aggregation engine and the
// reporting use cases built on top of it.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// Snapshot is the immutable input to one aggregation pass. All data is
// fetched up front; aggregation itself never touches storage.
type Snapshot struct {
	// Transactions holds the period's non-template transactions.
	Transactions []*entity.Transaction
	// Templates holds every recurring template of the user.
	Templates []*entity.Transaction
	// Budgets holds the period's budget rows, duplicates included.
	Budgets []*entity.Budget
	// Categories is the user's category list; the registry is built from it.
	Categories []*entity.Category
}

// CategoryRow is one per-category line of a summary.
type CategoryRow struct {
	Category  string
	Budget    decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// Summary is the result of aggregating one period.
type Summary struct {
	TotalBudget    decimal.Decimal
	TotalSpent     decimal.Decimal
	TotalRemaining decimal.Decimal
	TotalIncome    decimal.Decimal
	Categories     []CategoryRow
}

// ComputeMonth aggregates budgets and spending for a single month.
func ComputeMonth(snapshot Snapshot, month valueobject.Month) *Summary {
	return compute(snapshot, []valueobject.Month{month})
}

// ComputeYear aggregates budgets and spending across all twelve months of a
// year. Budgets are summed per category across the months; recurring coverage
// is evaluated month by month.
func ComputeYear(snapshot Snapshot, year int) *Summary {
	months := make([]valueobject.Month, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, valueobject.NewMonth(year, time.Month(m)))
	}
	return compute(snapshot, months)
}

func compute(snapshot Snapshot, months []valueobject.Month) *Summary {
	registry := entity.NewCategoryRegistry(snapshot.Categories)

	budgetByCategory := aggregateBudgets(snapshot.Budgets, months, registry)
	spentByCategory, totalIncome := aggregateSpend(snapshot, months, registry)

	names := make(map[string]struct{}, len(budgetByCategory)+len(spentByCategory))
	for name := range budgetByCategory {
		names[name] = struct{}{}
	}
	for name := range spentByCategory {
		names[name] = struct{}{}
	}

	summary := &Summary{
		TotalBudget:    decimal.Zero,
		TotalSpent:     decimal.Zero,
		TotalRemaining: decimal.Zero,
		TotalIncome:    totalIncome,
	}
	for name := range names {
		budget := budgetByCategory[name]
		spent := spentByCategory[name]
		row := CategoryRow{
			Category:  name,
			Budget:    budget,
			Spent:     spent,
			Remaining: budget.Sub(spent),
		}
		summary.Categories = append(summary.Categories, row)
		summary.TotalBudget = summary.TotalBudget.Add(budget)
		summary.TotalSpent = summary.TotalSpent.Add(spent)
	}
	summary.TotalRemaining = summary.TotalBudget.Sub(summary.TotalSpent)

	sort.Slice(summary.Categories, func(i, j int) bool {
		a, b := summary.Categories[i], summary.Categories[j]
		if !a.Spent.Equal(b.Spent) {
			return a.Spent.GreaterThan(b.Spent)
		}
		return a.Category < b.Category
	})
	return summary
}

// aggregateBudgets resolves budget category names, drops non-expense
// categories and collapses duplicates per (category, month) keeping the most
// recently updated row. The resulting amounts are summed across the months.
func aggregateBudgets(budgets []*entity.Budget, months []valueobject.Month, registry *entity.CategoryRegistry) map[string]decimal.Decimal {
	type winner struct {
		budget *entity.Budget
		name   string
	}
	winners := make(map[string]winner)

	inPeriod := make(map[string]struct{}, len(months))
	for _, m := range months {
		inPeriod[m.Key()] = struct{}{}
	}

	for _, b := range budgets {
		monthKey := valueobject.NewMonth(b.Year, time.Month(b.Month)).Key()
		if _, ok := inPeriod[monthKey]; !ok {
			continue
		}
		name := registry.Resolve(b.CategoryName)
		if !registry.IsExpense(name) {
			continue
		}
		key := name + "|" + monthKey
		current, ok := winners[key]
		if !ok || b.EffectiveTimestamp().After(current.budget.EffectiveTimestamp()) {
			winners[key] = winner{budget: b, name: name}
		}
	}

	result := make(map[string]decimal.Decimal)
	for _, w := range winners {
		result[w.name] = result[w.name].Add(w.budget.Amount)
	}
	return result
}

// aggregateSpend sums concrete expense amounts per resolved category and adds
// virtual amounts for recurring templates with no materialized instance in a
// month their window covers. Income is totaled the same way for the report
// surface.
func aggregateSpend(snapshot Snapshot, months []valueobject.Month, registry *entity.CategoryRegistry) (map[string]decimal.Decimal, decimal.Decimal) {
	spent := make(map[string]decimal.Decimal)
	totalIncome := decimal.Zero

	// Coverage is per month: a template materialized in March still counts
	// virtually in April if nothing covers it there.
	coveredByMonth := make(map[string]map[string]struct{})

	for _, t := range snapshot.Transactions {
		if t.IsTemplate() {
			continue
		}
		monthKey := valueobject.MonthOf(t.Date).Key()
		if t.RecurringSourceID != nil {
			covered, ok := coveredByMonth[monthKey]
			if !ok {
				covered = make(map[string]struct{})
				coveredByMonth[monthKey] = covered
			}
			covered[t.RecurringSourceID.String()] = struct{}{}
		}

		switch t.Type {
		case entity.TransactionTypeExpense:
			name := registry.Resolve(t.CategoryRef)
			spent[name] = spent[name].Add(t.Amount)
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(t.Amount)
		}
	}

	for _, template := range snapshot.Templates {
		if template.Recurrence == nil || !template.Recurrence.Valid() {
			continue
		}
		for _, month := range months {
			if !month.InRange(template.Recurrence.StartMonth, template.Recurrence.EndMonth) {
				continue
			}
			if covered, ok := coveredByMonth[month.Key()]; ok {
				if _, ok := covered[template.ID.String()]; ok {
					continue
				}
			}
			switch template.Type {
			case entity.TransactionTypeExpense:
				name := registry.Resolve(template.CategoryRef)
				spent[name] = spent[name].Add(template.Amount)
			case entity.TransactionTypeIncome:
				totalIncome = totalIncome.Add(template.Amount)
			}
		}
	}

	return spent, totalIncome
}
