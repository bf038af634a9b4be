// Package recurring contains the recurring-transaction materialization engine.
package recurring

import (
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// PlanExpansion computes the concrete transactions a recurring template still
// needs. A month is covered when any non-template transaction of the same
// user, type and resolved category falls inside it; covered months produce
// nothing. The plan is pure: it never touches storage and emits instances in
// chronological order, one per uncovered month of the template's window.
//
// An invalid template (no window, or start after end) yields an empty plan.
func PlanExpansion(template *entity.Transaction, existing []*entity.Transaction, registry *entity.CategoryRegistry) []*entity.Transaction {
	if template.Recurrence == nil || !template.Recurrence.Valid() {
		return nil
	}

	start := template.Recurrence.StartMonth
	end := template.Recurrence.EndMonth

	covered := coveredMonths(template, existing, registry, start, end)

	var plan []*entity.Transaction
	for month := start; !month.After(end); month = month.Next() {
		if _, ok := covered[month.Key()]; ok {
			continue
		}
		plan = append(plan, template.MaterializedFor(month))
	}
	return plan
}

// coveredMonths collects the month keys already occupied by a matching
// non-template transaction inside [start, end].
func coveredMonths(
	template *entity.Transaction,
	existing []*entity.Transaction,
	registry *entity.CategoryRegistry,
	start, end valueobject.Month,
) map[string]struct{} {
	templateCategory := registry.Resolve(template.CategoryRef)

	covered := make(map[string]struct{})
	for _, t := range existing {
		if t.IsTemplate() {
			continue
		}
		if t.UserID != template.UserID || t.Type != template.Type {
			continue
		}
		if registry.Resolve(t.CategoryRef) != templateCategory {
			continue
		}
		month := valueobject.MonthOf(t.Date)
		if !month.InRange(start, end) {
			continue
		}
		covered[month.Key()] = struct{}{}
	}
	return covered
}
