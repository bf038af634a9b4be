package recurring

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

func testRegistry(t *testing.T, userID uuid.UUID) (*entity.CategoryRegistry, *entity.Category) {
	t.Helper()
	food := entity.NewCategory(userID, "Food & Dining", "utensils", entity.CategoryTypeExpense)
	rent := entity.NewCategory(userID, "Utilities", "bolt", entity.CategoryTypeExpense)
	return entity.NewCategoryRegistry([]*entity.Category{food, rent}), food
}

func newTemplate(userID uuid.UUID, categoryRef string, startYear int, startMonth time.Month, endYear int, endMonth time.Month) *entity.Transaction {
	return entity.NewRecurringTemplate(
		userID,
		decimal.NewFromInt(200000),
		categoryRef,
		"monthly bill",
		entity.TransactionTypeExpense,
		entity.RecurrenceWindow{
			StartMonth: valueobject.NewMonth(startYear, startMonth),
			EndMonth:   valueobject.NewMonth(endYear, endMonth),
		},
	)
}

func concreteOn(userID uuid.UUID, categoryRef string, date time.Time) *entity.Transaction {
	return entity.NewTransaction(userID, decimal.NewFromInt(50000), categoryRef, "", date, entity.TransactionTypeExpense)
}

func TestPlanExpansion(t *testing.T) {
	userID := uuid.New()
	registry, food := testRegistry(t, userID)

	t.Run("empty range creates one instance per month", func(t *testing.T) {
		template := newTemplate(userID, food.Name, 2025, time.January, 2025, time.March)

		plan := PlanExpansion(template, nil, registry)

		if len(plan) != 3 {
			t.Fatalf("expected 3 planned instances, got %d", len(plan))
		}
		wantDates := []time.Time{
			time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		}
		for i, instance := range plan {
			if !instance.Date.Equal(wantDates[i]) {
				t.Errorf("instance %d: expected date %v, got %v", i, wantDates[i], instance.Date)
			}
			if instance.Recurrence != nil {
				t.Errorf("instance %d: expected concrete transaction, got template", i)
			}
			if instance.RecurringSourceID == nil || *instance.RecurringSourceID != template.ID {
				t.Errorf("instance %d: expected recurring source %s", i, template.ID)
			}
			if !instance.Amount.Equal(template.Amount) {
				t.Errorf("instance %d: expected amount %s, got %s", i, template.Amount, instance.Amount)
			}
		}
	})

	t.Run("covered month is skipped", func(t *testing.T) {
		template := newTemplate(userID, food.Name, 2025, time.January, 2025, time.March)
		existing := []*entity.Transaction{
			concreteOn(userID, food.Name, time.Date(2025, time.February, 14, 12, 0, 0, 0, time.UTC)),
		}

		plan := PlanExpansion(template, existing, registry)

		if len(plan) != 2 {
			t.Fatalf("expected 2 planned instances, got %d", len(plan))
		}
		if got := plan[0].Date.Month(); got != time.January {
			t.Errorf("expected first instance in January, got %v", got)
		}
		if got := plan[1].Date.Month(); got != time.March {
			t.Errorf("expected second instance in March, got %v", got)
		}
	})

	t.Run("expansion is idempotent", func(t *testing.T) {
		template := newTemplate(userID, food.Name, 2025, time.January, 2025, time.June)

		first := PlanExpansion(template, nil, registry)
		if len(first) != 6 {
			t.Fatalf("expected 6 planned instances, got %d", len(first))
		}

		second := PlanExpansion(template, first, registry)
		if len(second) != 0 {
			t.Errorf("expected empty plan on re-run, got %d instances", len(second))
		}
	})

	t.Run("boundary months are included", func(t *testing.T) {
		template := newTemplate(userID, food.Name, 2024, time.November, 2025, time.February)
		existing := []*entity.Transaction{
			// Last instant of the first month and first instant of the last month.
			concreteOn(userID, food.Name, time.Date(2024, time.November, 30, 23, 59, 59, 0, time.UTC)),
			concreteOn(userID, food.Name, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)),
		}

		plan := PlanExpansion(template, existing, registry)

		if len(plan) != 2 {
			t.Fatalf("expected 2 planned instances, got %d", len(plan))
		}
		if got := plan[0].Date; got.Month() != time.December || got.Year() != 2024 {
			t.Errorf("expected first instance 2024-12, got %v", got)
		}
		if got := plan[1].Date; got.Month() != time.January || got.Year() != 2025 {
			t.Errorf("expected second instance 2025-01, got %v", got)
		}
	})

	t.Run("different category does not cover", func(t *testing.T) {
		template := newTemplate(userID, food.Name, 2025, time.January, 2025, time.January)
		existing := []*entity.Transaction{
			concreteOn(userID, "Utilities", time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)),
		}

		plan := PlanExpansion(template, existing, registry)

		if len(plan) != 1 {
			t.Fatalf("expected 1 planned instance, got %d", len(plan))
		}
	})

	t.Run("legacy category reference covers canonical template", func(t *testing.T) {
		template := newTemplate(userID, food.Name, 2025, time.January, 2025, time.January)
		existing := []*entity.Transaction{
			concreteOn(userID, "Ăn uống", time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)),
		}

		plan := PlanExpansion(template, existing, registry)

		if len(plan) != 0 {
			t.Errorf("expected legacy reference to cover the month, got %d instances", len(plan))
		}
	})

	t.Run("id reference covers name template", func(t *testing.T) {
		template := newTemplate(userID, food.Name, 2025, time.January, 2025, time.January)
		existing := []*entity.Transaction{
			concreteOn(userID, food.ID.String(), time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)),
		}

		plan := PlanExpansion(template, existing, registry)

		if len(plan) != 0 {
			t.Errorf("expected id reference to cover the month, got %d instances", len(plan))
		}
	})

	t.Run("other user's transactions do not cover", func(t *testing.T) {
		template := newTemplate(userID, food.Name, 2025, time.January, 2025, time.January)
		existing := []*entity.Transaction{
			concreteOn(uuid.New(), food.Name, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)),
		}

		plan := PlanExpansion(template, existing, registry)

		if len(plan) != 1 {
			t.Fatalf("expected 1 planned instance, got %d", len(plan))
		}
	})

	t.Run("templates never count as coverage", func(t *testing.T) {
		template := newTemplate(userID, food.Name, 2025, time.January, 2025, time.January)
		other := newTemplate(userID, food.Name, 2025, time.January, 2025, time.December)

		plan := PlanExpansion(template, []*entity.Transaction{other}, registry)

		if len(plan) != 1 {
			t.Fatalf("expected 1 planned instance, got %d", len(plan))
		}
	})

	t.Run("inverted window yields empty plan", func(t *testing.T) {
		template := newTemplate(userID, food.Name, 2025, time.June, 2025, time.January)

		plan := PlanExpansion(template, nil, registry)

		if len(plan) != 0 {
			t.Errorf("expected empty plan, got %d instances", len(plan))
		}
	})

	t.Run("concrete transaction yields empty plan", func(t *testing.T) {
		concrete := concreteOn(userID, food.Name, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))

		plan := PlanExpansion(concrete, nil, registry)

		if len(plan) != 0 {
			t.Errorf("expected empty plan, got %d instances", len(plan))
		}
	})

	t.Run("overlapping templates share coverage", func(t *testing.T) {
		first := newTemplate(userID, food.Name, 2025, time.January, 2025, time.March)
		second := newTemplate(userID, food.Name, 2025, time.February, 2025, time.April)

		firstInstances := PlanExpansion(first, nil, registry)
		if len(firstInstances) != 3 {
			t.Fatalf("expected 3 instances from first template, got %d", len(firstInstances))
		}

		plan := PlanExpansion(second, firstInstances, registry)

		// February and March are covered by the first template's instances.
		if len(plan) != 1 {
			t.Fatalf("expected 1 planned instance, got %d", len(plan))
		}
		if got := plan[0].Date.Month(); got != time.April {
			t.Errorf("expected instance in April, got %v", got)
		}
	})
}
