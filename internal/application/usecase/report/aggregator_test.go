package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

func testCategories(userID uuid.UUID) []*entity.Category {
	return []*entity.Category{
		entity.NewCategory(userID, "Food & Dining", "utensils", entity.CategoryTypeExpense),
		entity.NewCategory(userID, "Transportation", "car", entity.CategoryTypeExpense),
		entity.NewCategory(userID, "Salary", "wallet", entity.CategoryTypeIncome),
	}
}

func expense(userID uuid.UUID, categoryRef string, amount int64, date time.Time) *entity.Transaction {
	return entity.NewTransaction(userID, decimal.NewFromInt(amount), categoryRef, "", date, entity.TransactionTypeExpense)
}

func income(userID uuid.UUID, categoryRef string, amount int64, date time.Time) *entity.Transaction {
	return entity.NewTransaction(userID, decimal.NewFromInt(amount), categoryRef, "", date, entity.TransactionTypeIncome)
}

func budgetRow(userID uuid.UUID, category string, amount int64, month, year int) *entity.Budget {
	return entity.NewBudget(userID, category, decimal.NewFromInt(amount), month, year)
}

func template(userID uuid.UUID, categoryRef string, amount int64, start, end valueobject.Month, transactionType entity.TransactionType) *entity.Transaction {
	return entity.NewRecurringTemplate(userID, decimal.NewFromInt(amount), categoryRef, "", transactionType,
		entity.RecurrenceWindow{StartMonth: start, EndMonth: end})
}

func rowFor(t *testing.T, summary *Summary, category string) CategoryRow {
	t.Helper()
	for _, row := range summary.Categories {
		if row.Category == category {
			return row
		}
	}
	t.Fatalf("no row for category %q", category)
	return CategoryRow{}
}

func TestComputeMonth(t *testing.T) {
	userID := uuid.New()
	feb := valueobject.NewMonth(2025, time.February)

	t.Run("budget minus spend", func(t *testing.T) {
		snapshot := Snapshot{
			Transactions: []*entity.Transaction{
				expense(userID, "Food & Dining", 500000, time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)),
				expense(userID, "Food & Dining", 300000, time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC)),
			},
			Budgets:    []*entity.Budget{budgetRow(userID, "Food & Dining", 1000000, 2, 2025)},
			Categories: testCategories(userID),
		}

		summary := ComputeMonth(snapshot, feb)

		if !summary.TotalBudget.Equal(decimal.NewFromInt(1000000)) {
			t.Errorf("expected total budget 1000000, got %s", summary.TotalBudget)
		}
		if !summary.TotalSpent.Equal(decimal.NewFromInt(800000)) {
			t.Errorf("expected total spent 800000, got %s", summary.TotalSpent)
		}
		if !summary.TotalRemaining.Equal(decimal.NewFromInt(200000)) {
			t.Errorf("expected total remaining 200000, got %s", summary.TotalRemaining)
		}

		row := rowFor(t, summary, "Food & Dining")
		if !row.Remaining.Equal(decimal.NewFromInt(200000)) {
			t.Errorf("expected category remaining 200000, got %s", row.Remaining)
		}
	})

	t.Run("legacy references group with canonical name", func(t *testing.T) {
		snapshot := Snapshot{
			Transactions: []*entity.Transaction{
				expense(userID, "Ăn uống", 100000, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)),
				expense(userID, "Food & Dining", 150000, time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC)),
			},
			Categories: testCategories(userID),
		}

		summary := ComputeMonth(snapshot, feb)

		row := rowFor(t, summary, "Food & Dining")
		if !row.Spent.Equal(decimal.NewFromInt(250000)) {
			t.Errorf("expected combined spend 250000, got %s", row.Spent)
		}
		for _, r := range summary.Categories {
			if r.Category == "Ăn uống" {
				t.Error("legacy name leaked into summary rows")
			}
		}
	})

	t.Run("duplicate budgets collapse to latest update", func(t *testing.T) {
		older := budgetRow(userID, "Food & Dining", 900000, 2, 2025)
		older.UpdatedAt = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		newer := budgetRow(userID, "Food & Dining", 1200000, 2, 2025)
		newer.UpdatedAt = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

		snapshot := Snapshot{
			Budgets:    []*entity.Budget{older, newer},
			Categories: testCategories(userID),
		}

		summary := ComputeMonth(snapshot, feb)

		if !summary.TotalBudget.Equal(decimal.NewFromInt(1200000)) {
			t.Errorf("expected winning budget 1200000, got %s", summary.TotalBudget)
		}
	})

	t.Run("non expense budget categories are dropped", func(t *testing.T) {
		snapshot := Snapshot{
			Budgets: []*entity.Budget{
				budgetRow(userID, "Salary", 5000000, 2, 2025),
				budgetRow(userID, "Food & Dining", 1000000, 2, 2025),
			},
			Categories: testCategories(userID),
		}

		summary := ComputeMonth(snapshot, feb)

		if !summary.TotalBudget.Equal(decimal.NewFromInt(1000000)) {
			t.Errorf("expected total budget 1000000, got %s", summary.TotalBudget)
		}
	})

	t.Run("uncovered template adds virtual spend", func(t *testing.T) {
		tpl := template(userID, "Food & Dining", 200000,
			valueobject.NewMonth(2025, time.January), valueobject.NewMonth(2025, time.December),
			entity.TransactionTypeExpense)

		snapshot := Snapshot{
			Templates:  []*entity.Transaction{tpl},
			Categories: testCategories(userID),
		}

		summary := ComputeMonth(snapshot, feb)

		row := rowFor(t, summary, "Food & Dining")
		if !row.Spent.Equal(decimal.NewFromInt(200000)) {
			t.Errorf("expected virtual spend 200000, got %s", row.Spent)
		}
	})

	t.Run("materialized template is not counted twice", func(t *testing.T) {
		tpl := template(userID, "Food & Dining", 200000,
			valueobject.NewMonth(2025, time.January), valueobject.NewMonth(2025, time.December),
			entity.TransactionTypeExpense)
		instance := tpl.MaterializedFor(feb)

		snapshot := Snapshot{
			Transactions: []*entity.Transaction{instance},
			Templates:    []*entity.Transaction{tpl},
			Categories:   testCategories(userID),
		}

		summary := ComputeMonth(snapshot, feb)

		row := rowFor(t, summary, "Food & Dining")
		if !row.Spent.Equal(decimal.NewFromInt(200000)) {
			t.Errorf("expected spend 200000, got %s", row.Spent)
		}
	})

	t.Run("template outside window adds nothing", func(t *testing.T) {
		tpl := template(userID, "Food & Dining", 200000,
			valueobject.NewMonth(2025, time.March), valueobject.NewMonth(2025, time.June),
			entity.TransactionTypeExpense)

		snapshot := Snapshot{
			Templates:  []*entity.Transaction{tpl},
			Categories: testCategories(userID),
		}

		summary := ComputeMonth(snapshot, feb)

		if !summary.TotalSpent.IsZero() {
			t.Errorf("expected no spend, got %s", summary.TotalSpent)
		}
	})

	t.Run("dangling id groups under deleted category", func(t *testing.T) {
		snapshot := Snapshot{
			Transactions: []*entity.Transaction{
				expense(userID, uuid.NewString(), 70000, time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC)),
			},
			Categories: testCategories(userID),
		}

		summary := ComputeMonth(snapshot, feb)

		row := rowFor(t, summary, entity.DeletedCategoryName)
		if !row.Spent.Equal(decimal.NewFromInt(70000)) {
			t.Errorf("expected deleted-category spend 70000, got %s", row.Spent)
		}
		if !row.Budget.IsZero() {
			t.Errorf("expected zero budget for deleted category, got %s", row.Budget)
		}
	})

	t.Run("income totals separately", func(t *testing.T) {
		snapshot := Snapshot{
			Transactions: []*entity.Transaction{
				income(userID, "Salary", 9000000, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)),
				expense(userID, "Food & Dining", 100000, time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC)),
			},
			Categories: testCategories(userID),
		}

		summary := ComputeMonth(snapshot, feb)

		if !summary.TotalIncome.Equal(decimal.NewFromInt(9000000)) {
			t.Errorf("expected total income 9000000, got %s", summary.TotalIncome)
		}
		if !summary.TotalSpent.Equal(decimal.NewFromInt(100000)) {
			t.Errorf("expected total spent 100000, got %s", summary.TotalSpent)
		}
	})
}

func TestComputeYear(t *testing.T) {
	userID := uuid.New()

	t.Run("budgets sum across months per category", func(t *testing.T) {
		snapshot := Snapshot{
			Budgets: []*entity.Budget{
				budgetRow(userID, "Food & Dining", 1000000, 1, 2025),
				budgetRow(userID, "Food & Dining", 1000000, 2, 2025),
				budgetRow(userID, "Transportation", 500000, 2, 2025),
			},
			Categories: testCategories(userID),
		}

		summary := ComputeYear(snapshot, 2025)

		if !summary.TotalBudget.Equal(decimal.NewFromInt(2500000)) {
			t.Errorf("expected total budget 2500000, got %s", summary.TotalBudget)
		}
		row := rowFor(t, summary, "Food & Dining")
		if !row.Budget.Equal(decimal.NewFromInt(2000000)) {
			t.Errorf("expected food budget 2000000, got %s", row.Budget)
		}
	})

	t.Run("template coverage is evaluated per month", func(t *testing.T) {
		tpl := template(userID, "Food & Dining", 200000,
			valueobject.NewMonth(2025, time.January), valueobject.NewMonth(2025, time.March),
			entity.TransactionTypeExpense)
		// Only February has a materialized instance.
		instance := tpl.MaterializedFor(valueobject.NewMonth(2025, time.February))

		snapshot := Snapshot{
			Transactions: []*entity.Transaction{instance},
			Templates:    []*entity.Transaction{tpl},
			Categories:   testCategories(userID),
		}

		summary := ComputeYear(snapshot, 2025)

		// January and March virtual, February concrete: 3 x 200000.
		if !summary.TotalSpent.Equal(decimal.NewFromInt(600000)) {
			t.Errorf("expected total spent 600000, got %s", summary.TotalSpent)
		}
	})

	t.Run("duplicate budgets collapse within each month only", func(t *testing.T) {
		janA := budgetRow(userID, "Food & Dining", 800000, 1, 2025)
		janA.UpdatedAt = time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
		janB := budgetRow(userID, "Food & Dining", 900000, 1, 2025)
		janB.UpdatedAt = time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)
		feb := budgetRow(userID, "Food & Dining", 700000, 2, 2025)

		snapshot := Snapshot{
			Budgets:    []*entity.Budget{janA, janB, feb},
			Categories: testCategories(userID),
		}

		summary := ComputeYear(snapshot, 2025)

		// January collapses to 900000; February stays 700000.
		if !summary.TotalBudget.Equal(decimal.NewFromInt(1600000)) {
			t.Errorf("expected total budget 1600000, got %s", summary.TotalBudget)
		}
	})
}
