package entity

import (
	"testing"

	"github.com/google/uuid"
)

func registryWithDefaults(t *testing.T) (*CategoryRegistry, []*Category) {
	t.Helper()
	categories := DefaultCategories(uuid.New())
	return NewCategoryRegistry(categories), categories
}

func TestCategoryRegistryResolve(t *testing.T) {
	registry, categories := registryWithDefaults(t)

	t.Run("resolves id to name", func(t *testing.T) {
		var food *Category
		for _, c := range categories {
			if c.Name == "Food & Dining" {
				food = c
			}
		}
		if food == nil {
			t.Fatal("default categories missing Food & Dining")
		}
		if got := registry.Resolve(food.ID.String()); got != "Food & Dining" {
			t.Errorf("expected Food & Dining, got %s", got)
		}
	})

	t.Run("resolves current name to itself", func(t *testing.T) {
		if got := registry.Resolve("Transportation"); got != "Transportation" {
			t.Errorf("expected Transportation, got %s", got)
		}
	})

	t.Run("maps legacy names", func(t *testing.T) {
		legacy := map[string]string{
			"Ăn uống":    "Food & Dining",
			"Giao thông": "Transportation",
			"Giáo dục":   "Education",
			"Tiện ích":   "Utilities",
			"Giải trí":   "Entertainment",
		}
		for ref, want := range legacy {
			if got := registry.Resolve(ref); got != want {
				t.Errorf("Resolve(%q): expected %s, got %s", ref, want, got)
			}
		}
	})

	t.Run("unknown uuid becomes deleted category", func(t *testing.T) {
		if got := registry.Resolve(uuid.NewString()); got != DeletedCategoryName {
			t.Errorf("expected %s, got %s", DeletedCategoryName, got)
		}
	})

	t.Run("long opaque token becomes deleted category", func(t *testing.T) {
		if got := registry.Resolve("a1b2c3d4e5f6g7h8i9"); got != DeletedCategoryName {
			t.Errorf("expected %s, got %s", DeletedCategoryName, got)
		}
	})

	t.Run("short unknown name passes through", func(t *testing.T) {
		if got := registry.Resolve("Coffee"); got != "Coffee" {
			t.Errorf("expected Coffee, got %s", got)
		}
	})

	t.Run("long name with spaces passes through", func(t *testing.T) {
		ref := "Subscriptions and memberships"
		if got := registry.Resolve(ref); got != ref {
			t.Errorf("expected %s, got %s", ref, got)
		}
	})

	t.Run("blank reference resolves to unknown", func(t *testing.T) {
		if got := registry.Resolve(""); got != UnknownCategoryName {
			t.Errorf("expected %s, got %s", UnknownCategoryName, got)
		}
		if got := registry.Resolve("   "); got != UnknownCategoryName {
			t.Errorf("expected %s, got %s", UnknownCategoryName, got)
		}
	})
}

func TestCategoryRegistryIsExpense(t *testing.T) {
	registry, _ := registryWithDefaults(t)

	t.Run("expense category", func(t *testing.T) {
		if !registry.IsExpense("Food & Dining") {
			t.Error("expected Food & Dining to be an expense category")
		}
	})

	t.Run("income category", func(t *testing.T) {
		if registry.IsExpense("Salary") {
			t.Error("did not expect Salary to be an expense category")
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		if registry.IsExpense("Nonexistent") {
			t.Error("did not expect unknown name to be an expense category")
		}
	})
}
