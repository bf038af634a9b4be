// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category represents a transaction category in the Expense Tracker system.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Icon      string
	Type      CategoryType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
// Note: Defaulting logic for the icon should be applied in the Application
// layer (UseCase) before calling this constructor.
func NewCategory(userID uuid.UUID, name, icon string, categoryType CategoryType) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Icon:      icon,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// defaultCategory is a seed entry created for every new user.
type defaultCategory struct {
	Name string
	Icon string
	Type CategoryType
}

var defaultCategories = []defaultCategory{
	{Name: "Food & Dining", Icon: "utensils", Type: CategoryTypeExpense},
	{Name: "Transportation", Icon: "car", Type: CategoryTypeExpense},
	{Name: "Education", Icon: "book", Type: CategoryTypeExpense},
	{Name: "Utilities", Icon: "bolt", Type: CategoryTypeExpense},
	{Name: "Entertainment", Icon: "film", Type: CategoryTypeExpense},
	{Name: "Shopping", Icon: "shopping-bag", Type: CategoryTypeExpense},
	{Name: "Health", Icon: "heart", Type: CategoryTypeExpense},
	{Name: "Other", Icon: "tag", Type: CategoryTypeExpense},
	{Name: "Salary", Icon: "wallet", Type: CategoryTypeIncome},
	{Name: "Bonus", Icon: "gift", Type: CategoryTypeIncome},
	{Name: "Other Income", Icon: "coins", Type: CategoryTypeIncome},
}

// DefaultCategories returns the seed categories for a new user.
func DefaultCategories(userID uuid.UUID) []*Category {
	categories := make([]*Category, 0, len(defaultCategories))
	for _, d := range defaultCategories {
		categories = append(categories, NewCategory(userID, d.Name, d.Icon, d.Type))
	}
	return categories
}
