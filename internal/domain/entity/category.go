// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryColor is used when a transaction references a category name
// that no longer resolves. Dangling names are tolerated, not rejected.
const DefaultCategoryColor = "#6366F1"

// Category represents a transaction category. The set is a fixed seed created
// on first run; categories are not user-editable.
type Category struct {
	ID    uuid.UUID    `json:"id"`
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	Color string       `json:"color"`
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType CategoryType, color string) *Category {
	return &Category{
		ID:    uuid.New(),
		Name:  name,
		Type:  categoryType,
		Color: color,
	}
}

// DefaultCategories returns the fixed seed set used to initialize an empty
// store. Order matters: the first entry is the categorizer's deterministic
// fallback.
func DefaultCategories() []Category {
	return []Category{
		{ID: uuid.New(), Name: "Food", Type: CategoryTypeExpense, Color: "#FF6B6B"},
		{ID: uuid.New(), Name: "Transport", Type: CategoryTypeExpense, Color: "#4ECDC4"},
		{ID: uuid.New(), Name: "Shopping", Type: CategoryTypeExpense, Color: "#95E1D3"},
		{ID: uuid.New(), Name: "Bills", Type: CategoryTypeExpense, Color: "#F38181"},
		{ID: uuid.New(), Name: "Entertainment", Type: CategoryTypeExpense, Color: "#AA96DA"},
		{ID: uuid.New(), Name: "Salary", Type: CategoryTypeIncome, Color: "#6BCB77"},
		{ID: uuid.New(), Name: "Freelance", Type: CategoryTypeIncome, Color: "#4D96FF"},
		{ID: uuid.New(), Name: "Investment Returns", Type: CategoryTypeIncome, Color: "#9B59B6"},
	}
}
