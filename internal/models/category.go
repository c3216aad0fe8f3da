package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category. The catalog is fixed:
// categories are written once at seed time and never mutated, so the
// slug ID (e.g. "salary", "food") doubles as a stable display key.
type Category struct {
	ID    string       `gorm:"primaryKey" json:"id"`
	Name  string       `gorm:"not null" json:"name"`
	Type  CategoryType `gorm:"not null" json:"type"`
	Color string       `json:"color"`
	Icon  string       `json:"icon"`
}
