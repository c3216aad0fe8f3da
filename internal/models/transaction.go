package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single recorded income or expense event.
// Amount is in cents. The type must always match the referenced
// category's type; the service layer enforces this at creation.
type Transaction struct {
	Base
	CategoryID  string          `gorm:"not null" json:"category_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
