package models

// BudgetPeriod represents the period type for a budget
type BudgetPeriod string

const (
	BudgetPeriodDaily   BudgetPeriod = "daily"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a per-category spending target. One budget exists
// per expense category, created at seed time; updates replace the row
// wholesale. Amount and Current are in cents.
type Budget struct {
	Base
	CategoryID string       `gorm:"not null" json:"category_id"`
	Amount     int64        `gorm:"type:bigint;not null" json:"amount"`
	Period     BudgetPeriod `gorm:"not null" json:"period"`
	Current    int64        `gorm:"type:bigint;not null" json:"current"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
