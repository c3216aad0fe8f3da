package models

// InsightType represents the kind of advice an insight carries
type InsightType string

const (
	InsightTypeSaving   InsightType = "saving"
	InsightTypeSpending InsightType = "spending"
	InsightTypeIncome   InsightType = "income"
)

// FinancialInsight represents a fixed advisory item shown to the user.
// The set is written once at seed time and never mutated.
type FinancialInsight struct {
	Base
	Title       string      `gorm:"not null" json:"title"`
	Description string      `json:"description"`
	ImpactScore int         `gorm:"not null" json:"impact_score"`
	Type        InsightType `gorm:"not null" json:"type"`
}
