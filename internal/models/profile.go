package models

// ProfileType represents the user archetype the profile was seeded from
type ProfileType string

const (
	ProfileTypeEmployee  ProfileType = "employee"
	ProfileTypeStudent   ProfileType = "student"
	ProfileTypeHousewife ProfileType = "housewife"
	ProfileTypeOther     ProfileType = "other"
)

// BudgetingStyle represents how aggressively the profile budgets
type BudgetingStyle string

const (
	BudgetingStyleConservative BudgetingStyle = "conservative"
	BudgetingStyleModerate     BudgetingStyle = "moderate"
	BudgetingStyleAggressive   BudgetingStyle = "aggressive"
)

// Profile represents the single active user profile. Exactly one row
// exists at any time; switching type resets the row wholesale from the
// template for the new type. Income and SavingsTarget are monthly
// amounts in cents.
//
// Categories is not a column: the visible category set is derived from
// the profile type's template at read time.
type Profile struct {
	Base
	Type           ProfileType    `gorm:"not null" json:"type"`
	Income         int64          `gorm:"type:bigint;not null" json:"income"`
	SavingsTarget  int64          `gorm:"type:bigint;not null" json:"savings_target"`
	BudgetingStyle BudgetingStyle `gorm:"not null" json:"budgeting_style"`

	Categories []Category `gorm:"-" json:"categories"`
}
