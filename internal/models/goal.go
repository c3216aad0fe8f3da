package models

import "time"

// GoalPriority represents the priority of a savings goal
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// Goal represents a savings goal. Amounts are in cents. Deadline is
// optional; a nil deadline means the goal is open-ended.
type Goal struct {
	Base
	Name          string       `gorm:"not null" json:"name"`
	TargetAmount  int64        `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount int64        `gorm:"type:bigint;not null" json:"current_amount"`
	Deadline      *time.Time   `json:"deadline"`
	Priority      GoalPriority `gorm:"not null" json:"priority"`
}
