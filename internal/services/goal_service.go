package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/Frenzy29-SL/budget-vision-insights/internal/errors"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
)

// goalService handles savings-goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// GetAllGoals returns goals in creation order. Goals are few and the
// original creation order matters for display, so this is oldest-first
// unlike the transaction log.
func (s *goalService) GetAllGoals() ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Order("created_at ASC, id ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// CreateGoal validates and records a new savings goal.
func (s *goalService) CreateGoal(
	name string,
	targetAmount, currentAmount int64,
	deadline *time.Time,
	priority models.GoalPriority,
) (*models.Goal, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}
	if currentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount must not be negative")
	}
	if deadline != nil && deadline.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "deadline must be a valid date")
	}

	goal := &models.Goal{
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      deadline,
		Priority:      priority,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// UpdateGoal replaces the stored goal with the same ID wholesale.
func (s *goalService) UpdateGoal(goal models.Goal) (*models.Goal, error) {
	if strings.TrimSpace(goal.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if goal.TargetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}
	if goal.CurrentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount must not be negative")
	}

	var existing models.Goal
	if err := s.db.Where("id = ?", goal.ID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := map[string]interface{}{
		"name":           goal.Name,
		"target_amount":  goal.TargetAmount,
		"current_amount": goal.CurrentAmount,
		"deadline":       goal.Deadline,
		"priority":       goal.Priority,
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	existing.Name = goal.Name
	existing.TargetAmount = goal.TargetAmount
	existing.CurrentAmount = goal.CurrentAmount
	existing.Deadline = goal.Deadline
	existing.Priority = goal.Priority
	return &existing, nil
}

// ContributeToGoal adds a positive amount to the goal's progress.
// Contributions never decrease CurrentAmount, and may push it past
// the target; completion is a derived view.
func (s *goalService) ContributeToGoal(goalID string, amount int64) (*models.Goal, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "contribution must be greater than zero")
	}

	var goal models.Goal
	if err := s.db.Where("id = ?", goalID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	newAmount := goal.CurrentAmount + amount
	if err := s.db.Model(&goal).Update("current_amount", newAmount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	goal.CurrentAmount = newAmount
	return &goal, nil
}
