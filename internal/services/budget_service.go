package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/Frenzy29-SL/budget-vision-insights/internal/errors"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetAllBudgets returns every budget with its category.
func (s *budgetService) GetAllBudgets() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.Preload("Category").Order("id ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetBudgetByCategory returns the budget tracking the given category.
func (s *budgetService) GetBudgetByCategory(categoryID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Preload("Category").Where("category_id = ?", categoryID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget replaces the stored budget with the same ID wholesale.
// There is no partial-field update: amount, period, current, and
// category all come from the incoming value.
func (s *budgetService) UpdateBudget(budget models.Budget) (*models.Budget, error) {
	if budget.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if budget.Current < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current must not be negative")
	}

	var existing models.Budget
	if err := s.db.Where("id = ?", budget.ID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var category models.Category
	if err := s.db.Where("id = ?", budget.CategoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := map[string]interface{}{
		"category_id": budget.CategoryID,
		"amount":      budget.Amount,
		"period":      budget.Period,
		"current":     budget.Current,
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	existing.CategoryID = budget.CategoryID
	existing.Amount = budget.Amount
	existing.Period = budget.Period
	existing.Current = budget.Current
	existing.Category = category
	return &existing, nil
}

// GetBudgetProgress calculates spending vs budget for the current period.
func (s *budgetService) GetBudgetProgress(budgetID string) (*BudgetProgress, error) {
	var budget models.Budget
	if err := s.db.Where("id = ?", budgetID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	periodStart, periodEnd := periodWindow(budget.Period, time.Now())

	// Sum expense transactions for this category within the period
	var spent int64
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("category_id = ? AND type = ? AND date >= ? AND date < ?",
			budget.CategoryID, models.TransactionTypeExpense, periodStart, periodEnd).
		Scan(&spent).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var percentage float64
	if budget.Amount > 0 {
		percentage = float64(spent) / float64(budget.Amount) * 100
	}

	return &BudgetProgress{
		BudgetID:   budget.ID,
		Budgeted:   budget.Amount,
		Spent:      spent,
		Remaining:  budget.Amount - spent,
		Percentage: percentage,
	}, nil
}

// periodWindow returns the half-open [start, end) range of the budget
// period containing now. Weeks start on Monday.
func periodWindow(period models.BudgetPeriod, now time.Time) (time.Time, time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case models.BudgetPeriodDaily:
		return day, day.AddDate(0, 0, 1)
	case models.BudgetPeriodWeekly:
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7)
	case models.BudgetPeriodYearly:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(1, 0, 0)
	default: // monthly
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0)
	}
}
