package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "github.com/Frenzy29-SL/budget-vision-insights/internal/errors"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
)

const (
	trendMonths  = 6
	spendingDays = 14
)

// analyticsService derives summary views from the transaction log.
// Every method recomputes from the store; nothing is cached.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

// typeTotal is the scan target for grouped amount sums.
type typeTotal struct {
	Type  models.TransactionType
	Total int64
}

// ExpensesByCategory sums expense amounts grouped by category.
// Categories without expense transactions are absent from the result;
// consumers must treat absence as zero.
func (s *analyticsService) ExpensesByCategory() (map[string]int64, error) {
	var rows []struct {
		CategoryID string
		Total      int64
	}
	err := s.db.Model(&models.Transaction{}).
		Select("category_id, SUM(amount) AS total").
		Where("type = ?", models.TransactionTypeExpense).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.CategoryID] = row.Total
	}
	return result, nil
}

// IncomeVsExpense sums every transaction in the log, partitioned by
// type. No date filter applies. Callers computing ratios must guard
// against a zero income themselves.
func (s *analyticsService) IncomeVsExpense() (*IncomeVsExpense, error) {
	totals, err := s.sumByType(nil, nil)
	if err != nil {
		return nil, err
	}
	return &IncomeVsExpense{
		Income:  totals[models.TransactionTypeIncome],
		Expense: totals[models.TransactionTypeExpense],
	}, nil
}

// MonthlyTrends returns income and expense sums for the six calendar
// months ending at the current month, oldest first. Labels are
// abbreviated month names with no year; entries across a year boundary
// share the label space.
func (s *analyticsService) MonthlyTrends() ([]MonthlyTrend, error) {
	now := time.Now()
	trends := make([]MonthlyTrend, 0, trendMonths)

	for i := trendMonths - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		totals, err := s.sumByType(&start, &end)
		if err != nil {
			return nil, err
		}

		trends = append(trends, MonthlyTrend{
			Month:   start.Format("Jan"),
			Income:  totals[models.TransactionTypeIncome],
			Expense: totals[models.TransactionTypeExpense],
		})
	}
	return trends, nil
}

// DailySpendings returns expense sums for the fourteen calendar days
// ending today, oldest first.
func (s *analyticsService) DailySpendings() ([]DailySpending, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	spendings := make([]DailySpending, 0, spendingDays)
	for i := spendingDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		next := day.AddDate(0, 0, 1)

		var amount int64
		err := s.db.Model(&models.Transaction{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("type = ? AND date >= ? AND date < ?", models.TransactionTypeExpense, day, next).
			Scan(&amount).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		spendings = append(spendings, DailySpending{
			Date:   day.Format("02 Jan"),
			Amount: amount,
		})
	}
	return spendings, nil
}

// ProjectSavings estimates savings after the given number of months as
// ((income - expense) / 2) * months. The divide-by-two treats the held
// log as roughly two months of history, which matches the seeded
// 60-day window; it is a documented approximation, not an average over
// the observed date range.
func (s *analyticsService) ProjectSavings(months int) (int64, error) {
	if months <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be greater than zero")
	}

	totals, err := s.IncomeVsExpense()
	if err != nil {
		return 0, err
	}

	monthlySavings := (totals.Income - totals.Expense) / 2
	return monthlySavings * int64(months), nil
}

// sumByType sums transaction amounts grouped by type, optionally
// constrained to the half-open date range [from, to).
func (s *analyticsService) sumByType(from, to *time.Time) (map[models.TransactionType]int64, error) {
	q := s.db.Model(&models.Transaction{}).
		Select("type, SUM(amount) AS total").
		Group("type")
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date < ?", *to)
	}

	var rows []typeTotal
	if err := q.Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := make(map[models.TransactionType]int64, len(rows))
	for _, row := range rows {
		totals[row.Type] = row.Total
	}
	return totals, nil
}
