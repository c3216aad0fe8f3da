package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category of the given type with a unique slug ID.
func CreateTestCategory(t *testing.T, db *gorm.DB, categoryType models.CategoryType) *models.Category {
	t.Helper()

	n := nextID()
	category := &models.Category{
		ID:    fmt.Sprintf("test-category-%d", n),
		Name:  fmt.Sprintf("Test Category %d", n),
		Type:  categoryType,
		Color: "#FF5733",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction of the given type and amount (in cents).
func CreateTestTransaction(t *testing.T, db *gorm.DB, categoryID string, txType models.TransactionType, amount int64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, categoryID, txType, amount, time.Now())
}

// CreateTestTransactionAt creates a transaction dated at the given time.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, categoryID string, txType models.TransactionType, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		CategoryID:  categoryID,
		Type:        txType,
		Amount:      amount,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates a monthly budget for the given category.
func CreateTestBudget(t *testing.T, db *gorm.DB, categoryID string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Base:       models.Base{ID: "budget-" + categoryID},
		CategoryID: categoryID,
		Amount:     10000, // $100.00
		Period:     models.BudgetPeriodMonthly,
		Current:    0,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGoal creates a savings goal without a deadline.
func CreateTestGoal(t *testing.T, db *gorm.DB) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		Name:          fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  100000, // $1000.00
		CurrentAmount: 25000,  // $250.00
		Priority:      models.GoalPriorityMedium,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestProfile creates the singleton profile row for the given type.
func CreateTestProfile(t *testing.T, db *gorm.DB, profileType models.ProfileType) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		Type:           profileType,
		Income:         400000, // $4000.00
		SavingsTarget:  100000, // $1000.00
		BudgetingStyle: models.BudgetingStyleModerate,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateTestInsight creates an advisory insight.
func CreateTestInsight(t *testing.T, db *gorm.DB) *models.FinancialInsight {
	t.Helper()

	insight := &models.FinancialInsight{
		Title:       fmt.Sprintf("Test Insight %d", nextID()),
		Description: "Spending on subscriptions grew last month",
		ImpactScore: 50,
		Type:        models.InsightTypeSpending,
	}
	if err := db.Create(insight).Error; err != nil {
		t.Fatalf("failed to create test insight: %v", err)
	}
	return insight
}
