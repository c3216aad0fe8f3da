package services

import (
	"time"

	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/pagination"
)

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(amount int64, categoryID string, date time.Time, description string, transactionType models.TransactionType) (*models.Transaction, error)
	UpdateTransactionAmount(transactionID string, amount int64) (*models.Transaction, error)
	GetAllTransactions() ([]models.Transaction, error)
	GetTransactionByID(transactionID string) (*models.Transaction, error)
	SearchTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
}

// BudgetProgress contains spending vs budget data for a budget's current period.
type BudgetProgress struct {
	BudgetID   string  `json:"budget_id"`
	Budgeted   int64   `json:"budgeted"`
	Spent      int64   `json:"spent"`
	Remaining  int64   `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	GetAllBudgets() ([]models.Budget, error)
	GetBudgetByCategory(categoryID string) (*models.Budget, error)
	UpdateBudget(budget models.Budget) (*models.Budget, error)
	GetBudgetProgress(budgetID string) (*BudgetProgress, error)
}

// GoalServicer defines the contract for savings-goal business logic.
type GoalServicer interface {
	GetAllGoals() ([]models.Goal, error)
	CreateGoal(name string, targetAmount, currentAmount int64, deadline *time.Time, priority models.GoalPriority) (*models.Goal, error)
	UpdateGoal(goal models.Goal) (*models.Goal, error)
	ContributeToGoal(goalID string, amount int64) (*models.Goal, error)
}

// ProfileServicer defines the contract for the active profile.
type ProfileServicer interface {
	GetProfile() (*models.Profile, error)
	SetProfileType(profileType models.ProfileType) (*models.Profile, error)
	UpdateIncome(amount int64) (*models.Profile, error)
}

// CategoryServicer defines the contract for the fixed category catalog.
type CategoryServicer interface {
	GetAllCategories() ([]models.Category, error)
	GetCategoriesByType(categoryType models.CategoryType) ([]models.Category, error)
	GetCategoryByID(categoryID string) (*models.Category, error)
}

// InsightServicer defines the contract for the read-only insight set.
type InsightServicer interface {
	GetAllInsights() ([]models.FinancialInsight, error)
}

// IncomeVsExpense holds total income and expense over the whole
// transaction collection, in cents.
type IncomeVsExpense struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
}

// MonthlyTrend holds income and expense sums for one calendar month.
// Month is the abbreviated month name without a year.
type MonthlyTrend struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// DailySpending holds the expense sum for one calendar day, labeled
// "02 Jan".
type DailySpending struct {
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
}

// AnalyticsServicer defines the contract for the derived read views.
// All results are recomputed from the store on every call.
type AnalyticsServicer interface {
	ExpensesByCategory() (map[string]int64, error)
	IncomeVsExpense() (*IncomeVsExpense, error)
	MonthlyTrends() ([]MonthlyTrend, error)
	DailySpendings() ([]DailySpending, error)
	ProjectSavings(months int) (int64, error)
}
