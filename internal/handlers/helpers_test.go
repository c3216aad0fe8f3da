package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/pagination"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/services"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/state"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/validator"
)

// validID is a syntactically valid UUID for path parameters.
const validID = "0191f3a0-6b7c-7abc-8def-0123456789ab"

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// --- mock services ---

type mockTransactionService struct {
	createFn       func(amount int64, categoryID string, date time.Time, description string, txType models.TransactionType) (*models.Transaction, error)
	updateAmountFn func(transactionID string, amount int64) (*models.Transaction, error)
	getAllFn       func() ([]models.Transaction, error)
	getByIDFn      func(transactionID string) (*models.Transaction, error)
	searchFn       func(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
}

func (m *mockTransactionService) CreateTransaction(amount int64, categoryID string, date time.Time, description string, txType models.TransactionType) (*models.Transaction, error) {
	if m.createFn != nil {
		return m.createFn(amount, categoryID, date, description, txType)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransactionAmount(transactionID string, amount int64) (*models.Transaction, error) {
	if m.updateAmountFn != nil {
		return m.updateAmountFn(transactionID, amount)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetAllTransactions() ([]models.Transaction, error) {
	if m.getAllFn != nil {
		return m.getAllFn()
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) GetTransactionByID(transactionID string) (*models.Transaction, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(transactionID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) SearchTransactions(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.searchFn != nil {
		return m.searchFn(page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 50, 0)
	return &resp, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

type mockBudgetService struct {
	getAllFn        func() ([]models.Budget, error)
	getByCategoryFn func(categoryID string) (*models.Budget, error)
	updateFn        func(budget models.Budget) (*models.Budget, error)
	progressFn      func(budgetID string) (*services.BudgetProgress, error)
}

func (m *mockBudgetService) GetAllBudgets() ([]models.Budget, error) {
	if m.getAllFn != nil {
		return m.getAllFn()
	}
	return []models.Budget{}, nil
}

func (m *mockBudgetService) GetBudgetByCategory(categoryID string) (*models.Budget, error) {
	if m.getByCategoryFn != nil {
		return m.getByCategoryFn(categoryID)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) UpdateBudget(budget models.Budget) (*models.Budget, error) {
	if m.updateFn != nil {
		return m.updateFn(budget)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) GetBudgetProgress(budgetID string) (*services.BudgetProgress, error) {
	if m.progressFn != nil {
		return m.progressFn(budgetID)
	}
	return &services.BudgetProgress{}, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

type mockGoalService struct {
	getAllFn     func() ([]models.Goal, error)
	createFn     func(name string, targetAmount, currentAmount int64, deadline *time.Time, priority models.GoalPriority) (*models.Goal, error)
	updateFn     func(goal models.Goal) (*models.Goal, error)
	contributeFn func(goalID string, amount int64) (*models.Goal, error)
}

func (m *mockGoalService) GetAllGoals() ([]models.Goal, error) {
	if m.getAllFn != nil {
		return m.getAllFn()
	}
	return []models.Goal{}, nil
}

func (m *mockGoalService) CreateGoal(name string, targetAmount, currentAmount int64, deadline *time.Time, priority models.GoalPriority) (*models.Goal, error) {
	if m.createFn != nil {
		return m.createFn(name, targetAmount, currentAmount, deadline, priority)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) UpdateGoal(goal models.Goal) (*models.Goal, error) {
	if m.updateFn != nil {
		return m.updateFn(goal)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) ContributeToGoal(goalID string, amount int64) (*models.Goal, error) {
	if m.contributeFn != nil {
		return m.contributeFn(goalID, amount)
	}
	return &models.Goal{}, nil
}

var _ services.GoalServicer = (*mockGoalService)(nil)

type mockProfileService struct {
	getFn          func() (*models.Profile, error)
	setTypeFn      func(profileType models.ProfileType) (*models.Profile, error)
	updateIncomeFn func(amount int64) (*models.Profile, error)
}

func (m *mockProfileService) GetProfile() (*models.Profile, error) {
	if m.getFn != nil {
		return m.getFn()
	}
	return &models.Profile{Type: models.ProfileTypeEmployee}, nil
}

func (m *mockProfileService) SetProfileType(profileType models.ProfileType) (*models.Profile, error) {
	if m.setTypeFn != nil {
		return m.setTypeFn(profileType)
	}
	return &models.Profile{Type: profileType}, nil
}

func (m *mockProfileService) UpdateIncome(amount int64) (*models.Profile, error) {
	if m.updateIncomeFn != nil {
		return m.updateIncomeFn(amount)
	}
	return &models.Profile{Income: amount}, nil
}

var _ services.ProfileServicer = (*mockProfileService)(nil)

type mockCategoryService struct {
	getAllFn  func() ([]models.Category, error)
	byTypeFn  func(categoryType models.CategoryType) ([]models.Category, error)
	getByIDFn func(categoryID string) (*models.Category, error)
}

func (m *mockCategoryService) GetAllCategories() ([]models.Category, error) {
	if m.getAllFn != nil {
		return m.getAllFn()
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) GetCategoriesByType(categoryType models.CategoryType) ([]models.Category, error) {
	if m.byTypeFn != nil {
		return m.byTypeFn(categoryType)
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) GetCategoryByID(categoryID string) (*models.Category, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(categoryID)
	}
	return &models.Category{}, nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

type mockInsightService struct {
	getAllFn func() ([]models.FinancialInsight, error)
}

func (m *mockInsightService) GetAllInsights() ([]models.FinancialInsight, error) {
	if m.getAllFn != nil {
		return m.getAllFn()
	}
	return []models.FinancialInsight{}, nil
}

var _ services.InsightServicer = (*mockInsightService)(nil)

type mockAnalyticsService struct {
	expensesByCategoryFn func() (map[string]int64, error)
	incomeVsExpenseFn    func() (*services.IncomeVsExpense, error)
	monthlyTrendsFn      func() ([]services.MonthlyTrend, error)
	dailySpendingsFn     func() ([]services.DailySpending, error)
	projectSavingsFn     func(months int) (int64, error)
}

func (m *mockAnalyticsService) ExpensesByCategory() (map[string]int64, error) {
	if m.expensesByCategoryFn != nil {
		return m.expensesByCategoryFn()
	}
	return map[string]int64{}, nil
}

func (m *mockAnalyticsService) IncomeVsExpense() (*services.IncomeVsExpense, error) {
	if m.incomeVsExpenseFn != nil {
		return m.incomeVsExpenseFn()
	}
	return &services.IncomeVsExpense{}, nil
}

func (m *mockAnalyticsService) MonthlyTrends() ([]services.MonthlyTrend, error) {
	if m.monthlyTrendsFn != nil {
		return m.monthlyTrendsFn()
	}
	return []services.MonthlyTrend{}, nil
}

func (m *mockAnalyticsService) DailySpendings() ([]services.DailySpending, error) {
	if m.dailySpendingsFn != nil {
		return m.dailySpendingsFn()
	}
	return []services.DailySpending{}, nil
}

func (m *mockAnalyticsService) ProjectSavings(months int) (int64, error) {
	if m.projectSavingsFn != nil {
		return m.projectSavingsFn(months)
	}
	return 0, nil
}

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)

// --- test helpers ---

// loadedProvider builds a provider over the given services, filling in
// default mocks for any that are nil, and performs the initial load.
func loadedProvider(t *testing.T, svcs state.Services) *state.Provider {
	t.Helper()

	if svcs.Transactions == nil {
		svcs.Transactions = &mockTransactionService{}
	}
	if svcs.Budgets == nil {
		svcs.Budgets = &mockBudgetService{}
	}
	if svcs.Goals == nil {
		svcs.Goals = &mockGoalService{}
	}
	if svcs.Profile == nil {
		svcs.Profile = &mockProfileService{}
	}
	if svcs.Categories == nil {
		svcs.Categories = &mockCategoryService{}
	}
	if svcs.Insights == nil {
		svcs.Insights = &mockInsightService{}
	}
	if svcs.Analytics == nil {
		svcs.Analytics = &mockAnalyticsService{}
	}

	p := state.NewProvider(svcs)
	if err := p.Load(); err != nil {
		t.Fatalf("failed to load provider: %v", err)
	}
	return p
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
