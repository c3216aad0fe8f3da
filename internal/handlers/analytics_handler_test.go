package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Frenzy29-SL/budget-vision-insights/internal/errors"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/services"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/state"
)

func setupAnalyticsRouter(handler *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/analytics/expenses-by-category", handler.ExpensesByCategory)
	r.GET("/analytics/income-vs-expense", handler.IncomeVsExpense)
	r.GET("/analytics/monthly-trends", handler.MonthlyTrends)
	r.GET("/analytics/daily-spendings", handler.DailySpendings)
	r.GET("/analytics/savings-projection", handler.ProjectSavings)
	return r
}

func TestAnalyticsHandler_ExpensesByCategory(t *testing.T) {
	t.Run("returns 200 with breakdown", func(t *testing.T) {
		analyticsSvc := &mockAnalyticsService{
			expensesByCategoryFn: func() (map[string]int64, error) {
				return map[string]int64{"food": 4000, "transport": 800}, nil
			},
		}
		p := loadedProvider(t, state.Services{Analytics: analyticsSvc})
		r := setupAnalyticsRouter(NewAnalyticsHandler(p))

		rec := doRequest(r, "GET", "/analytics/expenses-by-category", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		breakdown := result["expenses_by_category"].(map[string]interface{})
		if breakdown["food"].(float64) != 4000 {
			t.Errorf("expected food 4000, got %v", breakdown["food"])
		}
	})
}

func TestAnalyticsHandler_IncomeVsExpense(t *testing.T) {
	t.Run("returns 200 with totals", func(t *testing.T) {
		analyticsSvc := &mockAnalyticsService{
			incomeVsExpenseFn: func() (*services.IncomeVsExpense, error) {
				return &services.IncomeVsExpense{Income: 10000, Expense: 4000}, nil
			},
		}
		p := loadedProvider(t, state.Services{Analytics: analyticsSvc})
		r := setupAnalyticsRouter(NewAnalyticsHandler(p))

		rec := doRequest(r, "GET", "/analytics/income-vs-expense", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["income"].(float64) != 10000 || result["expense"].(float64) != 4000 {
			t.Errorf("expected 10000/4000, got %v/%v", result["income"], result["expense"])
		}
	})
}

func TestAnalyticsHandler_MonthlyTrends(t *testing.T) {
	t.Run("returns 200 with series", func(t *testing.T) {
		analyticsSvc := &mockAnalyticsService{
			monthlyTrendsFn: func() ([]services.MonthlyTrend, error) {
				return []services.MonthlyTrend{
					{Month: "Jul", Income: 5000, Expense: 1200},
					{Month: "Aug", Income: 6000, Expense: 900},
				}, nil
			},
		}
		p := loadedProvider(t, state.Services{Analytics: analyticsSvc})
		r := setupAnalyticsRouter(NewAnalyticsHandler(p))

		rec := doRequest(r, "GET", "/analytics/monthly-trends", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		trends := result["trends"].([]interface{})
		if len(trends) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(trends))
		}
	})
}

func TestAnalyticsHandler_DailySpendings(t *testing.T) {
	t.Run("returns 200 with series", func(t *testing.T) {
		analyticsSvc := &mockAnalyticsService{
			dailySpendingsFn: func() ([]services.DailySpending, error) {
				return []services.DailySpending{{Date: "27 Aug", Amount: 900}}, nil
			},
		}
		p := loadedProvider(t, state.Services{Analytics: analyticsSvc})
		r := setupAnalyticsRouter(NewAnalyticsHandler(p))

		rec := doRequest(r, "GET", "/analytics/daily-spendings", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		spendings := result["spendings"].([]interface{})
		if len(spendings) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(spendings))
		}
	})
}

func TestAnalyticsHandler_ProjectSavings(t *testing.T) {
	t.Run("returns 200 with projection", func(t *testing.T) {
		analyticsSvc := &mockAnalyticsService{
			projectSavingsFn: func(months int) (int64, error) {
				return int64(months) * 3000, nil
			},
		}
		p := loadedProvider(t, state.Services{Analytics: analyticsSvc})
		r := setupAnalyticsRouter(NewAnalyticsHandler(p))

		rec := doRequest(r, "GET", "/analytics/savings-projection?months=2", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["projected_savings"].(float64) != 6000 {
			t.Errorf("expected 6000, got %v", result["projected_savings"])
		}
		if result["months"].(float64) != 2 {
			t.Errorf("expected months 2, got %v", result["months"])
		}
	})

	t.Run("returns 400 without months", func(t *testing.T) {
		analyticsSvc := &mockAnalyticsService{
			projectSavingsFn: func(months int) (int64, error) {
				if months <= 0 {
					return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be greater than zero")
				}
				return 0, nil
			},
		}
		p := loadedProvider(t, state.Services{Analytics: analyticsSvc})
		r := setupAnalyticsRouter(NewAnalyticsHandler(p))

		rec := doRequest(r, "GET", "/analytics/savings-projection", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on non-integer months", func(t *testing.T) {
		p := loadedProvider(t, state.Services{})
		r := setupAnalyticsRouter(NewAnalyticsHandler(p))

		rec := doRequest(r, "GET", "/analytics/savings-projection?months=soon", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
