package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Frenzy29-SL/budget-vision-insights/internal/errors"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/state"
)

// AnalyticsHandler exposes the derived read views.
type AnalyticsHandler struct {
	provider *state.Provider
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(provider *state.Provider) *AnalyticsHandler {
	return &AnalyticsHandler{provider: provider}
}

// ExpensesByCategory handles the per-category expense breakdown.
// @Summary     Expenses by category
// @Description Get expense sums grouped by category; categories without expenses are absent
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]int64 "Category sums in cents"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/expenses-by-category [get]
func (h *AnalyticsHandler) ExpensesByCategory(c *gin.Context) {
	result, err := h.provider.ExpensesByCategory()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses_by_category": result})
}

// IncomeVsExpense handles the total income and expense view.
// @Summary     Income vs expense
// @Description Get total income and expense over the entire transaction log
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Success     200 {object} services.IncomeVsExpense "Totals in cents"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/income-vs-expense [get]
func (h *AnalyticsHandler) IncomeVsExpense(c *gin.Context) {
	result, err := h.provider.IncomeVsExpense()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// MonthlyTrends handles the six-month trend series.
// @Summary     Monthly trends
// @Description Get income and expense sums for the six calendar months ending now, oldest first
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Success     200 {array} services.MonthlyTrend "Trend entries"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/monthly-trends [get]
func (h *AnalyticsHandler) MonthlyTrends(c *gin.Context) {
	trends, err := h.provider.MonthlyTrends()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": trends})
}

// DailySpendings handles the fourteen-day spending series.
// @Summary     Daily spendings
// @Description Get expense sums for the fourteen calendar days ending today, oldest first
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Success     200 {array} services.DailySpending "Daily entries"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/daily-spendings [get]
func (h *AnalyticsHandler) DailySpendings(c *gin.Context) {
	spendings, err := h.provider.DailySpendings()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"spendings": spendings})
}

// ProjectSavings handles the savings projection.
// @Summary     Project savings
// @Description Project savings over the given number of months
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Param       months query int true "Number of months (positive)"
// @Success     200 {object} map[string]int64 "Projected savings in cents"
// @Failure     400 {object} ErrorResponse "Invalid months"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/savings-projection [get]
func (h *AnalyticsHandler) ProjectSavings(c *gin.Context) {
	months, err := strconv.Atoi(c.DefaultQuery("months", "0"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be an integer"))
		return
	}

	projected, err := h.provider.ProjectSavings(months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"months": months, "projected_savings": projected})
}
