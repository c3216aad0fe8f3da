package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Frenzy29-SL/budget-vision-insights/internal/errors"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/state"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	provider *state.Provider
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(provider *state.Provider) *BudgetHandler {
	return &BudgetHandler{provider: provider}
}

// UpdateBudgetRequest represents the wholesale budget replacement payload.
type UpdateBudgetRequest struct {
	CategoryID string              `json:"category_id" binding:"required"`
	Amount     int64               `json:"amount" binding:"required,gt=0"`
	Period     models.BudgetPeriod `json:"period" binding:"required,budget_period"`
	Current    int64               `json:"current" binding:"gte=0"`
}

// GetBudgets handles listing all budgets.
// @Summary     List budgets
// @Description Get every per-category budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Success     200 {array} models.Budget "Budgets"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"budgets": h.provider.Budgets()})
}

// GetBudgetByCategory handles looking up the budget for one category.
// @Summary     Get budget by category
// @Description Get the budget tracking the given category
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       categoryId path string true "Category ID"
// @Success     200 {object} models.Budget "Budget"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/category/{categoryId} [get]
func (h *BudgetHandler) GetBudgetByCategory(c *gin.Context) {
	budget, err := h.provider.BudgetByCategory(c.Param("categoryId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget handles replacing a budget wholesale.
// @Summary     Update budget
// @Description Replace an existing budget wholesale; there is no partial update
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       id      path string              true "Budget ID"
// @Param       request body UpdateBudgetRequest true "Replacement budget"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.provider.UpdateBudget(models.Budget{
		Base:       models.Base{ID: c.Param("id")},
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Period:     req.Period,
		Current:    req.Current,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetBudgetProgress handles retrieving spending progress for a budget.
// @Summary     Get budget progress
// @Description Get spending vs target for a budget in its current period
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} services.BudgetProgress "Budget progress"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/progress [get]
func (h *BudgetHandler) GetBudgetProgress(c *gin.Context) {
	progress, err := h.provider.BudgetProgress(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}
