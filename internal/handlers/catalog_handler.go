package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Frenzy29-SL/budget-vision-insights/internal/errors"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/state"
)

// CatalogHandler handles the read-only category catalog and insight set.
type CatalogHandler struct {
	provider *state.Provider
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(provider *state.Provider) *CatalogHandler {
	return &CatalogHandler{provider: provider}
}

// GetCategories handles listing the category catalog.
// @Summary     List categories
// @Description Get the fixed category catalog, optionally filtered by type
// @Tags        catalog
// @Accept      json
// @Produce     json
// @Param       type query string false "Filter by type (income/expense)"
// @Success     200 {array} models.Category "Categories"
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	if v := c.Query("type"); v != "" {
		t := models.CategoryType(v)
		if t != models.CategoryTypeIncome && t != models.CategoryTypeExpense {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be 'income' or 'expense'"))
			return
		}
		categories, err := h.provider.CategoriesByType(t)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": h.provider.Categories()})
}

// GetInsights handles listing the advisory set.
// @Summary     List insights
// @Description Get the fixed set of financial insights
// @Tags        catalog
// @Accept      json
// @Produce     json
// @Success     200 {array} models.FinancialInsight "Insights"
// @Router      /insights [get]
func (h *CatalogHandler) GetInsights(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"insights": h.provider.Insights()})
}
