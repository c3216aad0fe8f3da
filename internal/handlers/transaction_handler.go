package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Frenzy29-SL/budget-vision-insights/internal/errors"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/pagination"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/services"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/state"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	provider *state.Provider
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(provider *state.Provider) *TransactionHandler {
	return &TransactionHandler{provider: provider}
}

// CreateTransactionRequest represents the request payload for recording a transaction.
type CreateTransactionRequest struct {
	Amount      int64                  `json:"amount" binding:"required,gt=0"`
	CategoryID  string                 `json:"category_id" binding:"required"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Date        time.Time              `json:"date"`
	Description string                 `json:"description" binding:"max=500"`
}

// UpdateTransactionAmountRequest represents the request payload for overwriting an amount.
type UpdateTransactionAmountRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// ListTransactions handles listing the transaction log.
// @Summary     List transactions
// @Description Get the transaction log, most recently recorded first, with optional filters
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       type        query string false "Filter by type (income/expense)"
// @Param       category_id query string false "Filter by category"
// @Param       from        query string false "Earliest date (RFC 3339)"
// @Param       to          query string false "Latest date (RFC 3339)"
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 50, max 200)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.provider.SearchTransactions(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if v := c.Query("type"); v != "" {
		t := models.TransactionType(v)
		if t != models.TransactionTypeIncome && t != models.TransactionTypeExpense {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be 'income' or 'expense'")
		}
		filter.Type = &t
	}
	if v := c.Query("category_id"); v != "" {
		filter.CategoryID = &v
	}
	if v := c.Query("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be an RFC 3339 date")
		}
		filter.FromDate = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be an RFC 3339 date")
		}
		filter.ToDate = &to
	}
	return filter, nil
}

// CreateTransaction handles recording a new transaction.
// @Summary     Record a transaction
// @Description Record a new income or expense transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction recorded"
// @Failure     400 {object} ErrorResponse "Invalid input or category/type mismatch"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.provider.AddTransaction(req.Amount, req.CategoryID, req.Date, req.Description, req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// UpdateTransactionAmount handles overwriting a transaction's amount.
// @Summary     Update transaction amount
// @Description Overwrite the amount of an existing transaction; all other fields are untouched
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string                         true "Transaction ID"
// @Param       request body UpdateTransactionAmountRequest true "New amount"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id}/amount [patch]
func (h *TransactionHandler) UpdateTransactionAmount(c *gin.Context) {
	transactionID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.provider.UpdateTransactionAmount(transactionID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}
