package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Frenzy29-SL/budget-vision-insights/internal/errors"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/state"
)

// GoalHandler handles savings-goal requests.
type GoalHandler struct {
	provider *state.Provider
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(provider *state.Provider) *GoalHandler {
	return &GoalHandler{provider: provider}
}

// CreateGoalRequest represents the request payload for creating a goal.
type CreateGoalRequest struct {
	Name          string              `json:"name" binding:"required,min=1,max=100"`
	TargetAmount  int64               `json:"target_amount" binding:"required,gt=0"`
	CurrentAmount int64               `json:"current_amount" binding:"gte=0"`
	Deadline      *time.Time          `json:"deadline"`
	Priority      models.GoalPriority `json:"priority" binding:"required,goal_priority"`
}

// UpdateGoalRequest represents the wholesale goal replacement payload.
type UpdateGoalRequest struct {
	Name          string              `json:"name" binding:"required,min=1,max=100"`
	TargetAmount  int64               `json:"target_amount" binding:"required,gt=0"`
	CurrentAmount int64               `json:"current_amount" binding:"gte=0"`
	Deadline      *time.Time          `json:"deadline"`
	Priority      models.GoalPriority `json:"priority" binding:"required,goal_priority"`
}

// ContributeRequest represents a goal contribution payload.
type ContributeRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// GetGoals handles listing all goals.
// @Summary     List goals
// @Description Get every savings goal in creation order
// @Tags        goals
// @Accept      json
// @Produce     json
// @Success     200 {array} models.Goal "Goals"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"goals": h.provider.Goals()})
}

// CreateGoal handles creating a new savings goal.
// @Summary     Create a goal
// @Description Create a new savings goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} models.Goal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.provider.AddGoal(req.Name, req.TargetAmount, req.CurrentAmount, req.Deadline, req.Priority)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// UpdateGoal handles replacing a goal wholesale.
// @Summary     Update goal
// @Description Replace an existing goal wholesale
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Goal ID"
// @Param       request body UpdateGoalRequest true "Replacement goal"
// @Success     200 {object} models.Goal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input or goal ID"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	goalID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.provider.UpdateGoal(models.Goal{
		Base:          models.Base{ID: goalID},
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		Priority:      req.Priority,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// ContributeToGoal handles adding progress to a goal.
// @Summary     Contribute to goal
// @Description Add a positive amount to a goal's progress
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Goal ID"
// @Param       request body ContributeRequest true "Contribution amount"
// @Success     200 {object} models.Goal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input or goal ID"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/contribute [post]
func (h *GoalHandler) ContributeToGoal(c *gin.Context) {
	goalID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.provider.ContributeToGoal(goalID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}
