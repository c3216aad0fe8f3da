package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Frenzy29-SL/budget-vision-insights/internal/errors"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/state"
)

// ProfileHandler handles requests for the active profile.
type ProfileHandler struct {
	provider *state.Provider
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(provider *state.Provider) *ProfileHandler {
	return &ProfileHandler{provider: provider}
}

// SetProfileTypeRequest represents the profile type switch payload.
type SetProfileTypeRequest struct {
	Type models.ProfileType `json:"type" binding:"required,profile_type"`
}

// UpdateIncomeRequest represents the income edit payload.
type UpdateIncomeRequest struct {
	Income int64 `json:"income" binding:"required,gt=0"`
}

// GetProfile handles reading the active profile.
// @Summary     Get profile
// @Description Get the active profile with its visible category set
// @Tags        profile
// @Accept      json
// @Produce     json
// @Success     200 {object} models.Profile "Active profile"
// @Failure     404 {object} ErrorResponse "No active profile"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile := h.provider.Profile()
	if profile == nil {
		respondWithError(c, apperrors.ErrProfileNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile, "is_loading": h.provider.IsLoading()})
}

// SetProfileType handles switching the profile archetype.
// @Summary     Switch profile type
// @Description Reset the profile wholesale from the fixed template for the given type
// @Tags        profile
// @Accept      json
// @Produce     json
// @Param       request body SetProfileTypeRequest true "Profile type"
// @Success     200 {object} models.Profile "Reset profile"
// @Failure     400 {object} ErrorResponse "Unknown profile type"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile/type [put]
func (h *ProfileHandler) SetProfileType(c *gin.Context) {
	var req SetProfileTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.provider.SetProfileType(req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateIncome handles editing the profile's income.
// @Summary     Update income
// @Description Edit only the income field of the active profile
// @Tags        profile
// @Accept      json
// @Produce     json
// @Param       request body UpdateIncomeRequest true "New income"
// @Success     200 {object} models.Profile "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile/income [put]
func (h *ProfileHandler) UpdateIncome(c *gin.Context) {
	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.provider.UpdateProfileIncome(req.Income)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
