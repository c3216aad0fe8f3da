package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Frenzy29-SL/budget-vision-insights/internal/catalog"
	apperrors "github.com/Frenzy29-SL/budget-vision-insights/internal/errors"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
)

// profileService handles the single active profile.
type profileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(db *gorm.DB) ProfileServicer {
	return &profileService{db: db}
}

// GetProfile returns the active profile with its visible category set
// resolved from the template table.
func (s *profileService) GetProfile() (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	tpl, ok := catalog.TemplateFor(profile.Type)
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, errors.New("profile row has no matching template"))
	}
	profile.Categories = catalog.TemplateCategories(tpl)
	return &profile, nil
}

// SetProfileType replaces the active profile wholesale from the fixed
// template for the given type. Income, savings target, budgeting
// style, and visible categories all reset; any prior income edit is
// discarded.
func (s *profileService) SetProfileType(profileType models.ProfileType) (*models.Profile, error) {
	tpl, ok := catalog.TemplateFor(profileType)
	if !ok {
		return nil, apperrors.ErrUnknownProfileType
	}

	var profile models.Profile
	if err := s.db.First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := map[string]interface{}{
		"type":            profileType,
		"income":          tpl.Income,
		"savings_target":  tpl.SavingsTarget,
		"budgeting_style": tpl.BudgetingStyle,
	}
	if err := s.db.Model(&profile).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	profile.Type = profileType
	profile.Income = tpl.Income
	profile.SavingsTarget = tpl.SavingsTarget
	profile.BudgetingStyle = tpl.BudgetingStyle
	profile.Categories = catalog.TemplateCategories(tpl)
	return &profile, nil
}

// UpdateIncome edits only the income field of the active profile.
func (s *profileService) UpdateIncome(amount int64) (*models.Profile, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income must be greater than zero")
	}

	var profile models.Profile
	if err := s.db.First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&profile).Update("income", amount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	profile.Income = amount
	tpl, ok := catalog.TemplateFor(profile.Type)
	if ok {
		profile.Categories = catalog.TemplateCategories(tpl)
	}
	return &profile, nil
}
