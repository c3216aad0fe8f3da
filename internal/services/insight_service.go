package services

import (
	"gorm.io/gorm"

	apperrors "github.com/Frenzy29-SL/budget-vision-insights/internal/errors"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
)

// insightService reads the fixed advisory set. Insights are seeded
// once and never mutated.
type insightService struct {
	db *gorm.DB
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(db *gorm.DB) InsightServicer {
	return &insightService{db: db}
}

// GetAllInsights returns the insight set in seed order.
func (s *insightService) GetAllInsights() ([]models.FinancialInsight, error) {
	var insights []models.FinancialInsight
	if err := s.db.Order("id ASC").Find(&insights).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return insights, nil
}
