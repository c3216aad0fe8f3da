package database

import (
	"testing"

	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
)

func TestNewManager(t *testing.T) {
	t.Run("migrates_schema", func(t *testing.T) {
		m, err := NewManager()
		if err != nil {
			t.Fatalf("failed to open store: %v", err)
		}
		defer m.Close()

		var count int64
		for _, table := range []string{"categories", "transactions", "budgets", "goals", "profiles", "financial_insights"} {
			if err := m.DB().Table(table).Count(&count).Error; err != nil {
				t.Errorf("table %q should exist after migration: %v", table, err)
			}
		}
	})

	t.Run("managers_are_isolated", func(t *testing.T) {
		m1, err := NewManager()
		if err != nil {
			t.Fatalf("failed to open first store: %v", err)
		}
		defer m1.Close()

		m2, err := NewManager()
		if err != nil {
			t.Fatalf("failed to open second store: %v", err)
		}
		defer m2.Close()

		category := &models.Category{ID: "food", Name: "Food", Type: models.CategoryTypeExpense}
		if err := m1.DB().Create(category).Error; err != nil {
			t.Fatalf("failed to create category: %v", err)
		}

		var count int64
		if err := m2.DB().Model(&models.Category{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count categories: %v", err)
		}
		if count != 0 {
			t.Errorf("expected second store to be empty, found %d rows", count)
		}
	})
}
