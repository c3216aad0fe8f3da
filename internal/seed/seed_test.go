package seed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Frenzy29-SL/budget-vision-insights/internal/catalog"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/testutil"

	"gorm.io/gorm"
)

func seededDB(t *testing.T, opts Options) *gorm.DB {
	t.Helper()
	db := testutil.SetupTestDB(t)
	if err := Run(db, opts); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return db
}

func TestRun(t *testing.T) {
	t.Run("populates_every_collection", func(t *testing.T) {
		db := seededDB(t, Options{Transactions: 40, Rand: rand.New(rand.NewSource(1))})
		defer testutil.TeardownTestDB(t, db)

		var categories int64
		db.Model(&models.Category{}).Count(&categories)
		if categories != int64(len(catalog.Categories)) {
			t.Errorf("expected %d categories, got %d", len(catalog.Categories), categories)
		}

		var transactions int64
		db.Model(&models.Transaction{}).Count(&transactions)
		if transactions != 40 {
			t.Errorf("expected 40 transactions, got %d", transactions)
		}

		var budgets int64
		db.Model(&models.Budget{}).Count(&budgets)
		expenseCategories := int64(len(catalog.CategoriesByType(models.CategoryTypeExpense)))
		if budgets != expenseCategories {
			t.Errorf("expected %d budgets, got %d", expenseCategories, budgets)
		}

		var goals int64
		db.Model(&models.Goal{}).Count(&goals)
		if goals != 3 {
			t.Errorf("expected 3 goals, got %d", goals)
		}

		var insights int64
		db.Model(&models.FinancialInsight{}).Count(&insights)
		if insights != 4 {
			t.Errorf("expected 4 insights, got %d", insights)
		}

		var profiles []models.Profile
		db.Find(&profiles)
		if len(profiles) != 1 {
			t.Fatalf("expected exactly one profile, got %d", len(profiles))
		}
		if profiles[0].Type != models.ProfileTypeEmployee {
			t.Errorf("expected employee profile, got %s", profiles[0].Type)
		}
	})

	t.Run("transactions_respect_invariants", func(t *testing.T) {
		db := seededDB(t, Options{Transactions: 60, Rand: rand.New(rand.NewSource(2))})
		defer testutil.TeardownTestDB(t, db)

		categoryTypes := make(map[string]models.CategoryType)
		for _, c := range catalog.Categories {
			categoryTypes[c.ID] = c.Type
		}

		windowStart := time.Now().AddDate(0, 0, -historyDays-1)
		var transactions []models.Transaction
		db.Find(&transactions)

		for _, tx := range transactions {
			if tx.Amount <= 0 {
				t.Errorf("transaction %s has non-positive amount %d", tx.ID, tx.Amount)
			}
			if string(categoryTypes[tx.CategoryID]) != string(tx.Type) {
				t.Errorf("transaction %s type %s does not match category %s", tx.ID, tx.Type, tx.CategoryID)
			}
			if tx.Date.Before(windowStart) || tx.Date.After(time.Now()) {
				t.Errorf("transaction %s dated %v outside the trailing window", tx.ID, tx.Date)
			}
		}
	})

	t.Run("budgets_use_slug_ids", func(t *testing.T) {
		db := seededDB(t, Options{Transactions: 10, Rand: rand.New(rand.NewSource(3))})
		defer testutil.TeardownTestDB(t, db)

		var budgets []models.Budget
		db.Find(&budgets)
		for _, b := range budgets {
			if b.ID != "budget-"+b.CategoryID {
				t.Errorf("expected budget ID budget-%s, got %s", b.CategoryID, b.ID)
			}
			if b.Period != models.BudgetPeriodMonthly {
				t.Errorf("expected monthly budget, got %s", b.Period)
			}
			if b.Amount <= 0 || b.Current < 0 {
				t.Errorf("budget %s has invalid amounts %d/%d", b.ID, b.Amount, b.Current)
			}
		}
	})

	t.Run("fixed_source_is_reproducible", func(t *testing.T) {
		db1 := seededDB(t, Options{Transactions: 25, Rand: rand.New(rand.NewSource(42))})
		var first []models.Transaction
		db1.Order("date ASC").Find(&first)
		testutil.TeardownTestDB(t, db1)

		db2 := seededDB(t, Options{Transactions: 25, Rand: rand.New(rand.NewSource(42))})
		defer testutil.TeardownTestDB(t, db2)
		var second []models.Transaction
		db2.Order("date ASC").Find(&second)

		if len(first) != len(second) {
			t.Fatalf("expected matching counts, got %d and %d", len(first), len(second))
		}
		for i := range first {
			if first[i].Amount != second[i].Amount || first[i].CategoryID != second[i].CategoryID {
				t.Errorf("entry %d differs: %s/%d vs %s/%d",
					i, first[i].CategoryID, first[i].Amount, second[i].CategoryID, second[i].Amount)
			}
		}
	})
}
