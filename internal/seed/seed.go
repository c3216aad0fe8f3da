// Package seed populates a freshly opened store with demo data: the
// fixed category catalog, a randomized transaction history over the
// trailing 60 days, one budget per expense category, three named
// goals, four insights, and the employee profile. The generated data
// always respects the domain invariants (positive amounts, matching
// category and transaction types).
package seed

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/Frenzy29-SL/budget-vision-insights/internal/catalog"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"

	"gorm.io/gorm"
)

// historyDays is the width of the generated transaction window.
const historyDays = 60

// Options controls the shape of the generated data set.
type Options struct {
	// Transactions is the number of transactions to generate.
	Transactions int
	// Rand is the randomness source. A seeded source makes the data
	// set reproducible across runs.
	Rand *rand.Rand
}

// Defaults fills in a transaction count and randomness source when
// not provided.
func (o *Options) Defaults() {
	if o.Transactions == 0 {
		o.Transactions = 60
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// Run seeds the store. It is called exactly once, right after the
// schema is migrated.
func Run(db *gorm.DB, opts Options) error {
	opts.Defaults()

	if err := db.Create(catalog.Categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	transactions := generateTransactions(opts.Rand, opts.Transactions)
	for i := range transactions {
		if err := db.Create(&transactions[i]).Error; err != nil {
			return fmt.Errorf("failed to seed transaction: %w", err)
		}
	}

	if err := db.Create(generateBudgets(opts.Rand)).Error; err != nil {
		return fmt.Errorf("failed to seed budgets: %w", err)
	}

	goals := generateGoals()
	for i := range goals {
		if err := db.Create(&goals[i]).Error; err != nil {
			return fmt.Errorf("failed to seed goal: %w", err)
		}
	}

	if err := db.Create(generateInsights()).Error; err != nil {
		return fmt.Errorf("failed to seed insights: %w", err)
	}

	profile, err := initialProfile()
	if err != nil {
		return err
	}
	if err := db.Create(profile).Error; err != nil {
		return fmt.Errorf("failed to seed profile: %w", err)
	}

	return nil
}

// centsBetween returns a uniformly random amount in [lo, hi] dollars,
// expressed in cents.
func centsBetween(r *rand.Rand, lo, hi int64) int64 {
	return lo*100 + r.Int63n((hi-lo)*100+1)
}

// generateTransactions builds the randomized history. Transactions are
// returned oldest-first so sequential inserts leave the most recent
// insertion (and date) on top of the default listing order.
func generateTransactions(r *rand.Rand, count int) []models.Transaction {
	now := time.Now()
	windowStart := now.AddDate(0, 0, -historyDays)
	window := now.Sub(windowStart)

	incomeCategories := catalog.CategoriesByType(models.CategoryTypeIncome)
	expenseCategories := catalog.CategoriesByType(models.CategoryTypeExpense)

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		isIncome := r.Float64() > 0.7 // ~30% of entries are income

		var category models.Category
		var amount int64
		if isIncome {
			category = incomeCategories[r.Intn(len(incomeCategories))]
			if category.ID == "salary" {
				amount = centsBetween(r, 2000, 5000)
			} else {
				amount = centsBetween(r, 50, 1000)
			}
		} else {
			category = expenseCategories[r.Intn(len(expenseCategories))]
			switch category.ID {
			case "housing":
				amount = centsBetween(r, 500, 2000)
			case "food":
				amount = centsBetween(r, 10, 100)
			default:
				amount = centsBetween(r, 5, 200)
			}
		}

		txType := models.TransactionTypeExpense
		verb := "Paid for"
		if isIncome {
			txType = models.TransactionTypeIncome
			verb = "Received"
		}

		transactions = append(transactions, models.Transaction{
			CategoryID:  category.ID,
			Type:        txType,
			Amount:      amount,
			Description: fmt.Sprintf("%s %s", verb, strings.ToLower(category.Name)),
			Date:        windowStart.Add(time.Duration(r.Float64() * float64(window))),
		})
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})
	return transactions
}

// generateBudgets creates one monthly budget per expense category.
func generateBudgets(r *rand.Rand) []models.Budget {
	var budgets []models.Budget
	for _, category := range catalog.CategoriesByType(models.CategoryTypeExpense) {
		budgets = append(budgets, models.Budget{
			Base:       models.Base{ID: "budget-" + category.ID},
			CategoryID: category.ID,
			Amount:     centsBetween(r, 100, 1000),
			Period:     models.BudgetPeriodMonthly,
			Current:    centsBetween(r, 50, 550),
		})
	}
	return budgets
}

// generateGoals returns the three fixed demo goals.
func generateGoals() []models.Goal {
	year := time.Now().Year()
	endOfYear := time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local)
	midYear := time.Date(year, time.June, 30, 0, 0, 0, 0, time.Local)

	return []models.Goal{
		{
			Name:          "Emergency Fund",
			TargetAmount:  500000,
			CurrentAmount: 250000,
			Deadline:      &endOfYear,
			Priority:      models.GoalPriorityHigh,
		},
		{
			Name:          "Vacation",
			TargetAmount:  200000,
			CurrentAmount: 80000,
			Deadline:      &midYear,
			Priority:      models.GoalPriorityMedium,
		},
		{
			Name:          "New Laptop",
			TargetAmount:  120000,
			CurrentAmount: 30000,
			Deadline:      nil,
			Priority:      models.GoalPriorityLow,
		},
	}
}

// generateInsights returns the four fixed advisory entries.
func generateInsights() []models.FinancialInsight {
	return []models.FinancialInsight{
		{
			Title:       "Reduce Food Expenses",
			Description: "You spend 20% more on food than the average user. Consider meal planning to reduce costs.",
			ImpactScore: 75,
			Type:        models.InsightTypeSpending,
		},
		{
			Title:       "Savings Potential",
			Description: "Based on your income, you could increase monthly savings by $300 without significant lifestyle changes.",
			ImpactScore: 85,
			Type:        models.InsightTypeSaving,
		},
		{
			Title:       "Subscription Audit",
			Description: "You have 5 active subscriptions totaling $45/month. Review if all are necessary.",
			ImpactScore: 60,
			Type:        models.InsightTypeSpending,
		},
		{
			Title:       "Income Growth",
			Description: "Adding a side income source could increase your savings rate by 40%.",
			ImpactScore: 90,
			Type:        models.InsightTypeIncome,
		},
	}
}

// initialProfile builds the employee profile from the template table.
func initialProfile() (*models.Profile, error) {
	tpl, ok := catalog.TemplateFor(models.ProfileTypeEmployee)
	if !ok {
		return nil, fmt.Errorf("missing employee profile template")
	}
	return &models.Profile{
		Type:           models.ProfileTypeEmployee,
		Income:         tpl.Income,
		SavingsTarget:  tpl.SavingsTarget,
		BudgetingStyle: tpl.BudgetingStyle,
	}, nil
}
