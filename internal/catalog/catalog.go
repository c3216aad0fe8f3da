// Package catalog holds the fixed category catalog and the profile
// template table. Both are static data: the catalog is written into
// the store once at seed time, and the templates drive every profile
// type switch.
package catalog

import "github.com/Frenzy29-SL/budget-vision-insights/internal/models"

// Categories is the full fixed category catalog. IDs are stable slugs
// referenced by transactions, budgets, and profile templates.
var Categories = []models.Category{
	// Income categories
	{ID: "salary", Name: "Salary", Color: "#22C55E", Type: models.CategoryTypeIncome, Icon: "briefcase"},
	{ID: "freelance", Name: "Freelance", Color: "#3B82F6", Type: models.CategoryTypeIncome, Icon: "code"},
	{ID: "investments", Name: "Investments", Color: "#A855F7", Type: models.CategoryTypeIncome, Icon: "trending-up"},
	{ID: "gifts", Name: "Gifts", Color: "#EAB308", Type: models.CategoryTypeIncome, Icon: "gift"},
	{ID: "other_income", Name: "Other", Color: "#6B7280", Type: models.CategoryTypeIncome, Icon: "dollar-sign"},

	// Expense categories
	{ID: "housing", Name: "Housing", Color: "#EF4444", Type: models.CategoryTypeExpense, Icon: "home"},
	{ID: "food", Name: "Food", Color: "#F97316", Type: models.CategoryTypeExpense, Icon: "utensils"},
	{ID: "transport", Name: "Transport", Color: "#3B82F6", Type: models.CategoryTypeExpense, Icon: "car"},
	{ID: "healthcare", Name: "Healthcare", Color: "#22C55E", Type: models.CategoryTypeExpense, Icon: "pill"},
	{ID: "entertainment", Name: "Entertainment", Color: "#A855F7", Type: models.CategoryTypeExpense, Icon: "film"},
	{ID: "shopping", Name: "Shopping", Color: "#EAB308", Type: models.CategoryTypeExpense, Icon: "shopping-bag"},
	{ID: "education", Name: "Education", Color: "#3B82F6", Type: models.CategoryTypeExpense, Icon: "book-open"},
	{ID: "utilities", Name: "Utilities", Color: "#EF4444", Type: models.CategoryTypeExpense, Icon: "zap"},
	{ID: "subscriptions", Name: "Subscriptions", Color: "#A855F7", Type: models.CategoryTypeExpense, Icon: "credit-card"},
	{ID: "misc", Name: "Miscellaneous", Color: "#6B7280", Type: models.CategoryTypeExpense, Icon: "package"},
}

// CategoriesByType returns the catalog entries of the given type.
func CategoriesByType(t models.CategoryType) []models.Category {
	var result []models.Category
	for _, c := range Categories {
		if c.Type == t {
			result = append(result, c)
		}
	}
	return result
}

// FindCategory returns the catalog entry with the given ID, or false.
func FindCategory(id string) (models.Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// ProfileTemplate describes the wholesale reset applied when the
// profile switches to a given type. Amounts are in cents. A nil
// CategoryIDs means the full catalog is visible.
type ProfileTemplate struct {
	Income         int64
	SavingsTarget  int64
	BudgetingStyle models.BudgetingStyle
	CategoryIDs    []string
}

// profileTemplates is the fixed template table keyed by profile type.
// Income categories are always visible; expense visibility varies by
// archetype.
var profileTemplates = map[models.ProfileType]ProfileTemplate{
	models.ProfileTypeEmployee: {
		Income:         400000,
		SavingsTarget:  100000,
		BudgetingStyle: models.BudgetingStyleModerate,
		CategoryIDs:    nil,
	},
	models.ProfileTypeStudent: {
		Income:         120000,
		SavingsTarget:  20000,
		BudgetingStyle: models.BudgetingStyleConservative,
		CategoryIDs: []string{
			"salary", "freelance", "investments", "gifts", "other_income",
			"food", "transport", "education", "entertainment", "misc",
		},
	},
	models.ProfileTypeHousewife: {
		Income:         250000,
		SavingsTarget:  50000,
		BudgetingStyle: models.BudgetingStyleModerate,
		CategoryIDs: []string{
			"salary", "gifts", "other_income",
			"housing", "food", "transport", "healthcare", "entertainment",
			"shopping", "education", "utilities", "subscriptions", "misc",
		},
	},
	models.ProfileTypeOther: {
		Income:         200000,
		SavingsTarget:  30000,
		BudgetingStyle: models.BudgetingStyleModerate,
		CategoryIDs:    nil,
	},
}

// TemplateFor returns the profile template for the given type.
func TemplateFor(t models.ProfileType) (ProfileTemplate, bool) {
	tpl, ok := profileTemplates[t]
	return tpl, ok
}

// TemplateCategories resolves a template's visible category set
// against the catalog.
func TemplateCategories(tpl ProfileTemplate) []models.Category {
	if tpl.CategoryIDs == nil {
		result := make([]models.Category, len(Categories))
		copy(result, Categories)
		return result
	}
	allowed := make(map[string]bool, len(tpl.CategoryIDs))
	for _, id := range tpl.CategoryIDs {
		allowed[id] = true
	}
	var result []models.Category
	for _, c := range Categories {
		if allowed[c.ID] {
			result = append(result, c)
		}
	}
	return result
}
