// Package state distributes the store to consumers. The Provider
// holds a cached snapshot of every collection, refreshed after each
// mutation, and pushes a success or failure notification to
// subscribed listeners for every mutation outcome. Reads never touch
// the store; analytics pass straight through and are recomputed live.
package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/pagination"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/services"
)

// EventLevel classifies a mutation outcome notification.
type EventLevel string

const (
	EventLevelSuccess EventLevel = "success"
	EventLevelError   EventLevel = "error"
)

// Event is a user-facing notification emitted after every mutation.
type Event struct {
	Level   EventLevel `json:"level"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
}

// Listener receives mutation outcome events.
type Listener interface {
	Notify(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// Notify implements Listener.
func (f ListenerFunc) Notify(e Event) { f(e) }

// Services bundles the service layer the provider distributes.
type Services struct {
	Transactions services.TransactionServicer
	Budgets      services.BudgetServicer
	Goals        services.GoalServicer
	Profile      services.ProfileServicer
	Categories   services.CategoryServicer
	Insights     services.InsightServicer
	Analytics    services.AnalyticsServicer
}

// Provider composes the service layer with a cached snapshot of each
// collection. The HTTP server calls it from concurrent handlers, so
// snapshot access is guarded by a read-write lock; the underlying
// store itself only ever sees serialized writes through the services.
type Provider struct {
	svcs Services

	mu           sync.RWMutex
	transactions []models.Transaction
	budgets      []models.Budget
	goals        []models.Goal
	insights     []models.FinancialInsight
	categories   []models.Category
	profile      *models.Profile
	loading      bool

	listenerMu sync.RWMutex
	listeners  []Listener
}

// NewProvider creates a provider over the given services. Call Load
// before serving reads.
func NewProvider(svcs Services) *Provider {
	return &Provider{svcs: svcs, loading: true}
}

// Subscribe registers a listener for mutation outcome events.
func (p *Provider) Subscribe(l Listener) {
	p.listenerMu.Lock()
	defer p.listenerMu.Unlock()
	p.listeners = append(p.listeners, l)
}

func (p *Provider) notify(e Event) {
	p.listenerMu.RLock()
	listeners := make([]Listener, len(p.listeners))
	copy(listeners, p.listeners)
	p.listenerMu.RUnlock()

	for _, l := range listeners {
		l.Notify(e)
	}
}

func (p *Provider) notifyError(title string, err error) {
	p.notify(Event{Level: EventLevelError, Title: title, Message: err.Error()})
}

// Load performs the one synchronous initial read of every collection.
// IsLoading reports true until it completes.
func (p *Provider) Load() error {
	transactions, err := p.svcs.Transactions.GetAllTransactions()
	if err != nil {
		return err
	}
	budgets, err := p.svcs.Budgets.GetAllBudgets()
	if err != nil {
		return err
	}
	goals, err := p.svcs.Goals.GetAllGoals()
	if err != nil {
		return err
	}
	insights, err := p.svcs.Insights.GetAllInsights()
	if err != nil {
		return err
	}
	categories, err := p.svcs.Categories.GetAllCategories()
	if err != nil {
		return err
	}
	profile, err := p.svcs.Profile.GetProfile()
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.transactions = transactions
	p.budgets = budgets
	p.goals = goals
	p.insights = insights
	p.categories = categories
	p.profile = profile
	p.loading = false
	return nil
}

// IsLoading reports whether the initial load has completed.
func (p *Provider) IsLoading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// Transactions returns the cached transaction log, most recent first.
func (p *Provider) Transactions() []models.Transaction {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]models.Transaction(nil), p.transactions...)
}

// Budgets returns the cached budgets.
func (p *Provider) Budgets() []models.Budget {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]models.Budget(nil), p.budgets...)
}

// Goals returns the cached goals in creation order.
func (p *Provider) Goals() []models.Goal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]models.Goal(nil), p.goals...)
}

// Insights returns the cached insight set.
func (p *Provider) Insights() []models.FinancialInsight {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]models.FinancialInsight(nil), p.insights...)
}

// Categories returns the cached category catalog.
func (p *Provider) Categories() []models.Category {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]models.Category(nil), p.categories...)
}

// Profile returns the cached active profile.
func (p *Provider) Profile() *models.Profile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.profile == nil {
		return nil
	}
	profile := *p.profile
	return &profile
}

// AddTransaction records a transaction and prepends it to the cached
// log.
func (p *Provider) AddTransaction(
	amount int64,
	categoryID string,
	date time.Time,
	description string,
	transactionType models.TransactionType,
) (*models.Transaction, error) {
	transaction, err := p.svcs.Transactions.CreateTransaction(amount, categoryID, date, description, transactionType)
	if err != nil {
		p.notifyError("Error adding transaction", err)
		return nil, err
	}

	p.mu.Lock()
	p.transactions = append([]models.Transaction{*transaction}, p.transactions...)
	p.mu.Unlock()

	kind := "Expense"
	if transaction.Type == models.TransactionTypeIncome {
		kind = "Income"
	}
	p.notify(Event{
		Level:   EventLevelSuccess,
		Title:   "Transaction added",
		Message: fmt.Sprintf("%s of $%.2f recorded.", kind, float64(transaction.Amount)/100),
	})
	return transaction, nil
}

// UpdateTransactionAmount overwrites one transaction's amount and
// refreshes the cached entry.
func (p *Provider) UpdateTransactionAmount(transactionID string, amount int64) (*models.Transaction, error) {
	transaction, err := p.svcs.Transactions.UpdateTransactionAmount(transactionID, amount)
	if err != nil {
		p.notifyError("Error updating transaction", err)
		return nil, err
	}

	p.mu.Lock()
	for i := range p.transactions {
		if p.transactions[i].ID == transaction.ID {
			p.transactions[i] = *transaction
			break
		}
	}
	p.mu.Unlock()

	p.notify(Event{
		Level:   EventLevelSuccess,
		Title:   "Transaction updated",
		Message: fmt.Sprintf("Amount changed to $%.2f.", float64(transaction.Amount)/100),
	})
	return transaction, nil
}

// UpdateBudget replaces a budget wholesale and refreshes the cached
// entry.
func (p *Provider) UpdateBudget(budget models.Budget) (*models.Budget, error) {
	updated, err := p.svcs.Budgets.UpdateBudget(budget)
	if err != nil {
		p.notifyError("Error updating budget", err)
		return nil, err
	}

	p.mu.Lock()
	for i := range p.budgets {
		if p.budgets[i].ID == updated.ID {
			p.budgets[i] = *updated
			break
		}
	}
	p.mu.Unlock()

	p.notify(Event{
		Level:   EventLevelSuccess,
		Title:   "Budget updated",
		Message: fmt.Sprintf("Your budget for %s has been updated.", updated.CategoryID),
	})
	return updated, nil
}

// AddGoal records a goal and appends it to the cached list, keeping
// creation order.
func (p *Provider) AddGoal(
	name string,
	targetAmount, currentAmount int64,
	deadline *time.Time,
	priority models.GoalPriority,
) (*models.Goal, error) {
	goal, err := p.svcs.Goals.CreateGoal(name, targetAmount, currentAmount, deadline, priority)
	if err != nil {
		p.notifyError("Error adding goal", err)
		return nil, err
	}

	p.mu.Lock()
	p.goals = append(p.goals, *goal)
	p.mu.Unlock()

	p.notify(Event{
		Level:   EventLevelSuccess,
		Title:   "Savings goal added",
		Message: fmt.Sprintf("New goal %q has been created.", goal.Name),
	})
	return goal, nil
}

// UpdateGoal replaces a goal wholesale and refreshes the cached entry.
func (p *Provider) UpdateGoal(goal models.Goal) (*models.Goal, error) {
	updated, err := p.svcs.Goals.UpdateGoal(goal)
	if err != nil {
		p.notifyError("Error updating goal", err)
		return nil, err
	}

	p.mu.Lock()
	for i := range p.goals {
		if p.goals[i].ID == updated.ID {
			p.goals[i] = *updated
			break
		}
	}
	p.mu.Unlock()

	p.notify(Event{
		Level:   EventLevelSuccess,
		Title:   "Goal updated",
		Message: fmt.Sprintf("Your goal %q has been updated.", updated.Name),
	})
	return updated, nil
}

// ContributeToGoal adds to a goal's progress and refreshes the cached
// entry.
func (p *Provider) ContributeToGoal(goalID string, amount int64) (*models.Goal, error) {
	updated, err := p.svcs.Goals.ContributeToGoal(goalID, amount)
	if err != nil {
		p.notifyError("Error contributing to goal", err)
		return nil, err
	}

	p.mu.Lock()
	for i := range p.goals {
		if p.goals[i].ID == updated.ID {
			p.goals[i] = *updated
			break
		}
	}
	p.mu.Unlock()

	p.notify(Event{
		Level:   EventLevelSuccess,
		Title:   "Contribution recorded",
		Message: fmt.Sprintf("Added $%.2f to %q.", float64(amount)/100, updated.Name),
	})
	return updated, nil
}

// SetProfileType resets the profile from the template for the given
// type and replaces the cached profile and category set.
func (p *Provider) SetProfileType(profileType models.ProfileType) (*models.Profile, error) {
	profile, err := p.svcs.Profile.SetProfileType(profileType)
	if err != nil {
		p.notifyError("Error changing profile", err)
		return nil, err
	}

	p.mu.Lock()
	p.profile = profile
	p.mu.Unlock()

	p.notify(Event{
		Level:   EventLevelSuccess,
		Title:   "Profile changed",
		Message: fmt.Sprintf("Your profile has been updated to %s.", profile.Type),
	})
	return profile, nil
}

// UpdateProfileIncome edits the profile's income and refreshes the
// cached profile.
func (p *Provider) UpdateProfileIncome(amount int64) (*models.Profile, error) {
	profile, err := p.svcs.Profile.UpdateIncome(amount)
	if err != nil {
		p.notifyError("Error updating income", err)
		return nil, err
	}

	p.mu.Lock()
	p.profile = profile
	p.mu.Unlock()

	p.notify(Event{
		Level:   EventLevelSuccess,
		Title:   "Income updated",
		Message: fmt.Sprintf("Monthly income set to $%.2f.", float64(profile.Income)/100),
	})
	return profile, nil
}

// SearchTransactions passes a filtered, paginated query straight to
// the store.
func (p *Provider) SearchTransactions(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	return p.svcs.Transactions.SearchTransactions(page, filter)
}

// BudgetProgress passes a progress computation straight to the store.
func (p *Provider) BudgetProgress(budgetID string) (*services.BudgetProgress, error) {
	return p.svcs.Budgets.GetBudgetProgress(budgetID)
}

// BudgetByCategory passes a category lookup straight to the store.
func (p *Provider) BudgetByCategory(categoryID string) (*models.Budget, error) {
	return p.svcs.Budgets.GetBudgetByCategory(categoryID)
}

// CategoriesByType passes a catalog filter straight to the store.
func (p *Provider) CategoriesByType(categoryType models.CategoryType) ([]models.Category, error) {
	return p.svcs.Categories.GetCategoriesByType(categoryType)
}

// ExpensesByCategory recomputes the per-category expense sums.
func (p *Provider) ExpensesByCategory() (map[string]int64, error) {
	return p.svcs.Analytics.ExpensesByCategory()
}

// IncomeVsExpense recomputes the total income and expense.
func (p *Provider) IncomeVsExpense() (*services.IncomeVsExpense, error) {
	return p.svcs.Analytics.IncomeVsExpense()
}

// MonthlyTrends recomputes the six-month trend series.
func (p *Provider) MonthlyTrends() ([]services.MonthlyTrend, error) {
	return p.svcs.Analytics.MonthlyTrends()
}

// DailySpendings recomputes the fourteen-day spending series.
func (p *Provider) DailySpendings() ([]services.DailySpending, error) {
	return p.svcs.Analytics.DailySpendings()
}

// ProjectSavings recomputes the savings projection.
func (p *Provider) ProjectSavings(months int) (int64, error) {
	return p.svcs.Analytics.ProjectSavings(months)
}
