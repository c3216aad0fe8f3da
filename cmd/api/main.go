package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Frenzy29-SL/budget-vision-insights/internal/config"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/database"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/handlers"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/logger"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/middleware"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/seed"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/services"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/state"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/validator"

	_ "github.com/Frenzy29-SL/budget-vision-insights/internal/docs" // Import swagger docs
)

// @title           Budget Vision API
// @version         1.0
// @description     Budget Vision is a personal finance tracker: record income and expense transactions, set budgets and savings goals, and view derived analytics.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Open and seed the in-memory store. The store is volatile: every
	// process start begins from a fresh seed.
	dbManager, err := database.NewManager()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	seedOpts := seed.Options{Transactions: appConfig.SeedTransactions}
	if appConfig.SeedRandom != 0 {
		seedOpts.Rand = rand.New(rand.NewSource(appConfig.SeedRandom))
	}
	if err := seed.Run(dbManager.DB(), seedOpts); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	provider := state.NewProvider(state.Services{
		Transactions: services.NewTransactionService(db),
		Budgets:      services.NewBudgetService(db),
		Goals:        services.NewGoalService(db),
		Profile:      services.NewProfileService(db),
		Categories:   services.NewCategoryService(db),
		Insights:     services.NewInsightService(db),
		Analytics:    services.NewAnalyticsService(db),
	})

	// Surface every mutation outcome in the log
	provider.Subscribe(state.ListenerFunc(func(e state.Event) {
		log.Infow("notification", "level", e.Level, "title", e.Title, "message", e.Message)
	}))

	if err := provider.Load(); err != nil {
		return fmt.Errorf("failed to load initial state: %w", err)
	}

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(provider)
	budgetHandler := handlers.NewBudgetHandler(provider)
	goalHandler := handlers.NewGoalHandler(provider)
	profileHandler := handlers.NewProfileHandler(provider)
	catalogHandler := handlers.NewCatalogHandler(provider)
	analyticsHandler := handlers.NewAnalyticsHandler(provider)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "loading": provider.IsLoading()})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.PATCH("/:id/amount", transactionHandler.UpdateTransactionAmount)

	// Budget routes
	budgets := v1.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/category/:categoryId", budgetHandler.GetBudgetByCategory)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)

	// Goal routes
	goals := v1.Group("/goals")
	goals.GET("", goalHandler.GetGoals)
	goals.POST("", goalHandler.CreateGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.POST("/:id/contribute", goalHandler.ContributeToGoal)

	// Profile routes
	profile := v1.Group("/profile")
	profile.GET("", profileHandler.GetProfile)
	profile.PUT("/type", profileHandler.SetProfileType)
	profile.PUT("/income", profileHandler.UpdateIncome)

	// Catalog routes
	v1.GET("/categories", catalogHandler.GetCategories)
	v1.GET("/insights", catalogHandler.GetInsights)

	// Analytics routes
	analytics := v1.Group("/analytics")
	analytics.GET("/expenses-by-category", analyticsHandler.ExpensesByCategory)
	analytics.GET("/income-vs-expense", analyticsHandler.IncomeVsExpense)
	analytics.GET("/monthly-trends", analyticsHandler.MonthlyTrends)
	analytics.GET("/daily-spendings", analyticsHandler.DailySpendings)
	analytics.GET("/savings-projection", analyticsHandler.ProjectSavings)

	log.Infof("Starting Budget Vision backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
