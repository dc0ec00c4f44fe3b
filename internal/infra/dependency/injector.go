// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/finance-dashboard/backend/config"
	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/application/usecase/analytics"
	"github.com/finance-dashboard/backend/internal/application/usecase/asset"
	"github.com/finance-dashboard/backend/internal/application/usecase/category"
	"github.com/finance-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/finance-dashboard/backend/internal/application/usecase/gamification"
	"github.com/finance-dashboard/backend/internal/application/usecase/goal"
	"github.com/finance-dashboard/backend/internal/application/usecase/insights"
	"github.com/finance-dashboard/backend/internal/application/usecase/portfolio"
	"github.com/finance-dashboard/backend/internal/application/usecase/preferences"
	"github.com/finance-dashboard/backend/internal/application/usecase/session"
	"github.com/finance-dashboard/backend/internal/application/usecase/transaction"
	"github.com/finance-dashboard/backend/internal/infra/server/router"
	"github.com/finance-dashboard/backend/internal/integration/adapters"
	"github.com/finance-dashboard/backend/internal/integration/email"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-dashboard/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired
// on top of the given key-value store.
func NewInjector(cfg *config.Config, kv adapter.KeyValueStore, storeHealthChecker func() bool) *Injector {
	// Create stores over the key-value backend
	transactionStore := persistence.NewTransactionStore(kv)
	assetStore := persistence.NewAssetStore(kv)
	goalStore := persistence.NewGoalStore(kv)
	categoryStore := persistence.NewCategoryStore(kv)
	mappingStore := persistence.NewMappingStore(kv)
	preferenceStore := persistence.NewPreferenceStore(kv)

	// Create adapters/services
	passcodeService := adapters.NewPasscodeService()
	tokenService := adapters.NewTokenService(cfg.AccessLock.JWTSecret, cfg.AccessLock.TokenExpiry)
	advisorService := adapters.NewGeminiService(cfg.Advisor.APIKey)
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionStore)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionStore, categoryStore, mappingStore)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionStore, mappingStore)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionStore)

	// Create asset use cases
	listAssetsUseCase := asset.NewListAssetsUseCase(assetStore)
	createAssetUseCase := asset.NewCreateAssetUseCase(assetStore)
	updateAssetUseCase := asset.NewUpdateAssetUseCase(assetStore)
	deleteAssetUseCase := asset.NewDeleteAssetUseCase(assetStore)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalStore)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalStore)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalStore)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalStore)

	// Create remaining use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryStore)
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionStore, assetStore, nil)
	analyticsUseCase := analytics.NewAnalyticsUseCase(transactionStore, nil)
	portfolioUseCase := portfolio.NewPortfolioUseCase(assetStore)
	getInsightsUseCase := insights.NewGetInsightsUseCase(transactionStore, assetStore, advisorService, nil)
	emailReportUseCase := insights.NewEmailReportUseCase(transactionStore, emailSender, cfg.Email.Recipient, nil)
	getGamificationUseCase := gamification.NewGetGamificationUseCase(transactionStore, goalStore, nil)
	getPreferencesUseCase := preferences.NewGetPreferencesUseCase(preferenceStore)
	updatePreferencesUseCase := preferences.NewUpdatePreferencesUseCase(preferenceStore)
	createSessionUseCase := session.NewCreateSessionUseCase(cfg.AccessLock.PasscodeHash, passcodeService, tokenService)

	// Create controllers
	healthController := controller.NewHealthController(storeHealthChecker)
	sessionController := controller.NewSessionController(createSessionUseCase)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	assetController := controller.NewAssetController(
		listAssetsUseCase,
		createAssetUseCase,
		updateAssetUseCase,
		deleteAssetUseCase,
	)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)
	categoryController := controller.NewCategoryController(listCategoriesUseCase)
	dashboardController := controller.NewDashboardController(getSummaryUseCase)
	analyticsController := controller.NewAnalyticsController(analyticsUseCase)
	insightsController := controller.NewInsightsController(getInsightsUseCase, emailReportUseCase)
	portfolioController := controller.NewPortfolioController(portfolioUseCase)
	gamificationController := controller.NewGamificationController(getGamificationUseCase)
	preferencesController := controller.NewPreferencesController(getPreferencesUseCase, updatePreferencesUseCase)

	// Create middleware
	// Use higher rate limits in test environments to prevent flaky tests
	var sessionRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		sessionRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		sessionRateLimiter = middleware.NewRateLimiter()
	}
	accessLockMiddleware := middleware.NewAccessLockMiddleware(tokenService, cfg.AccessLock.PasscodeHash != "")

	// Create router
	r := router.NewRouter(
		healthController,
		sessionController,
		transactionController,
		assetController,
		goalController,
		categoryController,
		dashboardController,
		analyticsController,
		insightsController,
		portfolioController,
		gamificationController,
		preferencesController,
		sessionRateLimiter,
		accessLockMiddleware,
	)

	return &Injector{
		Config: cfg,
		Router: r,
	}
}
