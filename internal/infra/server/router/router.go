// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	sessionController      *controller.SessionController
	transactionController  *controller.TransactionController
	assetController        *controller.AssetController
	goalController         *controller.GoalController
	categoryController     *controller.CategoryController
	dashboardController    *controller.DashboardController
	analyticsController    *controller.AnalyticsController
	insightsController     *controller.InsightsController
	portfolioController    *controller.PortfolioController
	gamificationController *controller.GamificationController
	preferencesController  *controller.PreferencesController
	sessionRateLimiter     *middleware.RateLimiter
	accessLockMiddleware   *middleware.AccessLockMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	sessionController *controller.SessionController,
	transactionController *controller.TransactionController,
	assetController *controller.AssetController,
	goalController *controller.GoalController,
	categoryController *controller.CategoryController,
	dashboardController *controller.DashboardController,
	analyticsController *controller.AnalyticsController,
	insightsController *controller.InsightsController,
	portfolioController *controller.PortfolioController,
	gamificationController *controller.GamificationController,
	preferencesController *controller.PreferencesController,
	sessionRateLimiter *middleware.RateLimiter,
	accessLockMiddleware *middleware.AccessLockMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		sessionController:      sessionController,
		transactionController:  transactionController,
		assetController:        assetController,
		goalController:         goalController,
		categoryController:     categoryController,
		dashboardController:    dashboardController,
		analyticsController:    analyticsController,
		insightsController:     insightsController,
		portfolioController:    portfolioController,
		gamificationController: gamificationController,
		preferencesController:  preferencesController,
		sessionRateLimiter:     sessionRateLimiter,
		accessLockMiddleware:   accessLockMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. The session route stays
// outside the access lock; everything else requires a token when the lock is
// enabled.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Passcode exchange (rate limited, never behind the lock)
		if r.sessionController != nil && r.sessionRateLimiter != nil {
			v1.POST("/session", r.sessionRateLimiter.Middleware(), r.sessionController.Create)
		}

		locked := v1.Group("")
		if r.accessLockMiddleware != nil {
			locked.Use(r.accessLockMiddleware.Authenticate())
		}

		if r.transactionController != nil {
			transactions := locked.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.assetController != nil {
			assets := locked.Group("/assets")
			{
				assets.GET("", r.assetController.List)
				assets.POST("", r.assetController.Create)
				assets.PATCH("/:id", r.assetController.Update)
				assets.DELETE("/:id", r.assetController.Delete)
			}
		}

		if r.goalController != nil {
			goals := locked.Group("/goals")
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		if r.categoryController != nil {
			locked.GET("/categories", r.categoryController.List)
		}

		if r.dashboardController != nil {
			locked.GET("/dashboard/summary", r.dashboardController.Summary)
		}

		if r.analyticsController != nil {
			analytics := locked.Group("/analytics")
			{
				analytics.GET("/breakdown", r.analyticsController.Breakdown)
				analytics.GET("/comparison", r.analyticsController.Comparison)
				analytics.GET("/heatmap", r.analyticsController.Heatmap)
				analytics.GET("/needs-wants", r.analyticsController.NeedsWants)
				analytics.GET("/inflation", r.analyticsController.Inflation)
			}
		}

		if r.insightsController != nil {
			insights := locked.Group("/insights")
			{
				insights.GET("", r.insightsController.Get)
				insights.POST("/email", r.insightsController.SendEmail)
			}
		}

		if r.portfolioController != nil {
			portfolio := locked.Group("/portfolio")
			{
				portfolio.GET("/summary", r.portfolioController.Summary)
				portfolio.GET("/drift", r.portfolioController.Drift)
				portfolio.GET("/recommendations", r.portfolioController.Recommendations)
			}
		}

		if r.gamificationController != nil {
			locked.GET("/gamification", r.gamificationController.Get)
		}

		if r.preferencesController != nil {
			preferences := locked.Group("/preferences")
			{
				preferences.GET("", r.preferencesController.Get)
				preferences.PATCH("", r.preferencesController.Update)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
