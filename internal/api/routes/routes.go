package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"hirebridge/internal/api/handlers"
	"hirebridge/internal/api/middleware"
	"hirebridge/internal/catalog"
	"hirebridge/internal/config"
	"hirebridge/internal/dispatch"
	"hirebridge/internal/interview/session"
	"hirebridge/internal/llm"
	"hirebridge/internal/matcher"
	"hirebridge/internal/profile"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	extractor *profile.Extractor,
	llmManager *llm.Manager,
	store session.Store,
	cat *catalog.Catalog,
	m *matcher.Matcher,
	d *dispatch.Dispatcher,
) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Selective timeout: default for most endpoints, longer for the
	// LLM-backed interview endpoints
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager, cat))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager, cat))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		v1.POST("/profile/analyze", handlers.AnalyzeProfileHandler(extractor))

		interview := v1.Group("/interview")
		{
			interview.POST("/questions", handlers.GenerateQuestionsHandler(llmManager, store))
			interview.POST("/evaluate", handlers.EvaluateAnswersHandler(llmManager, store))
			interview.GET("/verification/:session_id", handlers.GetVerificationHandler(store))
		}

		jobs := v1.Group("/jobs")
		{
			jobs.GET("", handlers.ListJobsHandler(cat))
			jobs.POST("/load", handlers.LoadCatalogHandler(cfg, cat))
			jobs.POST("/match", handlers.MatchJobsHandler(m))
		}

		v1.POST("/applications/dispatch", handlers.DispatchApplicationsHandler(d))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "HireBridge",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
