package main

import (
	"net/http"

	"github.com/baladi39/hippo-portal/internal/handler"
	mid "github.com/baladi39/hippo-portal/internal/middleware"
	"github.com/baladi39/hippo-portal/internal/repository"
	"github.com/baladi39/hippo-portal/internal/store"
	"github.com/baladi39/hippo-portal/internal/workitems"
	"github.com/baladi39/hippo-portal/pkg/config"
	"github.com/baladi39/hippo-portal/pkg/database"
	"github.com/baladi39/hippo-portal/pkg/jwtutil"
	"github.com/baladi39/hippo-portal/pkg/logger"
	"github.com/baladi39/hippo-portal/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration; config.Load reads .env before the environment
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting hippo-portal",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Connect to the database; the handle is injected downward, never global
	db, err := database.Connect(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Stores
	accountStore := store.NewAccountStore(db)
	planStore := store.NewPlanStore(db)
	carrierStore := store.NewCarrierStore(db)
	planTypeStore := store.NewPlanTypeStore(db)
	planConfigStore := store.NewPlanConfigStore(db)

	// Repositories
	workItems := workitems.NewStubProvider()
	accountsRepo := repository.NewAccountsRepo(accountStore, planStore, workItems, log)
	plansRepo := repository.NewPlansRepo(planStore, log)
	carriersRepo := repository.NewCarriersRepo(carrierStore, log)
	planTypesRepo := repository.NewPlanTypesRepo(planTypeStore, log)
	planConfigsRepo := repository.NewPlanConfigsRepo(planConfigStore, log)

	// Handlers
	accountHandler := handler.NewAccountHandler(accountsRepo, plansRepo)
	planHandler := handler.NewPlanHandler(plansRepo, accountsRepo, planConfigsRepo)
	carrierHandler := handler.NewCarrierHandler(carriersRepo)
	planTypeHandler := handler.NewPlanTypeHandler(planTypesRepo)
	planConfigHandler := handler.NewPlanConfigHandler(planConfigsRepo)
	wizardHandler := handler.NewWizardHandler(plansRepo, planTypesRepo)

	// Initialize Echo instance
	e := echo.New()
	e.Validator = handler.NewValidator()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth
	e.POST("/api/auth/login", handler.Login)

	// Account API routes
	accountAPI := e.Group("/api/accounts")
	accountAPI.GET("", accountHandler.ListAccounts)
	accountAPI.POST("", accountHandler.CreateAccount)
	accountAPI.GET("/with-plans", accountHandler.ListAccountsWithPlans)
	// Legacy pages address the dashboard by account name instead of id
	accountAPI.GET("/dashboard", accountHandler.GetAccountDashboard)
	accountAPI.GET("/:id", accountHandler.GetAccount)
	accountAPI.PUT("/:id", accountHandler.UpdateAccount)
	accountAPI.GET("/:id/plans", accountHandler.GetAccountPlans)
	accountAPI.GET("/:id/dashboard", accountHandler.GetAccountDashboard)

	// Plan API routes
	planAPI := e.Group("/api/plans")
	planAPI.GET("", planHandler.ListPlans)
	planAPI.POST("", planHandler.CreatePlan)
	planAPI.GET("/search", planHandler.SearchPlans)
	planAPI.GET("/upcoming-renewals", planHandler.GetUpcomingRenewals)
	planAPI.GET("/:id", planHandler.GetPlan)
	planAPI.PUT("/:id", planHandler.UpdatePlan)
	planAPI.DELETE("/:id", planHandler.DeletePlan)
	planAPI.PATCH("/:id/status", planHandler.UpdatePlanStatus)
	planAPI.GET("/:id/config", planHandler.GetPlanConfig)

	// Plan type API routes
	planTypeAPI := e.Group("/api/plan-types")
	planTypeAPI.GET("", planTypeHandler.ListPlanTypes)
	planTypeAPI.GET("/:id", planTypeHandler.GetPlanType)

	// Carrier API routes
	carrierAPI := e.Group("/api/carriers")
	carrierAPI.GET("", carrierHandler.ListCarriers)
	carrierAPI.POST("", carrierHandler.CreateCarrier)
	carrierAPI.GET("/:id", carrierHandler.GetCarrier)
	carrierAPI.PUT("/:id", carrierHandler.UpdateCarrier)
	carrierAPI.DELETE("/:id", carrierHandler.DeleteCarrier)

	// Plan config API routes
	planConfigAPI := e.Group("/api/plan-configs")
	planConfigAPI.GET("", planConfigHandler.GetPlanConfig)
	planConfigAPI.POST("", planConfigHandler.CreatePlanConfig)

	// Wizard API routes
	wizardAPI := e.Group("/api/wizard")
	wizardAPI.GET("/replace/:planId", wizardHandler.StartReplace)
	wizardAPI.POST("/replace/:planId/cancel", wizardHandler.CancelReplace)
	wizardAPI.POST("/validate", wizardHandler.Validate)
	wizardAPI.GET("/review", wizardHandler.Review)
	wizardAPI.POST("/save", wizardHandler.Save)

	// Dashboard
	e.GET("/api/dashboard/summary", accountHandler.GetDashboardSummary)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
