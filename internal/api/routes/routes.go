package routes

import (
	"maturity-tracker-backend/internal/api/handlers"
	"maturity-tracker-backend/internal/api/middleware"
	"maturity-tracker-backend/internal/auth"
	"maturity-tracker-backend/internal/config"
	"maturity-tracker-backend/internal/database"
	"maturity-tracker-backend/internal/database/models"
	"maturity-tracker-backend/internal/metrics"
	"maturity-tracker-backend/internal/repository"
	"maturity-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, m *metrics.Metrics, tokens *auth.TokenService) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(m))
	}

	// Initialize validator
	validate := service.NewValidator()
	tx := database.NewTxManager(db)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	modelRepo := repository.NewMaturityModelRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)

	// Initialize services
	campaignService := service.NewCampaignService(tx, campaignRepo, evaluationRepo, modelRepo, serviceRepo, userRepo, validate, m)
	evaluationService := service.NewEvaluationService(tx, evaluationRepo, campaignRepo, serviceRepo, validate, m)
	summaryService := service.NewSummaryService(summaryRepo, campaignRepo, modelRepo)
	catalogService := service.NewCatalogService(tx, modelRepo, categoryRepo, campaignRepo, userRepo, validate)
	rosterService := service.NewRosterService(teamRepo, serviceRepo, userRepo, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	campaignHandler := handlers.NewCampaignHandler(campaignService, summaryService)
	evaluationHandler := handlers.NewEvaluationHandler(evaluationService)
	modelHandler := handlers.NewMaturityModelHandler(catalogService)
	categoryHandler := handlers.NewCategoryHandler(catalogService)
	teamHandler := handlers.NewTeamHandler(rosterService)
	serviceHandler := handlers.NewServiceHandler(rosterService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(auth.NewAuthMiddleware(tokens).RequireAuth())

	admin := auth.RequireRole(models.UserRoleAdmin)
	owners := auth.RequireRole(models.UserRoleAdmin, models.UserRoleTeamOwner)

	campaigns := v1.Group("/campaigns")
	{
		campaigns.GET("", campaignHandler.ListCampaigns)
		campaigns.POST("", owners, campaignHandler.CreateCampaign)
		campaigns.GET("/:id", campaignHandler.GetCampaign)
		campaigns.PUT("/:id", owners, campaignHandler.UpdateCampaign)
		campaigns.PATCH("/:id/status", owners, campaignHandler.UpdateCampaignStatus)
		campaigns.DELETE("/:id", admin, campaignHandler.DeleteCampaign)
		campaigns.GET("/:id/summary", campaignHandler.GetSummary)
		campaigns.GET("/:id/summary/services", campaignHandler.GetServiceSummary)
		campaigns.GET("/:id/summary/teams", campaignHandler.GetTeamSummary)
		campaigns.GET("/:id/summary/categories", campaignHandler.GetCategorySummary)
		campaigns.POST("/:id/participants", owners, campaignHandler.AddParticipant)
		campaigns.DELETE("/:id/participants/:serviceId", owners, campaignHandler.RemoveParticipant)
	}

	evaluations := v1.Group("/evaluations")
	{
		evaluations.GET("/campaign/:campaignId/service/:serviceId", evaluationHandler.ListEvaluations)
		evaluations.POST("/campaign/:campaignId/service/:serviceId/bulk", admin, evaluationHandler.BulkUpdate)
		evaluations.PUT("/:id", admin, evaluationHandler.UpdateEvaluation)
		evaluations.GET("/:id/history", evaluationHandler.GetHistory)
	}

	maturityModels := v1.Group("/maturity-models")
	{
		maturityModels.GET("", modelHandler.ListModels)
		maturityModels.POST("", admin, modelHandler.CreateModel)
		maturityModels.GET("/:id", modelHandler.GetModel)
		maturityModels.PUT("/:id", admin, modelHandler.UpdateModel)
		maturityModels.DELETE("/:id", admin, modelHandler.DeleteModel)
		maturityModels.POST("/:id/measurements", admin, modelHandler.AddMeasurement)
		maturityModels.PUT("/:id/rules", admin, modelHandler.UpdateLevelRules)
	}

	v1.GET("/categories", categoryHandler.ListCategories)

	teams := v1.Group("/teams")
	{
		teams.GET("", teamHandler.ListTeams)
		teams.POST("", owners, teamHandler.CreateTeam)
		teams.GET("/:id", teamHandler.GetTeam)
		teams.PUT("/:id", owners, teamHandler.UpdateTeam)
		teams.DELETE("/:id", admin, teamHandler.DeleteTeam)
	}

	services := v1.Group("/services")
	{
		services.GET("", serviceHandler.ListServices)
		services.POST("", owners, serviceHandler.CreateService)
		services.GET("/:id", serviceHandler.GetService)
		services.PUT("/:id", owners, serviceHandler.UpdateService)
		services.DELETE("/:id", admin, serviceHandler.DeleteService)
	}

	return router
}
