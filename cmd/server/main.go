package main

import (
	"log"

	"maturity-tracker-backend/internal/api/routes"
	"maturity-tracker-backend/internal/auth"
	"maturity-tracker-backend/internal/config"
	"maturity-tracker-backend/internal/database"
	"maturity-tracker-backend/internal/logger"
	"maturity-tracker-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "maturity-tracker-backend/docs" // This is needed for swag
)

//	@title			Maturity Tracker API
//	@version		1.0
//	@description	Backend API for tracking the operational maturity of services: maturity models, assessment campaigns, per-measurement evaluations and roll-up summaries.

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Connect(cfg, false)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, auth.DefaultTokenTTL)
	if err != nil {
		logrus.Fatal("Failed to initialize token service:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, metrics.New(), tokens)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.WithField("driver", cfg.DatabaseDriver).Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
