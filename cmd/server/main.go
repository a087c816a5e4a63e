package main

import (
	"log"

	"continuous-improvement-backend/internal/api/routes"
	"continuous-improvement-backend/internal/config"
	"continuous-improvement-backend/internal/database"
	"continuous-improvement-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "continuous-improvement-backend/docs" // This is needed for swag
)

//	@title			Continuous Improvement API
//	@version		1.0
//	@description	Back-office API for continuous improvement ideas: registration, listing, update, deletion, champion assignment with email notification, and spreadsheet export.

//	@contact.name	Continuous Improvement Team

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1/continuous-improvement

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
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	logrus.WithFields(logrus.Fields{
		"port":         cfg.Port,
		"base_path":    cfg.BasePath,
		"mail_enabled": cfg.MailEnabled(),
	}).Info("Starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
