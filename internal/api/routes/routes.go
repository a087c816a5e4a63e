package routes

import (
	"continuous-improvement-backend/internal/api/handlers"
	"continuous-improvement-backend/internal/api/middleware"
	"continuous-improvement-backend/internal/config"
	"continuous-improvement-backend/internal/logger"
	"continuous-improvement-backend/internal/mail"
	"continuous-improvement-backend/internal/repository"
	"continuous-improvement-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	return SetupRoutesWithSender(db, cfg, newSender(cfg))
}

// SetupRoutesWithSender configures the routes using the given notification sender
func SetupRoutesWithSender(db *gorm.DB, cfg *config.Config, sender service.NotificationSenderInterface) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := service.NewValidator()

	// Initialize repositories
	ideaRepo := repository.NewIdeaRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	championRepo := repository.NewChampionRepository(db)

	// Initialize services
	ideaService := service.NewIdeaService(ideaRepo, statusRepo, categoryRepo, championRepo, sender, validator)
	catalogService := service.NewCatalogService(statusRepo, championRepo, categoryRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	ideaHandler := handlers.NewIdeaHandler(ideaService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(cfg.BasePath)
	{
		ideas := api.Group("/ideas")
		{
			ideas.GET("", ideaHandler.ListIdeas)
			ideas.GET("/:id", ideaHandler.GetIdea)
			ideas.POST("", ideaHandler.RegisterIdea)
			ideas.POST("/export", ideaHandler.ExportIdeas)
			ideas.POST("/champions", ideaHandler.AssignChampions)
			ideas.PUT("/:id", ideaHandler.UpdateIdea)
			ideas.DELETE("/:id", ideaHandler.DeleteIdea)
		}

		api.GET("/statuses", catalogHandler.ListStatuses)
		api.GET("/champions", catalogHandler.ListChampions)
		api.GET("/categories", catalogHandler.ListCategories)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(string(logger.RequestIDKey)),
		})
	})

	return router
}

func newSender(cfg *config.Config) service.NotificationSenderInterface {
	if !cfg.MailEnabled() {
		logger.New().Warn("SMTP_HOST is not set, champion notifications will only be logged")
		return mail.NewLogSender()
	}
	return mail.NewSMTPSender(cfg.Mail())
}
