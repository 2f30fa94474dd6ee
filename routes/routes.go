package routes

import (
	"houselyzer/config"
	"houselyzer/controllers"
	"houselyzer/middleware"
	"houselyzer/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter создаёт gin.Engine, регистрирует все маршруты и возвращает роутер
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	// CORS ДО роутов - фронтенд ходит и с localhost, и с хостинга
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8081", "https://houselyzer.app"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	cfg := config.LoadConfig()

	propertyController := controllers.NewPropertyController()
	commentController := controllers.NewCommentController()
	mortgageController := controllers.NewMortgageController()
	settingsController := controllers.NewSettingsController()
	importController := controllers.NewImportController(services.NewPropertyImporter(cfg))
	scrapeController := controllers.NewScrapeController(services.NewScrapeService(cfg))

	properties := r.Group("/properties")
	{
		properties.GET("", propertyController.List)
		properties.POST("", propertyController.Create)
		properties.GET("/:id", propertyController.Get)
		properties.PUT("/:id", propertyController.Update)
		properties.DELETE("/:id", propertyController.Delete)
		properties.POST("/:id/favorite", propertyController.ToggleFavorite)
		properties.POST("/:id/price-indicator", propertyController.CyclePriceIndicator)
		properties.POST("/:id/comments", commentController.Create)
		properties.PUT("/:id/comments/:commentId", commentController.Update)
		properties.DELETE("/:id/comments/:commentId", commentController.Delete)
	}

	r.GET("/favorites", propertyController.Favorites)

	r.POST("/calculator/mortgage", mortgageController.Calculate)

	r.POST("/import", importController.Import)
	r.GET("/import/:importId/progress", importController.Progress)

	// Серверная сторона контракта сервиса извлечения
	r.POST("/scrape", scrapeController.Scrape)

	r.GET("/settings", settingsController.Get)
	r.PUT("/settings", settingsController.Update)

	return r
}
