package route

import (
	"ArGuide/controllers"
	"ArGuide/handlers"
	"ArGuide/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, guideService *services.GuideService, spotService *services.SpotService, historyService *services.HistoryService) {
	guideController := controllers.NewGuideController(guideService)
	spotController := controllers.NewSpotController(spotService)
	historyController := controllers.NewHistoryController(historyService)

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterGuideRoutes(v1Routes, guideController)
		handlers.RegisterSpotRoutes(v1Routes, spotController)
		handlers.RegisterHistoryRoutes(v1Routes, historyController)
	}
}
