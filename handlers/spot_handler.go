package handlers

import (
	"ArGuide/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSpotRoutes(router *gin.RouterGroup, spotController *controllers.SpotController) {
	spotGroup := router.Group("/spots")
	{
		spotGroup.GET("/nearest", spotController.GetNearestSpots)
		spotGroup.GET("/nearby", spotController.GetNearbySpots)
		spotGroup.GET("/search", spotController.SearchSpot)
	}
}
