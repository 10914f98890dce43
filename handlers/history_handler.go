package handlers

import (
	"ArGuide/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHistoryRoutes(router *gin.RouterGroup, historyController *controllers.HistoryController) {
	historyGroup := router.Group("/histories")
	{
		historyGroup.GET("", historyController.GetHistories)
	}
}
