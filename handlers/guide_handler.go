package handlers

import (
	"ArGuide/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterGuideRoutes(router *gin.RouterGroup, guideController *controllers.GuideController) {
	guideGroup := router.Group("/guide")
	{
		guideGroup.POST("/inference", guideController.Inference)
	}
}
