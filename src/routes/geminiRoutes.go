package routes

import (
	"github.com/MuseoScan/MuseoScan-Backend/src/controllers"
	"github.com/MuseoScan/MuseoScan-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupGeminiRoutes(router *gin.Engine, service *services.GeminiService) {
	controller := controllers.NewGeminiController(service)

	geminiGroup := router.Group("/gemini")
	{
		geminiGroup.POST("/generate-description", controller.GenerateDescription)
		geminiGroup.GET("/list-models", controller.ListModels)
	}
}
