package routes

import (
	"github.com/MuseoScan/MuseoScan-Backend/src/controllers"
	"github.com/MuseoScan/MuseoScan-Backend/src/middleware"
	"github.com/MuseoScan/MuseoScan-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(router *gin.Engine, service *services.AnalyticsService) {
	controller := controllers.NewAnalyticsController(service)

	analyticsGroup := router.Group("/analytics")
	{
		analyticsGroup.POST("/track-scan", controller.TrackScan)
		analyticsGroup.GET("/stats", controller.GetStats)
		analyticsGroup.GET("/summary", controller.GetSummary)
	}

	// Protected routes
	exportGroup := router.Group("/analytics")
	exportGroup.Use(middleware.AuthMiddleware())
	{
		exportGroup.GET("/export", controller.ExportStats)
	}
}
