package routes

import (
	"github.com/MuseoScan/MuseoScan-Backend/src/controllers"
	"github.com/MuseoScan/MuseoScan-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupPaintingRoutes(router *gin.Engine, service *services.PaintingService) {
	controller := controllers.NewPaintingController(service)

	// Public routes: the exhibit app has no login
	paintingGroup := router.Group("/paintings")
	{
		// CRUD
		paintingGroup.POST("/add", controller.AddPainting)
		paintingGroup.GET("/all", controller.GetAllPaintings)
		paintingGroup.GET("/search", controller.SearchPainting)
		paintingGroup.GET("/:id", controller.GetPaintingByID)
		paintingGroup.PUT("/edit/:id", controller.EditPainting)
		paintingGroup.DELETE("/delete/:id", controller.DeletePainting)

		// Counter
		paintingGroup.POST("/:id/scan", controller.LogScan)
	}
}
