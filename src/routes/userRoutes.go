package routes

import (
	"github.com/MuseoScan/MuseoScan-Backend/src/controllers"
	"github.com/MuseoScan/MuseoScan-Backend/src/middleware"
	"github.com/MuseoScan/MuseoScan-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	controller := controllers.NewUserController(service)

	// Public routes
	router.POST("/users/login", controller.AuthenticateUser)

	// Protected routes
	userGroup := router.Group("/users")
	userGroup.Use(middleware.AuthMiddleware())
	{
		userGroup.POST("", controller.CreateUser)
	}
}
