package main

import (
	"log"
	"os"

	"github.com/MuseoScan/MuseoScan-Backend/src/db"
	"github.com/MuseoScan/MuseoScan-Backend/src/middleware"
	"github.com/MuseoScan/MuseoScan-Backend/src/models"
	"github.com/MuseoScan/MuseoScan-Backend/src/routes"
	"github.com/MuseoScan/MuseoScan-Backend/src/seed"
	"github.com/MuseoScan/MuseoScan-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.PaintingModel{},
		&models.ScanModel{},
		&models.AnalyticsModel{},
		&models.UserModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// JWT secret for the admin routes
	middleware.SetSecretKey(os.Getenv("JWT_SECRET_KEY"))

	// Default admin account
	seed.Seed(db)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":5000"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	paintingService := services.NewPaintingService(db)
	analyticsService := services.NewAnalyticsService(db)
	geminiService := services.NewGeminiService()
	userService := services.NewUserService(db)

	// Routes setup
	routes.SetupPaintingRoutes(router, paintingService)
	routes.SetupAnalyticsRoutes(router, analyticsService)
	routes.SetupGeminiRoutes(router, geminiService)
	routes.SetupUserRoutes(router, userService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
