package controllers

import (
	"net/http"
	"strings"

	"github.com/MuseoScan/MuseoScan-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type GeminiController struct {
	service *services.GeminiService
}

func NewGeminiController(service *services.GeminiService) *GeminiController {
	return &GeminiController{service: service}
}

type generateDescriptionRequest struct {
	PaintingName string `json:"paintingName"`
	Artist       string `json:"artist"`
}

// GenerateDescription handles POST /gemini/generate-description
func (gc *GeminiController) GenerateDescription(c *gin.Context) {
	var req generateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.PaintingName) == "" || strings.TrimSpace(req.Artist) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paintingName and artist required"})
		return
	}

	description, model, err := gc.service.GenerateDescription(req.PaintingName, req.Artist)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"description": description,
		"model":       model,
	})
}

// ListModels handles GET /gemini/list-models
func (gc *GeminiController) ListModels(c *gin.Context) {
	models, err := gc.service.ListModels()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": models})
}
