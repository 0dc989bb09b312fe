package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/MuseoScan/MuseoScan-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type PaintingController struct {
	service *services.PaintingService
}

func NewPaintingController(service *services.PaintingService) *PaintingController {
	return &PaintingController{service: service}
}

// AddPainting handles POST /paintings/add
func (pc *PaintingController) AddPainting(c *gin.Context) {
	var input services.PaintingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Artist) == "" ||
		strings.TrimSpace(input.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, artist, description required"})
		return
	}

	painting, err := pc.service.CreatePainting(&input)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"painting": painting,
		"message":  "Painting added successfully",
	})
}

// GetAllPaintings handles GET /paintings/all
func (pc *PaintingController) GetAllPaintings(c *gin.Context) {
	paintings, err := pc.service.GetAllPaintings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": paintings, "count": len(paintings)})
}

// SearchPainting handles GET /paintings/search?name=
func (pc *PaintingController) SearchPainting(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name parameter required"})
		return
	}

	painting, err := pc.service.SearchPaintingByName(name)
	if err != nil {
		if errors.Is(err, services.ErrPaintingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, painting)
}

// GetPaintingByID handles GET /paintings/:id
func (pc *PaintingController) GetPaintingByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	painting, err := pc.service.GetPaintingByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPaintingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, painting)
}

// EditPainting handles PUT /paintings/edit/:id
func (pc *PaintingController) EditPainting(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var input services.PaintingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Artist) == "" ||
		strings.TrimSpace(input.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields required"})
		return
	}

	painting, err := pc.service.UpdatePainting(id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaintingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		case errors.Is(err, services.ErrDuplicateName):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"painting": painting,
		"message":  "Painting updated successfully",
	})
}

// DeletePainting handles DELETE /paintings/delete/:id
func (pc *PaintingController) DeletePainting(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := pc.service.DeletePainting(id); err != nil {
		if errors.Is(err, services.ErrPaintingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Painting deleted successfully"})
}

// LogScan handles POST /paintings/:id/scan
func (pc *PaintingController) LogScan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	scans, err := pc.service.LogScan(id)
	if err != nil {
		if errors.Is(err, services.ErrPaintingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scans": scans})
}
