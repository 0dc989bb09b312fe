package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/MuseoScan/MuseoScan-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	service *services.AnalyticsService
}

func NewAnalyticsController(service *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{service: service}
}

// TrackScan handles POST /analytics/track-scan
func (ac *AnalyticsController) TrackScan(c *gin.Context) {
	var input services.TrackScanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.PaintingID == "" || input.ScanType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	err := ac.service.TrackScan(&input, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidScanType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrPaintingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Scan tracked successfully"})
}

// GetStats handles GET /analytics/stats
func (ac *AnalyticsController) GetStats(c *gin.Context) {
	stats, err := ac.service.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetSummary handles GET /analytics/summary
func (ac *AnalyticsController) GetSummary(c *gin.Context) {
	summary, err := ac.service.GetSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportStats handles GET /analytics/export (admin only)
func (ac *AnalyticsController) ExportStats(c *gin.Context) {
	filename := "scan-stats-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := ac.service.ExportStats(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
}
