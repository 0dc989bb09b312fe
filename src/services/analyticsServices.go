package services

import (
	"errors"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/MuseoScan/MuseoScan-Backend/src/dtos"
	"github.com/MuseoScan/MuseoScan-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var ErrInvalidScanType = errors.New("scanType must be one of qr, image, vision")

type AnalyticsService struct {
	db *gorm.DB
}

// TrackScanInput is the body of POST /analytics/track-scan. PaintingID can be
// either a numeric painting ID or the painting's exact name; the exhibit app
// historically sends the name.
type TrackScanInput struct {
	PaintingID  string `json:"paintingId"`
	ScanType    string `json:"scanType"`
	ViewingTime int    `json:"viewingTime"`
}

// NewAnalyticsService creates a new instance of AnalyticsService
func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// resolvePainting maps a track-scan reference onto a stored painting, trying
// a numeric ID first and falling back to an exact name match.
func (s *AnalyticsService) resolvePainting(ref string) (*models.PaintingModel, error) {
	var painting models.PaintingModel

	if id, err := strconv.Atoi(ref); err == nil {
		err := s.db.First(&painting, id).Error
		if err == nil {
			return &painting, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	err := s.db.Where("name = ?", ref).First(&painting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaintingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &painting, nil
}

// TrackScan appends a scan event and bumps the persisted rollup row. The
// painting's own scans counter is a separate path (PaintingService.LogScan)
// and is deliberately not touched here.
func (s *AnalyticsService) TrackScan(input *TrackScanInput, userAgent, ipAddress string) error {
	switch input.ScanType {
	case models.ScanTypeQR, models.ScanTypeImage, models.ScanTypeVision:
	default:
		return ErrInvalidScanType
	}

	painting, err := s.resolvePainting(input.PaintingID)
	if err != nil {
		return err
	}

	scan := models.ScanModel{
		PaintingID:   painting.ID,
		PaintingName: painting.Name,
		ScanType:     input.ScanType,
		Timestamp:    time.Now(),
		ViewingTime:  input.ViewingTime,
	}
	if userAgent != "" {
		scan.UserAgent = &userAgent
	}
	if ipAddress != "" {
		scan.IPAddress = &ipAddress
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&scan).Error; err != nil {
			return err
		}
		return s.bumpRollup(tx, input.ScanType)
	})
}

// bumpRollup applies atomic counter increments to the singleton summary row,
// creating it on first use, and refreshes mostScannedPainting.
func (s *AnalyticsService) bumpRollup(tx *gorm.DB, scanType string) error {
	var rollup models.AnalyticsModel
	err := tx.First(&rollup).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rollup = models.AnalyticsModel{LastUpdated: time.Now()}
		if err := tx.Create(&rollup).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"total_scans":  gorm.Expr("total_scans + 1"),
		"last_updated": time.Now(),
	}
	switch scanType {
	case models.ScanTypeQR:
		updates["qr_scans"] = gorm.Expr("qr_scans + 1")
	case models.ScanTypeImage:
		updates["image_scans"] = gorm.Expr("image_scans + 1")
	case models.ScanTypeVision:
		updates["vision_api_scans"] = gorm.Expr("vision_api_scans + 1")
	}

	var top struct {
		PaintingName string
	}
	err = tx.Model(&models.ScanModel{}).
		Select("painting_name").
		Group("painting_name").
		Order("COUNT(*) DESC").
		Limit(1).
		Scan(&top).Error
	if err != nil {
		return err
	}
	if top.PaintingName != "" {
		updates["most_scanned_painting"] = top.PaintingName
	}

	return tx.Model(&models.AnalyticsModel{}).
		Where("id = ?", rollup.ID).
		Updates(updates).Error
}

// GetSummary returns the persisted rollup row, zero-valued before any scan.
func (s *AnalyticsService) GetSummary() (*models.AnalyticsModel, error) {
	var rollup models.AnalyticsModel
	err := s.db.First(&rollup).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.AnalyticsModel{LastUpdated: time.Now()}, nil
	}
	if err != nil {
		return nil, err
	}
	return &rollup, nil
}

// GetStats recomputes the full analytics response from the raw Painting and
// Scan records. Read-only and deterministic for a fixed "now".
func (s *AnalyticsService) GetStats() (*dtos.StatsResponseDTO, error) {
	return s.getStatsAt(time.Now())
}

func (s *AnalyticsService) getStatsAt(now time.Time) (*dtos.StatsResponseDTO, error) {
	var paintings []models.PaintingModel
	if err := s.db.Find(&paintings).Error; err != nil {
		return nil, err
	}

	var scans []models.ScanModel
	if err := s.db.Find(&scans).Error; err != nil {
		return nil, err
	}

	scansByPainting := make(map[int][]models.ScanModel)
	for _, scan := range scans {
		scansByPainting[scan.PaintingID] = append(scansByPainting[scan.PaintingID], scan)
	}

	stats := make([]dtos.PaintingStatsDTO, 0, len(paintings))
	for _, painting := range paintings {
		matched := scansByPainting[painting.ID]

		qrScans := 0
		imageScans := 0
		viewingTotal := 0
		for _, scan := range matched {
			switch scan.ScanType {
			case models.ScanTypeQR:
				qrScans++
			case models.ScanTypeImage:
				imageScans++
			}
			viewingTotal += scan.ViewingTime
		}

		avgViewingTime := 0
		if len(matched) > 0 {
			avgViewingTime = int(math.Round(float64(viewingTotal) / float64(len(matched))))
		}

		stats = append(stats, dtos.PaintingStatsDTO{
			Name:           painting.Name,
			Artist:         painting.Artist,
			TotalScans:     len(matched),
			QRScans:        qrScans,
			ImageScans:     imageScans,
			AvgViewingTime: avgViewingTime,
		})
	}

	return &dtos.StatsResponseDTO{
		Stats:          stats,
		TrafficByHour:  trafficByHour(scans, now),
		TotalScans:     len(scans),
		TotalPaintings: len(paintings),
	}, nil
}

// trafficByHour builds the 24-slot histogram for the day ending at now.
// A scan counts toward a slot when it falls in the same calendar hour of the
// same calendar day. Labels like "03 PM" are unique across 24 hourly slots.
func trafficByHour(scans []models.ScanModel, now time.Time) map[string]int {
	traffic := make(map[string]int, 24)

	for i := 23; i >= 0; i-- {
		slot := now.Add(-time.Duration(i) * time.Hour)
		slotYear, slotMonth, slotDay := slot.Date()

		count := 0
		for _, scan := range scans {
			ts := scan.Timestamp
			year, month, day := ts.Date()
			if ts.Hour() == slot.Hour() && year == slotYear && month == slotMonth && day == slotDay {
				count++
			}
		}

		traffic[slot.Format("03 PM")] = count
	}

	return traffic
}

// ExportStats writes the per-painting stats as an xlsx workbook, mirroring the
// spreadsheet workflows museum staff already use.
func (s *AnalyticsService) ExportStats(w io.Writer) error {
	response, err := s.GetStats()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Scans"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Painting", "Artist", "Total scans", "QR scans", "Image scans", "Avg viewing time (s)"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for rowIdx, stat := range response.Stats {
		values := []interface{}{stat.Name, stat.Artist, stat.TotalScans, stat.QRScans, stat.ImageScans, stat.AvgViewingTime}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
