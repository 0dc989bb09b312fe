package services

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/MuseoScan/MuseoScan-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func createPainting(t *testing.T, db *gorm.DB, name, artist string) *models.PaintingModel {
	t.Helper()
	painting := models.PaintingModel{
		Name:        name,
		Artist:      artist,
		Description: "test painting",
	}
	require.NoError(t, db.Create(&painting).Error)
	return &painting
}

func TestTrackScanResolvesPaintingName(t *testing.T) {
	db := newTestDB(t)
	service := NewAnalyticsService(db)
	painting := createPainting(t, db, "Starry Night", "Van Gogh")

	err := service.TrackScan(&TrackScanInput{
		PaintingID: "Starry Night",
		ScanType:   models.ScanTypeQR,
	}, "test-agent", "10.0.0.1")
	require.NoError(t, err)

	var scan models.ScanModel
	require.NoError(t, db.First(&scan).Error)
	assert.Equal(t, painting.ID, scan.PaintingID)
	assert.Equal(t, "Starry Night", scan.PaintingName)
	assert.Equal(t, models.ScanTypeQR, scan.ScanType)
	assert.Equal(t, 0, scan.ViewingTime)
	require.NotNil(t, scan.UserAgent)
	assert.Equal(t, "test-agent", *scan.UserAgent)
	assert.False(t, scan.Timestamp.IsZero())
}

func TestTrackScanResolvesNumericID(t *testing.T) {
	db := newTestDB(t)
	service := NewAnalyticsService(db)
	painting := createPainting(t, db, "Irises", "Van Gogh")

	err := service.TrackScan(&TrackScanInput{
		PaintingID:  strconv.Itoa(painting.ID),
		ScanType:    models.ScanTypeImage,
		ViewingTime: 30,
	}, "", "")
	require.NoError(t, err)

	var scan models.ScanModel
	require.NoError(t, db.First(&scan).Error)
	assert.Equal(t, painting.ID, scan.PaintingID)
	assert.Equal(t, 30, scan.ViewingTime)
	assert.Nil(t, scan.UserAgent)
}

func TestTrackScanInvalidType(t *testing.T) {
	db := newTestDB(t)
	service := NewAnalyticsService(db)
	createPainting(t, db, "Starry Night", "Van Gogh")

	err := service.TrackScan(&TrackScanInput{
		PaintingID: "Starry Night",
		ScanType:   "telepathy",
	}, "", "")
	assert.ErrorIs(t, err, ErrInvalidScanType)
}

func TestTrackScanUnknownPainting(t *testing.T) {
	service := NewAnalyticsService(newTestDB(t))

	err := service.TrackScan(&TrackScanInput{
		PaintingID: "Mona Lisa",
		ScanType:   models.ScanTypeQR,
	}, "", "")
	assert.ErrorIs(t, err, ErrPaintingNotFound)
}

func TestTrackScanUpdatesRollup(t *testing.T) {
	db := newTestDB(t)
	service := NewAnalyticsService(db)
	createPainting(t, db, "Starry Night", "Van Gogh")
	createPainting(t, db, "Irises", "Van Gogh")

	track := func(name, scanType string) {
		require.NoError(t, service.TrackScan(&TrackScanInput{
			PaintingID: name,
			ScanType:   scanType,
		}, "", ""))
	}

	track("Starry Night", models.ScanTypeQR)
	track("Starry Night", models.ScanTypeVision)
	track("Irises", models.ScanTypeImage)

	summary, err := service.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalScans)
	assert.Equal(t, 1, summary.QRScans)
	assert.Equal(t, 1, summary.ImageScans)
	assert.Equal(t, 1, summary.VisionAPIScans)
	require.NotNil(t, summary.MostScannedPainting)
	assert.Equal(t, "Starry Night", *summary.MostScannedPainting)
}

func TestGetSummaryBeforeAnyScan(t *testing.T) {
	service := NewAnalyticsService(newTestDB(t))

	summary, err := service.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalScans)
	assert.Nil(t, summary.MostScannedPainting)
}

func TestGetStatsEmptyScanSet(t *testing.T) {
	db := newTestDB(t)
	service := NewAnalyticsService(db)
	createPainting(t, db, "Starry Night", "Van Gogh")
	createPainting(t, db, "Irises", "Van Gogh")

	response, err := service.GetStats()
	require.NoError(t, err)

	assert.Equal(t, 0, response.TotalScans)
	assert.Equal(t, 2, response.TotalPaintings)
	require.Len(t, response.Stats, 2)
	for _, stat := range response.Stats {
		assert.Equal(t, 0, stat.TotalScans)
		assert.Equal(t, 0, stat.AvgViewingTime)
	}
	assert.Len(t, response.TrafficByHour, 24)
}

func TestGetStatsAggregation(t *testing.T) {
	db := newTestDB(t)
	service := NewAnalyticsService(db)
	starry := createPainting(t, db, "Starry Night", "Van Gogh")
	createPainting(t, db, "Irises", "Van Gogh")

	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)

	addScan := func(scanType string, viewingTime int, ts time.Time) {
		scan := models.ScanModel{
			PaintingID:   starry.ID,
			PaintingName: starry.Name,
			ScanType:     scanType,
			Timestamp:    ts,
			ViewingTime:  viewingTime,
		}
		require.NoError(t, db.Create(&scan).Error)
	}

	addScan(models.ScanTypeQR, 10, now.Add(-10*time.Minute))
	addScan(models.ScanTypeQR, 20, now.Add(-15*time.Minute))
	addScan(models.ScanTypeImage, 25, now.Add(-2*time.Hour))

	response, err := service.getStatsAt(now)
	require.NoError(t, err)

	assert.Equal(t, 3, response.TotalScans)
	assert.Equal(t, 2, response.TotalPaintings)

	var sawStarry, sawIrises bool
	for _, stat := range response.Stats {
		switch stat.Name {
		case "Starry Night":
			sawStarry = true
			assert.Equal(t, 3, stat.TotalScans)
			assert.Equal(t, 2, stat.QRScans)
			assert.Equal(t, 1, stat.ImageScans)
			// round(55 / 3) = 18
			assert.Equal(t, 18, stat.AvgViewingTime)
		case "Irises":
			sawIrises = true
			assert.Equal(t, 0, stat.TotalScans)
		}
	}
	assert.True(t, sawStarry)
	assert.True(t, sawIrises)

	require.Len(t, response.TrafficByHour, 24)
	assert.Equal(t, 2, response.TrafficByHour[now.Format("03 PM")])
	assert.Equal(t, 1, response.TrafficByHour[now.Add(-2*time.Hour).Format("03 PM")])
}

func TestGetStatsIgnoresScansOutsideWindowDay(t *testing.T) {
	db := newTestDB(t)
	service := NewAnalyticsService(db)
	starry := createPainting(t, db, "Starry Night", "Van Gogh")

	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)

	// Same clock hour, two days earlier: must not land in any slot.
	scan := models.ScanModel{
		PaintingID:   starry.ID,
		PaintingName: starry.Name,
		ScanType:     models.ScanTypeQR,
		Timestamp:    now.AddDate(0, 0, -2),
	}
	require.NoError(t, db.Create(&scan).Error)

	response, err := service.getStatsAt(now)
	require.NoError(t, err)

	require.Len(t, response.TrafficByHour, 24)
	for label, count := range response.TrafficByHour {
		assert.Zero(t, count, "slot %s", label)
	}
}

func TestExportStats(t *testing.T) {
	db := newTestDB(t)
	service := NewAnalyticsService(db)
	createPainting(t, db, "Starry Night", "Van Gogh")

	require.NoError(t, service.TrackScan(&TrackScanInput{
		PaintingID: "Starry Night",
		ScanType:   models.ScanTypeQR,
	}, "", ""))

	var buf bytes.Buffer
	require.NoError(t, service.ExportStats(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Scans", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Painting", header)

	name, err := f.GetCellValue("Scans", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Starry Night", name)

	total, err := f.GetCellValue("Scans", "C2")
	require.NoError(t, err)
	assert.Equal(t, "1", total)
}
