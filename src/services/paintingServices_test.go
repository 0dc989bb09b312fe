package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/MuseoScan/MuseoScan-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.PaintingModel{},
		&models.ScanModel{},
		&models.AnalyticsModel{},
		&models.UserModel{},
	)
	require.NoError(t, err)

	return db
}

func starryNight() *PaintingInput {
	return &PaintingInput{
		Name:        "Starry Night",
		Artist:      "Van Gogh",
		Description: "A swirling night sky over Saint-Remy.",
	}
}

func TestCreatePaintingAndGetByID(t *testing.T) {
	service := NewPaintingService(newTestDB(t))

	created, err := service.CreatePainting(starryNight())
	require.NoError(t, err)

	fetched, err := service.GetPaintingByID(created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Starry Night", fetched.Name)
	assert.Equal(t, "Van Gogh", fetched.Artist)
	assert.Equal(t, "A swirling night sky over Saint-Remy.", fetched.Description)
	assert.Equal(t, 0, fetched.Scans)
	require.NotNil(t, fetched.QRCode)
	assert.True(t, strings.HasPrefix(*fetched.QRCode, "data:image/png;base64,"))
}

func TestCreatePaintingTrimsName(t *testing.T) {
	service := NewPaintingService(newTestDB(t))

	input := starryNight()
	input.Name = "  Starry Night  "
	created, err := service.CreatePainting(input)
	require.NoError(t, err)
	assert.Equal(t, "Starry Night", created.Name)
}

func TestCreatePaintingDuplicateName(t *testing.T) {
	service := NewPaintingService(newTestDB(t))

	_, err := service.CreatePainting(starryNight())
	require.NoError(t, err)

	_, err = service.CreatePainting(starryNight())
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdatePaintingPreservesImageWhenOmitted(t *testing.T) {
	service := NewPaintingService(newTestDB(t))

	image := "aGVsbG8="
	imageType := "image/jpeg"
	input := starryNight()
	input.Image = &image
	input.ImageType = &imageType

	created, err := service.CreatePainting(input)
	require.NoError(t, err)

	updated, err := service.UpdatePainting(created.ID, &PaintingInput{
		Name:        "Starry Night",
		Artist:      "Vincent van Gogh",
		Description: "Updated description.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Vincent van Gogh", updated.Artist)
	require.NotNil(t, updated.Image)
	assert.Equal(t, image, *updated.Image)
	require.NotNil(t, updated.ImageType)
	assert.Equal(t, imageType, *updated.ImageType)
}

func TestUpdatePaintingRegeneratesQRCodeOnRename(t *testing.T) {
	service := NewPaintingService(newTestDB(t))

	created, err := service.CreatePainting(starryNight())
	require.NoError(t, err)
	originalQR := *created.QRCode

	updated, err := service.UpdatePainting(created.ID, &PaintingInput{
		Name:        "The Starry Night",
		Artist:      "Van Gogh",
		Description: created.Description,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.QRCode)
	assert.NotEqual(t, originalQR, *updated.QRCode)
}

func TestUpdatePaintingNotFound(t *testing.T) {
	service := NewPaintingService(newTestDB(t))

	_, err := service.UpdatePainting(42, starryNight())
	assert.ErrorIs(t, err, ErrPaintingNotFound)
}

func TestUpdatePaintingRenameToExistingName(t *testing.T) {
	service := NewPaintingService(newTestDB(t))

	_, err := service.CreatePainting(starryNight())
	require.NoError(t, err)

	other, err := service.CreatePainting(&PaintingInput{
		Name:        "Irises",
		Artist:      "Van Gogh",
		Description: "Irises in the asylum garden.",
	})
	require.NoError(t, err)

	input := starryNight()
	_, err = service.UpdatePainting(other.ID, input)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestLogScanIncrementsSequentially(t *testing.T) {
	service := NewPaintingService(newTestDB(t))

	created, err := service.CreatePainting(starryNight())
	require.NoError(t, err)

	var scans int
	for i := 0; i < 5; i++ {
		scans, err = service.LogScan(created.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, 5, scans)

	fetched, err := service.GetPaintingByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, fetched.Scans)
	assert.NotNil(t, fetched.LastScannedAt)
}

func TestLogScanNotFound(t *testing.T) {
	service := NewPaintingService(newTestDB(t))

	_, err := service.LogScan(42)
	assert.ErrorIs(t, err, ErrPaintingNotFound)
}

func TestSearchPaintingByNameCaseInsensitive(t *testing.T) {
	service := NewPaintingService(newTestDB(t))

	_, err := service.CreatePainting(starryNight())
	require.NoError(t, err)

	found, err := service.SearchPaintingByName("starry")
	require.NoError(t, err)
	assert.Equal(t, "Starry Night", found.Name)

	_, err = service.SearchPaintingByName("mona lisa")
	assert.ErrorIs(t, err, ErrPaintingNotFound)
}

func TestDeletePainting(t *testing.T) {
	service := NewPaintingService(newTestDB(t))

	created, err := service.CreatePainting(starryNight())
	require.NoError(t, err)

	require.NoError(t, service.DeletePainting(created.ID))

	_, err = service.GetPaintingByID(created.ID)
	assert.ErrorIs(t, err, ErrPaintingNotFound)

	assert.ErrorIs(t, service.DeletePainting(created.ID), ErrPaintingNotFound)
}

func TestGetAllPaintingsProjection(t *testing.T) {
	service := NewPaintingService(newTestDB(t))

	_, err := service.CreatePainting(starryNight())
	require.NoError(t, err)
	_, err = service.CreatePainting(&PaintingInput{
		Name:        "Irises",
		Artist:      "Van Gogh",
		Description: "Irises in the asylum garden.",
	})
	require.NoError(t, err)

	paintings, err := service.GetAllPaintings()
	require.NoError(t, err)
	require.Len(t, paintings, 2)

	for _, p := range paintings {
		assert.NotZero(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Artist)
		assert.NotEmpty(t, p.Description)
		assert.NotNil(t, p.QRCode)
	}
}

func TestGetAllPaintingsCacheInvalidatedByCreate(t *testing.T) {
	service := NewPaintingService(newTestDB(t))

	_, err := service.CreatePainting(starryNight())
	require.NoError(t, err)

	paintings, err := service.GetAllPaintings()
	require.NoError(t, err)
	require.Len(t, paintings, 1)

	_, err = service.CreatePainting(&PaintingInput{
		Name:        "Irises",
		Artist:      "Van Gogh",
		Description: "Irises in the asylum garden.",
	})
	require.NoError(t, err)

	paintings, err = service.GetAllPaintings()
	require.NoError(t, err)
	assert.Len(t, paintings, 2)
}
