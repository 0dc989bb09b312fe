package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MuseoScan/MuseoScan-Backend/src/dtos"
	"github.com/MuseoScan/MuseoScan-Backend/src/models"
	"github.com/MuseoScan/MuseoScan-Backend/src/utils"
	"gorm.io/gorm"
)

var (
	ErrPaintingNotFound = errors.New("painting not found")
	ErrDuplicateName    = errors.New("a painting with that name already exists")
)

// Cache entry
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

type PaintingService struct {
	db    *gorm.DB
	cache map[string]*CacheEntry
	mutex sync.RWMutex
}

// PaintingInput carries the client-supplied fields of a painting. Image and
// ImageType are left untouched on edit when nil.
type PaintingInput struct {
	Name        string  `json:"name"`
	Artist      string  `json:"artist"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	ImageType   *string `json:"imageType"`
}

func NewPaintingService(db *gorm.DB) *PaintingService {
	service := &PaintingService{
		db:    db,
		cache: make(map[string]*CacheEntry),
	}

	// Clean up cache every 30 minutes
	go service.cleanupCache()

	return service
}

func (s *PaintingService) cleanupCache() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.cache {
			if now.After(entry.ExpiresAt) {
				delete(s.cache, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *PaintingService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(duration),
	}
}

func (s *PaintingService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.cache[key]
	if !exists || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

func (s *PaintingService) invalidateCache() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key := range s.cache {
		delete(s.cache, key)
	}
}

// CreatePainting persists a new painting with a QR code derived from its name.
func (s *PaintingService) CreatePainting(input *PaintingInput) (*models.PaintingModel, error) {
	name := strings.TrimSpace(input.Name)

	var existing models.PaintingModel
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateName
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	qrCode, err := utils.QRCodeDataURI(name)
	if err != nil {
		return nil, err
	}

	painting := models.PaintingModel{
		Name:        name,
		Artist:      input.Artist,
		Description: input.Description,
		QRCode:      &qrCode,
		Image:       input.Image,
		ImageType:   input.ImageType,
		Scans:       0,
	}

	if err := s.db.Create(&painting).Error; err != nil {
		return nil, err
	}

	s.invalidateCache()

	return &painting, nil
}

// GetAllPaintings returns the cached list projection used by the app for
// client-side caching.
func (s *PaintingService) GetAllPaintings() ([]dtos.PaintingListItemDTO, error) {
	cacheKey := "all_paintings"

	if cached, found := s.getCache(cacheKey); found {
		return cached.([]dtos.PaintingListItemDTO), nil
	}

	var paintings []dtos.PaintingListItemDTO
	err := s.db.Model(&models.PaintingModel{}).
		Select("id", "name", "artist", "description", "qr_code", "image", "image_type", "scans").
		Find(&paintings).Error
	if err != nil {
		return nil, err
	}

	// Save to cache for 5 minutes
	s.setCache(cacheKey, paintings, 5*time.Minute)

	return paintings, nil
}

// SearchPaintingByName returns the first case-insensitive substring match.
// With several matches the choice is store-dependent, same as the original app.
func (s *PaintingService) SearchPaintingByName(query string) (*dtos.PaintingListItemDTO, error) {
	var painting dtos.PaintingListItemDTO
	err := s.db.Model(&models.PaintingModel{}).
		Select("id", "name", "artist", "description", "qr_code", "image", "image_type", "scans").
		Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%").
		First(&painting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaintingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &painting, nil
}

// GetPaintingByID retrieves a Painting record by ID
func (s *PaintingService) GetPaintingByID(id int) (*models.PaintingModel, error) {
	cacheKey := fmt.Sprintf("painting_%d", id)

	if cached, found := s.getCache(cacheKey); found {
		painting := cached.(models.PaintingModel)
		return &painting, nil
	}

	var painting models.PaintingModel
	err := s.db.First(&painting, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaintingNotFound
	}
	if err != nil {
		return nil, err
	}

	// Save to cache for 10 minutes
	s.setCache(cacheKey, painting, 10*time.Minute)

	return &painting, nil
}

// UpdatePainting edits a painting and regenerates its QR code from the
// (possibly renamed) name. Image fields are preserved when omitted.
func (s *PaintingService) UpdatePainting(id int, input *PaintingInput) (*models.PaintingModel, error) {
	var painting models.PaintingModel
	if err := s.db.First(&painting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaintingNotFound
		}
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var other models.PaintingModel
	err := s.db.Where("name = ? AND id <> ?", name, id).First(&other).Error
	if err == nil {
		return nil, ErrDuplicateName
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	qrCode, err := utils.QRCodeDataURI(name)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":        name,
		"artist":      input.Artist,
		"description": input.Description,
		"qr_code":     qrCode,
		"updated_at":  time.Now(),
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.ImageType != nil {
		updates["image_type"] = *input.ImageType
	}

	if err := s.db.Model(&painting).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.invalidateCache()

	if err := s.db.First(&painting, id).Error; err != nil {
		return nil, err
	}
	return &painting, nil
}

// DeletePainting removes the record permanently. Scan records referencing it
// are left in place; analytics simply stops attributing them.
func (s *PaintingService) DeletePainting(id int) error {
	var painting models.PaintingModel
	if err := s.db.First(&painting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaintingNotFound
		}
		return err
	}

	if err := s.db.Delete(&painting).Error; err != nil {
		return err
	}

	s.invalidateCache()

	return nil
}

// LogScan increments the painting's scan counter in a single UPDATE so that
// concurrent scans never lose increments, and stamps lastScannedAt.
func (s *PaintingService) LogScan(id int) (int, error) {
	result := s.db.Model(&models.PaintingModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"scans":           gorm.Expr("scans + 1"),
			"last_scanned_at": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrPaintingNotFound
	}

	s.invalidateCache()

	var painting models.PaintingModel
	if err := s.db.First(&painting, id).Error; err != nil {
		return 0, err
	}
	return painting.Scans, nil
}
