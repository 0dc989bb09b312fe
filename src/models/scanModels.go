package models

import "time"

// Valid scan types
const (
	ScanTypeQR     = "qr"
	ScanTypeImage  = "image"
	ScanTypeVision = "vision"
)

// ScanModel is an append-only log of visitor interactions. Records are never
// updated or deleted; deleting a painting leaves its scans behind.
type ScanModel struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	PaintingID   int       `json:"paintingId" gorm:"column:painting_id;not null;index"`
	PaintingName string    `json:"paintingName" gorm:"type:varchar(255);not null"`
	ScanType     string    `json:"scanType" gorm:"type:varchar(20);not null"`
	UserAgent    *string   `json:"userAgent" gorm:"type:text"`
	Timestamp    time.Time `json:"timestamp" gorm:"index"`
	ViewingTime  int       `json:"viewingTime" gorm:"not null;default:0"` // seconds
	IPAddress    *string   `json:"ipAddress" gorm:"column:ip_address;type:varchar(64)"`
	Location     *string   `json:"location" gorm:"type:varchar(255)"`
}
