package models

import "time"

type PaintingModel struct {
	ID            int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string     `json:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
	Artist        string     `json:"artist" gorm:"type:varchar(255);not null"`
	Description   string     `json:"description" gorm:"type:text;not null"`
	QRCode        *string    `json:"qrCode" gorm:"column:qr_code;type:text"`
	Image         *string    `json:"image" gorm:"type:text"` // base64 payload
	ImageType     *string    `json:"imageType" gorm:"type:varchar(100)"`
	Scans         int        `json:"scans" gorm:"not null;default:0"`
	ScannedBy     *string    `json:"scannedBy" gorm:"type:varchar(255)"`
	LastScannedAt *time.Time `json:"lastScannedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
