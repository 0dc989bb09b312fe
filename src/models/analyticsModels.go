package models

import "time"

// AnalyticsModel is a singleton rollup row kept up to date incrementally by
// the scan write paths. /analytics/stats still recomputes from the raw
// records; this row backs the cheaper /analytics/summary endpoint.
type AnalyticsModel struct {
	ID                  int       `json:"id" gorm:"primaryKey;autoIncrement"`
	TotalScans          int       `json:"totalScans" gorm:"not null;default:0"`
	QRScans             int       `json:"qrScans" gorm:"column:qr_scans;not null;default:0"`
	ImageScans          int       `json:"imageScans" gorm:"not null;default:0"`
	VisionAPIScans      int       `json:"visionApiScans" gorm:"column:vision_api_scans;not null;default:0"`
	MostScannedPainting *string   `json:"mostScannedPainting" gorm:"type:varchar(255)"`
	LastUpdated         time.Time `json:"lastUpdated"`
}
