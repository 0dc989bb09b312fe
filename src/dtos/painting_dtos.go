package dtos

// PaintingListItemDTO is the fixed projection served by GET /paintings/all and
// /paintings/search. The mobile app caches it, so the field set must not
// change without a client release.
type PaintingListItemDTO struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Artist      string  `json:"artist"`
	Description string  `json:"description"`
	QRCode      *string `json:"qrCode" gorm:"column:qr_code"`
	Image       *string `json:"image"`
	ImageType   *string `json:"imageType"`
	Scans       int     `json:"scans"`
}
