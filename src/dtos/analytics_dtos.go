package dtos

// PaintingStatsDTO holds the per-painting aggregation returned by
// GET /analytics/stats.
type PaintingStatsDTO struct {
	Name           string `json:"name"`
	Artist         string `json:"artist"`
	TotalScans     int    `json:"totalScans"`
	QRScans        int    `json:"qrScans"`
	ImageScans     int    `json:"imageScans"`
	AvgViewingTime int    `json:"avgViewingTime"` // seconds, rounded
}

type StatsResponseDTO struct {
	Stats          []PaintingStatsDTO `json:"stats"`
	TrafficByHour  map[string]int     `json:"trafficByHour"`
	TotalScans     int                `json:"totalScans"`
	TotalPaintings int                `json:"totalPaintings"`
}
