package model

// StatsResponse Dashboard counters with 30-day trend percentages
type StatsResponse struct {
	TotalViews       int64   `json:"total_views"`
	TotalSpots       int     `json:"total_spots"`
	TotalSubscribers int     `json:"total_subscribers"`
	PendingComments  int     `json:"pending_comments"`
	TrendViews       float64 `json:"trend_views"`
	TrendSpots       float64 `json:"trend_spots"`
	TrendSubscribers float64 `json:"trend_subscribers"`
}
