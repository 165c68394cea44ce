package domain

import "time"

// WatchRecord tracks how often a tour's viewer has been opened. The
// history keeps at most one record per tour id.
type WatchRecord struct {
	TourID     string    `json:"tourId"`
	TourTitle  string    `json:"tourTitle"`
	TourType   TourType  `json:"tourType"`
	WatchedAt  time.Time `json:"watchedAt"`
	WatchCount int       `json:"watchCount"`
}

type WatchStats struct {
	TotalTours     int     `json:"totalTours"`
	TotalWatches   int     `json:"totalWatches"`
	AverageWatches float64 `json:"averageWatches"`
}
