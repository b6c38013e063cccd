package models

import "time"

// AnalyticsSummary is the set of dashboard counters shown on the console's
// stats screen.
type AnalyticsSummary struct {
	TotalUsers       int `json:"totalUsers"`
	ActiveUsers      int `json:"activeUsers"`
	PendingNZBN      int `json:"pendingNzbn"`
	JobsPosted       int `json:"jobsPosted"`
	ConnectionsMade  int `json:"connectionsMade"`
	SignupsThisWeek  int `json:"signupsThisWeek"`
	SignupsLastWeek  int `json:"signupsLastWeek"`
	MessagesSent     int `json:"messagesSent"`
	ActiveCategories int `json:"activeCategories"`
}

// SeriesPoint is one bucket of a metric time series.
type SeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// SeriesParams select a metric and window for GET /admin/analytics/series.
type SeriesParams struct {
	Metric   string
	From     time.Time
	To       time.Time
	Interval string // "hour", "day", "week"
}
