package dto

// EventMonthStats is one point of the monthly event timeseries, labelled
// like "Jan-2025". ByType only carries types observed in that month.
type EventMonthStats struct {
	Month  string         `json:"month"`
	Count  int            `json:"count"`
	ByType map[string]int `json:"byType"`
}

// EventAnalyticsDetailed is the /admin/events-analytics payload.
type EventAnalyticsDetailed struct {
	TotalEvents int               `json:"totalEvents"`
	ByType      map[string]int    `json:"byType"`
	Upcoming    int               `json:"upcoming"`
	Past        int               `json:"past"`
	Monthly     []EventMonthStats `json:"monthly"`
}
