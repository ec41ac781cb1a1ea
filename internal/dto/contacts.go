package dto

import "github.com/alumnet-dev/alumnet-api/internal/analytics"

// ContactTimelines holds dense daily message timelines per window.
type ContactTimelines struct {
	Weekly  []analytics.TimelinePoint `json:"7d"`
	Monthly []analytics.TimelinePoint `json:"30d"`
}

// ContactAnalytics is the /admin/contacts-analytics payload.
type ContactAnalytics struct {
	TotalMessages int              `json:"totalMessages"`
	Resolved      int              `json:"resolved"`
	Unresolved    int              `json:"unresolved"`
	Timelines     ContactTimelines `json:"timelines"`
}
