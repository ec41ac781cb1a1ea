package analytics

import (
	"fmt"
	"time"
)

const (
	dayKeyLayout  = "2006-01-02"
	hourKeyLayout = "2006-01-02-15"
)

// TimelinePoint is one bucket of a dense count series.
type TimelinePoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DayKey formats a timestamp as the daily bucket key used by grouped
// count queries.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// HourKey formats a timestamp as the hourly bucket key.
func HourKey(t time.Time) string {
	return t.UTC().Format(hourKeyLayout)
}

// BuildTimeline converts a sparse bucket-key → count mapping into a dense
// chronological series covering every bucket from start to end inclusive,
// substituting zero for absent buckets. Daily points are labelled
// "2006-01-02"; hourly points "15:00".
func BuildTimeline(counts map[string]int, start, end time.Time, hourly bool) []TimelinePoint {
	timeline := make([]TimelinePoint, 0, len(counts))
	current := start.UTC()
	endUTC := end.UTC()

	for !current.After(endUTC) {
		var key, label string
		if hourly {
			key = HourKey(current)
			label = fmt.Sprintf("%02d:00", current.Hour())
		} else {
			key = DayKey(current)
			label = key
		}

		timeline = append(timeline, TimelinePoint{Date: label, Count: counts[key]})

		if hourly {
			current = current.Add(time.Hour)
		} else {
			current = current.AddDate(0, 0, 1)
		}
	}

	return timeline
}

// SumCounts totals the counts of a series.
func SumCounts(points []TimelinePoint) int {
	sum := 0
	for _, point := range points {
		sum += point.Count
	}
	return sum
}
