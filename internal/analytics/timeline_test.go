package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTimelineDailyDensity(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	sparse := map[string]int{
		"2025-03-02": 4,
		"2025-03-05": 1,
	}

	timeline := BuildTimeline(sparse, start, end, false)

	require.Len(t, timeline, 8, "7 day span yields 8 daily buckets")
	assert.Equal(t, TimelinePoint{Date: "2025-03-01", Count: 0}, timeline[0])
	assert.Equal(t, TimelinePoint{Date: "2025-03-02", Count: 4}, timeline[1])
	assert.Equal(t, TimelinePoint{Date: "2025-03-05", Count: 1}, timeline[4])
	assert.Equal(t, TimelinePoint{Date: "2025-03-08", Count: 0}, timeline[7])

	for i := 1; i < len(timeline); i++ {
		assert.Less(t, timeline[i-1].Date, timeline[i].Date, "chronological ascending")
	}
	assert.Equal(t, 5, SumCounts(timeline), "gap filling preserves the source total")
}

func TestBuildTimelineHourly(t *testing.T) {
	end := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	start := end.Add(-24 * time.Hour)
	sparse := map[string]int{
		"2025-03-01-09": 2,
		"2025-03-02-00": 3,
	}

	timeline := BuildTimeline(sparse, start, end, true)

	require.Len(t, timeline, 25, "24 hour span yields 25 hourly buckets")
	assert.Equal(t, TimelinePoint{Date: "09:00", Count: 2}, timeline[0])
	assert.Equal(t, TimelinePoint{Date: "00:00", Count: 3}, timeline[15])
	assert.Equal(t, TimelinePoint{Date: "09:00", Count: 0}, timeline[24])
	assert.Equal(t, 5, SumCounts(timeline))
}

func TestBuildTimelineSingleBucket(t *testing.T) {
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	timeline := BuildTimeline(map[string]int{"2025-03-01": 7}, at, at, false)

	require.Len(t, timeline, 1)
	assert.Equal(t, TimelinePoint{Date: "2025-03-01", Count: 7}, timeline[0])
}

func TestBuildTimelineEmptySparseInput(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)

	timeline := BuildTimeline(nil, start, end, false)

	require.Len(t, timeline, 3)
	for _, point := range timeline {
		assert.Zero(t, point.Count)
	}
}

func TestBucketKeysAreUTC(t *testing.T) {
	at := time.Date(2025, 3, 1, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	assert.Equal(t, "2025-03-02", DayKey(at))
	assert.Equal(t, "2025-03-02-04", HourKey(at))
}
