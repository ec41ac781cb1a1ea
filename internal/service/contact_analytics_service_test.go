package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alumnet-dev/alumnet-api/internal/analytics"
)

type fakeContactRepo struct {
	total    int
	resolved int
	buckets  map[string]int
	err      error
}

func (f *fakeContactRepo) Counts(context.Context) (int, int, error) {
	return f.total, f.resolved, f.err
}

func (f *fakeContactRepo) BucketCounts(context.Context, time.Time, time.Time) (map[string]int, error) {
	return f.buckets, f.err
}

func TestContactAnalyticsDenseTimelines(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeContactRepo{
		total:    9,
		resolved: 6,
		buckets: map[string]int{
			analytics.DayKey(now): 3,
		},
	}
	svc := NewContactAnalyticsService(repo, noCache(), zap.NewNop())
	svc.now = func() time.Time { return now }

	result, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, result.TotalMessages)
	assert.Equal(t, 6, result.Resolved)
	assert.Equal(t, 3, result.Unresolved)

	require.Len(t, result.Timelines.Weekly, 8)
	require.Len(t, result.Timelines.Monthly, 31)
	assert.Equal(t, 3, result.Timelines.Weekly[len(result.Timelines.Weekly)-1].Count)
	assert.Equal(t, 0, result.Timelines.Weekly[0].Count)
	assert.Equal(t, 3, analytics.SumCounts(result.Timelines.Weekly))
}
