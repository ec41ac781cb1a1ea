package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alumnet-dev/alumnet-api/internal/dto"
	appErrors "github.com/alumnet-dev/alumnet-api/pkg/errors"
)

type stubCacheRepo struct {
	store    map[string][]byte
	patterns []string
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	if s.store == nil {
		return appErrors.ErrCacheMiss
	}
	payload, ok := s.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if s.store == nil {
		s.store = make(map[string][]byte)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.store[key] = payload
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	s.patterns = append(s.patterns, pattern)
	s.store = nil
	return nil
}

type fakeUserOverview struct {
	overview dto.UserOverview
	err      error
	calls    int
}

func (f *fakeUserOverview) Overview(context.Context, time.Time) (dto.UserOverview, error) {
	f.calls++
	return f.overview, f.err
}

type fakeEventSection struct {
	section dto.EventDashboard
	err     error
}

func (f *fakeEventSection) Dashboard(context.Context, time.Time) (dto.EventDashboard, error) {
	return f.section, f.err
}

type fakeReferralSection struct {
	section dto.ReferralDashboard
	err     error
}

func (f *fakeReferralSection) Dashboard(context.Context, time.Time) (dto.ReferralDashboard, error) {
	return f.section, f.err
}

type fakeJobSection struct {
	section dto.JobDashboard
	err     error
}

func (f *fakeJobSection) Dashboard(context.Context, time.Time) (dto.JobDashboard, error) {
	return f.section, f.err
}

type fakeLoginRepo struct {
	total   int
	byRole  map[string]int
	inRange map[string]int
	buckets map[string]int
	err     error
}

func (f *fakeLoginRepo) CountAll(context.Context) (int, error) {
	return f.total, f.err
}

func (f *fakeLoginRepo) CountsByRole(context.Context) (map[string]int, error) {
	return f.byRole, f.err
}

func (f *fakeLoginRepo) CountInRange(_ context.Context, start, end time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.inRange[start.Format(time.RFC3339)+"/"+end.Format(time.RFC3339)], nil
}

func (f *fakeLoginRepo) BucketCounts(context.Context, time.Time, time.Time, bool) (map[string]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.buckets, nil
}

func TestDashboardServiceComposesAndCaches(t *testing.T) {
	cacheSvc := NewCacheService(&stubCacheRepo{}, nil, time.Minute, zap.NewNop(), true)
	users := &fakeUserOverview{overview: dto.UserOverview{TotalUsers: 42}}

	svc := NewDashboardService(DashboardServiceParams{
		Users:     users,
		Events:    &fakeEventSection{section: dto.EventDashboard{TotalEvents: 7}},
		Referrals: &fakeReferralSection{section: dto.ReferralDashboard{TotalReferrals: 3}},
		Jobs:      &fakeJobSection{section: dto.JobDashboard{TotalJobs: 5}},
		Logins:    &fakeLoginRepo{total: 99, byRole: map[string]int{"alumni": 80, "student": 19}},
		Cache:     cacheSvc,
		Logger:    zap.NewNop(),
	})
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	result, err := svc.Compose(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, result.Users.TotalUsers)
	assert.Equal(t, 7, result.Events.TotalEvents)
	assert.Equal(t, 3, result.Referrals.TotalReferrals)
	assert.Equal(t, 5, result.Jobs.TotalJobs)
	assert.Equal(t, 99, result.Logins.TotalLogins)
	assert.Equal(t, 80, result.Logins.ByRole.Alumni)
	assert.Equal(t, 19, result.Logins.ByRole.Student)
	assert.Len(t, result.Logins.Timelines.Daily, 25)
	assert.Len(t, result.Logins.Timelines.Weekly, 8)
	assert.Len(t, result.Logins.Timelines.Monthly, 31)

	cached, err := svc.Compose(ctx)
	require.NoError(t, err)
	assert.Equal(t, result, cached)
	assert.Equal(t, 1, users.calls, "second call should be served from cache")
}

func TestDashboardServiceRefreshInvalidatesCache(t *testing.T) {
	repo := &stubCacheRepo{}
	cacheSvc := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)
	users := &fakeUserOverview{overview: dto.UserOverview{TotalUsers: 12}}

	svc := NewDashboardService(DashboardServiceParams{
		Users:     users,
		Events:    &fakeEventSection{},
		Referrals: &fakeReferralSection{},
		Jobs:      &fakeJobSection{},
		Logins:    &fakeLoginRepo{},
		Cache:     cacheSvc,
		Logger:    zap.NewNop(),
	})

	ctx := context.Background()
	_, err := svc.Compose(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, users.calls)

	result, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Users.TotalUsers)
	assert.Equal(t, []string{"analytics:*"}, repo.patterns)
	assert.Equal(t, 2, users.calls, "refresh should bypass the cached payload")
}

func TestDashboardServiceTimesSections(t *testing.T) {
	metrics := NewMetricsService()
	svc := NewDashboardService(DashboardServiceParams{
		Users:     &fakeUserOverview{},
		Events:    &fakeEventSection{},
		Referrals: &fakeReferralSection{},
		Jobs:      &fakeJobSection{},
		Logins:    &fakeLoginRepo{},
		Cache:     NewCacheService(nil, nil, time.Minute, zap.NewNop(), false),
		Metrics:   metrics,
		Logger:    zap.NewNop(),
	})

	_, err := svc.Compose(context.Background())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	for _, label := range []string{"dashboard_users", "dashboard_events", "dashboard_referrals", "dashboard_jobs", "dashboard_logins"} {
		assert.Contains(t, body, `mongo_query_duration_seconds_count{query="`+label+`"} 1`)
	}
}

func TestDashboardServiceFailsFastOnSectionError(t *testing.T) {
	boom := errors.New("events collection unreachable")
	svc := NewDashboardService(DashboardServiceParams{
		Users:     &fakeUserOverview{},
		Events:    &fakeEventSection{err: boom},
		Referrals: &fakeReferralSection{},
		Jobs:      &fakeJobSection{},
		Logins:    &fakeLoginRepo{},
		Cache:     NewCacheService(nil, nil, time.Minute, zap.NewNop(), false),
		Logger:    zap.NewNop(),
	})

	_, err := svc.Compose(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "events collection unreachable")
}

func TestDashboardServiceGrowthUsesSingleInstant(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	logins := &fakeLoginRepo{
		total: 10,
		inRange: map[string]int{
			now.AddDate(0, 0, -1).Format(time.RFC3339) + "/" + now.Format(time.RFC3339):                    4,
			now.AddDate(0, 0, -2).Format(time.RFC3339) + "/" + now.AddDate(0, 0, -1).Format(time.RFC3339): 2,
		},
	}

	svc := NewDashboardService(DashboardServiceParams{
		Users:     &fakeUserOverview{},
		Events:    &fakeEventSection{},
		Referrals: &fakeReferralSection{},
		Jobs:      &fakeJobSection{},
		Logins:    logins,
		Cache:     NewCacheService(nil, nil, time.Minute, zap.NewNop(), false),
		Logger:    zap.NewNop(),
	})
	svc.now = func() time.Time { return now }

	result, err := svc.Compose(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, result.Logins.Growth.Daily.Count)
	assert.InDelta(t, 100.0, result.Logins.Growth.Daily.Rate, 0.001)
}
