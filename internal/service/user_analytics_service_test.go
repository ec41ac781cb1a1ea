package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alumnet-dev/alumnet-api/internal/analytics"
	"github.com/alumnet-dev/alumnet-api/internal/models"
)

type fakeUserRepo struct {
	total           int
	byRole          map[string]int
	inRange         map[string]int
	buckets         map[string]int
	recent          []models.UserSummary
	unverified      []models.UserSummary
	batchRows       []models.BatchRoleStats
	deptRows        []models.DepartmentRoleStats
	alumniBatchRows []models.BatchRoleStats
	alumniDeptRows  []models.DepartmentRoleStats
	err             error
}

func (f *fakeUserRepo) CountAll(context.Context) (int, error) {
	return f.total, f.err
}

func (f *fakeUserRepo) CountsByRole(context.Context) (map[string]int, error) {
	return f.byRole, f.err
}

func (f *fakeUserRepo) CountInRange(_ context.Context, start, end time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.inRange[start.Format(time.RFC3339)+"/"+end.Format(time.RFC3339)], nil
}

func (f *fakeUserRepo) BucketCounts(context.Context, time.Time, time.Time, bool) (map[string]int, error) {
	return f.buckets, f.err
}

func (f *fakeUserRepo) Recent(context.Context, int) ([]models.UserSummary, error) {
	return f.recent, f.err
}

func (f *fakeUserRepo) Unverified(context.Context, int) (int, []models.UserSummary, error) {
	return len(f.unverified), f.unverified, f.err
}

func (f *fakeUserRepo) BatchRoleStats(_ context.Context, _ time.Time, role models.UserRole) ([]models.BatchRoleStats, error) {
	if role == models.RoleAlumni {
		return f.alumniBatchRows, f.err
	}
	return f.batchRows, f.err
}

func (f *fakeUserRepo) DepartmentRoleStats(_ context.Context, _ time.Time, role models.UserRole) ([]models.DepartmentRoleStats, error) {
	if role == models.RoleAlumni {
		return f.alumniDeptRows, f.err
	}
	return f.deptRows, f.err
}

func noCache() *CacheService {
	return NewCacheService(nil, nil, time.Minute, zap.NewNop(), false)
}

func TestUserOverviewZeroFillsRoles(t *testing.T) {
	repo := &fakeUserRepo{
		total:  12,
		byRole: map[string]int{"alumni": 10, "admin": 2},
	}
	svc := NewUserAnalyticsService(repo, noCache(), zap.NewNop(), 0)
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	overview, err := svc.Overview(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 12, overview.TotalUsers)
	assert.Equal(t, 2, overview.ByRole.Admin)
	assert.Equal(t, 10, overview.ByRole.Alumni)
	assert.Equal(t, 0, overview.ByRole.Student)
	assert.Len(t, overview.Timelines.Daily, 25)
	assert.Len(t, overview.Timelines.Weekly, 8)
	assert.Len(t, overview.Timelines.Monthly, 31)
	assert.NotNil(t, overview.RecentUsers)
}

func TestBatchAnalyticsEnumeratesFullRange(t *testing.T) {
	repo := &fakeUserRepo{
		batchRows: []models.BatchRoleStats{
			{Batch: 2019, Total: 10, Roles: []models.RoleStat{
				{Role: models.RoleAlumni, Recent: 2, Total: 8},
				{Role: models.RoleStudent, Recent: 0, Total: 2},
			}},
		},
	}
	svc := NewUserAnalyticsService(repo, noCache(), zap.NewNop(), 2014)
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	rows, err := svc.BatchAnalytics(context.Background(), now, "")
	require.NoError(t, err)

	// 2014 through 2030 inclusive, even for batches with no members.
	require.Len(t, rows, 17)
	assert.Equal(t, 2014, rows[0].Batch)
	assert.Equal(t, 2030, rows[len(rows)-1].Batch)
	assert.Equal(t, 0, rows[0].Total)
	assert.Equal(t, 0.0, rows[0].Growth.Rate)
	assert.Equal(t, 0, rows[0].Growth.Count)

	row2019 := rows[5]
	assert.Equal(t, 2019, row2019.Batch)
	assert.Equal(t, 10, row2019.Total)
	assert.Equal(t, 8, row2019.ByRole.Alumni)
	assert.Equal(t, 2, row2019.ByRole.Student)
	assert.Equal(t, 0, row2019.ByRole.Admin)
	assert.Equal(t, 2, row2019.Growth.Count)
	assert.InDelta(t, 20.0, row2019.Growth.Rate, 0.001)
}

func TestDepartmentAnalyticsCoversFixedSet(t *testing.T) {
	repo := &fakeUserRepo{
		deptRows: []models.DepartmentRoleStats{
			{Department: models.DepartmentCSE, Total: 4, Roles: []models.RoleStat{
				{Role: models.RoleAlumni, Recent: 4, Total: 4},
			}},
		},
	}
	svc := NewUserAnalyticsService(repo, noCache(), zap.NewNop(), 2014)
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	rows, err := svc.DepartmentAnalytics(context.Background(), now, "")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.DepartmentAIDS, rows[0].Department)
	assert.Equal(t, models.DepartmentCSE, rows[1].Department)
	assert.Equal(t, models.DepartmentECE, rows[2].Department)
	assert.Equal(t, 4, rows[1].Total)
	assert.Equal(t, 4, rows[1].Growth.Count)
	assert.InDelta(t, 100.0, rows[1].Growth.Rate, 0.001)
	assert.Equal(t, 0, rows[2].Total)
}

func TestDetailedUserAnalyticsAssemblesSections(t *testing.T) {
	repo := &fakeUserRepo{
		total:  3,
		byRole: map[string]int{"student": 3},
		recent: []models.UserSummary{{Name: "Asha", Batch: 2024}},
		unverified: []models.UserSummary{
			{Name: "Ravi", Batch: 2023},
			{Name: "Meera", Batch: 2022},
		},
	}
	svc := NewUserAnalyticsService(repo, noCache(), zap.NewNop(), 2014)

	result, err := svc.Detailed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Overview.TotalUsers)
	require.Len(t, result.Overview.RecentUsers, 1)
	assert.Equal(t, "Asha", result.Overview.RecentUsers[0].Name)
	assert.Equal(t, 2, result.Unverified.Total)
	assert.NotEmpty(t, result.ByBatch)
	assert.Len(t, result.ByDepartment, 3)
}

func TestUserGrowthAcrossPeriodWindows(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	signups := []time.Time{
		now.Add(-2 * time.Hour), // admin, today
		now.Add(-2 * time.Hour), // student, today
		now.Add(-2 * time.Hour), // student, today
		now.AddDate(0, 0, -10),  // alumni, ten days ago
		now.AddDate(0, 0, -10),  // alumni, ten days ago
	}

	inRange := map[string]int{}
	countBetween := func(start, end time.Time) {
		key := start.Format(time.RFC3339) + "/" + end.Format(time.RFC3339)
		for _, created := range signups {
			if !created.Before(start) && !created.After(end) {
				inRange[key]++
			}
		}
	}
	for _, period := range analytics.Periods() {
		w := analytics.WindowFor(period, now)
		countBetween(w.Start, w.End)
		countBetween(w.PreviousStart, w.PreviousEnd)
	}

	repo := &fakeUserRepo{inRange: inRange}
	svc := NewUserAnalyticsService(repo, noCache(), zap.NewNop(), 2014)

	overview, err := svc.Overview(context.Background(), now)
	require.NoError(t, err)

	// Today's three signups have no predecessor in the prior day.
	assert.Equal(t, 3, overview.Growth.Daily.Count)
	assert.InDelta(t, 100.0, overview.Growth.Daily.Rate, 0.001)

	// The ten-day-old pair lands in the prior week window.
	assert.Equal(t, 3, overview.Growth.Weekly.Count)
	assert.InDelta(t, 50.0, overview.Growth.Weekly.Rate, 0.001)

	// All five signups fall in the current month window; prior is empty.
	assert.Equal(t, 5, overview.Growth.Monthly.Count)
	assert.InDelta(t, 100.0, overview.Growth.Monthly.Rate, 0.001)
}
