package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alumnet-dev/alumnet-api/internal/analytics"
	"github.com/alumnet-dev/alumnet-api/internal/dto"
	"github.com/alumnet-dev/alumnet-api/internal/models"
)

type fakeJobRepo struct {
	total        int
	active       int
	inRange      map[string]int
	topCompanies []analytics.TopItem
	topRoles     []analytics.TopItem
	stubs        []models.JobStub
	err          error
}

func (f *fakeJobRepo) CountAll(context.Context) (int, error) {
	return f.total, f.err
}

func (f *fakeJobRepo) CountActive(context.Context, time.Time) (int, error) {
	return f.active, f.err
}

func (f *fakeJobRepo) TopCompanies(context.Context, int) ([]analytics.TopItem, error) {
	return f.topCompanies, f.err
}

func (f *fakeJobRepo) TopRoles(context.Context, int) ([]analytics.TopItem, error) {
	return f.topRoles, f.err
}

func (f *fakeJobRepo) CountInRange(_ context.Context, start, end time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.inRange[start.Format(time.RFC3339)+"/"+end.Format(time.RFC3339)], nil
}

func (f *fakeJobRepo) AllStubs(context.Context) ([]models.JobStub, error) {
	return f.stubs, f.err
}

type fakeUserRefs struct {
	refs map[string]models.UserRef
	err  error
}

func (f *fakeUserRefs) FindRefsByIDs(context.Context, []string) (map[string]models.UserRef, error) {
	return f.refs, f.err
}

func TestJobDetailedSplitsByDeadline(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeJobRepo{stubs: []models.JobStub{
		{Type: "internship", WorkType: "remote", Company: "Acme", Role: "SDE", PostedBy: "u1", LastApplyDate: now.AddDate(0, 0, 10)},
		{Type: "internship", WorkType: "on-site", Company: "Acme", Role: "SDE", PostedBy: "u1", LastApplyDate: now.AddDate(0, 0, -5)},
		{Type: "full-time", WorkType: "remote", Company: "Globex", Role: "Analyst", PostedBy: "u2", LastApplyDate: now.AddDate(0, 0, 3)},
		{Type: "full-time", WorkType: "remote", Company: "", Role: "Analyst", PostedBy: "", LastApplyDate: now.AddDate(0, 0, -1)},
	}}
	svc := NewJobAnalyticsService(repo, &fakeUserRefs{refs: map[string]models.UserRef{
		"u1": {ID: "u1", Name: "Priya", Batch: 2020, Role: models.RoleAlumni},
	}}, noCache(), zap.NewNop(), 10)
	svc.now = func() time.Time { return now }

	result, err := svc.Detailed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, result.TotalJobs)
	assert.Equal(t, 2, result.Active)
	assert.Equal(t, 2, result.Expired)
	assert.Equal(t, dto.SplitCounts{Total: 2, Future: 1, Past: 1}, result.TypeStats["internship"])
	assert.Equal(t, dto.SplitCounts{Total: 2, Future: 1, Past: 1}, result.TypeStats["full-time"])
	assert.Equal(t, dto.SplitCounts{Total: 3, Future: 2, Past: 1}, result.WorkTypeStats["remote"])

	// Empty company names never rank or count as unique.
	assert.Equal(t, 2, result.UniqueCompanies)
	assert.Equal(t, 2, result.UniqueRoles)
	require.Len(t, result.TopCompanies, 2)
	assert.Equal(t, "Acme", result.TopCompanies[0].Name)
	assert.Equal(t, 2, result.TopCompanies[0].Count)

	require.Len(t, result.TopPosters, 2)
	assert.Equal(t, "Priya", result.TopPosters[0].Name)
	assert.Equal(t, 2, result.TopPosters[0].Count)
	assert.Equal(t, 2020, result.TopPosters[0].Batch)
	// Unresolvable poster keeps its id as display name.
	assert.Equal(t, "u2", result.TopPosters[1].Name)
}

func TestJobDashboardGrowth(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeJobRepo{
		total:        20,
		active:       7,
		topCompanies: []analytics.TopItem{{Name: "Acme", Count: 9}},
		inRange: map[string]int{
			now.AddDate(0, 0, -30).Format(time.RFC3339) + "/" + now.Format(time.RFC3339):                    6,
			now.AddDate(0, 0, -60).Format(time.RFC3339) + "/" + now.AddDate(0, 0, -30).Format(time.RFC3339): 4,
		},
	}
	svc := NewJobAnalyticsService(repo, &fakeUserRefs{}, noCache(), zap.NewNop(), 10)

	section, err := svc.Dashboard(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 20, section.TotalJobs)
	assert.Equal(t, 7, section.Active)
	assert.Equal(t, []analytics.TopItem{{Name: "Acme", Count: 9}}, section.TopCompanies)
	assert.NotNil(t, section.TopRoles)
	assert.Equal(t, 6, section.Growth.Monthly.Count)
	assert.InDelta(t, 50.0, section.Growth.Monthly.Rate, 0.001)
}
