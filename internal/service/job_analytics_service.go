package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/alumnet-dev/alumnet-api/internal/analytics"
	"github.com/alumnet-dev/alumnet-api/internal/dto"
	"github.com/alumnet-dev/alumnet-api/internal/models"
	appErrors "github.com/alumnet-dev/alumnet-api/pkg/errors"
)

type jobAnalyticsRepository interface {
	CountAll(ctx context.Context) (int, error)
	CountActive(ctx context.Context, now time.Time) (int, error)
	CountInRange(ctx context.Context, start, end time.Time) (int, error)
	TopCompanies(ctx context.Context, limit int) ([]analytics.TopItem, error)
	TopRoles(ctx context.Context, limit int) ([]analytics.TopItem, error)
	AllStubs(ctx context.Context) ([]models.JobStub, error)
}

type userRefResolver interface {
	FindRefsByIDs(ctx context.Context, ids []string) (map[string]models.UserRef, error)
}

// JobAnalyticsService produces job posting analytics.
type JobAnalyticsService struct {
	repo     jobAnalyticsRepository
	users    userRefResolver
	cache    *CacheService
	logger   *zap.Logger
	topLimit int
	now      func() time.Time
}

// NewJobAnalyticsService constructs the service.
func NewJobAnalyticsService(repo jobAnalyticsRepository, users userRefResolver, cache *CacheService, logger *zap.Logger, topLimit int) *JobAnalyticsService {
	if topLimit <= 0 {
		topLimit = 10
	}
	return &JobAnalyticsService{repo: repo, users: users, cache: cache, logger: logger, topLimit: topLimit, now: time.Now}
}

// Dashboard builds the job section of the admin dashboard.
func (s *JobAnalyticsService) Dashboard(ctx context.Context, now time.Time) (dto.JobDashboard, error) {
	var section dto.JobDashboard

	err := inParallel(ctx,
		func(ctx context.Context) error {
			total, err := s.repo.CountAll(ctx)
			if err != nil {
				return err
			}
			section.TotalJobs = total
			return nil
		},
		func(ctx context.Context) error {
			active, err := s.repo.CountActive(ctx, now)
			if err != nil {
				return err
			}
			section.Active = active
			return nil
		},
		func(ctx context.Context) error {
			companies, err := s.repo.TopCompanies(ctx, s.topLimit)
			if err != nil {
				return err
			}
			section.TopCompanies = emptyIfNil(companies)
			return nil
		},
		func(ctx context.Context) error {
			roles, err := s.repo.TopRoles(ctx, s.topLimit)
			if err != nil {
				return err
			}
			section.TopRoles = emptyIfNil(roles)
			return nil
		},
		func(ctx context.Context) error {
			growth, err := growthFor(ctx, now, s.repo.CountInRange)
			if err != nil {
				return err
			}
			section.Growth = growth
			return nil
		},
	)
	if err != nil {
		return dto.JobDashboard{}, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}
	return section, nil
}

// Detailed assembles the full jobs-analytics payload from raw posting
// stubs, splitting every category by application deadline.
func (s *JobAnalyticsService) Detailed(ctx context.Context) (dto.JobAnalyticsDetailed, error) {
	var cached dto.JobAnalyticsDetailed
	if s.cache.Get(ctx, cacheKeyJobsDetailed, &cached) {
		return cached, nil
	}

	now := s.now().UTC()
	stubs, err := s.repo.AllStubs(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("jobs analytics failed", zap.Error(err))
		}
		return dto.JobAnalyticsDetailed{}, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}

	result := dto.JobAnalyticsDetailed{
		TotalJobs:     len(stubs),
		TypeStats:     map[string]dto.SplitCounts{},
		WorkTypeStats: map[string]dto.SplitCounts{},
	}

	companies := make([]string, 0, len(stubs))
	roles := make([]string, 0, len(stubs))
	posterCounts := map[string]int{}
	for _, stub := range stubs {
		future := !stub.LastApplyDate.Before(now)
		if future {
			result.Active++
		} else {
			result.Expired++
		}
		addSplit(result.TypeStats, stub.Type, future)
		addSplit(result.WorkTypeStats, stub.WorkType, future)
		companies = append(companies, stub.Company)
		roles = append(roles, stub.Role)
		if stub.PostedBy != "" {
			posterCounts[stub.PostedBy]++
		}
	}

	companyCounts := analytics.Accumulate(companies)
	roleCounts := analytics.Accumulate(roles)
	result.UniqueCompanies = len(companyCounts)
	result.UniqueRoles = len(roleCounts)
	result.TopCompanies = analytics.TopK(companyCounts, s.topLimit)
	result.TopRoles = analytics.TopK(roleCounts, s.topLimit)

	posters, err := s.topPosters(ctx, posterCounts)
	if err != nil {
		return dto.JobAnalyticsDetailed{}, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}
	result.TopPosters = posters

	s.cache.Set(ctx, cacheKeyJobsDetailed, result)
	return result, nil
}

// topPosters ranks posting authors by volume and resolves their
// identities. Authors who since deleted their account keep their id as a
// display name.
func (s *JobAnalyticsService) topPosters(ctx context.Context, counts map[string]int) ([]dto.JobPoster, error) {
	ranked := analytics.TopK(counts, s.topLimit)
	ids := make([]string, 0, len(ranked))
	for _, item := range ranked {
		ids = append(ids, item.Name)
	}

	refs, err := s.users.FindRefsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	posters := make([]dto.JobPoster, 0, len(ranked))
	for _, item := range ranked {
		poster := dto.JobPoster{UserID: item.Name, Name: item.Name, Count: item.Count}
		if ref, ok := refs[item.Name]; ok {
			poster.Name = ref.Name
			poster.Batch = ref.Batch
			poster.Role = string(ref.Role)
		}
		posters = append(posters, poster)
	}
	return posters, nil
}

// addSplit counts one posting into the category's deadline split.
func addSplit(stats map[string]dto.SplitCounts, key string, future bool) {
	if key == "" {
		return
	}
	split := stats[key]
	split.Total++
	if future {
		split.Future++
	} else {
		split.Past++
	}
	stats[key] = split
}
