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

const (
	recentUsersLimit     = 10
	unverifiedUsersLimit = 20
	rollupRecencyDays    = 30
)

type userAnalyticsRepository interface {
	CountAll(ctx context.Context) (int, error)
	CountsByRole(ctx context.Context) (map[string]int, error)
	CountInRange(ctx context.Context, start, end time.Time) (int, error)
	BucketCounts(ctx context.Context, start, end time.Time, hourly bool) (map[string]int, error)
	Recent(ctx context.Context, limit int) ([]models.UserSummary, error)
	Unverified(ctx context.Context, limit int) (int, []models.UserSummary, error)
	BatchRoleStats(ctx context.Context, since time.Time, role models.UserRole) ([]models.BatchRoleStats, error)
	DepartmentRoleStats(ctx context.Context, since time.Time, role models.UserRole) ([]models.DepartmentRoleStats, error)
}

// UserAnalyticsService produces registration and membership analytics.
type UserAnalyticsService struct {
	repo       userAnalyticsRepository
	cache      *CacheService
	logger     *zap.Logger
	batchFloor int
	now        func() time.Time
}

// NewUserAnalyticsService constructs the service.
func NewUserAnalyticsService(repo userAnalyticsRepository, cache *CacheService, logger *zap.Logger, batchFloor int) *UserAnalyticsService {
	if batchFloor <= 0 {
		batchFloor = models.BatchFloor
	}
	return &UserAnalyticsService{
		repo:       repo,
		cache:      cache,
		logger:     logger,
		batchFloor: batchFloor,
		now:        time.Now,
	}
}

// Overview builds the user section of the admin dashboard against a
// single reference instant.
func (s *UserAnalyticsService) Overview(ctx context.Context, now time.Time) (dto.UserOverview, error) {
	var overview dto.UserOverview

	err := inParallel(ctx,
		func(ctx context.Context) error {
			total, err := s.repo.CountAll(ctx)
			if err != nil {
				return err
			}
			overview.TotalUsers = total
			return nil
		},
		func(ctx context.Context) error {
			counts, err := s.repo.CountsByRole(ctx)
			if err != nil {
				return err
			}
			overview.ByRole = roleDistribution(counts)
			return nil
		},
		func(ctx context.Context) error {
			growth, err := growthFor(ctx, now, s.repo.CountInRange)
			if err != nil {
				return err
			}
			overview.Growth = growth
			return nil
		},
		func(ctx context.Context) error {
			timelines, err := timelinesFor(ctx, now, s.repo.BucketCounts)
			if err != nil {
				return err
			}
			overview.Timelines = timelines
			return nil
		},
		func(ctx context.Context) error {
			recent, err := s.repo.Recent(ctx, recentUsersLimit)
			if err != nil {
				return err
			}
			overview.RecentUsers = recent
			return nil
		},
	)
	if err != nil {
		return dto.UserOverview{}, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}
	if overview.RecentUsers == nil {
		overview.RecentUsers = []models.UserSummary{}
	}
	return overview, nil
}

// BatchAnalytics rolls users up per graduation batch, narrowed to one
// role when role is non-empty. Every batch from the floor year through
// five years past the current one appears, even when empty, so the
// admin UI renders a stable axis.
func (s *UserAnalyticsService) BatchAnalytics(ctx context.Context, now time.Time, role models.UserRole) ([]dto.BatchAnalytics, error) {
	since := now.AddDate(0, 0, -rollupRecencyDays)
	rows, err := s.repo.BatchRoleStats(ctx, since, role)
	if err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}

	byBatch := make(map[int]models.BatchRoleStats, len(rows))
	for _, row := range rows {
		byBatch[row.Batch] = row
	}

	lastBatch := now.UTC().Year() + 5
	result := make([]dto.BatchAnalytics, 0, lastBatch-s.batchFloor+1)
	for batch := s.batchFloor; batch <= lastBatch; batch++ {
		row := byBatch[batch]
		result = append(result, dto.BatchAnalytics{
			Batch:  batch,
			Total:  row.Total,
			ByRole: rollupRoles(row.Roles),
			Growth: recencyFromRoles(row.Roles, row.Total),
		})
	}
	return result, nil
}

// DepartmentAnalytics rolls users up per department over the fixed
// department set, narrowed to one role when role is non-empty.
func (s *UserAnalyticsService) DepartmentAnalytics(ctx context.Context, now time.Time, role models.UserRole) ([]dto.DepartmentAnalytics, error) {
	since := now.AddDate(0, 0, -rollupRecencyDays)
	rows, err := s.repo.DepartmentRoleStats(ctx, since, role)
	if err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}

	byDept := make(map[models.Department]models.DepartmentRoleStats, len(rows))
	for _, row := range rows {
		byDept[row.Department] = row
	}

	departments := models.Departments()
	result := make([]dto.DepartmentAnalytics, 0, len(departments))
	for _, dept := range departments {
		row := byDept[dept]
		result = append(result, dto.DepartmentAnalytics{
			Department: dept,
			Total:      row.Total,
			ByRole:     rollupRoles(row.Roles),
			Growth:     recencyFromRoles(row.Roles, row.Total),
		})
	}
	return result, nil
}

// Detailed assembles the full users-analytics payload.
func (s *UserAnalyticsService) Detailed(ctx context.Context) (dto.DetailedUserAnalytics, error) {
	var cached dto.DetailedUserAnalytics
	if s.cache.Get(ctx, cacheKeyUsersDetailed, &cached) {
		return cached, nil
	}

	now := s.now().UTC()
	var result dto.DetailedUserAnalytics

	err := inParallel(ctx,
		func(ctx context.Context) error {
			overview, err := s.Overview(ctx, now)
			if err != nil {
				return err
			}
			result.Overview = overview
			return nil
		},
		func(ctx context.Context) error {
			byBatch, err := s.BatchAnalytics(ctx, now, "")
			if err != nil {
				return err
			}
			result.ByBatch = byBatch
			return nil
		},
		func(ctx context.Context) error {
			byDept, err := s.DepartmentAnalytics(ctx, now, "")
			if err != nil {
				return err
			}
			result.ByDepartment = byDept
			return nil
		},
		func(ctx context.Context) error {
			total, users, err := s.repo.Unverified(ctx, unverifiedUsersLimit)
			if err != nil {
				return err
			}
			result.Unverified = dto.UnverifiedUsers{Total: total, Users: users}
			return nil
		},
	)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("users analytics failed", zap.Error(err))
		}
		return dto.DetailedUserAnalytics{}, appErrors.FromError(err)
	}
	if result.Unverified.Users == nil {
		result.Unverified.Users = []models.UserSummary{}
	}

	s.cache.Set(ctx, cacheKeyUsersDetailed, result)
	return result, nil
}

// rollupRoles zero-fills the role distribution from rollup rows.
func rollupRoles(roles []models.RoleStat) dto.RoleDistribution {
	var dist dto.RoleDistribution
	for _, role := range roles {
		switch role.Role {
		case models.RoleAdmin:
			dist.Admin += role.Total
		case models.RoleAlumni:
			dist.Alumni += role.Total
		case models.RoleStudent:
			dist.Student += role.Total
		}
	}
	return dist
}

// recencyFromRoles derives the rollup growth figure: the count of the
// partition's members who joined inside the recency window and that
// count's share of the partition total.
func recencyFromRoles(roles []models.RoleStat, total int) analytics.Growth {
	recent := 0
	for _, role := range roles {
		recent += role.Recent
	}
	return analytics.Growth{Count: recent, Rate: analytics.RecencyRate(recent, total)}
}
