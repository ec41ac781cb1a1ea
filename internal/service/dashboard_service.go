package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/alumnet-dev/alumnet-api/internal/dto"
	appErrors "github.com/alumnet-dev/alumnet-api/pkg/errors"
)

type userOverviewProvider interface {
	Overview(ctx context.Context, now time.Time) (dto.UserOverview, error)
}

type eventSectionProvider interface {
	Dashboard(ctx context.Context, now time.Time) (dto.EventDashboard, error)
}

type referralSectionProvider interface {
	Dashboard(ctx context.Context, now time.Time) (dto.ReferralDashboard, error)
}

type jobSectionProvider interface {
	Dashboard(ctx context.Context, now time.Time) (dto.JobDashboard, error)
}

type loginAnalyticsRepository interface {
	CountAll(ctx context.Context) (int, error)
	CountsByRole(ctx context.Context) (map[string]int, error)
	CountInRange(ctx context.Context, start, end time.Time) (int, error)
	BucketCounts(ctx context.Context, start, end time.Time, hourly bool) (map[string]int, error)
}

// DashboardService composes the admin dashboard from every section
// provider. All sections observe the same reference instant so growth
// windows line up across the payload.
type DashboardService struct {
	users     userOverviewProvider
	events    eventSectionProvider
	referrals referralSectionProvider
	jobs      jobSectionProvider
	logins    loginAnalyticsRepository
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Users     userOverviewProvider
	Events    eventSectionProvider
	Referrals referralSectionProvider
	Jobs      jobSectionProvider
	Logins    loginAnalyticsRepository
	Cache     *CacheService
	Metrics   *MetricsService
	Logger    *zap.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	return &DashboardService{
		users:     params.Users,
		events:    params.Events,
		referrals: params.Referrals,
		jobs:      params.Jobs,
		logins:    params.Logins,
		cache:     params.Cache,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// Compose builds the full dashboard payload, fanning sections out
// concurrently and failing fast on the first section error.
func (s *DashboardService) Compose(ctx context.Context) (dto.DashboardResponse, error) {
	var cached dto.DashboardResponse
	if s.cache.Get(ctx, cacheKeyDashboard, &cached) {
		return cached, nil
	}

	now := s.now().UTC()
	var result dto.DashboardResponse

	err := inParallel(ctx,
		s.timed("dashboard_users", func(ctx context.Context) error {
			users, err := s.users.Overview(ctx, now)
			if err != nil {
				return err
			}
			result.Users = users
			return nil
		}),
		s.timed("dashboard_events", func(ctx context.Context) error {
			events, err := s.events.Dashboard(ctx, now)
			if err != nil {
				return err
			}
			result.Events = events
			return nil
		}),
		s.timed("dashboard_referrals", func(ctx context.Context) error {
			referrals, err := s.referrals.Dashboard(ctx, now)
			if err != nil {
				return err
			}
			result.Referrals = referrals
			return nil
		}),
		s.timed("dashboard_jobs", func(ctx context.Context) error {
			jobs, err := s.jobs.Dashboard(ctx, now)
			if err != nil {
				return err
			}
			result.Jobs = jobs
			return nil
		}),
		s.timed("dashboard_logins", func(ctx context.Context) error {
			logins, err := s.loginSection(ctx, now)
			if err != nil {
				return err
			}
			result.Logins = logins
			return nil
		}),
	)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("dashboard composition failed", zap.Error(err))
		}
		return dto.DashboardResponse{}, appErrors.FromError(err)
	}

	s.cache.Set(ctx, cacheKeyDashboard, result)
	return result, nil
}

// Refresh drops every cached analytics payload and recomputes the
// dashboard from the live collections.
func (s *DashboardService) Refresh(ctx context.Context) (dto.DashboardResponse, error) {
	if err := s.cache.Invalidate(ctx, cachePatternAnalytics); err != nil && s.logger != nil {
		s.logger.Warn("analytics cache invalidation failed", zap.Error(err))
	}
	return s.Compose(ctx)
}

// timed wraps one section task with query duration instrumentation.
func (s *DashboardService) timed(label string, task func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		start := time.Now()
		err := task(ctx)
		s.metrics.ObserveQuery(label, time.Since(start))
		return err
	}
}

// loginSection builds the sign-in activity section directly from the
// login events collection.
func (s *DashboardService) loginSection(ctx context.Context, now time.Time) (dto.LoginAnalytics, error) {
	var section dto.LoginAnalytics

	err := inParallel(ctx,
		func(ctx context.Context) error {
			total, err := s.logins.CountAll(ctx)
			if err != nil {
				return err
			}
			section.TotalLogins = total
			return nil
		},
		func(ctx context.Context) error {
			counts, err := s.logins.CountsByRole(ctx)
			if err != nil {
				return err
			}
			section.ByRole = roleDistribution(counts)
			return nil
		},
		func(ctx context.Context) error {
			growth, err := growthFor(ctx, now, s.logins.CountInRange)
			if err != nil {
				return err
			}
			section.Growth = growth
			return nil
		},
		func(ctx context.Context) error {
			timelines, err := timelinesFor(ctx, now, s.logins.BucketCounts)
			if err != nil {
				return err
			}
			section.Timelines = timelines
			return nil
		},
	)
	if err != nil {
		return dto.LoginAnalytics{}, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}
	return section, nil
}
