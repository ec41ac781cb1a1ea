package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/alumnet-dev/alumnet-api/internal/analytics"
	"github.com/alumnet-dev/alumnet-api/internal/dto"
	appErrors "github.com/alumnet-dev/alumnet-api/pkg/errors"
)

type contactAnalyticsRepository interface {
	Counts(ctx context.Context) (total, resolved int, err error)
	BucketCounts(ctx context.Context, start, end time.Time) (map[string]int, error)
}

// ContactAnalyticsService produces contact inbox analytics.
type ContactAnalyticsService struct {
	repo   contactAnalyticsRepository
	cache  *CacheService
	logger *zap.Logger
	now    func() time.Time
}

// NewContactAnalyticsService constructs the service.
func NewContactAnalyticsService(repo contactAnalyticsRepository, cache *CacheService, logger *zap.Logger) *ContactAnalyticsService {
	return &ContactAnalyticsService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// Analytics assembles the contacts-analytics payload with dense daily
// timelines for the weekly and monthly windows.
func (s *ContactAnalyticsService) Analytics(ctx context.Context) (dto.ContactAnalytics, error) {
	var cached dto.ContactAnalytics
	if s.cache.Get(ctx, cacheKeyContactAnalytics, &cached) {
		return cached, nil
	}

	now := s.now().UTC()
	var result dto.ContactAnalytics

	timeline := func(p analytics.Period, dest *[]analytics.TimelinePoint) func(context.Context) error {
		return func(ctx context.Context) error {
			w := analytics.WindowFor(p, now)
			counts, err := s.repo.BucketCounts(ctx, w.Start, w.End)
			if err != nil {
				return err
			}
			*dest = analytics.BuildTimeline(counts, w.Start, w.End, false)
			return nil
		}
	}

	err := inParallel(ctx,
		func(ctx context.Context) error {
			total, resolved, err := s.repo.Counts(ctx)
			if err != nil {
				return err
			}
			result.TotalMessages = total
			result.Resolved = resolved
			result.Unresolved = total - resolved
			return nil
		},
		timeline(analytics.PeriodWeek, &result.Timelines.Weekly),
		timeline(analytics.PeriodMonth, &result.Timelines.Monthly),
	)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("contacts analytics failed", zap.Error(err))
		}
		return dto.ContactAnalytics{}, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}

	s.cache.Set(ctx, cacheKeyContactAnalytics, result)
	return result, nil
}
