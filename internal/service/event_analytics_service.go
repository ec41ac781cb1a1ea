package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/alumnet-dev/alumnet-api/internal/analytics"
	"github.com/alumnet-dev/alumnet-api/internal/dto"
	"github.com/alumnet-dev/alumnet-api/internal/models"
	appErrors "github.com/alumnet-dev/alumnet-api/pkg/errors"
)

const upcomingEventsLimit = 5

type eventAnalyticsRepository interface {
	CountAll(ctx context.Context) (int, error)
	CountsByType(ctx context.Context) (map[string]int, error)
	CountInRange(ctx context.Context, start, end time.Time) (int, error)
	CountUpcoming(ctx context.Context, now time.Time) (int, error)
	Upcoming(ctx context.Context, now time.Time, limit int) ([]models.EventSummary, error)
	AllStubs(ctx context.Context) ([]models.EventStub, error)
}

// EventAnalyticsService produces event activity analytics.
type EventAnalyticsService struct {
	repo   eventAnalyticsRepository
	cache  *CacheService
	logger *zap.Logger
	now    func() time.Time
}

// NewEventAnalyticsService constructs the service.
func NewEventAnalyticsService(repo eventAnalyticsRepository, cache *CacheService, logger *zap.Logger) *EventAnalyticsService {
	return &EventAnalyticsService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// Dashboard builds the event section of the admin dashboard.
func (s *EventAnalyticsService) Dashboard(ctx context.Context, now time.Time) (dto.EventDashboard, error) {
	var section dto.EventDashboard

	err := inParallel(ctx,
		func(ctx context.Context) error {
			total, err := s.repo.CountAll(ctx)
			if err != nil {
				return err
			}
			section.TotalEvents = total
			return nil
		},
		func(ctx context.Context) error {
			byType, err := s.repo.CountsByType(ctx)
			if err != nil {
				return err
			}
			section.ByType = typeDistribution(byType)
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
		func(ctx context.Context) error {
			upcoming, err := s.repo.CountUpcoming(ctx, now)
			if err != nil {
				return err
			}
			section.Upcoming = upcoming
			return nil
		},
		func(ctx context.Context) error {
			next, err := s.repo.Upcoming(ctx, now, upcomingEventsLimit)
			if err != nil {
				return err
			}
			if next == nil {
				next = []models.EventSummary{}
			}
			section.NextEvents = next
			return nil
		},
	)
	if err != nil {
		return dto.EventDashboard{}, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}
	section.Past = section.TotalEvents - section.Upcoming
	return section, nil
}

// Detailed assembles the full events-analytics payload. The monthly
// series is derived from raw schedule stubs so months are labelled and
// ordered chronologically regardless of insertion order.
func (s *EventAnalyticsService) Detailed(ctx context.Context) (dto.EventAnalyticsDetailed, error) {
	var cached dto.EventAnalyticsDetailed
	if s.cache.Get(ctx, cacheKeyEventsDetailed, &cached) {
		return cached, nil
	}

	now := s.now().UTC()
	stubs, err := s.repo.AllStubs(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("events analytics failed", zap.Error(err))
		}
		return dto.EventAnalyticsDetailed{}, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}

	result := dto.EventAnalyticsDetailed{
		TotalEvents: len(stubs),
		ByType:      map[string]int{},
		Monthly:     []dto.EventMonthStats{},
	}

	monthCounts := map[time.Time]int{}
	monthTypes := map[time.Time]map[string]int{}
	for _, stub := range stubs {
		result.ByType[string(stub.Type)]++
		if stub.DateTime.Before(now) {
			result.Past++
		} else {
			result.Upcoming++
		}
		month := analytics.MonthStart(stub.DateTime.UTC().Month(), stub.DateTime.UTC().Year())
		monthCounts[month]++
		if monthTypes[month] == nil {
			monthTypes[month] = map[string]int{}
		}
		monthTypes[month][string(stub.Type)]++
	}

	months := make([]time.Time, 0, len(monthCounts))
	for month := range monthCounts {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	for _, month := range months {
		result.Monthly = append(result.Monthly, dto.EventMonthStats{
			Month:  analytics.FormatMonthYear(month),
			Count:  monthCounts[month],
			ByType: monthTypes[month],
		})
	}

	for _, eventType := range []models.EventType{models.EventAlumni, models.EventCollege, models.EventClub, models.EventOthers} {
		if _, ok := result.ByType[string(eventType)]; !ok {
			result.ByType[string(eventType)] = 0
		}
	}

	s.cache.Set(ctx, cacheKeyEventsDetailed, result)
	return result, nil
}

// typeDistribution zero-fills the fixed event type set from raw counts.
func typeDistribution(counts map[string]int) map[string]int {
	dist := map[string]int{
		string(models.EventAlumni):  0,
		string(models.EventCollege): 0,
		string(models.EventClub):    0,
		string(models.EventOthers):  0,
	}
	for eventType, count := range counts {
		dist[eventType] = count
	}
	return dist
}
