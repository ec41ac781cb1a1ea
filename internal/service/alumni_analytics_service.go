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

type alumniAnalyticsRepository interface {
	PositionFacets(ctx context.Context, now time.Time) (models.PositionFacetResult, error)
	EducationFacets(ctx context.Context, now time.Time) (models.EducationFacetResult, error)
	LocationGroups(ctx context.Context) (models.LocationGroup, error)
}

type rollupProvider interface {
	BatchAnalytics(ctx context.Context, now time.Time, role models.UserRole) ([]dto.BatchAnalytics, error)
	DepartmentAnalytics(ctx context.Context, now time.Time, role models.UserRole) ([]dto.DepartmentAnalytics, error)
}

// AlumniAnalyticsService produces career and education analytics over
// verified alumni profiles. Its batch and department rollups count
// alumni accounts only, unlike the all-role rollups on the users side.
type AlumniAnalyticsService struct {
	repo     alumniAnalyticsRepository
	rollups  rollupProvider
	cache    *CacheService
	logger   *zap.Logger
	topLimit int
	now      func() time.Time
}

// NewAlumniAnalyticsService constructs the service.
func NewAlumniAnalyticsService(repo alumniAnalyticsRepository, rollups rollupProvider, cache *CacheService, logger *zap.Logger, topLimit int) *AlumniAnalyticsService {
	if topLimit <= 0 {
		topLimit = 10
	}
	return &AlumniAnalyticsService{repo: repo, rollups: rollups, cache: cache, logger: logger, topLimit: topLimit, now: time.Now}
}

// Analytics assembles the alumni-analytics payload. Every branch runs
// concurrently against the same reference instant.
func (s *AlumniAnalyticsService) Analytics(ctx context.Context) (dto.AlumniAnalytics, error) {
	var cached dto.AlumniAnalytics
	if s.cache.Get(ctx, cacheKeyAlumniDetailed, &cached) {
		return cached, nil
	}

	now := s.now().UTC()
	var result dto.AlumniAnalytics

	err := inParallel(ctx,
		func(ctx context.Context) error {
			batches, err := s.rollups.BatchAnalytics(ctx, now, models.RoleAlumni)
			if err != nil {
				return err
			}
			result.Batches = batches
			return nil
		},
		func(ctx context.Context) error {
			departments, err := s.rollups.DepartmentAnalytics(ctx, now, models.RoleAlumni)
			if err != nil {
				return err
			}
			result.Departments = departments
			return nil
		},
		func(ctx context.Context) error {
			facets, err := s.repo.PositionFacets(ctx, now)
			if err != nil {
				return err
			}
			result.Jobs = dto.PositionFacets{
				All:     s.positionView(facets.All),
				Ongoing: s.positionView(facets.Ongoing),
			}
			return nil
		},
		func(ctx context.Context) error {
			facets, err := s.repo.EducationFacets(ctx, now)
			if err != nil {
				return err
			}
			result.Education = dto.EducationFacets{
				All:     s.educationView(facets.All),
				Ongoing: s.educationView(facets.Ongoing),
			}
			return nil
		},
		func(ctx context.Context) error {
			locations, err := s.repo.LocationGroups(ctx)
			if err != nil {
				return err
			}
			result.Locations = dto.LocationAnalytics{
				TopCities:    analytics.TopK(analytics.Accumulate(locations.Cities), s.topLimit),
				TopCountries: analytics.TopK(analytics.Accumulate(locations.Countries), s.topLimit),
			}
			return nil
		},
	)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("alumni analytics failed", zap.Error(err))
		}
		return dto.AlumniAnalytics{}, appErrors.FromError(err)
	}

	s.cache.Set(ctx, cacheKeyAlumniDetailed, result)
	return result, nil
}

// positionView reduces one facet view's pushed arrays into counts and
// rankings. A view with no rows yields a zero view, not nil fields.
func (s *AlumniAnalyticsService) positionView(groups []models.PositionFacetGroup) dto.PositionFacetView {
	view := dto.PositionFacetView{
		EmploymentTypes: map[string]int{},
		JobTypes:        map[string]int{},
		TopTitles:       []analytics.TopItem{},
		TopLocations:    []analytics.TopItem{},
		TopCompanies:    []analytics.TopItem{},
	}
	if len(groups) == 0 {
		return view
	}
	group := groups[0]
	view.Total = group.Total
	view.EmploymentTypes = analytics.Accumulate(group.EmploymentTypes)
	view.JobTypes = analytics.Accumulate(group.JobTypes)
	view.TopTitles = analytics.TopK(analytics.Accumulate(group.Titles), s.topLimit)
	view.TopLocations = analytics.TopK(analytics.Accumulate(group.Locations), s.topLimit)
	view.TopCompanies = analytics.TopK(analytics.Accumulate(group.Companies), s.topLimit)
	return view
}

// educationView reduces one education facet view the same way.
func (s *AlumniAnalyticsService) educationView(groups []models.EducationFacetGroup) dto.EducationFacetView {
	view := dto.EducationFacetView{
		Degrees:      map[string]int{},
		TopFields:    []analytics.TopItem{},
		TopSchools:   []analytics.TopItem{},
		TopLocations: []analytics.TopItem{},
	}
	if len(groups) == 0 {
		return view
	}
	group := groups[0]
	view.Total = group.Total
	view.Degrees = analytics.Accumulate(group.Degrees)
	view.TopFields = analytics.TopK(analytics.Accumulate(group.Fields), s.topLimit)
	view.TopSchools = analytics.TopK(analytics.Accumulate(group.Schools), s.topLimit)
	view.TopLocations = analytics.TopK(analytics.Accumulate(group.Locations), s.topLimit)
	return view
}
