package service

import (
	"context"
	"time"

	"github.com/alumnet-dev/alumnet-api/internal/analytics"
	"github.com/alumnet-dev/alumnet-api/internal/dto"
	"github.com/alumnet-dev/alumnet-api/internal/models"
	appErrors "github.com/alumnet-dev/alumnet-api/pkg/errors"
)

type userLister interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.User, int, error)
}

type eventLister interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, int, error)
}

type jobLister interface {
	List(ctx context.Context, filter models.JobFilter, now time.Time) ([]models.JobPosting, int, error)
}

// ListConfig bounds pagination for listing endpoints.
type ListConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

func (c ListConfig) clamp(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = c.DefaultPageSize
	}
	if c.MaxPageSize > 0 && pageSize > c.MaxPageSize {
		pageSize = c.MaxPageSize
	}
	return page, pageSize
}

// ListService serves the paginated directory endpoints.
type ListService struct {
	users  userLister
	events eventLister
	jobs   jobLister
	cfg    ListConfig
	now    func() time.Time
}

// NewListService constructs the service.
func NewListService(users userLister, events eventLister, jobs jobLister, cfg ListConfig) *ListService {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	return &ListService{users: users, events: events, jobs: jobs, cfg: cfg, now: time.Now}
}

// Users returns a filtered page of the member directory.
func (s *ListService) Users(ctx context.Context, req dto.UserListRequest) (dto.ListResponse[models.User], error) {
	page, pageSize := s.cfg.clamp(req.Page, req.PageSize)
	filter := models.UserFilter{
		Search:      req.Search,
		Batches:     req.Batches,
		Departments: req.Departments,
		Verified:    req.Verified,
		Page:        page,
		PageSize:    pageSize,
	}

	users, total, err := s.users.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[models.User]{}, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return dto.ListResponse[models.User]{
		Items:      users,
		Pagination: models.Pagination{Page: page, PageSize: pageSize, TotalCount: total},
	}, nil
}

// Events returns a filtered page of events. A year filter selects the
// whole calendar year, a month filter narrows it to that month, and
// explicit range bounds override either side of the window. All windows
// are UTC.
func (s *ListService) Events(ctx context.Context, req dto.EventListRequest) (dto.ListResponse[models.Event], error) {
	page, pageSize := s.cfg.clamp(req.Page, req.PageSize)
	filter := models.EventFilter{
		Type:     models.EventType(req.Type),
		Page:     page,
		PageSize: pageSize,
	}
	switch {
	case req.Month != 0:
		start := analytics.MonthStart(time.Month(req.Month), req.Year)
		end := analytics.MonthEnd(time.Month(req.Month), req.Year)
		filter.Start = &start
		filter.End = &end
	case req.Year != 0:
		start := analytics.MonthStart(time.January, req.Year)
		end := analytics.MonthEnd(time.December, req.Year)
		filter.Start = &start
		filter.End = &end
	}
	if req.Start != nil {
		filter.Start = req.Start
	}
	if req.End != nil {
		filter.End = req.End
	}

	events, total, err := s.events.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[models.Event]{}, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return dto.ListResponse[models.Event]{
		Items:      events,
		Pagination: models.Pagination{Page: page, PageSize: pageSize, TotalCount: total},
	}, nil
}

// Jobs returns a filtered page of job postings. The active filter is
// evaluated against the current instant.
func (s *ListService) Jobs(ctx context.Context, req dto.JobListRequest) (dto.ListResponse[models.JobPosting], error) {
	page, pageSize := s.cfg.clamp(req.Page, req.PageSize)
	filter := models.JobFilter{
		Type:     req.Type,
		WorkType: req.WorkType,
		Active:   req.Active,
		Page:     page,
		PageSize: pageSize,
	}

	jobs, total, err := s.jobs.List(ctx, filter, s.now().UTC())
	if err != nil {
		return dto.ListResponse[models.JobPosting]{}, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}
	if jobs == nil {
		jobs = []models.JobPosting{}
	}
	return dto.ListResponse[models.JobPosting]{
		Items:      jobs,
		Pagination: models.Pagination{Page: page, PageSize: pageSize, TotalCount: total},
	}, nil
}
