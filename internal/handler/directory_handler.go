package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alumnet-dev/alumnet-api/internal/analytics"
	"github.com/alumnet-dev/alumnet-api/internal/dto"
	"github.com/alumnet-dev/alumnet-api/internal/models"
	appErrors "github.com/alumnet-dev/alumnet-api/pkg/errors"
	"github.com/alumnet-dev/alumnet-api/pkg/response"
)

type directoryService interface {
	Users(ctx context.Context, req dto.UserListRequest) (dto.ListResponse[models.User], error)
	Events(ctx context.Context, req dto.EventListRequest) (dto.ListResponse[models.Event], error)
	Jobs(ctx context.Context, req dto.JobListRequest) (dto.ListResponse[models.JobPosting], error)
}

// DirectoryHandler serves the paginated member, event and job listings.
type DirectoryHandler struct {
	lists directoryService
}

// NewDirectoryHandler constructs the handler.
func NewDirectoryHandler(lists directoryService) *DirectoryHandler {
	return &DirectoryHandler{lists: lists}
}

// Users godoc
// @Summary List members
// @Tags Directory
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against name, username or email"
// @Param batch query string false "Comma-separated batch years"
// @Param department query string false "Comma-separated departments"
// @Param verified query bool false "Verification status"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /users [get]
func (h *DirectoryHandler) Users(c *gin.Context) {
	req := dto.UserListRequest{
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     intQuery(c, "page"),
		PageSize: intQuery(c, "pageSize"),
	}

	for _, raw := range splitQuery(c.Query("batch")) {
		batch, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "batch must be a comma-separated list of years"))
			return
		}
		req.Batches = append(req.Batches, batch)
	}
	for _, raw := range splitQuery(c.Query("department")) {
		req.Departments = append(req.Departments, models.Department(strings.ToUpper(raw)))
	}
	if raw := c.Query("verified"); raw != "" {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "verified must be true or false"))
			return
		}
		req.Verified = &verified
	}

	result, err := h.lists.Users(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "users")
}

// Events godoc
// @Summary List events
// @Tags Directory
// @Produce json
// @Security BearerAuth
// @Param type query string false "Event type"
// @Param year query int false "Calendar year filter"
// @Param month query int false "Calendar month (1-12), requires year"
// @Param monthYear query string false "Calendar month filter, e.g. Jan-2025 or January 2025"
// @Param startMonthYear query string false "Range start month, e.g. Jan-2025"
// @Param endMonthYear query string false "Range end month, e.g. Mar-2025"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *DirectoryHandler) Events(c *gin.Context) {
	req := dto.EventListRequest{
		Type:     strings.TrimSpace(c.Query("type")),
		Page:     intQuery(c, "page"),
		PageSize: intQuery(c, "pageSize"),
	}

	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "year must be numeric"))
			return
		}
		req.Year = year
	}
	if raw := c.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "month must be a number between 1 and 12"))
			return
		}
		if req.Year == 0 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "month requires year"))
			return
		}
		req.Month = month
	}
	if raw := c.Query("monthYear"); raw != "" {
		month, year, err := analytics.ParseMonthYear(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		req.Month = int(month)
		req.Year = year
	}
	if raw := c.Query("startMonthYear"); raw != "" {
		start, err := analytics.MonthYearStart(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		req.Start = &start
	}
	if raw := c.Query("endMonthYear"); raw != "" {
		end, err := analytics.MonthYearEnd(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		req.End = &end
	}

	result, err := h.lists.Events(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "events")
}

// Jobs godoc
// @Summary List job postings
// @Tags Directory
// @Produce json
// @Security BearerAuth
// @Param type query string false "Job type"
// @Param workType query string false "Work type"
// @Param active query bool false "Filter by application deadline"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /jobs [get]
func (h *DirectoryHandler) Jobs(c *gin.Context) {
	req := dto.JobListRequest{
		Type:     strings.TrimSpace(c.Query("type")),
		WorkType: strings.TrimSpace(c.Query("workType")),
		Page:     intQuery(c, "page"),
		PageSize: intQuery(c, "pageSize"),
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "active must be true or false"))
			return
		}
		req.Active = &active
	}

	result, err := h.lists.Jobs(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result, "jobs")
}

func intQuery(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}

func splitQuery(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
