package dto

import (
	"time"

	"github.com/alumnet-dev/alumnet-api/internal/models"
)

// ListResponse wraps paginated collection payloads.
type ListResponse[T any] struct {
	Items      []T               `json:"items"`
	Pagination models.Pagination `json:"pagination"`
}

// UserListRequest captures query parameters for GET /users.
type UserListRequest struct {
	Search      string
	Batches     []int
	Departments []models.Department
	Verified    *bool
	Page        int
	PageSize    int
}

// EventListRequest captures query parameters for GET /events. Year alone
// selects a whole calendar year, Month narrows it to one month, and
// Start/End carry explicit month-year range bounds which win over both.
type EventListRequest struct {
	Type     string
	Month    int
	Year     int
	Start    *time.Time
	End      *time.Time
	Page     int
	PageSize int
}

// JobListRequest captures query parameters for GET /jobs.
type JobListRequest struct {
	Type     string
	WorkType string
	Active   *bool
	Page     int
	PageSize int
}

// ExportRequest captures query parameters for the analytics export.
type ExportRequest struct {
	Section string `form:"section" validate:"required,oneof=batches departments"`
	Format  string `form:"format" validate:"required,oneof=csv pdf"`
}
