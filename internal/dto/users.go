package dto

import (
	"github.com/alumnet-dev/alumnet-api/internal/analytics"
	"github.com/alumnet-dev/alumnet-api/internal/models"
)

// BatchAnalytics is the rollup row for one graduation batch. Growth
// carries the 30-day signup count and its share of the batch total.
type BatchAnalytics struct {
	Batch  int              `json:"batch"`
	Total  int              `json:"total"`
	ByRole RoleDistribution `json:"byRole"`
	Growth analytics.Growth `json:"growth"`
}

// DepartmentAnalytics is the rollup row for one department.
type DepartmentAnalytics struct {
	Department models.Department `json:"department"`
	Total      int               `json:"total"`
	ByRole     RoleDistribution  `json:"byRole"`
	Growth     analytics.Growth  `json:"growth"`
}

// UnverifiedUsers lists accounts awaiting verification.
type UnverifiedUsers struct {
	Total int                  `json:"total"`
	Users []models.UserSummary `json:"users"`
}

// DetailedUserAnalytics is the /admin/users-analytics payload. Recent
// signups travel inside the overview.
type DetailedUserAnalytics struct {
	Overview     UserOverview          `json:"overview"`
	ByBatch      []BatchAnalytics      `json:"byBatch"`
	ByDepartment []DepartmentAnalytics `json:"byDepartment"`
	Unverified   UnverifiedUsers       `json:"unverified"`
}
