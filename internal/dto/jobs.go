package dto

import "github.com/alumnet-dev/alumnet-api/internal/analytics"

// SplitCounts partitions a job category by application deadline.
type SplitCounts struct {
	Total  int `json:"total"`
	Future int `json:"future"`
	Past   int `json:"past"`
}

// JobPoster ranks a user by the number of postings they created.
type JobPoster struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Batch  int    `json:"batch"`
	Role   string `json:"role"`
	Count  int    `json:"count"`
}

// JobAnalyticsDetailed is the /admin/jobs-analytics payload.
type JobAnalyticsDetailed struct {
	TotalJobs       int                    `json:"totalJobs"`
	Active          int                    `json:"active"`
	Expired         int                    `json:"expired"`
	TypeStats       map[string]SplitCounts `json:"typeStats"`
	WorkTypeStats   map[string]SplitCounts `json:"workTypeStats"`
	UniqueCompanies int                    `json:"uniqueCompanies"`
	UniqueRoles     int                    `json:"uniqueRoles"`
	TopCompanies    []analytics.TopItem    `json:"topCompanies"`
	TopRoles        []analytics.TopItem    `json:"topRoles"`
	TopPosters      []JobPoster            `json:"topPosters"`
}
