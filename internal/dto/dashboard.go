package dto

import (
	"github.com/alumnet-dev/alumnet-api/internal/analytics"
	"github.com/alumnet-dev/alumnet-api/internal/models"
)

// RoleDistribution counts users per role, zero-filled for missing roles.
type RoleDistribution struct {
	Admin   int `json:"admin"`
	Alumni  int `json:"alumni"`
	Student int `json:"student"`
}

// PeriodGrowth holds growth figures for each reporting window.
type PeriodGrowth struct {
	Daily   analytics.Growth `json:"1d"`
	Weekly  analytics.Growth `json:"7d"`
	Monthly analytics.Growth `json:"30d"`
}

// PeriodTimelines holds dense registration timelines for each window.
// The daily series is hourly-bucketed, the others day-bucketed.
type PeriodTimelines struct {
	Daily   []analytics.TimelinePoint `json:"1d"`
	Weekly  []analytics.TimelinePoint `json:"7d"`
	Monthly []analytics.TimelinePoint `json:"30d"`
}

// UserOverview is the user section of the admin dashboard.
type UserOverview struct {
	TotalUsers  int                  `json:"totalUsers"`
	ByRole      RoleDistribution     `json:"byRole"`
	Growth      PeriodGrowth         `json:"growth"`
	Timelines   PeriodTimelines      `json:"timelines"`
	RecentUsers []models.UserSummary `json:"recentUsers"`
}

// EventDashboard is the event section of the admin dashboard. Upcoming
// and Past split the total by schedule; NextEvents previews what is
// coming soonest.
type EventDashboard struct {
	TotalEvents int                   `json:"totalEvents"`
	Upcoming    int                   `json:"upcoming"`
	Past        int                   `json:"past"`
	ByType      map[string]int        `json:"byType"`
	Growth      PeriodGrowth          `json:"growth"`
	NextEvents  []models.EventSummary `json:"nextEvents"`
}

// ReferralDashboard is the referral section of the admin dashboard.
type ReferralDashboard struct {
	TotalReferrals int                 `json:"totalReferrals"`
	Active         int                 `json:"active"`
	TopCompanies   []analytics.TopItem `json:"topCompanies"`
	TopRoles       []analytics.TopItem `json:"topRoles"`
	Growth         PeriodGrowth        `json:"growth"`
}

// JobDashboard is the job section of the admin dashboard.
type JobDashboard struct {
	TotalJobs    int                 `json:"totalJobs"`
	Active       int                 `json:"active"`
	TopCompanies []analytics.TopItem `json:"topCompanies"`
	TopRoles     []analytics.TopItem `json:"topRoles"`
	Growth       PeriodGrowth        `json:"growth"`
}

// LoginAnalytics is the login-activity section of the admin dashboard.
type LoginAnalytics struct {
	TotalLogins int              `json:"totalLogins"`
	ByRole      RoleDistribution `json:"byRole"`
	Growth      PeriodGrowth     `json:"growth"`
	Timelines   PeriodTimelines  `json:"timelines"`
}

// DashboardResponse composes every dashboard section.
type DashboardResponse struct {
	Users     UserOverview      `json:"users"`
	Events    EventDashboard    `json:"events"`
	Referrals ReferralDashboard `json:"referrals"`
	Jobs      JobDashboard      `json:"jobs"`
	Logins    LoginAnalytics    `json:"logins"`
}
