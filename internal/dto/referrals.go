package dto

import "github.com/alumnet-dev/alumnet-api/internal/analytics"

// ReferralPoster ranks a user by how many referrals they offered.
type ReferralPoster struct {
	UserID       string  `json:"userId"`
	Name         string  `json:"name"`
	Batch        int     `json:"batch"`
	Role         string  `json:"role"`
	Count        int     `json:"count"`
	AvgReferrals float64 `json:"avgReferrals"`
}

// ReferralAnalyticsDetailed is the /admin/referrals-analytics payload.
// TotalReferrals sums the referral slots offered across postings, not
// the posting count.
type ReferralAnalyticsDetailed struct {
	TotalPosts      int                 `json:"totalPosts"`
	FuturePosts     int                 `json:"futurePosts"`
	PastPosts       int                 `json:"pastPosts"`
	TotalReferrals  int                 `json:"totalReferrals"`
	UniqueCompanies int                 `json:"uniqueCompanies"`
	UniqueRoles     int                 `json:"uniqueRoles"`
	TopCompanies    []analytics.TopItem `json:"topCompanies"`
	TopRoles        []analytics.TopItem `json:"topRoles"`
	TopPosters      []ReferralPoster    `json:"topPosters"`
}
