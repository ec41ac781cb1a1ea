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

type referralAnalyticsRepository interface {
	CountAll(ctx context.Context) (int, error)
	CountActive(ctx context.Context, now time.Time) (int, error)
	CountInRange(ctx context.Context, start, end time.Time) (int, error)
	TopCompanies(ctx context.Context, limit int) ([]analytics.TopItem, error)
	TopRoles(ctx context.Context, limit int) ([]analytics.TopItem, error)
	AllStubs(ctx context.Context) ([]models.ReferralStub, error)
}

// ReferralAnalyticsService produces referral offer analytics.
type ReferralAnalyticsService struct {
	repo     referralAnalyticsRepository
	users    userRefResolver
	cache    *CacheService
	logger   *zap.Logger
	topLimit int
	now      func() time.Time
}

// NewReferralAnalyticsService constructs the service.
func NewReferralAnalyticsService(repo referralAnalyticsRepository, users userRefResolver, cache *CacheService, logger *zap.Logger, topLimit int) *ReferralAnalyticsService {
	if topLimit <= 0 {
		topLimit = 10
	}
	return &ReferralAnalyticsService{repo: repo, users: users, cache: cache, logger: logger, topLimit: topLimit, now: time.Now}
}

// Dashboard builds the referral section of the admin dashboard.
func (s *ReferralAnalyticsService) Dashboard(ctx context.Context, now time.Time) (dto.ReferralDashboard, error) {
	var section dto.ReferralDashboard

	err := inParallel(ctx,
		func(ctx context.Context) error {
			total, err := s.repo.CountAll(ctx)
			if err != nil {
				return err
			}
			section.TotalReferrals = total
			return nil
		},
		func(ctx context.Context) error {
			active, err := s.repo.CountActive(ctx, now)
			if err != nil {
				return err
			}
			section.Active = active
			return nil
		},
		func(ctx context.Context) error {
			companies, err := s.repo.TopCompanies(ctx, s.topLimit)
			if err != nil {
				return err
			}
			section.TopCompanies = emptyIfNil(companies)
			return nil
		},
		func(ctx context.Context) error {
			roles, err := s.repo.TopRoles(ctx, s.topLimit)
			if err != nil {
				return err
			}
			section.TopRoles = emptyIfNil(roles)
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
	)
	if err != nil {
		return dto.ReferralDashboard{}, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}
	return section, nil
}

type posterAccumulator struct {
	count     int
	referrals int
}

// Detailed assembles the full referrals-analytics payload. Top posters
// rank by the average referrals they offer per posting.
func (s *ReferralAnalyticsService) Detailed(ctx context.Context) (dto.ReferralAnalyticsDetailed, error) {
	var cached dto.ReferralAnalyticsDetailed
	if s.cache.Get(ctx, cacheKeyReferralsDetailed, &cached) {
		return cached, nil
	}

	now := s.now().UTC()
	stubs, err := s.repo.AllStubs(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("referrals analytics failed", zap.Error(err))
		}
		return dto.ReferralAnalyticsDetailed{}, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}

	result := dto.ReferralAnalyticsDetailed{TotalPosts: len(stubs)}

	companies := make([]string, 0, len(stubs))
	roles := make([]string, 0, len(stubs))
	posters := map[string]posterAccumulator{}
	for _, stub := range stubs {
		if stub.LastApplyDate.Before(now) {
			result.PastPosts++
		} else {
			result.FuturePosts++
		}
		result.TotalReferrals += stub.NumberOfReferrals
		companies = append(companies, stub.JobDetails.Company)
		roles = append(roles, stub.JobDetails.Role)
		if stub.PostedBy != "" {
			acc := posters[stub.PostedBy]
			acc.count++
			acc.referrals += stub.NumberOfReferrals
			posters[stub.PostedBy] = acc
		}
	}

	companyCounts := analytics.Accumulate(companies)
	roleCounts := analytics.Accumulate(roles)
	result.UniqueCompanies = len(companyCounts)
	result.UniqueRoles = len(roleCounts)
	result.TopCompanies = analytics.TopK(companyCounts, s.topLimit)
	result.TopRoles = analytics.TopK(roleCounts, s.topLimit)

	topPosters, err := s.topPosters(ctx, posters)
	if err != nil {
		return dto.ReferralAnalyticsDetailed{}, appErrors.WrapAs(appErrors.ErrDataAccess, err)
	}
	result.TopPosters = topPosters

	s.cache.Set(ctx, cacheKeyReferralsDetailed, result)
	return result, nil
}

// topPosters ranks referral authors by average referrals per posting,
// ties broken by posting count then id so the order is deterministic.
func (s *ReferralAnalyticsService) topPosters(ctx context.Context, accs map[string]posterAccumulator) ([]dto.ReferralPoster, error) {
	ranked := make([]dto.ReferralPoster, 0, len(accs))
	for id, acc := range accs {
		ranked = append(ranked, dto.ReferralPoster{
			UserID:       id,
			Name:         id,
			Count:        acc.count,
			AvgReferrals: analytics.Round2(float64(acc.referrals) / float64(acc.count)),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AvgReferrals != ranked[j].AvgReferrals {
			return ranked[i].AvgReferrals > ranked[j].AvgReferrals
		}
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].UserID < ranked[j].UserID
	})
	if len(ranked) > s.topLimit {
		ranked = ranked[:s.topLimit]
	}

	ids := make([]string, 0, len(ranked))
	for _, poster := range ranked {
		ids = append(ids, poster.UserID)
	}
	refs, err := s.users.FindRefsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range ranked {
		if ref, ok := refs[ranked[i].UserID]; ok {
			ranked[i].Name = ref.Name
			ranked[i].Batch = ref.Batch
			ranked[i].Role = string(ref.Role)
		}
	}
	return ranked, nil
}
