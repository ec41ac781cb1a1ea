package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alumnet-dev/alumnet-api/internal/analytics"
	"github.com/alumnet-dev/alumnet-api/internal/models"
)

// ReferralRepository exposes read queries over the referrals collection.
type ReferralRepository struct {
	coll *mongo.Collection
}

// NewReferralRepository instantiates the repository.
func NewReferralRepository(db *mongo.Database) *ReferralRepository {
	return &ReferralRepository{coll: db.Collection(colReferrals)}
}

// CountAll returns the total number of referral offers.
func (r *ReferralRepository) CountAll(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count referrals: %w", err)
	}
	return int(n), nil
}

// CountInRange counts referral offers posted within [start, end].
func (r *ReferralRepository) CountInRange(ctx context.Context, start, end time.Time) (int, error) {
	return countInRange(ctx, r.coll, "postedOn", start, end)
}

// CountActive counts referral offers whose application deadline has not
// passed.
func (r *ReferralRepository) CountActive(ctx context.Context, now time.Time) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"lastApplyDate": bson.M{"$gte": now}})
	if err != nil {
		return 0, fmt.Errorf("count active referrals: %w", err)
	}
	return int(n), nil
}

// TopCompanies ranks the companies with the most referral offers.
func (r *ReferralRepository) TopCompanies(ctx context.Context, limit int) ([]analytics.TopItem, error) {
	return topByField(ctx, r.coll, "jobDetails.company", limit)
}

// TopRoles ranks the roles with the most referral offers.
func (r *ReferralRepository) TopRoles(ctx context.Context, limit int) ([]analytics.TopItem, error) {
	return topByField(ctx, r.coll, "jobDetails.role", limit)
}

// AllStubs streams every referral's analytics fields for in-memory
// reduction.
func (r *ReferralRepository) AllStubs(ctx context.Context) ([]models.ReferralStub, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find referral stubs: %w", err)
	}

	var stubs []models.ReferralStub
	if err := cursor.All(ctx, &stubs); err != nil {
		return nil, fmt.Errorf("decode referral stubs: %w", err)
	}
	return stubs, nil
}
