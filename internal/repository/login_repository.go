package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LoginRepository exposes read queries over the login events collection.
// The auth layer appends to it; analytics only reads.
type LoginRepository struct {
	coll *mongo.Collection
}

// NewLoginRepository instantiates the repository.
func NewLoginRepository(db *mongo.Database) *LoginRepository {
	return &LoginRepository{coll: db.Collection(colLogins)}
}

// CountAll returns the total number of recorded sign-ins.
func (r *LoginRepository) CountAll(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count logins: %w", err)
	}
	return int(n), nil
}

// CountsByRole tallies sign-ins per user role.
func (r *LoginRepository) CountsByRole(ctx context.Context) (map[string]int, error) {
	return groupCounts(ctx, r.coll, "userRole", nil)
}

// CountInRange counts sign-ins within [start, end].
func (r *LoginRepository) CountInRange(ctx context.Context, start, end time.Time) (int, error) {
	return countInRange(ctx, r.coll, "timestamp", start, end)
}

// BucketCounts groups sign-ins in [start, end] into day or hour buckets.
func (r *LoginRepository) BucketCounts(ctx context.Context, start, end time.Time, hourly bool) (map[string]int, error) {
	return bucketCounts(ctx, r.coll, "timestamp", start, end, hourly)
}
