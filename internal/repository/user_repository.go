package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alumnet-dev/alumnet-api/internal/models"
)

// UserRepository exposes read queries over the users collection.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository instantiates the repository.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(colUsers)}
}

// CountAll returns the total number of registered users.
func (r *UserRepository) CountAll(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return int(n), nil
}

// CountsByRole tallies users per role. Roles absent from the collection
// are simply missing from the map.
func (r *UserRepository) CountsByRole(ctx context.Context) (map[string]int, error) {
	return groupCounts(ctx, r.coll, "role", nil)
}

// CountInRange counts users registered within [start, end].
func (r *UserRepository) CountInRange(ctx context.Context, start, end time.Time) (int, error) {
	return countInRange(ctx, r.coll, "createdAt", start, end)
}

// BucketCounts groups registrations in [start, end] into day or hour
// buckets for timeline rendering.
func (r *UserRepository) BucketCounts(ctx context.Context, start, end time.Time, hourly bool) (map[string]int, error) {
	return bucketCounts(ctx, r.coll, "createdAt", start, end, hourly)
}

// Recent returns the most recently registered users, newest first.
func (r *UserRepository) Recent(ctx context.Context, limit int) ([]models.UserSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find recent users: %w", err)
	}

	var users []models.UserSummary
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode recent users: %w", err)
	}
	return users, nil
}

// Unverified returns the count of unverified accounts plus the oldest
// ones still waiting, so admins can work through the backlog in order.
func (r *UserRepository) Unverified(ctx context.Context, limit int) (int, []models.UserSummary, error) {
	filter := bson.M{"verified": false}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, nil, fmt.Errorf("count unverified users: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return 0, nil, fmt.Errorf("find unverified users: %w", err)
	}

	var users []models.UserSummary
	if err := cursor.All(ctx, &users); err != nil {
		return 0, nil, fmt.Errorf("decode unverified users: %w", err)
	}
	return int(total), users, nil
}

// rollupByField groups users by the given field with per-role totals and
// a recent count for everything created at or after since. A non-empty
// role narrows the rollup to that role before grouping.
func (r *UserRepository) rollupByField(ctx context.Context, field string, since time.Time, role models.UserRole) (*mongo.Cursor, error) {
	pipeline := mongo.Pipeline{}
	if role != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"role": role}}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"key": "$" + field, "role": "$role"},
			"total": bson.M{"$sum": 1},
			"count": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$gte": bson.A{"$createdAt", since}}, 1, 0,
			}}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": "$_id.key",
			"roles": bson.M{"$push": bson.M{
				"role":  "$_id.role",
				"count": "$count",
				"total": "$total",
			}},
			"total": bson.M{"$sum": "$total"},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	)
	return r.coll.Aggregate(ctx, pipeline)
}

// BatchRoleStats rolls users up per graduation batch with role splits
// and 30-day activity counts, optionally restricted to one role.
func (r *UserRepository) BatchRoleStats(ctx context.Context, since time.Time, role models.UserRole) ([]models.BatchRoleStats, error) {
	cursor, err := r.rollupByField(ctx, "batch", since, role)
	if err != nil {
		return nil, fmt.Errorf("aggregate batch rollup: %w", err)
	}

	var rows []models.BatchRoleStats
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode batch rollup: %w", err)
	}
	return rows, nil
}

// DepartmentRoleStats rolls users up per department with role splits and
// recent activity counts, optionally restricted to one role.
func (r *UserRepository) DepartmentRoleStats(ctx context.Context, since time.Time, role models.UserRole) ([]models.DepartmentRoleStats, error) {
	cursor, err := r.rollupByField(ctx, "department", since, role)
	if err != nil {
		return nil, fmt.Errorf("aggregate department rollup: %w", err)
	}

	var rows []models.DepartmentRoleStats
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode department rollup: %w", err)
	}
	return rows, nil
}

// List returns a filtered page of users plus the total match count.
func (r *UserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, int, error) {
	query := bson.M{}
	if filter.Search != "" {
		pattern := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"username": pattern},
			bson.M{"collegeEmail": pattern},
		}
	}
	if len(filter.Batches) > 0 {
		query["batch"] = bson.M{"$in": filter.Batches}
	}
	if len(filter.Departments) > 0 {
		query["department"] = bson.M{"$in": filter.Departments}
	}
	if filter.Verified != nil {
		query["verified"] = *filter.Verified
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count user list: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.PageSize)).
		SetLimit(int64(filter.PageSize))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find user list: %w", err)
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, fmt.Errorf("decode user list: %w", err)
	}
	return users, int(total), nil
}

// FindRefsByIDs resolves user identities for the given ids, keyed by id.
// Unknown ids are simply absent from the result.
func (r *UserRepository) FindRefsByIDs(ctx context.Context, ids []string) (map[string]models.UserRef, error) {
	if len(ids) == 0 {
		return map[string]models.UserRef{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find user refs: %w", err)
	}

	var refs []models.UserRef
	if err := cursor.All(ctx, &refs); err != nil {
		return nil, fmt.Errorf("decode user refs: %w", err)
	}

	byID := make(map[string]models.UserRef, len(refs))
	for _, ref := range refs {
		byID[ref.ID] = ref
	}
	return byID, nil
}
