package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alumnet-dev/alumnet-api/internal/analytics"
	"github.com/alumnet-dev/alumnet-api/internal/models"
)

// JobRepository exposes read queries over the jobs collection.
type JobRepository struct {
	coll *mongo.Collection
}

// NewJobRepository instantiates the repository.
func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(colJobs)}
}

// CountAll returns the total number of job postings.
func (r *JobRepository) CountAll(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return int(n), nil
}

// CountInRange counts job postings created within [start, end].
func (r *JobRepository) CountInRange(ctx context.Context, start, end time.Time) (int, error) {
	return countInRange(ctx, r.coll, "postedOn", start, end)
}

// CountActive counts postings whose application deadline has not passed.
func (r *JobRepository) CountActive(ctx context.Context, now time.Time) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"lastApplyDate": bson.M{"$gte": now}})
	if err != nil {
		return 0, fmt.Errorf("count active jobs: %w", err)
	}
	return int(n), nil
}

// TopCompanies ranks the companies with the most postings.
func (r *JobRepository) TopCompanies(ctx context.Context, limit int) ([]analytics.TopItem, error) {
	return topByField(ctx, r.coll, "company", limit)
}

// TopRoles ranks the most posted job roles.
func (r *JobRepository) TopRoles(ctx context.Context, limit int) ([]analytics.TopItem, error) {
	return topByField(ctx, r.coll, "role", limit)
}

// AllStubs streams every posting's analytics fields for in-memory
// reduction.
func (r *JobRepository) AllStubs(ctx context.Context) ([]models.JobStub, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find job stubs: %w", err)
	}

	var stubs []models.JobStub
	if err := cursor.All(ctx, &stubs); err != nil {
		return nil, fmt.Errorf("decode job stubs: %w", err)
	}
	return stubs, nil
}

// List returns a filtered page of postings plus the total match count.
func (r *JobRepository) List(ctx context.Context, filter models.JobFilter, now time.Time) ([]models.JobPosting, int, error) {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.WorkType != "" {
		query["workType"] = filter.WorkType
	}
	if filter.Active != nil {
		if *filter.Active {
			query["lastApplyDate"] = bson.M{"$gte": now}
		} else {
			query["lastApplyDate"] = bson.M{"$lt": now}
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count job list: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "postedOn", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.PageSize)).
		SetLimit(int64(filter.PageSize))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find job list: %w", err)
	}

	var jobs []models.JobPosting
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, 0, fmt.Errorf("decode job list: %w", err)
	}
	return jobs, int(total), nil
}
