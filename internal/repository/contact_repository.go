package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContactRepository exposes read queries over the contact messages
// collection.
type ContactRepository struct {
	coll *mongo.Collection
}

// NewContactRepository instantiates the repository.
func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(colContacts)}
}

// Counts returns the total and resolved message counts.
func (r *ContactRepository) Counts(ctx context.Context) (total, resolved int, err error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, fmt.Errorf("count contacts: %w", err)
	}
	res, err := r.coll.CountDocuments(ctx, bson.M{"resolved": true})
	if err != nil {
		return 0, 0, fmt.Errorf("count resolved contacts: %w", err)
	}
	return int(n), int(res), nil
}

// BucketCounts groups messages in [start, end] into daily buckets.
func (r *ContactRepository) BucketCounts(ctx context.Context, start, end time.Time) (map[string]int, error) {
	return bucketCounts(ctx, r.coll, "createdAt", start, end, false)
}
