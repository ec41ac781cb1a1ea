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

// EventRepository exposes read queries over the events collection.
type EventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository instantiates the repository.
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(colEvents)}
}

// CountAll returns the total number of events.
func (r *EventRepository) CountAll(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return int(n), nil
}

// CountsByType tallies events per type.
func (r *EventRepository) CountsByType(ctx context.Context) (map[string]int, error) {
	return groupCounts(ctx, r.coll, "type", nil)
}

// CountInRange counts events created within [start, end].
func (r *EventRepository) CountInRange(ctx context.Context, start, end time.Time) (int, error) {
	return countInRange(ctx, r.coll, "createdAt", start, end)
}

// CountUpcoming counts events scheduled at or after now.
func (r *EventRepository) CountUpcoming(ctx context.Context, now time.Time) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"dateTime": bson.M{"$gte": now}})
	if err != nil {
		return 0, fmt.Errorf("count upcoming events: %w", err)
	}
	return int(n), nil
}

// Upcoming returns the next events scheduled at or after now, soonest
// first.
func (r *EventRepository) Upcoming(ctx context.Context, now time.Time, limit int) ([]models.EventSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "dateTime", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"dateTime": bson.M{"$gte": now}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find upcoming events: %w", err)
	}

	var events []models.EventSummary
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode upcoming events: %w", err)
	}
	return events, nil
}

// AllStubs streams every event's schedule fields for in-memory reduction.
func (r *EventRepository) AllStubs(ctx context.Context) ([]models.EventStub, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find event stubs: %w", err)
	}

	var stubs []models.EventStub
	if err := cursor.All(ctx, &stubs); err != nil {
		return nil, fmt.Errorf("decode event stubs: %w", err)
	}
	return stubs, nil
}

// List returns a filtered page of events plus the total match count.
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter) ([]models.Event, int, error) {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Start != nil || filter.End != nil {
		window := bson.M{}
		if filter.Start != nil {
			window["$gte"] = *filter.Start
		}
		if filter.End != nil {
			window["$lte"] = *filter.End
		}
		query["dateTime"] = window
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count event list: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "dateTime", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.PageSize)).
		SetLimit(int64(filter.PageSize))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find event list: %w", err)
	}

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, fmt.Errorf("decode event list: %w", err)
	}
	return events, int(total), nil
}
