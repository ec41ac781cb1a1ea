package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alumnet-dev/alumnet-api/internal/analytics"
)

// Collection names used across repositories.
const (
	colUsers     = "users"
	colAlumni    = "alumnidetails"
	colEvents    = "events"
	colJobs      = "jobs"
	colReferrals = "referrals"
	colContacts  = "contacts"
	colLogins    = "loginevents"
)

const (
	dayFormat  = "%Y-%m-%d"
	hourFormat = "%Y-%m-%d-%H"
)

type keyCount struct {
	Key   string `bson:"_id"`
	Count int    `bson:"count"`
}

// bucketCounts groups documents in [start, end] into day or hour buckets
// keyed the way analytics.BuildTimeline expects.
func bucketCounts(ctx context.Context, coll *mongo.Collection, timeField string, start, end time.Time, hourly bool) (map[string]int, error) {
	format := dayFormat
	if hourly {
		format = hourFormat
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{timeField: bson.M{"$gte": start, "$lte": end}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format":   format,
				"date":     "$" + timeField,
				"timezone": "UTC",
			}},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s buckets: %w", coll.Name(), err)
	}

	var rows []keyCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode %s buckets: %w", coll.Name(), err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// countInRange counts documents whose timeField falls within [start, end].
func countInRange(ctx context.Context, coll *mongo.Collection, timeField string, start, end time.Time) (int, error) {
	n, err := coll.CountDocuments(ctx, bson.M{timeField: bson.M{"$gte": start, "$lte": end}})
	if err != nil {
		return 0, fmt.Errorf("count %s in range: %w", coll.Name(), err)
	}
	return int(n), nil
}

// groupCounts tallies documents per value of the given field.
func groupCounts(ctx context.Context, coll *mongo.Collection, field string, match bson.M) (map[string]int, error) {
	pipeline := mongo.Pipeline{}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.M{
		"_id":   "$" + field,
		"count": bson.M{"$sum": 1},
	}}})

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s by %s: %w", coll.Name(), field, err)
	}

	var rows []keyCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode %s by %s: %w", coll.Name(), field, err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// topByField ranks the most frequent values of a field, skipping documents
// where it is empty. Ties are broken by value so pagination stays stable.
func topByField(ctx context.Context, coll *mongo.Collection, field string, limit int) ([]analytics.TopItem, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{field: bson.M{"$nin": bson.A{"", nil}}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$" + field,
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate top %s.%s: %w", coll.Name(), field, err)
	}

	var rows []keyCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode top %s.%s: %w", coll.Name(), field, err)
	}

	items := make([]analytics.TopItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, analytics.TopItem{Name: row.Key, Count: row.Count})
	}
	return items, nil
}
