package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alumnet-dev/alumnet-api/internal/models"
)

// AlumniRepository exposes read queries over the alumni profile
// collection. Only verified profiles contribute to analytics.
type AlumniRepository struct {
	coll *mongo.Collection
}

// NewAlumniRepository instantiates the repository.
func NewAlumniRepository(db *mongo.Database) *AlumniRepository {
	return &AlumniRepository{coll: db.Collection(colAlumni)}
}

// ongoingMatch selects unwound sub-records still current at now: no end
// date, an explicit ongoing flag, or an end date in the future.
func ongoingMatch(prefix string, now time.Time) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{prefix + ".ongoing": true},
		bson.M{prefix + ".end": nil},
		bson.M{prefix + ".end": bson.M{"$gt": now}},
	}}
}

// PositionFacets aggregates job-position history of verified alumni into
// an all-positions view and an ongoing-only view in a single pass.
func (r *AlumniRepository) PositionFacets(ctx context.Context, now time.Time) (models.PositionFacetResult, error) {
	group := bson.D{{Key: "$group", Value: bson.M{
		"_id":             nil,
		"total":           bson.M{"$sum": 1},
		"employmentTypes": bson.M{"$push": "$jobPosition.type"},
		"jobTypes":        bson.M{"$push": "$jobPosition.jobType"},
		"titles":          bson.M{"$push": "$jobPosition.title"},
		"locations":       bson.M{"$push": "$jobPosition.location"},
		"companies":       bson.M{"$push": "$jobPosition.company"},
	}}}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"verified": true}}},
		{{Key: "$unwind", Value: "$jobPosition"}},
		{{Key: "$facet", Value: bson.M{
			"all": mongo.Pipeline{group},
			"ongoing": mongo.Pipeline{
				{{Key: "$match", Value: ongoingMatch("jobPosition", now)}},
				group,
			},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return models.PositionFacetResult{}, fmt.Errorf("aggregate position facets: %w", err)
	}

	var results []models.PositionFacetResult
	if err := cursor.All(ctx, &results); err != nil {
		return models.PositionFacetResult{}, fmt.Errorf("decode position facets: %w", err)
	}
	if len(results) == 0 {
		return models.PositionFacetResult{}, nil
	}
	return results[0], nil
}

// EducationFacets aggregates education history of verified alumni into an
// all-entries view and an ongoing-only view in a single pass.
func (r *AlumniRepository) EducationFacets(ctx context.Context, now time.Time) (models.EducationFacetResult, error) {
	group := bson.D{{Key: "$group", Value: bson.M{
		"_id":       nil,
		"total":     bson.M{"$sum": 1},
		"degrees":   bson.M{"$push": "$education.degree"},
		"fields":    bson.M{"$push": "$education.fieldOfStudy"},
		"schools":   bson.M{"$push": "$education.school"},
		"locations": bson.M{"$push": "$education.location"},
	}}}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"verified": true}}},
		{{Key: "$unwind", Value: "$education"}},
		{{Key: "$facet", Value: bson.M{
			"all": mongo.Pipeline{group},
			"ongoing": mongo.Pipeline{
				{{Key: "$match", Value: ongoingMatch("education", now)}},
				group,
			},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return models.EducationFacetResult{}, fmt.Errorf("aggregate education facets: %w", err)
	}

	var results []models.EducationFacetResult
	if err := cursor.All(ctx, &results); err != nil {
		return models.EducationFacetResult{}, fmt.Errorf("decode education facets: %w", err)
	}
	if len(results) == 0 {
		return models.EducationFacetResult{}, nil
	}
	return results[0], nil
}

// LocationGroups collects the cities and countries of verified alumni
// profiles for top-location ranking.
func (r *AlumniRepository) LocationGroups(ctx context.Context) (models.LocationGroup, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"verified": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":       nil,
			"cities":    bson.M{"$push": "$location.city"},
			"countries": bson.M{"$push": "$location.country"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return models.LocationGroup{}, fmt.Errorf("aggregate alumni locations: %w", err)
	}

	var results []models.LocationGroup
	if err := cursor.All(ctx, &results); err != nil {
		return models.LocationGroup{}, fmt.Errorf("decode alumni locations: %w", err)
	}
	if len(results) == 0 {
		return models.LocationGroup{}, nil
	}
	return results[0], nil
}
