package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/merakistudio/interior-api/internal/db"
	"github.com/merakistudio/interior-api/internal/models"
)

const visitorCollection = "visitors"

type VisitorMongoRepository struct {
	store *db.Store
}

func NewVisitorMongoRepository(store *db.Store) *VisitorMongoRepository {
	return &VisitorMongoRepository{store: store}
}

func (r *VisitorMongoRepository) coll() (*mongo.Collection, error) {
	c := r.store.Collection(visitorCollection)
	if c == nil {
		return nil, db.ErrUnavailable
	}
	return c, nil
}

func (r *VisitorMongoRepository) Insert(ctx context.Context, v *models.Visitor) error {
	c, err := r.coll()
	if err != nil {
		return err
	}

	_, err = c.InsertOne(ctx, v)
	return err
}

// GroupCount buckets visitor events by one field and returns the counts
// sorted descending, matching the admin dashboard charts.
func (r *VisitorMongoRepository) GroupCount(ctx context.Context, field string) ([]models.GroupCount, error) {
	c, err := r.coll()
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cur, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	counts := []models.GroupCount{}
	if err := cur.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
