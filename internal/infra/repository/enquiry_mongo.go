package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/merakistudio/interior-api/internal/db"
	"github.com/merakistudio/interior-api/internal/models"
)

const enquiryCollection = "enquiries"

type EnquiryMongoRepository struct {
	store *db.Store
}

func NewEnquiryMongoRepository(store *db.Store) *EnquiryMongoRepository {
	return &EnquiryMongoRepository{store: store}
}

func (r *EnquiryMongoRepository) coll() (*mongo.Collection, error) {
	c := r.store.Collection(enquiryCollection)
	if c == nil {
		return nil, db.ErrUnavailable
	}
	return c, nil
}

func (r *EnquiryMongoRepository) Insert(ctx context.Context, e *models.Enquiry) error {
	c, err := r.coll()
	if err != nil {
		return err
	}

	_, err = c.InsertOne(ctx, e)
	return err
}

func (r *EnquiryMongoRepository) List(ctx context.Context) ([]models.Enquiry, error) {
	c, err := r.coll()
	if err != nil {
		return nil, err
	}

	cur, err := c.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	enquiries := []models.Enquiry{}
	if err := cur.All(ctx, &enquiries); err != nil {
		return nil, err
	}
	return enquiries, nil
}
