package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/merakistudio/interior-api/internal/db"
	"github.com/merakistudio/interior-api/internal/models"
)

const testimonialCollection = "testimonials"

var ErrTestimonialNotFound = errors.New("testimonial not found")

type TestimonialMongoRepository struct {
	store *db.Store
}

func NewTestimonialMongoRepository(store *db.Store) *TestimonialMongoRepository {
	return &TestimonialMongoRepository{store: store}
}

func (r *TestimonialMongoRepository) coll() (*mongo.Collection, error) {
	c := r.store.Collection(testimonialCollection)
	if c == nil {
		return nil, db.ErrUnavailable
	}
	return c, nil
}

func (r *TestimonialMongoRepository) list(ctx context.Context, filter bson.M) ([]models.Testimonial, error) {
	c, err := r.coll()
	if err != nil {
		return nil, err
	}

	cur, err := c.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	testimonials := []models.Testimonial{}
	if err := cur.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

// ListApproved feeds the public site; only approved reviews are visible.
func (r *TestimonialMongoRepository) ListApproved(ctx context.Context) ([]models.Testimonial, error) {
	return r.list(ctx, bson.M{"approved": true})
}

func (r *TestimonialMongoRepository) ListAll(ctx context.Context) ([]models.Testimonial, error) {
	return r.list(ctx, bson.M{})
}

func (r *TestimonialMongoRepository) Create(ctx context.Context, t *models.Testimonial) error {
	c, err := r.coll()
	if err != nil {
		return err
	}

	res, err := c.InsertOne(ctx, t)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = id
	}
	return nil
}

func (r *TestimonialMongoRepository) Update(
	ctx context.Context,
	id string,
	fields map[string]any,
) (*models.Testimonial, error) {

	c, err := r.coll()
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrTestimonialNotFound
	}

	var updated models.Testimonial
	err = c.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrTestimonialNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *TestimonialMongoRepository) Delete(ctx context.Context, id string) error {
	c, err := r.coll()
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrTestimonialNotFound
	}

	res, err := c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}
