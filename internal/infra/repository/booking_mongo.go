package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/merakistudio/interior-api/internal/db"
	domain "github.com/merakistudio/interior-api/internal/domain/booking"
	"github.com/merakistudio/interior-api/internal/models"
)

const bookingCollection = "bookings"

type BookingMongoRepository struct {
	store *db.Store
}

func NewBookingMongoRepository(store *db.Store) *BookingMongoRepository {
	return &BookingMongoRepository{store: store}
}

func (r *BookingMongoRepository) coll() (*mongo.Collection, error) {
	c := r.store.Collection(bookingCollection)
	if c == nil {
		return nil, db.ErrUnavailable
	}
	return c, nil
}

// --------------------------------------------------
// Slot allocation
// --------------------------------------------------

func (r *BookingMongoRepository) SlotExists(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
	slot string,
) (bool, error) {

	c, err := r.coll()
	if err != nil {
		return false, err
	}

	filter := bson.M{
		"bookingDate": bson.M{"$gte": dayStart, "$lte": dayEnd},
		"bookingTime": slot,
	}

	err = c.FindOne(ctx, filter).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *BookingMongoRepository) CountForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) (int64, error) {

	c, err := r.coll()
	if err != nil {
		return 0, err
	}

	return c.CountDocuments(ctx, bson.M{
		"bookingDate": bson.M{"$gte": dayStart, "$lte": dayEnd},
	})
}

func (r *BookingMongoRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {

	c, err := r.coll()
	if err != nil {
		return err
	}

	res, err := c.InsertOne(ctx, b)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = id
	}
	return nil
}

// --------------------------------------------------
// Admin console
// --------------------------------------------------

func (r *BookingMongoRepository) List(ctx context.Context) ([]models.Booking, error) {
	c, err := r.coll()
	if err != nil {
		return nil, err
	}

	cur, err := c.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	bookings := []models.Booking{}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingMongoRepository) Update(
	ctx context.Context,
	id string,
	fields map[string]any,
) (*models.Booking, error) {

	c, err := r.coll()
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var updated models.Booking
	err = c.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *BookingMongoRepository) Delete(ctx context.Context, id string) error {
	c, err := r.coll()
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*BookingMongoRepository)(nil)
