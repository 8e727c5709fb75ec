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

const projectCollection = "projects"

// ErrProjectNotFound covers both an absent document and a malformed
// identifier; callers treat them the same.
var ErrProjectNotFound = errors.New("project not found")

type ProjectMongoRepository struct {
	store *db.Store
}

func NewProjectMongoRepository(store *db.Store) *ProjectMongoRepository {
	return &ProjectMongoRepository{store: store}
}

func (r *ProjectMongoRepository) coll() (*mongo.Collection, error) {
	c := r.store.Collection(projectCollection)
	if c == nil {
		return nil, db.ErrUnavailable
	}
	return c, nil
}

func (r *ProjectMongoRepository) list(ctx context.Context, filter bson.M) ([]models.Project, error) {
	c, err := r.coll()
	if err != nil {
		return nil, err
	}

	cur, err := c.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectMongoRepository) List(ctx context.Context) ([]models.Project, error) {
	return r.list(ctx, bson.M{})
}

func (r *ProjectMongoRepository) ListFeatured(ctx context.Context) ([]models.Project, error) {
	return r.list(ctx, bson.M{"featured": true})
}

func (r *ProjectMongoRepository) Get(ctx context.Context, id string) (*models.Project, error) {
	c, err := r.coll()
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	var p models.Project
	err = c.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectMongoRepository) Create(ctx context.Context, p *models.Project) error {
	c, err := r.coll()
	if err != nil {
		return err
	}

	res, err := c.InsertOne(ctx, p)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = id
	}
	return nil
}

// Update replaces the editable fields and writes the caller-provided
// UpdatedAt, returning the updated document.
func (r *ProjectMongoRepository) Update(ctx context.Context, id string, p models.Project) (*models.Project, error) {
	c, err := r.coll()
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	set := bson.M{
		"title":       p.Title,
		"description": p.Description,
		"location":    p.Location,
		"roomType":    p.RoomType,
		"featured":    p.Featured,
		"images":      p.Images,
		"videos":      p.Videos,
		"updatedAt":   p.UpdatedAt,
	}

	var updated models.Project
	err = c.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ProjectMongoRepository) Delete(ctx context.Context, id string) error {
	c, err := r.coll()
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProjectNotFound
	}

	res, err := c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}
