package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/farazfarwa/fashionhub/internal/model"
)

// CategoryRepo encapsulates all queries against the `categories` collection.
type CategoryRepo struct {
	col *mongo.Collection
}

func NewCategoryRepo(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{col: db.Collection("categories")}
}

// List returns every category.
func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var cats []model.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// Get fetches a category by id. ErrCategoryNotFound when absent.
func (r *CategoryRepo) Get(ctx context.Context, id string) (model.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Category{}, err
	}
	var cat model.Category
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Category{}, ErrCategoryNotFound
	}
	return cat, err
}

// Insert stores a new category and fills in its ID and timestamps.
func (r *CategoryRepo) Insert(ctx context.Context, cat *model.Category) error {
	now := time.Now().UTC()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, cat)
	if err != nil {
		return err
	}
	cat.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces a category's name and description and returns the updated
// record. ErrCategoryNotFound when the id does not resolve.
func (r *CategoryRepo) Update(ctx context.Context, id, name, description string) (model.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Category{}, err
	}
	update := bson.M{"$set": bson.M{
		"name":        name,
		"description": description,
		"updated_at":  time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cat model.Category
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Category{}, ErrCategoryNotFound
	}
	return cat, err
}

// Delete removes a category. The delete is physical and never cascades:
// products referencing the category keep their now-dangling reference.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrCategoryNotFound
	}
	return err
}
