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

// ProductRepo encapsulates all queries against the `products` collection.
// Writes verify the category reference; reads return products as stored,
// so deleting a category leaves its products listable with the orphaned
// reference intact.
type ProductRepo struct {
	col        *mongo.Collection
	categories *mongo.Collection
}

func NewProductRepo(db *mongo.Database) *ProductRepo {
	return &ProductRepo{
		col:        db.Collection("products"),
		categories: db.Collection("categories"),
	}
}

// List returns every product.
func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	return r.list(ctx, bson.M{})
}

// ListByCategory returns the products whose category reference equals id.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID string) ([]model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, bson.M{"category_id": oid})
}

func (r *ProductRepo) list(ctx context.Context, filter bson.M) ([]model.Product, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var products []model.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Get fetches one product. ErrProductNotFound when absent.
func (r *ProductRepo) Get(ctx context.Context, id string) (model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Product{}, err
	}
	var p model.Product
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Product{}, ErrProductNotFound
	}
	return p, err
}

// Insert stores a new product after verifying its category reference.
func (r *ProductRepo) Insert(ctx context.Context, p *model.Product) error {
	if err := r.categoryExists(ctx, p.CategoryID); err != nil {
		return err
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces the mutable fields of a product and returns the updated
// record. The category reference is verified first; ErrProductNotFound when
// the id does not resolve.
func (r *ProductRepo) Update(ctx context.Context, id string, p model.Product) (model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Product{}, err
	}
	if err := r.categoryExists(ctx, p.CategoryID); err != nil {
		return model.Product{}, err
	}
	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"image_url":   p.ImageURL,
		"stock":       p.Stock,
		"category_id": p.CategoryID,
		"updated_at":  time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Product
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Product{}, ErrProductNotFound
	}
	return updated, err
}

// Delete removes a product. Orders keep their snapshots and transactions
// their references; nothing cascades.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrProductNotFound
	}
	return err
}

func (r *ProductRepo) categoryExists(ctx context.Context, id primitive.ObjectID) error {
	err := r.categories.FindOne(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrCategoryNotFound
	}
	return err
}
