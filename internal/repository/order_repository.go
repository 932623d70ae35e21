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

// PopulatedOrder pairs an order with the resolved name of the purchasing
// user, ready for the flattened response shape.
type PopulatedOrder struct {
	Order    model.Order
	UserName string
}

// OrderRepo encapsulates all queries against the `orders` collection. Reads
// resolve the purchasing user; a dangling user reference fails the fetch
// with ErrUserNotFound.
type OrderRepo struct {
	col   *mongo.Collection
	users *mongo.Collection
}

func NewOrderRepo(db *mongo.Database) *OrderRepo {
	return &OrderRepo{
		col:   db.Collection("orders"),
		users: db.Collection("users"),
	}
}

// List returns orders newest-first, optionally filtered by the purchasing
// user's id (empty string means no filter).
func (r *OrderRepo) List(ctx context.Context, userID string) ([]PopulatedOrder, error) {
	filter := bson.M{}
	if userID != "" {
		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return nil, err
		}
		filter["user_id"] = oid
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var orders []model.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}

	names, err := r.userNames(ctx, orders)
	if err != nil {
		return nil, err
	}
	out := make([]PopulatedOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, PopulatedOrder{Order: o, UserName: names[o.UserID]})
	}
	return out, nil
}

// Insert stores a new order and fills in its ID and timestamps. The line
// items are persisted exactly as given; snapshots are never recomputed.
func (r *OrderRepo) Insert(ctx context.Context, o *model.Order) error {
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateStatus sets the status of an order and returns the updated record
// with the purchasing user resolved. ErrOrderNotFound when the id does not
// resolve.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) (PopulatedOrder, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return PopulatedOrder{}, err
	}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o model.Order
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return PopulatedOrder{}, ErrOrderNotFound
	}
	if err != nil {
		return PopulatedOrder{}, err
	}

	var u model.User
	err = r.users.FindOne(ctx, bson.M{"_id": o.UserID}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return PopulatedOrder{}, ErrUserNotFound
	}
	if err != nil {
		return PopulatedOrder{}, err
	}
	return PopulatedOrder{Order: o, UserName: u.Name}, nil
}

// userNames resolves the distinct purchasing users of the given orders into
// an id→name map, failing when any reference dangles.
func (r *OrderRepo) userNames(ctx context.Context, orders []model.Order) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string, len(orders))
	if len(orders) == 0 {
		return names, nil
	}
	ids := make([]primitive.ObjectID, 0, len(orders))
	for _, o := range orders {
		if _, ok := names[o.UserID]; !ok {
			names[o.UserID] = ""
			ids = append(ids, o.UserID)
		}
	}
	cur, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	if len(users) != len(ids) {
		return nil, ErrUserNotFound
	}
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}
