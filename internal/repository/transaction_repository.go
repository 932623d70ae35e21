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

// PopulatedTransaction pairs a legacy transaction with the resolved user
// name and the live name and price of its product. Unlike order items these
// are not snapshots: the view always reflects the current product record.
type PopulatedTransaction struct {
	Transaction model.Transaction
	UserName    string
	ProductName string
	Price       float64
}

// TransactionRepo encapsulates all queries against the `transactions`
// collection. Every read resolves both references; a dangling user or
// product fails the fetch with the matching not-found sentinel.
type TransactionRepo struct {
	col      *mongo.Collection
	users    *mongo.Collection
	products *mongo.Collection
}

func NewTransactionRepo(db *mongo.Database) *TransactionRepo {
	return &TransactionRepo{
		col:      db.Collection("transactions"),
		users:    db.Collection("users"),
		products: db.Collection("products"),
	}
}

// List returns transactions newest-first by transaction date, optionally
// filtered by user id (empty string means no filter).
func (r *TransactionRepo) List(ctx context.Context, userID string) ([]PopulatedTransaction, error) {
	filter := bson.M{}
	if userID != "" {
		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return nil, err
		}
		filter["user_id"] = oid
	}
	opts := options.Find().SetSort(bson.D{{Key: "transaction_date", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var txs []model.Transaction
	if err := cur.All(ctx, &txs); err != nil {
		return nil, err
	}

	out := make([]PopulatedTransaction, 0, len(txs))
	for _, t := range txs {
		pt, err := r.populate(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, nil
}

// Insert stores a new transaction and returns it populated. Both references
// are resolved first, so a transaction can never be created against a
// missing user or product.
func (r *TransactionRepo) Insert(ctx context.Context, t *model.Transaction) (PopulatedTransaction, error) {
	pt, err := r.populate(ctx, *t)
	if err != nil {
		return PopulatedTransaction{}, err
	}
	now := time.Now().UTC()
	if t.TransactionDate.IsZero() {
		t.TransactionDate = now
	}
	t.CreatedAt = now
	t.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return PopulatedTransaction{}, err
	}
	t.ID = res.InsertedID.(primitive.ObjectID)
	pt.Transaction = *t
	return pt, nil
}

// UpdateStatus sets the status of a transaction and returns the updated
// record populated. ErrTransactionNotFound when the id does not resolve.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, id, status string) (PopulatedTransaction, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return PopulatedTransaction{}, err
	}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var t model.Transaction
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return PopulatedTransaction{}, ErrTransactionNotFound
	}
	if err != nil {
		return PopulatedTransaction{}, err
	}
	return r.populate(ctx, t)
}

func (r *TransactionRepo) populate(ctx context.Context, t model.Transaction) (PopulatedTransaction, error) {
	var u model.User
	err := r.users.FindOne(ctx, bson.M{"_id": t.UserID}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return PopulatedTransaction{}, ErrUserNotFound
	}
	if err != nil {
		return PopulatedTransaction{}, err
	}
	var p model.Product
	err = r.products.FindOne(ctx, bson.M{"_id": t.ProductID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return PopulatedTransaction{}, ErrProductNotFound
	}
	if err != nil {
		return PopulatedTransaction{}, err
	}
	return PopulatedTransaction{
		Transaction: t,
		UserName:    u.Name,
		ProductName: p.Name,
		Price:       p.Price,
	}, nil
}
