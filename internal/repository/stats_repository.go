package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StatsRepo answers the handful of live counts behind the analytics
// endpoint. Everything else in that payload is a fixed fixture and never
// touches the database.
type StatsRepo struct {
	db *mongo.Database
}

func NewStatsRepo(db *mongo.Database) *StatsRepo {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.db.Collection("products").CountDocuments(ctx, bson.M{})
}

func (r *StatsRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.db.Collection("users").CountDocuments(ctx, bson.M{})
}

func (r *StatsRepo) CountOrders(ctx context.Context) (int64, error) {
	return r.db.Collection("orders").CountDocuments(ctx, bson.M{})
}

// SumOrderTotals returns the sum of total_amount across all orders.
func (r *StatsRepo) SumOrderTotals(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total_amount"}}},
		}}},
	}
	cur, err := r.db.Collection("orders").Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
