package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction is the legacy single-item purchase record, kept live alongside
// Order for route compatibility. One transaction covers exactly one product
// line; its status uses the same enum as Order.
type Transaction struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          primitive.ObjectID `bson:"user_id"`
	ProductID       primitive.ObjectID `bson:"product_id"`
	Quantity        int                `bson:"quantity"`
	Status          string             `bson:"status"`
	TransactionDate time.Time          `bson:"transaction_date"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}
