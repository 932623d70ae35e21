package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Purchase statuses shared by orders and legacy transactions.
const (
	StatusOrdered   = "ordered"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the purchase statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusOrdered, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is one line of an order. ProductName and Price are snapshots
// taken when the order is placed: later edits to the referenced product
// never change a placed order.
type OrderItem struct {
	ProductID   primitive.ObjectID `bson:"product_id"`
	ProductName string             `bson:"product_name"`
	Quantity    int                `bson:"quantity"`
	Price       float64            `bson:"price"`
}

// DeliveryInfo carries the free-text shipping details collected at checkout.
// All fields are optional. The json tags match the keys the storefront
// client sends, so the struct binds request bodies directly.
type DeliveryInfo struct {
	FullName string `bson:"full_name" json:"fullName"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	Address  string `bson:"address" json:"address"`
	City     string `bson:"city" json:"city"`
	State    string `bson:"state" json:"state"`
	ZipCode  string `bson:"zip_code" json:"zipCode"`
}

// Order is a placed checkout stored in the `orders` collection. It
// aggregates the cart line items as snapshots; there is no stock decrement
// or price recomputation when it is created.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        primitive.ObjectID `bson:"user_id"`
	TotalAmount   float64            `bson:"total_amount"`
	Status        string             `bson:"status"`
	DeliveryInfo  DeliveryInfo       `bson:"delivery_info"`
	PaymentMethod string             `bson:"payment_method"`
	Items         []OrderItem        `bson:"items"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}
