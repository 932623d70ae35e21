// Package queue defines the message payloads exchanged over the broker and
// the background consumer that drains them.
package queue

import (
	"time"

	"github.com/farazfarwa/fashionhub/internal/model"
)

// OrderQueueName is the durable queue carrying checkout events.
const OrderQueueName = "order.placed"

// OrderPlacedItem mirrors one snapshotted line of the order.
type OrderPlacedItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderPlacedEvent is published after a checkout is stored. It carries
// enough for downstream consumers to log or notify without querying the
// primary database.
type OrderPlacedEvent struct {
	OrderID       string            `json:"order_id"`
	UserID        string            `json:"user_id"`
	TotalAmount   float64           `json:"total_amount"`
	PaymentMethod string            `json:"payment_method"`
	Items         []OrderPlacedItem `json:"items"`
	PlacedAt      string            `json:"placed_at"`
}

// NewOrderPlacedEvent builds the event for a freshly stored order.
func NewOrderPlacedEvent(o model.Order) OrderPlacedEvent {
	items := make([]OrderPlacedItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderPlacedItem{
			ProductID:   it.ProductID.Hex(),
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return OrderPlacedEvent{
		OrderID:       o.ID.Hex(),
		UserID:        o.UserID.Hex(),
		TotalAmount:   o.TotalAmount,
		PaymentMethod: o.PaymentMethod,
		Items:         items,
		PlacedAt:      o.CreatedAt.UTC().Format(time.RFC3339),
	}
}
