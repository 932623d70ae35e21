// Package handler contains the Echo handlers for the storefront API. Each
// handler struct bundles the stores it needs behind small interfaces; the
// mongo-backed repositories satisfy them in production and in-memory fakes
// stand in for tests.
package handler

import (
	"context"

	"github.com/farazfarwa/fashionhub/internal/model"
	"github.com/farazfarwa/fashionhub/internal/queue"
	"github.com/farazfarwa/fashionhub/internal/repository"
)

// UserStore is the account surface backing signup, login and the admin
// user listing.
type UserStore interface {
	Insert(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, id, role string) (model.User, error)
}

type CategoryStore interface {
	List(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id string) (model.Category, error)
	Insert(ctx context.Context, cat *model.Category) error
	Update(ctx context.Context, id, name, description string) (model.Category, error)
	Delete(ctx context.Context, id string) error
}

type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]model.Product, error)
	Get(ctx context.Context, id string) (model.Product, error)
	Insert(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, id string, p model.Product) (model.Product, error)
	Delete(ctx context.Context, id string) error
}

type OrderStore interface {
	List(ctx context.Context, userID string) ([]repository.PopulatedOrder, error)
	Insert(ctx context.Context, o *model.Order) error
	UpdateStatus(ctx context.Context, id, status string) (repository.PopulatedOrder, error)
}

type TransactionStore interface {
	List(ctx context.Context, userID string) ([]repository.PopulatedTransaction, error)
	Insert(ctx context.Context, t *model.Transaction) (repository.PopulatedTransaction, error)
	UpdateStatus(ctx context.Context, id, status string) (repository.PopulatedTransaction, error)
}

type ContactStore interface {
	Insert(ctx context.Context, m *model.ContactMessage) error
}

// StatsStore answers the live counts of the analytics payload.
type StatsStore interface {
	CountProducts(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	SumOrderTotals(ctx context.Context) (float64, error)
}

// OrderEvents publishes checkout events to the broker. Publishing is
// best-effort; a nil OrderEvents disables it.
type OrderEvents interface {
	PublishOrderPlaced(ctx context.Context, ev queue.OrderPlacedEvent) error
}
