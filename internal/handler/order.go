package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farazfarwa/fashionhub/internal/model"
	"github.com/farazfarwa/fashionhub/internal/queue"
	"github.com/farazfarwa/fashionhub/internal/repository"
)

// OrderHandler serves checkout and order management. Events may be nil, in
// which case no order.placed event is published.
type OrderHandler struct {
	Orders OrderStore
	Events OrderEvents
}

func NewOrderHandler(orders OrderStore, events OrderEvents) *OrderHandler {
	return &OrderHandler{Orders: orders, Events: events}
}

// orderItemPayload is one cart line as the client submits it. Quantity and
// price tolerate numeric strings like the product payload does.
type orderItemPayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity any    `json:"quantity"`
	Price    any    `json:"price"`
}

type orderPayload struct {
	UserID        string             `json:"user_id"`
	Items         []orderItemPayload `json:"items"`
	DeliveryInfo  model.DeliveryInfo `json:"delivery_info"`
	PaymentMethod string             `json:"payment_method"`
	TotalAmount   any                `json:"total_amount"`
	Status        string             `json:"status"`
}

type orderItemView struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// orderView is the list response shape with the purchasing user flattened in.
type orderView struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	UserName      string             `json:"user_name"`
	TotalAmount   float64            `json:"total_amount"`
	Status        string             `json:"status"`
	DeliveryInfo  model.DeliveryInfo `json:"delivery_info"`
	PaymentMethod string             `json:"payment_method"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []orderItemView    `json:"items"`
}

// orderStatusView is the narrower shape returned by the status update,
// without delivery or payment details.
type orderStatusView struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	UserName    string          `json:"user_name"`
	TotalAmount float64         `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []orderItemView `json:"items"`
}

func newOrderItemViews(items []model.OrderItem) []orderItemView {
	views := make([]orderItemView, 0, len(items))
	for _, it := range items {
		views = append(views, orderItemView{
			ProductID:   it.ProductID.Hex(),
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return views
}

func newOrderView(po repository.PopulatedOrder) orderView {
	o := po.Order
	return orderView{
		ID:            o.ID.Hex(),
		UserID:        o.UserID.Hex(),
		UserName:      po.UserName,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		DeliveryInfo:  o.DeliveryInfo,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
		Items:         newOrderItemViews(o.Items),
	}
}

// List handles GET /api/orders with an optional user_id filter. Orders come
// back newest-first.
func (h *OrderHandler) List(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	orders, err := h.Orders.List(ctx, c.QueryParam("user_id"))
	if err != nil {
		return serverError(c, err)
	}
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	return c.JSON(http.StatusOK, views)
}

// Create handles POST /api/orders. The cart lines become point-in-time
// snapshots: the submitted name and price are stored as-is, with no lookup
// of the live product, no price recomputation and no stock decrement.
func (h *OrderHandler) Create(c echo.Context) error {
	var payload orderPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	userID, err := primitive.ObjectIDFromHex(strings.TrimSpace(payload.UserID))
	if err != nil {
		return badRequest(c, "user_id is required")
	}
	if strings.TrimSpace(payload.PaymentMethod) == "" {
		return badRequest(c, "payment_method is required")
	}
	total, err := cast.ToFloat64E(payload.TotalAmount)
	if err != nil {
		return badRequest(c, "total_amount must be a number")
	}
	if total < 0 {
		return badRequest(c, "total_amount must not be negative")
	}
	status := payload.Status
	if status == "" {
		status = model.StatusOrdered
	}
	if !model.ValidStatus(status) {
		return badRequest(c, "invalid status")
	}

	items := make([]model.OrderItem, 0, len(payload.Items))
	for _, it := range payload.Items {
		productID, err := primitive.ObjectIDFromHex(strings.TrimSpace(it.ID))
		if err != nil {
			return badRequest(c, "item id is required")
		}
		qty, err := cast.ToIntE(it.Quantity)
		if err != nil || qty < 1 {
			return badRequest(c, "item quantity must be a positive integer")
		}
		price, err := cast.ToFloat64E(it.Price)
		if err != nil || price < 0 {
			return badRequest(c, "item price must not be negative")
		}
		items = append(items, model.OrderItem{
			ProductID:   productID,
			ProductName: it.Name,
			Quantity:    qty,
			Price:       price,
		})
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	o := model.Order{
		UserID:        userID,
		TotalAmount:   total,
		Status:        status,
		DeliveryInfo:  payload.DeliveryInfo,
		PaymentMethod: payload.PaymentMethod,
		Items:         items,
	}
	if err := h.Orders.Insert(ctx, &o); err != nil {
		return serverError(c, err)
	}

	// Best effort: a broker outage never fails a checkout.
	if h.Events != nil {
		_ = h.Events.PublishOrderPlaced(ctx, queue.NewOrderPlacedEvent(o))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":      o.ID.Hex(),
		"message": "Order placed successfully",
	})
}

// UpdateStatus handles PUT /api/orders/:id.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if !model.ValidStatus(req.Status) {
		return badRequest(c, "invalid status")
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	po, err := h.Orders.UpdateStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return notFound(c, "Order not found")
		}
		return serverError(c, err)
	}
	o := po.Order
	return c.JSON(http.StatusOK, orderStatusView{
		ID:          o.ID.Hex(),
		UserID:      o.UserID.Hex(),
		UserName:    po.UserName,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		Items:       newOrderItemViews(o.Items),
	})
}
