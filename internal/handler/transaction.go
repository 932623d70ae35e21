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
	"github.com/farazfarwa/fashionhub/internal/repository"
)

// TransactionHandler serves the legacy single-item purchase records, kept
// for route compatibility alongside orders.
type TransactionHandler struct {
	Transactions TransactionStore
}

func NewTransactionHandler(transactions TransactionStore) *TransactionHandler {
	return &TransactionHandler{Transactions: transactions}
}

// transactionView flattens both references into the response: the user's
// name plus the product's current name and price (live values, not
// snapshots — this is what distinguishes the legacy record from an order).
type transactionView struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	ProductID       string    `json:"product_id"`
	Quantity        int       `json:"quantity"`
	Status          string    `json:"status"`
	TransactionDate time.Time `json:"transaction_date"`
	UserName        string    `json:"user_name"`
	ProductName     string    `json:"product_name"`
	Price           float64   `json:"price"`
}

func newTransactionView(pt repository.PopulatedTransaction) transactionView {
	t := pt.Transaction
	return transactionView{
		ID:              t.ID.Hex(),
		UserID:          t.UserID.Hex(),
		ProductID:       t.ProductID.Hex(),
		Quantity:        t.Quantity,
		Status:          t.Status,
		TransactionDate: t.TransactionDate,
		UserName:        pt.UserName,
		ProductName:     pt.ProductName,
		Price:           pt.Price,
	}
}

// List handles GET /api/transactions with an optional user_id filter,
// newest-first by transaction date.
func (h *TransactionHandler) List(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	txs, err := h.Transactions.List(ctx, c.QueryParam("user_id"))
	if err != nil {
		return serverError(c, err)
	}
	views := make([]transactionView, 0, len(txs))
	for _, t := range txs {
		views = append(views, newTransactionView(t))
	}
	return c.JSON(http.StatusOK, views)
}

// Create handles POST /api/transactions. Status always starts as ordered
// and the transaction date defaults to now.
func (h *TransactionHandler) Create(c echo.Context) error {
	var payload struct {
		UserID    string `json:"user_id"`
		ProductID string `json:"product_id"`
		Quantity  any    `json:"quantity"`
	}
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	userID, err := primitive.ObjectIDFromHex(strings.TrimSpace(payload.UserID))
	if err != nil {
		return badRequest(c, "user_id is required")
	}
	productID, err := primitive.ObjectIDFromHex(strings.TrimSpace(payload.ProductID))
	if err != nil {
		return badRequest(c, "product_id is required")
	}
	qty, err := cast.ToIntE(payload.Quantity)
	if err != nil || qty < 1 {
		return badRequest(c, "quantity must be a positive integer")
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	t := model.Transaction{
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
		Status:    model.StatusOrdered,
	}
	pt, err := h.Transactions.Insert(ctx, &t)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return notFound(c, "User not found")
		case errors.Is(err, repository.ErrProductNotFound):
			return notFound(c, "Product not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, newTransactionView(pt))
}

// UpdateStatus handles PUT /api/transactions/:id.
func (h *TransactionHandler) UpdateStatus(c echo.Context) error {
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

	pt, err := h.Transactions.UpdateStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return notFound(c, "Transaction not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, newTransactionView(pt))
}
