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

// ProductHandler serves the catalog CRUD endpoints.
type ProductHandler struct {
	Products ProductStore
}

func NewProductHandler(products ProductStore) *ProductHandler {
	return &ProductHandler{Products: products}
}

// productPayload accepts price and stock as either JSON numbers or numeric
// strings; the storefront client has historically sent both.
type productPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       any    `json:"price"`
	ImageURL    string `json:"image_url"`
	Stock       any    `json:"stock"`
	CategoryID  string `json:"category_id"`
}

// productView is the flattened response shape: the category reference is
// resolved but only its id is emitted, never its name.
type productView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	Stock       int       `json:"stock"`
	CategoryID  string    `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func newProductView(p model.Product) productView {
	return productView{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID.Hex(),
		CreatedAt:   p.CreatedAt,
	}
}

// parseProductPayload validates and coerces a payload into a model.Product.
// The returned message is empty on success.
func parseProductPayload(payload productPayload) (model.Product, string) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return model.Product{}, "name is required"
	}
	price, err := cast.ToFloat64E(payload.Price)
	if err != nil {
		return model.Product{}, "price must be a number"
	}
	if price < 0 {
		return model.Product{}, "price must not be negative"
	}
	stock := 0
	if payload.Stock != nil {
		if stock, err = cast.ToIntE(payload.Stock); err != nil {
			return model.Product{}, "stock must be an integer"
		}
	}
	if stock < 0 {
		return model.Product{}, "stock must not be negative"
	}
	catID, err := primitive.ObjectIDFromHex(strings.TrimSpace(payload.CategoryID))
	if err != nil {
		return model.Product{}, "category_id is required"
	}
	return model.Product{
		Name:        name,
		Description: payload.Description,
		Price:       price,
		ImageURL:    strings.TrimSpace(payload.ImageURL),
		Stock:       stock,
		CategoryID:  catID,
	}, ""
}

// List handles GET /api/products.
func (h *ProductHandler) List(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	products, err := h.Products.List(ctx)
	if err != nil {
		return serverError(c, err)
	}
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	return c.JSON(http.StatusOK, views)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	p, err := h.Products.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return notFound(c, "Product not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, newProductView(p))
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	p, msg := parseProductPayload(payload)
	if msg != "" {
		return badRequest(c, msg)
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	if err := h.Products.Insert(ctx, &p); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return badRequest(c, "Category not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, newProductView(p))
}

// Update handles PUT /api/products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	p, msg := parseProductPayload(payload)
	if msg != "" {
		return badRequest(c, msg)
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	updated, err := h.Products.Update(ctx, c.Param("id"), p)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return notFound(c, "Product not found")
		case errors.Is(err, repository.ErrCategoryNotFound):
			return badRequest(c, "Category not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, newProductView(updated))
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	if err := h.Products.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return notFound(c, "Product not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}
