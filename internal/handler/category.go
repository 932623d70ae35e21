package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/farazfarwa/fashionhub/internal/model"
	"github.com/farazfarwa/fashionhub/internal/repository"
)

// The pseudo-category id. GET /api/categories/0 means "no real category":
// it returns every product in the store under a synthetic banner.
const allProductsID = "0"

// CategoryHandler serves the category endpoints. It also needs the product
// store because the category detail view pairs a category with its products.
type CategoryHandler struct {
	Categories CategoryStore
	Products   ProductStore
}

func NewCategoryHandler(categories CategoryStore, products ProductStore) *CategoryHandler {
	return &CategoryHandler{Categories: categories, Products: products}
}

type categoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type categoryView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func newCategoryView(cat model.Category) categoryView {
	return categoryView{ID: cat.ID.Hex(), Name: cat.Name, Description: cat.Description}
}

// browseProductView is the product shape inside a category detail response.
// Unlike the /api/products listing it omits created_at.
type browseProductView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock"`
	CategoryID  string  `json:"category_id"`
}

func newBrowseProductViews(products []model.Product) []browseProductView {
	views := make([]browseProductView, 0, len(products))
	for _, p := range products {
		views = append(views, browseProductView{
			ID:          p.ID.Hex(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			Stock:       p.Stock,
			CategoryID:  p.CategoryID.Hex(),
		})
	}
	return views
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	cats, err := h.Categories.List(ctx)
	if err != nil {
		return serverError(c, err)
	}
	views := make([]categoryView, 0, len(cats))
	for _, cat := range cats {
		views = append(views, newCategoryView(cat))
	}
	return c.JSON(http.StatusOK, views)
}

// Get handles GET /api/categories/:id. The literal id "0" yields the
// synthetic All Products pseudo-category paired with the whole catalog; any
// other id must resolve to a real category.
func (h *CategoryHandler) Get(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	id := c.Param("id")
	if id == allProductsID {
		products, err := h.Products.List(ctx)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"category": echo.Map{
				"id":          0,
				"name":        "All Products",
				"description": "Browse all our products",
			},
			"products": newBrowseProductViews(products),
		})
	}

	cat, err := h.Categories.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return notFound(c, "Category not found")
		}
		return serverError(c, err)
	}
	products, err := h.Products.ListByCategory(ctx, id)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"category": newCategoryView(cat),
		"products": newBrowseProductViews(products),
	})
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(c echo.Context) error {
	var payload categoryPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return badRequest(c, "name is required")
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	cat := model.Category{Name: name, Description: payload.Description}
	if err := h.Categories.Insert(ctx, &cat); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, newCategoryView(cat))
}

// Update handles PUT /api/categories/:id.
func (h *CategoryHandler) Update(c echo.Context) error {
	var payload categoryPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return badRequest(c, "name is required")
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	cat, err := h.Categories.Update(ctx, c.Param("id"), name, payload.Description)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return notFound(c, "Category not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, newCategoryView(cat))
}

// Delete handles DELETE /api/categories/:id. Products referencing the
// category are left untouched.
func (h *CategoryHandler) Delete(c echo.Context) error {
	ctx, cancel := opCtx(c)
	defer cancel()

	if err := h.Categories.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return notFound(c, "Category not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Category deleted successfully"})
}
