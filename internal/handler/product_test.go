package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestProductCreateAndGet(t *testing.T) {
	s := newMemStore()
	cat := seedCategory(t, s, "Shirts")
	h := NewProductHandler(productStore{s})

	body := fmt.Sprintf(
		`{"name":"Classic White Shirt","description":"Cotton","price":29.99,"stock":50,"image_url":"http://img/shirt.jpg","category_id":"%s"}`,
		cat.ID.Hex())
	c, rec := request(http.MethodPost, "/api/products", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created productView
	decodeBody(t, rec, &created)
	if created.Price != 29.99 {
		t.Errorf("price = %v, want 29.99", created.Price)
	}
	if created.Stock != 50 || created.CategoryID != cat.ID.Hex() {
		t.Errorf("created = %+v", created)
	}

	c, rec = requestWithID(http.MethodGet, "/api/products/:id", created.ID, "")
	if err := h.Get(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	var got productView
	decodeBody(t, rec, &got)
	if got.Price != 29.99 {
		t.Errorf("stored price = %v, want exactly 29.99", got.Price)
	}
	if got != created {
		t.Errorf("get = %+v, create = %+v", got, created)
	}
}

func TestProductNumericCoercion(t *testing.T) {
	s := newMemStore()
	cat := seedCategory(t, s, "Shirts")
	h := NewProductHandler(productStore{s})

	// The client has always been allowed to send numbers as strings.
	body := fmt.Sprintf(
		`{"name":"Shirt","price":"29.99","stock":"5","category_id":"%s"}`, cat.ID.Hex())
	c, rec := request(http.MethodPost, "/api/products", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var view productView
	decodeBody(t, rec, &view)
	if view.Price != 29.99 || view.Stock != 5 {
		t.Errorf("coerced view = %+v", view)
	}
}

func TestProductValidation(t *testing.T) {
	s := newMemStore()
	cat := seedCategory(t, s, "Shirts")
	h := NewProductHandler(productStore{s})

	cases := []struct {
		name string
		body string
	}{
		{"missing name", fmt.Sprintf(`{"price":10,"category_id":"%s"}`, cat.ID.Hex())},
		{"negative price", fmt.Sprintf(`{"name":"S","price":-1,"category_id":"%s"}`, cat.ID.Hex())},
		{"non-numeric price", fmt.Sprintf(`{"name":"S","price":"cheap","category_id":"%s"}`, cat.ID.Hex())},
		{"non-numeric stock", fmt.Sprintf(`{"name":"S","price":10,"stock":"many","category_id":"%s"}`, cat.ID.Hex())},
		{"negative stock", fmt.Sprintf(`{"name":"S","price":10,"stock":-3,"category_id":"%s"}`, cat.ID.Hex())},
		{"missing category", `{"name":"S","price":10}`},
	}
	for _, tc := range cases {
		c, rec := request(http.MethodPost, "/api/products", tc.body)
		if err := h.Create(c); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
	if len(s.products) != 0 {
		t.Errorf("rejected payloads created %d products", len(s.products))
	}
}

func TestProductCreateUnknownCategory(t *testing.T) {
	s := newMemStore()
	h := NewProductHandler(productStore{s})

	c, rec := request(http.MethodPost, "/api/products",
		`{"name":"S","price":10,"category_id":"ffffffffffffffffffffffff"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Category not found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestProductViewEmitsOnlyCategoryID(t *testing.T) {
	s := newMemStore()
	cat := seedCategory(t, s, "Shirts")
	seedProduct(t, s, "Shirt", 10, cat.ID)
	h := NewProductHandler(productStore{s})

	c, rec := request(http.MethodGet, "/api/products", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	// The category reference is flattened to its id; the name never leaks in.
	if strings.Contains(rec.Body.String(), "Shirts") {
		t.Errorf("listing embeds the category name: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), cat.ID.Hex()) {
		t.Errorf("listing is missing the category id: %s", rec.Body.String())
	}
}

func TestProductGetNotFound(t *testing.T) {
	h := NewProductHandler(productStore{newMemStore()})

	c, rec := requestWithID(http.MethodGet, "/api/products/:id", "ffffffffffffffffffffffff", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Product not found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestProductUpdateAndDelete(t *testing.T) {
	s := newMemStore()
	cat := seedCategory(t, s, "Shirts")
	p := seedProduct(t, s, "Shirt", 10, cat.ID)
	h := NewProductHandler(productStore{s})

	body := fmt.Sprintf(`{"name":"Shirt v2","price":12.5,"stock":7,"category_id":"%s"}`, cat.ID.Hex())
	c, rec := requestWithID(http.MethodPut, "/api/products/:id", p.ID.Hex(), body)
	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	var view productView
	decodeBody(t, rec, &view)
	if view.Name != "Shirt v2" || view.Price != 12.5 || view.Stock != 7 {
		t.Errorf("updated view = %+v", view)
	}

	c, rec = requestWithID(http.MethodDelete, "/api/products/:id", p.ID.Hex(), "")
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Product deleted successfully") {
		t.Errorf("body = %s", rec.Body.String())
	}
	if len(s.products) != 0 {
		t.Errorf("product survived deletion")
	}

	c, rec = requestWithID(http.MethodDelete, "/api/products/:id", p.ID.Hex(), "")
	if err := h.Delete(c); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}
