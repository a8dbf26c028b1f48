package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/brewhouse/coffee-shop-api/internal/core/domain"
	"github.com/brewhouse/coffee-shop-api/internal/core/ports"
)

type stubProductService struct {
	listFn   func(ctx context.Context) ([]domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	createFn func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) Update(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubProductService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func newIDContext(t *testing.T, method, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/api/products/"+id, nil)
	} else {
		req = httptest.NewRequest(method, "/api/products/"+id, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestProductHandler_List(t *testing.T) {
	stub := &stubProductService{
		listFn: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: "p1", Name: "Latte", Category: domain.CategoryLatte},
				{ID: "p2", Name: "Espresso", Category: domain.CategoryEspresso},
			}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/api/products", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["message"] != "Products retrieved" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["count"] != float64(2) {
		t.Fatalf("expected count 2, got %v", resp["count"])
	}
	products, ok := resp["products"].([]any)
	if !ok || len(products) != 2 {
		t.Fatalf("unexpected products payload: %v", resp["products"])
	}
}

func TestProductHandler_Get_NotFoundPropagates(t *testing.T) {
	stub := &stubProductService{
		getFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, _ := newIDContext(t, http.MethodGet, "", "missing")
	if err := h.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound to propagate, got %v", err)
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			if input.Name != "Latte" || input.Description != "hot" || input.Price != 1500 || input.Category != "Latte" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Stock != nil || input.Available != nil {
				t.Fatalf("expected absent optionals to be nil")
			}
			return &domain.Product{
				ID: "p1", Name: input.Name, Description: input.Description,
				Price: input.Price, Category: domain.ProductCategory(input.Category),
				Available: true, Stock: 100,
			}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/products",
		`{"name":"Latte","description":"hot","price":1500,"category":"Latte"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["message"] != "Product created" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	product, ok := resp["product"].(map[string]any)
	if !ok {
		t.Fatalf("expected product in response")
	}
	if product["stock"] != float64(100) {
		t.Fatalf("expected stock 100, got %v", product["stock"])
	}
	if product["available"] != true {
		t.Fatalf("expected available true, got %v", product["available"])
	}
}

func TestProductHandler_Create_NegativePriceRejectedBeforeService(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/api/products",
		`{"name":"Latte","description":"hot","price":-5,"category":"Latte"}`)
	err := h.Create(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestProductHandler_Update_PartialPatch(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
			if id != "p1" {
				t.Fatalf("unexpected id %q", id)
			}
			if patch.Price == nil || *patch.Price != 1800 {
				t.Fatalf("expected price patch, got %+v", patch)
			}
			if patch.Name != nil || patch.Description != nil || patch.Category != nil || patch.Stock != nil || patch.Available != nil {
				t.Fatalf("unspecified fields must stay nil: %+v", patch)
			}
			return &domain.Product{ID: id, Name: "Latte", Price: 1800}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newIDContext(t, http.MethodPut, `{"price":1800}`, "p1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["message"] != "Product updated" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestProductHandler_Update_BadCategoryRejected(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, _ := newIDContext(t, http.MethodPut, `{"category":"Smoothie"}`, "p1")
	err := h.Update(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestProductHandler_Delete_ReturnsIDOnly(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "p1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newIDContext(t, http.MethodDelete, "", "p1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["message"] != "Product deleted" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["productId"] != "p1" {
		t.Fatalf("expected productId p1, got %v", resp["productId"])
	}
	if _, hasBody := resp["product"]; hasBody {
		t.Fatalf("delete must not return the record body")
	}
}

func TestProductHandler_Delete_NotFoundPropagates(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, _ := newIDContext(t, http.MethodDelete, "", "missing")
	if err := h.Delete(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound to propagate, got %v", err)
	}
}
