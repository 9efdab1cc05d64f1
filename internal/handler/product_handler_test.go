package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProductUseCase возвращает заранее заданные результаты,
// чтобы проверить только трансляцию ошибок в HTTP-статусы.
type stubProductUseCase struct {
	product *domain.Product
	deleted bool
	err     error
}

func (s *stubProductUseCase) CreateProduct(context.Context, map[string]any) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductUseCase) GetProductByID(context.Context, string) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductUseCase) ListProducts(context.Context) ([]domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Product{}, nil
}

func (s *stubProductUseCase) UpdateProduct(context.Context, string, map[string]any) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductUseCase) DeleteProduct(context.Context, string) (bool, error) {
	return s.deleted, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRouter(h *ProductHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/products/{id}", h.GetProduct)
	r.Post("/products", h.CreateProduct)
	r.Delete("/products/{id}", h.DeleteProduct)
	return r
}

func TestGetProduct_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid id maps to 400", domain.ErrInvalidID, http.StatusBadRequest},
		{"not found maps to 404", domain.ErrNotFound, http.StatusNotFound},
		{"store error maps to 500", &domain.StoreError{Op: "get", Err: io.EOF}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewProductHandler(&stubProductUseCase{err: tt.err}, testLogger())
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/products/"+uuid.NewString(), nil)

			newRouter(h).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCreateProduct_ValidationDetails(t *testing.T) {
	vErr := &domain.ValidationError{Violations: []string{"name is required", "price is required"}}
	h := NewProductHandler(&stubProductUseCase{err: vErr}, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"stock":1}`))

	newRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Validation error", body.Error)
	assert.Equal(t, vErr.Violations, body.Details)
}

func TestCreateProduct_MalformedBody(t *testing.T) {
	h := NewProductHandler(&stubProductUseCase{}, testLogger())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`not json`))

	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProduct_Statuses(t *testing.T) {
	h := NewProductHandler(&stubProductUseCase{deleted: true}, testLogger())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/"+uuid.NewString(), nil)
	newRouter(h).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	h = NewProductHandler(&stubProductUseCase{deleted: false}, testLogger())
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/products/"+uuid.NewString(), nil)
	newRouter(h).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
