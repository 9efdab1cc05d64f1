package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/CatalogApp/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// ProductHandler — обработчик HTTP-запросов для работы с товарами.
type ProductHandler struct {
	productUseCase usecase.ProductUseCase
	logger         *slog.Logger
}

// NewProductHandler создаёт новый экземпляр ProductHandler.
func NewProductHandler(uc usecase.ProductUseCase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{productUseCase: uc, logger: logger}
}

// ListProducts — отдаёт все товары каталога.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUseCase.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct — отдаёт один товар по id из пути.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.productUseCase.GetProductByID(r.Context(), id)
	if err != nil {
		h.logger.Warn("failed to get product", "id", id, "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, product, h.logger)
}

// CreateProduct — создаёт товар из провалидированного тела запроса.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	input, err := decodeBody(r)
	if err != nil {
		h.logger.Warn("malformed request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", h.logger)
		return
	}

	product, err := h.productUseCase.CreateProduct(r.Context(), input)
	if err != nil {
		h.logger.Warn("failed to create product", "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("product created via API", "id", product.ID)
	respondWithJSON(w, http.StatusCreated, product, h.logger)
}

// UpdateProduct — обновляет товар и возвращает запись после обновления.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	input, err := decodeBody(r)
	if err != nil {
		h.logger.Warn("malformed request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", h.logger)
		return
	}

	product, err := h.productUseCase.UpdateProduct(r.Context(), id, input)
	if err != nil {
		h.logger.Warn("failed to update product", "id", id, "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("product updated via API", "id", product.ID)
	respondWithJSON(w, http.StatusOK, product, h.logger)
}

// DeleteProduct — удаляет товар. Отсутствие записи — 404, а не 500:
// вызывающий сам решает, считать ли это исключительной ситуацией.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.productUseCase.DeleteProduct(r.Context(), id)
	if err != nil {
		h.logger.Warn("failed to delete product", "id", id, "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}
	if !deleted {
		respondWithError(w, http.StatusNotFound, "Запись не найдена", h.logger)
		return
	}

	h.logger.Info("product deleted via API", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
