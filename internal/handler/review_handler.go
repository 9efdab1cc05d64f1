package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/CatalogApp/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// ReviewHandler — обработчик HTTP-запросов для работы с отзывами.
type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
	logger        *slog.Logger
}

// NewReviewHandler создаёт новый экземпляр ReviewHandler.
func NewReviewHandler(uc usecase.ReviewUseCase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{reviewUseCase: uc, logger: logger}
}

// ListReviews — отдаёт все отзывы.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewUseCase.ListReviews(r.Context())
	if err != nil {
		h.logger.Error("failed to list reviews", "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, reviews, h.logger)
}

// GetReviewsByProduct — отдаёт отзывы по имени товара из пути.
// Имя принимается в любом регистре.
func (h *ReviewHandler) GetReviewsByProduct(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		respondWithError(w, http.StatusBadRequest, "Не указано имя товара", h.logger)
		return
	}

	reviews, err := h.reviewUseCase.GetReviewsByProductName(r.Context(), name)
	if err != nil {
		h.logger.Error("failed to get reviews by product", "name", name, "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, reviews, h.logger)
}

// CreateReview — создаёт отзыв из провалидированного тела запроса.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	input, err := decodeBody(r)
	if err != nil {
		h.logger.Warn("malformed request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", h.logger)
		return
	}

	review, err := h.reviewUseCase.CreateReview(r.Context(), input)
	if err != nil {
		h.logger.Warn("failed to create review", "error", err)
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("review created via API", "id", review.ID, "name", review.Name)
	respondWithJSON(w, http.StatusCreated, review, h.logger)
}
