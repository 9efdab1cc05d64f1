package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/CatalogApp/internal/domain"
)

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// respondWithDomainError — транслирует классифицированную ошибку слоя данных
// в HTTP-статус. Само ядро статусами не оперирует, это забота контроллера.
func respondWithDomainError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondWithJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Validation error",
			"details": vErr.Violations,
		}, logger)
	case errors.Is(err, domain.ErrInvalidID):
		respondWithError(w, http.StatusBadRequest, "Некорректный идентификатор", logger)
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Запись не найдена", logger)
	default:
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера", logger)
	}
}

// decodeBody разбирает тело запроса в недоверенную запись для валидационного шлюза
func decodeBody(r *http.Request) (map[string]any, error) {
	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return nil, err
	}
	return input, nil
}
