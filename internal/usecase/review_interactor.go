package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/CatalogApp/internal/core/ports"
	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/GoArmGo/CatalogApp/internal/messaging/payloads"
	"github.com/GoArmGo/CatalogApp/internal/validation"
)

// reviewUseCase implements ReviewUseCase
type reviewUseCase struct {
	reviews  ports.ReviewRepository
	products ports.ProductRepository
	events   ports.CatalogEventPublisher
	logger   *slog.Logger
}

// NewReviewUseCase создает новый экземпляр ReviewUseCase
func NewReviewUseCase(
	reviews ports.ReviewRepository,
	products ports.ProductRepository,
	events ports.CatalogEventPublisher,
	logger *slog.Logger,
) ReviewUseCase {
	return &reviewUseCase{
		reviews:  reviews,
		products: products,
		events:   events,
		logger:   logger,
	}
}

// CreateReview валидирует ввод, сохраняет отзыв и публикует событие review.created
func (uc *reviewUseCase) CreateReview(ctx context.Context, input map[string]any) (*domain.Review, error) {
	record, violations := validation.Validate(input, validation.ReviewSchema)
	if violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	review := &domain.Review{
		Name:    record["name"].(string),
		Email:   record["email"].(string),
		Rating:  record["rating"].(int),
		Comment: record["comment"].(string),
	}

	if err := uc.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("usecase: не удалось сохранить отзыв: %w", err)
	}

	// Name после Create уже нормализован хранилищем
	if uc.events != nil {
		payload := payloads.CatalogEventPayload{
			Event: payloads.EventReviewCreated,
			ID:    review.ID.String(),
			Name:  review.Name,
		}
		if err := uc.events.PublishCatalogEvent(ctx, payload); err != nil {
			uc.logger.Error("failed to publish catalog event",
				"event", payload.Event,
				"id", payload.ID,
				"error", err,
			)
		}
	}
	return review, nil
}

// ListReviews получает все отзывы
func (uc *reviewUseCase) ListReviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := uc.reviews.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: не удалось получить список отзывов: %w", err)
	}
	return reviews, nil
}

// GetReviewsByProductName возвращает отзывы по имени товара в любом регистре.
// Нормализацию фильтра выполняет репозиторий.
func (uc *reviewUseCase) GetReviewsByProductName(ctx context.Context, name string) ([]domain.Review, error) {
	reviews, err := uc.reviews.GetByProductName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("usecase: не удалось получить отзывы по товару %q: %w", name, err)
	}
	return reviews, nil
}

// RefreshRatingSummary пересчитывает денормализованную сводку рейтинга товара.
// Вызывается воркером при событии review.created.
func (uc *reviewUseCase) RefreshRatingSummary(ctx context.Context, name string) error {
	key := domain.NormalizeProductKey(name)

	count, avg, err := uc.reviews.RatingSummary(ctx, key)
	if err != nil {
		return fmt.Errorf("usecase: не удалось вычислить сводку рейтинга для %q: %w", key, err)
	}

	if err := uc.products.UpdateRatingSummary(ctx, key, avg, count); err != nil {
		return fmt.Errorf("usecase: не удалось обновить сводку рейтинга для %q: %w", key, err)
	}

	uc.logger.Info("rating summary refreshed", "name", key, "avg", avg, "count", count)
	return nil
}
