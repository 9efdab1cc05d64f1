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

// productUseCase implements ProductUseCase
type productUseCase struct {
	products ports.ProductRepository
	events   ports.CatalogEventPublisher
	logger   *slog.Logger
}

// NewProductUseCase создает новый экземпляр ProductUseCase.
// Publisher может быть nil (режим воркера, тесты) — тогда события не публикуются.
func NewProductUseCase(
	products ports.ProductRepository,
	events ports.CatalogEventPublisher,
	logger *slog.Logger,
) ProductUseCase {
	return &productUseCase{
		products: products,
		events:   events,
		logger:   logger,
	}
}

// CreateProduct валидирует ввод, сохраняет товар и публикует событие product.created
func (uc *productUseCase) CreateProduct(ctx context.Context, input map[string]any) (*domain.Product, error) {
	record, violations := validation.Validate(input, validation.ProductSchema)
	if violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	product := &domain.Product{
		Name:        record["name"].(string),
		Description: record["description"].(string),
		Price:       record["price"].(float64),
		Stock:       record["stock"].(int),
	}

	if err := uc.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("usecase: не удалось сохранить товар: %w", err)
	}

	uc.publish(ctx, payloads.CatalogEventPayload{
		Event: payloads.EventProductCreated,
		ID:    product.ID.String(),
		Name:  product.Name,
	})
	return product, nil
}

// GetProductByID получает товар по id; отсутствие записи — domain.ErrNotFound
func (uc *productUseCase) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// ListProducts получает все товары
func (uc *productUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := uc.products.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: не удалось получить список товаров: %w", err)
	}
	return products, nil
}

// UpdateProduct валидирует ввод и заменяет поля товара
func (uc *productUseCase) UpdateProduct(ctx context.Context, id string, input map[string]any) (*domain.Product, error) {
	record, violations := validation.Validate(input, validation.ProductSchema)
	if violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	product, err := uc.products.Update(ctx, id, record)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, payloads.CatalogEventPayload{
		Event: payloads.EventProductUpdated,
		ID:    product.ID.String(),
		Name:  product.Name,
	})
	return product, nil
}

// DeleteProduct удаляет товар
func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) (bool, error) {
	deleted, err := uc.products.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		uc.publish(ctx, payloads.CatalogEventPayload{
			Event: payloads.EventProductDeleted,
			ID:    id,
		})
	}
	return deleted, nil
}

// publish отправляет событие каталога best-effort:
// сбой публикации логируется, но успешную запись не отменяет.
func (uc *productUseCase) publish(ctx context.Context, payload payloads.CatalogEventPayload) {
	if uc.events == nil {
		return
	}
	if err := uc.events.PublishCatalogEvent(ctx, payload); err != nil {
		uc.logger.Error("failed to publish catalog event",
			"event", payload.Event,
			"id", payload.ID,
			"error", err,
		)
	}
}
