package ports

import (
	"context"

	"github.com/GoArmGo/CatalogApp/internal/messaging/payloads"
)

// CatalogEventPublisher определяет методы для публикации событий каталога
// (product.created, review.created и т.д.) после успешной записи.
// Используется usecase-слоем; публикация best-effort и не валит саму запись.
type CatalogEventPublisher interface {
	PublishCatalogEvent(ctx context.Context, payload payloads.CatalogEventPayload) error
}

// CatalogEventConsumer определяет методы для потребления событий каталога.
// Используется воркером для пересчёта сводки рейтинга товаров.
type CatalogEventConsumer interface {
	// StartConsumingCatalogEvents начинает прослушивание очереди,
	// вызывая handler для каждого полученного события.
	StartConsumingCatalogEvents(ctx context.Context, handler func(context.Context, payloads.CatalogEventPayload) error) error
}
