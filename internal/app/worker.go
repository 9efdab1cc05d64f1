package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/CatalogApp/internal/core/ports"
	"github.com/GoArmGo/CatalogApp/internal/messaging/payloads"
	"github.com/GoArmGo/CatalogApp/internal/usecase"
)

// runWorker запускает потребителя RabbitMQ и пересчитывает сводки рейтинга
// товаров по событиям review.created.
func runWorker(
	ctx context.Context,
	logger *slog.Logger,
	reviewUseCase usecase.ReviewUseCase,
	catalogEventConsumer ports.CatalogEventConsumer,
) error {
	logger.Info("worker started, waiting for catalog events")

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	// Функция-обработчик для событий каталога
	messageHandler := func(ctx context.Context, payload payloads.CatalogEventPayload) error {
		if payload.Event != payloads.EventReviewCreated {
			// Остальные события пока только фиксируем
			logger.Info("catalog event skipped", "event", payload.Event, "id", payload.ID)
			return nil
		}

		logger.Info("processing catalog event", "event", payload.Event, "name", payload.Name)

		if err := reviewUseCase.RefreshRatingSummary(ctx, payload.Name); err != nil {
			logger.Error("failed to refresh rating summary",
				"name", payload.Name,
				"error", err,
			)
			return err
		}
		return nil
	}

	if err := catalogEventConsumer.StartConsumingCatalogEvents(workerCtx, messageHandler); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}

	// Блокируемся до сигнала завершения
	<-ctx.Done()

	logger.Info("shutdown signal received, stopping worker")
	cancelWorker()
	return nil
}
